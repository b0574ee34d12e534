package report

import "fmt"

// Kind identifies one of the four supported resume analyses. The value is
// fixed when the request is made and never changes for a given report.
type Kind string

const (
	KindSemantic    Kind = "semantic"
	KindQuality     Kind = "quality"
	KindImprovement Kind = "improve"
	KindMLScore     Kind = "ml"
)

// Kinds lists the supported analysis kinds in dashboard order.
func Kinds() []Kind {
	return []Kind{KindSemantic, KindQuality, KindImprovement, KindMLScore}
}

// ParseKind converts a cli argument into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSemantic, KindQuality, KindImprovement, KindMLScore:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown analysis kind %q (expected one of: semantic, quality, improve, ml)", s)
	}
}

// Title returns the human-readable card title for the kind.
func (k Kind) Title() string {
	switch k {
	case KindSemantic:
		return "Semantic Match Analysis"
	case KindQuality:
		return "Resume Quality Score"
	case KindImprovement:
		return "Improvement Suggestions"
	case KindMLScore:
		return "ML Score Prediction"
	default:
		return "Analysis Result"
	}
}

// Icon returns the emoji identifier shown next to the title.
func (k Kind) Icon() string {
	switch k {
	case KindSemantic:
		return "🎯"
	case KindQuality:
		return "📊"
	case KindImprovement:
		return "✨"
	case KindMLScore:
		return "🤖"
	default:
		return "📄"
	}
}

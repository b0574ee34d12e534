package render

import (
	"fmt"
	"strings"

	"github.com/resumeai/resumeai-cli/internal/report"
)

const fallbackVerdict = "Resume analysis complete"

// Render maps a normalized report to a presentation tree. It never fails:
// loading states, absent reports, error reports and unknown report types all
// yield a displayable tree.
func Render(kind report.Kind, rep report.Report, isLoading bool) *Tree {
	tree := &Tree{Title: kind.Title(), Icon: kind.Icon()}

	if isLoading {
		tree.Loading = true
		tree.Sections = []Section{{
			Items: []Primitive{Skeleton{}, Skeleton{}, Skeleton{}},
		}}
		return tree
	}

	if rep == nil {
		// No analysis run yet. Nothing to display is not an error.
		return tree
	}

	switch r := rep.(type) {
	case *report.ErrorReport:
		tree.Sections = []Section{{
			Title: kind.Title(),
			Icon:  kind.Icon(),
			Items: []Primitive{Alert{Message: r.Message}},
		}}
	case *report.SemanticReport:
		tree.Sections = semanticSections(r)
	case *report.QualityReport:
		tree.Sections = qualitySections(r)
	case *report.ImprovementReport:
		tree.Sections = improvementSections(r)
	case *report.MLScoreReport:
		tree.Sections = mlScoreSections(r)
	default:
		tree.Sections = []Section{{
			Title: kind.Title(),
			Icon:  kind.Icon(),
			Items: []Primitive{RawDump{Fields: rawFields(rep)}},
		}}
	}

	return tree
}

func semanticSections(r *report.SemanticReport) []Section {
	sections := []Section{{
		Title: "Score Overview",
		Items: []Primitive{
			scoreIndicator(r.MatchScore, "Match Score"),
			TextPanel{Label: "Analysis Verdict", Text: verdictOrFallback(r.Verdict)},
		},
	}}

	if len(r.MatchedSkills) > 0 {
		sections = append(sections, Section{
			Title: "Matched Skills",
			Icon:  "✅",
			Items: []Primitive{BadgeList{Variant: VariantSuccess, Badges: r.MatchedSkills}},
		})
	}

	if len(r.MissingSkills) > 0 {
		sections = append(sections, Section{
			Title: "Missing Skills",
			Icon:  "🎯",
			Items: []Primitive{BadgeList{Variant: VariantError, Badges: r.MissingSkills}},
		})
	}

	if len(r.MissingExperience) > 0 {
		sections = append(sections, Section{
			Title: "Experience Gaps",
			Icon:  "⚠️",
			Items: []Primitive{AnnotatedList{Variant: VariantWarning, Items: r.MissingExperience}},
		})
	}

	return sections
}

func qualitySections(r *report.QualityReport) []Section {
	sections := []Section{{
		Title: "Overall Score",
		Items: []Primitive{scoreIndicator(r.OverallScore, "ATS Quality Score")},
	}}

	if len(r.Breakdown) > 0 {
		grid := KeyValueGrid{Entries: make([]GridEntry, 0, len(r.Breakdown))}
		for _, entry := range r.Breakdown {
			grid.Entries = append(grid.Entries, GridEntry{
				Label: underscoresToSpaces(entry.Label),
				Value: entry.Score,
			})
		}
		sections = append(sections, Section{
			Title: "Quality Breakdown",
			Icon:  "🏅",
			Items: []Primitive{grid},
		})
	}

	if len(r.Issues) > 0 {
		sections = append(sections, Section{
			Title: "Issues Found",
			Icon:  "⚠️",
			Items: []Primitive{AnnotatedList{Variant: VariantError, Items: r.Issues}},
		})
	}

	return sections
}

func improvementSections(r *report.ImprovementReport) []Section {
	var sections []Section

	if len(r.PriorityActions) > 0 {
		sections = append(sections, Section{
			Title: "Priority Actions",
			Icon:  "📈",
			Items: []Primitive{NumberedList{Items: r.PriorityActions}},
		})
	}

	if len(r.Suggestions) > 0 {
		sections = append(sections, Section{
			Title: "Improvement Suggestions",
			Icon:  "💡",
			Items: []Primitive{AnnotatedList{Variant: VariantSuccess, Items: r.Suggestions}},
		})
	}

	for _, section := range r.Sections {
		tips := section.Tips.List()
		if len(tips) == 0 {
			continue
		}
		sections = append(sections, Section{
			Title: underscoresToSpaces(section.Name),
			Items: []Primitive{AnnotatedList{Variant: VariantDefault, Items: tips}},
		})
	}

	return sections
}

func mlScoreSections(r *report.MLScoreReport) []Section {
	sections := []Section{{
		Title: "Prediction",
		Items: []Primitive{
			scoreIndicator(r.PredictedScore, "ML Predicted Score"),
			scoreIndicator(r.Confidence, "Confidence Level"),
		},
	}}

	if len(r.Factors) > 0 {
		rows := make([]Primitive, 0, len(r.Factors))
		for _, factor := range r.Factors {
			rows = append(rows, factorRow(factor))
		}
		sections = append(sections, Section{
			Title: "Contributing Factors",
			Icon:  "🧠",
			Items: rows,
		})
	}

	return sections
}

func factorRow(factor report.Factor) FactorRow {
	row := FactorRow{Name: factor.Name, Description: factor.Description}

	if factor.Impact != nil && *factor.Impact != 0 {
		variant := VariantError
		sign := ""
		if *factor.Impact > 0 {
			variant = VariantSuccess
			sign = "+"
		}
		row.Badge = &Badge{
			Variant: variant,
			Text:    fmt.Sprintf("%s%g%%", sign, *factor.Impact),
		}
	}

	return row
}

func scoreIndicator(value float64, label string) ScoreIndicator {
	return ScoreIndicator{
		Value:      value,
		Label:      label,
		OutOfRange: value < 0 || value > 100,
	}
}

func verdictOrFallback(verdict string) string {
	if verdict == "" {
		return fallbackVerdict
	}
	return verdict
}

func underscoresToSpaces(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// rawFields flattens an unexpected report type into raw key/value pairs so
// the dump stays total over any report value.
func rawFields(rep report.Report) map[string]any {
	if raw, ok := rep.(*report.RawReport); ok {
		return raw.Fields
	}
	return map[string]any{"report": fmt.Sprintf("%+v", rep)}
}

// Package report turns the loose JSON payloads returned by the four analysis
// endpoints into typed, renderable reports. The backend analyses are
// independently evolving services whose response vocabularies are not
// contractually fixed; this package is the single place that absorbs the
// key-naming variance so the renderer can work against a fixed schema.
package report

// Report is the normalized result of one analysis. Exactly one of the
// concrete variants below is produced per response; none of them carry raw
// payload after construction, except RawReport (the deliberate unknown-kind
// escape hatch) and Tips (string-or-list is preserved because the backend
// vocabulary for section improvements is not fixed).
type Report interface {
	isReport()
}

// SemanticReport holds the result of the semantic gap analysis.
type SemanticReport struct {
	MatchScore        float64
	Verdict           string
	MissingSkills     []string
	MissingExperience []string
	MatchedSkills     []string
}

// QualityReport holds the result of the ATS quality scoring.
type QualityReport struct {
	OverallScore float64
	Breakdown    []BreakdownEntry
	Issues       []string
}

// BreakdownEntry is one category of the quality breakdown. Entries are kept
// as an ordered slice (sorted by label) so rendering is deterministic.
type BreakdownEntry struct {
	Label string
	Score float64
}

// ImprovementReport holds the improvement suggestions result.
type ImprovementReport struct {
	Suggestions     []string
	PriorityActions []string
	Sections        []SectionTips
}

// SectionTips carries improvement tips for one named resume section.
type SectionTips struct {
	Name string
	Tips Tips
}

// Tips holds either a single free-form tip or an ordered list of tips.
type Tips struct {
	Text  string
	Items []string
}

// List flattens the tips into an ordered list of strings.
func (t Tips) List() []string {
	if len(t.Items) > 0 {
		return t.Items
	}
	if t.Text == "" {
		return nil
	}
	return []string{t.Text}
}

// MLScoreReport holds the ML score prediction result.
type MLScoreReport struct {
	PredictedScore float64
	Confidence     float64
	Factors        []Factor
}

// Factor is one contributing factor of the ML prediction. Impact is nil when
// the backend sent a bare string instead of a factor object.
type Factor struct {
	Name        string
	Impact      *float64
	Description string
}

// ErrorReport is produced when the response carries a backend error or the
// request failed at the transport level. The renderer checks for it first.
type ErrorReport struct {
	Message string
}

// RawReport carries the untouched payload for analysis kinds this client
// does not know how to normalize yet.
type RawReport struct {
	Fields map[string]any
}

func (*SemanticReport) isReport()    {}
func (*QualityReport) isReport()     {}
func (*ImprovementReport) isReport() {}
func (*MLScoreReport) isReport()     {}
func (*ErrorReport) isReport()       {}
func (*RawReport) isReport()         {}

package report

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeDefaultsWhenNoCandidateKeyPresent(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"unrelated": "value"}

	semantic, ok := Normalize(KindSemantic, raw, nil).(*SemanticReport)
	if !ok {
		t.Fatalf("expected semantic report")
	}
	if semantic.MatchScore != 0 || semantic.Verdict != "" {
		t.Fatalf("expected defaults, got %+v", semantic)
	}
	if len(semantic.MissingSkills) != 0 || len(semantic.MatchedSkills) != 0 || len(semantic.MissingExperience) != 0 {
		t.Fatalf("expected empty lists, got %+v", semantic)
	}

	quality, ok := Normalize(KindQuality, raw, nil).(*QualityReport)
	if !ok {
		t.Fatalf("expected quality report")
	}
	if quality.OverallScore != 0 || len(quality.Breakdown) != 0 || len(quality.Issues) != 0 {
		t.Fatalf("expected defaults, got %+v", quality)
	}

	improvement, ok := Normalize(KindImprovement, raw, nil).(*ImprovementReport)
	if !ok {
		t.Fatalf("expected improvement report")
	}
	if len(improvement.Suggestions) != 0 || len(improvement.PriorityActions) != 0 || len(improvement.Sections) != 0 {
		t.Fatalf("expected defaults, got %+v", improvement)
	}

	ml, ok := Normalize(KindMLScore, raw, nil).(*MLScoreReport)
	if !ok {
		t.Fatalf("expected ml report")
	}
	if ml.PredictedScore != 0 || ml.Confidence != 0 || len(ml.Factors) != 0 {
		t.Fatalf("expected defaults, got %+v", ml)
	}
}

func TestNormalizeErrorFieldWinsOverKindExtraction(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"error":       "Unable to parse resume",
		"match_score": float64(95),
	}

	for _, kind := range Kinds() {
		report, ok := Normalize(kind, raw, nil).(*ErrorReport)
		if !ok {
			t.Fatalf("kind %s: expected error report", kind)
		}
		if report.Message != "Unable to parse resume" {
			t.Fatalf("kind %s: unexpected message %q", kind, report.Message)
		}
	}
}

func TestNormalizeIgnoresBlankErrorField(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"error": "  ", "score": float64(10)}

	if _, ok := Normalize(KindSemantic, raw, nil).(*SemanticReport); !ok {
		t.Fatalf("blank error field must not produce an error report")
	}
}

func TestNormalizeFallbackKeyPriority(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"match_score": float64(10),
		"score":       float64(90),
	}

	semantic := Normalize(KindSemantic, raw, nil).(*SemanticReport)
	if semantic.MatchScore != 10 {
		t.Fatalf("expected first candidate to win, got %v", semantic.MatchScore)
	}
}

func TestNormalizeDottedPathFallback(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"gaps": map[string]any{
			"skills":     []any{"Go", "Kubernetes"},
			"experience": []any{},
		},
		"matches": map[string]any{
			"skills": []any{"Python"},
		},
	}

	semantic := Normalize(KindSemantic, raw, nil).(*SemanticReport)
	if !reflect.DeepEqual(semantic.MissingSkills, []string{"Go", "Kubernetes"}) {
		t.Fatalf("unexpected missing skills: %v", semantic.MissingSkills)
	}
	if !reflect.DeepEqual(semantic.MatchedSkills, []string{"Python"}) {
		t.Fatalf("unexpected matched skills: %v", semantic.MatchedSkills)
	}
	if len(semantic.MissingExperience) != 0 {
		t.Fatalf("expected empty experience gaps, got %v", semantic.MissingExperience)
	}
}

func TestNormalizeNumericCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		expect float64
	}{
		{name: "float", value: float64(72.4), expect: 72.4},
		{name: "int", value: 72, expect: 72},
		{name: "numeric string", value: "72", expect: 72},
		{name: "blank string", value: "  ", expect: 0},
		{name: "non-numeric string", value: "high", expect: 0},
		{name: "nil", value: nil, expect: 0},
		{name: "object", value: map[string]any{"v": 1}, expect: 0},
		{name: "out of range passes through", value: float64(140), expect: 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := map[string]any{"overall_score": tt.value}
			quality := Normalize(KindQuality, raw, nil).(*QualityReport)
			if quality.OverallScore != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, quality.OverallScore)
			}
		})
	}
}

func TestNormalizeQualityBreakdownSortedAndCoerced(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"categories": map[string]any{
			"keyword_density": "55",
			"formatting":      float64(80),
			"length":          nil,
		},
	}

	quality := Normalize(KindQuality, raw, nil).(*QualityReport)
	expect := []BreakdownEntry{
		{Label: "formatting", Score: 80},
		{Label: "keyword_density", Score: 55},
		{Label: "length", Score: 0},
	}
	if !reflect.DeepEqual(quality.Breakdown, expect) {
		t.Fatalf("unexpected breakdown: %+v", quality.Breakdown)
	}
}

func TestNormalizeSectionImprovementsStringOrList(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"section_improvements": map[string]any{
			"work_experience": []any{"Quantify results", "Use action verbs"},
			"summary":         "Tighten to three lines",
		},
	}

	improvement := Normalize(KindImprovement, raw, nil).(*ImprovementReport)
	if len(improvement.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(improvement.Sections))
	}

	summary := improvement.Sections[0]
	if summary.Name != "summary" || summary.Tips.Text != "Tighten to three lines" {
		t.Fatalf("unexpected summary section: %+v", summary)
	}
	if !reflect.DeepEqual(summary.Tips.List(), []string{"Tighten to three lines"}) {
		t.Fatalf("unexpected summary tips list: %v", summary.Tips.List())
	}

	work := improvement.Sections[1]
	if work.Name != "work_experience" {
		t.Fatalf("unexpected section order: %+v", improvement.Sections)
	}
	if !reflect.DeepEqual(work.Tips.List(), []string{"Quantify results", "Use action verbs"}) {
		t.Fatalf("unexpected work tips: %v", work.Tips.List())
	}
}

func TestNormalizeFactorsStringsAndObjects(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"contributing_factors": []any{
			"Relevant experience",
			map[string]any{
				"name":        "Skill overlap",
				"impact":      float64(12),
				"description": "Strong overlap with required skills",
			},
			map[string]any{
				"name":   "Resume length",
				"impact": "-4",
			},
		},
	}

	ml := Normalize(KindMLScore, raw, nil).(*MLScoreReport)
	if len(ml.Factors) != 3 {
		t.Fatalf("expected 3 factors, got %d", len(ml.Factors))
	}

	if ml.Factors[0].Name != "Relevant experience" || ml.Factors[0].Impact != nil {
		t.Fatalf("unexpected bare string factor: %+v", ml.Factors[0])
	}

	second := ml.Factors[1]
	if second.Name != "Skill overlap" || second.Impact == nil || *second.Impact != 12 {
		t.Fatalf("unexpected object factor: %+v", second)
	}
	if second.Description != "Strong overlap with required skills" {
		t.Fatalf("unexpected description: %q", second.Description)
	}

	third := ml.Factors[2]
	if third.Impact == nil || *third.Impact != -4 {
		t.Fatalf("expected weakly typed impact -4, got %+v", third)
	}
}

func TestNormalizeUnknownKindKeepsRawPayload(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"anything": "goes"}
	rawReport, ok := Normalize(Kind("sentiment"), raw, nil).(*RawReport)
	if !ok {
		t.Fatalf("expected raw report for unknown kind")
	}
	if rawReport.Fields["anything"] != "goes" {
		t.Fatalf("unexpected fields: %+v", rawReport.Fields)
	}
}

type fakeTransportError struct {
	kind   string
	status int
}

func (e *fakeTransportError) Error() string         { return "transport failed" }
func (e *fakeTransportError) TransportKind() string { return e.kind }
func (e *fakeTransportError) StatusCode() int       { return e.status }

func TestNormalizeTransportFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		expect string
	}{
		{
			name:   "timeout",
			err:    &fakeTransportError{kind: "timeout"},
			expect: "The analysis request timed out. Please try again.",
		},
		{
			name:   "http status",
			err:    &fakeTransportError{kind: "http", status: 502},
			expect: "The analysis service returned status 502.",
		},
		{
			name:   "unreachable",
			err:    &fakeTransportError{kind: "unreachable"},
			expect: "The analysis service is unreachable.",
		},
		{
			name:   "plain error",
			err:    errors.New("resume file vanished"),
			expect: "resume file vanished",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report, ok := Normalize(KindSemantic, nil, tt.err).(*ErrorReport)
			if !ok {
				t.Fatalf("expected error report")
			}
			if report.Message != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, report.Message)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		parsed, err := ParseKind(string(kind))
		if err != nil {
			t.Fatalf("parsing %s: %v", kind, err)
		}
		if parsed != kind {
			t.Fatalf("expected %s, got %s", kind, parsed)
		}
	}

	if _, err := ParseKind("sentiment"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

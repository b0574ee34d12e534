package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/resumeai/resumeai-cli/internal/report"
)

func TestWriteTextSemanticTree(t *testing.T) {
	t.Parallel()

	rep := &report.SemanticReport{
		MatchScore:    72,
		Verdict:       "Strong match",
		MatchedSkills: []string{"Python"},
		MissingSkills: []string{"Go"},
	}
	tree := Render(report.KindSemantic, rep, false)

	var buf bytes.Buffer
	if err := WriteText(&buf, tree); err != nil {
		t.Fatalf("writing tree: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Semantic Match Analysis",
		"Match Score: 72%",
		"Strong match",
		"[Python]",
		"[Go]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Experience Gaps") {
		t.Fatalf("empty experience gaps must not be printed:\n%s", out)
	}
}

func TestWriteTextEmptyTree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, Render(report.KindSemantic, nil, false)); err != nil {
		t.Fatalf("writing empty tree: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestWriteTextAlert(t *testing.T) {
	t.Parallel()

	tree := Render(report.KindMLScore, &report.ErrorReport{Message: "Unable to parse resume"}, false)

	var buf bytes.Buffer
	if err := WriteText(&buf, tree); err != nil {
		t.Fatalf("writing tree: %v", err)
	}
	if !strings.Contains(buf.String(), "Unable to parse resume") {
		t.Fatalf("output missing alert message:\n%s", buf.String())
	}
}

func TestMarkdownWriterQualityTree(t *testing.T) {
	t.Parallel()

	rep := &report.QualityReport{
		OverallScore: 88,
		Breakdown: []report.BreakdownEntry{
			{Label: "formatting", Score: 80},
			{Label: "keyword_density", Score: 55},
		},
		Issues: []string{"Typo in summary"},
	}
	tree := Render(report.KindQuality, rep, false)

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).Write(tree); err != nil {
		t.Fatalf("writing markdown: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# 📊 Resume Quality Score",
		"**88%** ATS Quality Score",
		"keyword density",
		"Typo in summary",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriterNumberedList(t *testing.T) {
	t.Parallel()

	rep := &report.ImprovementReport{
		PriorityActions: []string{"Add metrics", "Shorten summary"},
	}
	tree := Render(report.KindImprovement, rep, false)

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).Write(tree); err != nil {
		t.Fatalf("writing markdown: %v", err)
	}

	out := buf.String()
	first := strings.Index(out, "Add metrics")
	second := strings.Index(out, "Shorten summary")
	if first == -1 || second == -1 || second < first {
		t.Fatalf("priority actions out of order:\n%s", out)
	}
}

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Ordered candidate keys per canonical field. The first present key wins;
// later entries are names older backend versions used. Dots address nested
// objects.
var (
	semanticScoreKeys      = []string{"match_score", "semantic_score", "score"}
	semanticVerdictKeys    = []string{"verdict", "recommendation"}
	semanticMissingSkills  = []string{"missing_skills", "gaps.skills"}
	semanticMissingExp     = []string{"missing_experience", "gaps.experience"}
	semanticMatchedSkills  = []string{"matched_skills", "matches.skills"}
	qualityScoreKeys       = []string{"overall_score", "quality_score", "score"}
	qualityBreakdownKeys   = []string{"breakdown", "categories"}
	qualityIssueKeys       = []string{"issues", "problems"}
	improvementSuggestions = []string{"suggestions", "improvements"}
	improvementPriority    = []string{"priority_actions", "quick_wins"}
	improvementSections    = []string{"section_improvements"}
	mlScoreKeys            = []string{"predicted_score", "ml_score", "score"}
	mlConfidenceKeys       = []string{"confidence", "accuracy"}
	mlFactorKeys           = []string{"contributing_factors", "features"}
)

// Normalize derives a typed report from a raw analysis response. It is total:
// any combination of kind, payload shape and error yields a renderable
// report, never a failure. A transport error or a backend-reported error
// field takes priority over kind-specific extraction. Missing or malformed
// fields resolve to documented defaults (0, empty list, empty string).
func Normalize(kind Kind, raw map[string]any, err error) Report {
	if err != nil {
		return &ErrorReport{Message: failureMessage(err)}
	}

	if msg, ok := errorField(raw); ok {
		return &ErrorReport{Message: msg}
	}

	switch kind {
	case KindSemantic:
		return &SemanticReport{
			MatchScore:        numberField(raw, semanticScoreKeys...),
			Verdict:           stringField(raw, semanticVerdictKeys...),
			MissingSkills:     listField(raw, semanticMissingSkills...),
			MissingExperience: listField(raw, semanticMissingExp...),
			MatchedSkills:     listField(raw, semanticMatchedSkills...),
		}
	case KindQuality:
		return &QualityReport{
			OverallScore: numberField(raw, qualityScoreKeys...),
			Breakdown:    breakdownField(raw, qualityBreakdownKeys...),
			Issues:       listField(raw, qualityIssueKeys...),
		}
	case KindImprovement:
		return &ImprovementReport{
			Suggestions:     listField(raw, improvementSuggestions...),
			PriorityActions: listField(raw, improvementPriority...),
			Sections:        sectionsField(raw, improvementSections...),
		}
	case KindMLScore:
		return &MLScoreReport{
			PredictedScore: numberField(raw, mlScoreKeys...),
			Confidence:     numberField(raw, mlConfidenceKeys...),
			Factors:        factorsField(raw, mlFactorKeys...),
		}
	default:
		// Future backend kinds still get a displayable report.
		if raw == nil {
			raw = map[string]any{}
		}
		return &RawReport{Fields: raw}
	}
}

// failureMessage maps a gateway failure to a short user-facing message. The
// gateway's error type is matched structurally to keep this package free of
// transport imports.
func failureMessage(err error) string {
	var failure interface {
		TransportKind() string
		StatusCode() int
	}
	if errors.As(err, &failure) {
		switch failure.TransportKind() {
		case "timeout":
			return "The analysis request timed out. Please try again."
		case "http":
			return fmt.Sprintf("The analysis service returned status %d.", failure.StatusCode())
		case "unreachable":
			return "The analysis service is unreachable."
		}
	}
	return err.Error()
}

func errorField(raw map[string]any) (string, bool) {
	v, ok := raw["error"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// lookup resolves a possibly dotted key path against nested objects.
func lookup(raw map[string]any, path string) (any, bool) {
	current := any(raw)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func firstPresent(raw map[string]any, candidates ...string) (any, bool) {
	for _, key := range candidates {
		if v, ok := lookup(raw, key); ok {
			return v, true
		}
	}
	return nil, false
}

func numberField(raw map[string]any, candidates ...string) float64 {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return 0
	}
	return coerceFloat(v)
}

func stringField(raw map[string]any, candidates ...string) string {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return ""
	}
	return coerceString(v)
}

func listField(raw map[string]any, candidates ...string) []string {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return nil
	}
	return coerceStrings(v)
}

// breakdownField extracts a label/score mapping. Keys are sorted so
// identical payloads always render identically.
func breakdownField(raw map[string]any, candidates ...string) []BreakdownEntry {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	entries := make([]BreakdownEntry, 0, len(labels))
	for _, label := range labels {
		entries = append(entries, BreakdownEntry{Label: label, Score: coerceFloat(m[label])})
	}
	return entries
}

// sectionsField extracts per-section improvement tips, preserving the
// string-or-list shape of each value. Section names are sorted for
// deterministic rendering.
func sectionsField(raw map[string]any, candidates ...string) []SectionTips {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]SectionTips, 0, len(names))
	for _, name := range names {
		var tips Tips
		switch value := m[name].(type) {
		case []any:
			tips.Items = coerceStrings(value)
		case string:
			tips.Text = value
		default:
			tips.Text = coerceString(value)
		}
		sections = append(sections, SectionTips{Name: name, Tips: tips})
	}
	return sections
}

type factorPayload struct {
	Name        string   `mapstructure:"name"`
	Impact      *float64 `mapstructure:"impact"`
	Description string   `mapstructure:"description"`
}

// factorsField extracts contributing factors, which arrive either as bare
// strings or as {name, impact, description} objects.
func factorsField(raw map[string]any, candidates ...string) []Factor {
	v, ok := firstPresent(raw, candidates...)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	factors := make([]Factor, 0, len(items))
	for _, item := range items {
		switch value := item.(type) {
		case map[string]any:
			var payload factorPayload
			cfg := &mapstructure.DecoderConfig{
				Result:           &payload,
				WeaklyTypedInput: true,
			}
			decoder, err := mapstructure.NewDecoder(cfg)
			if err == nil {
				err = decoder.Decode(value)
			}
			if err != nil {
				factors = append(factors, Factor{Name: coerceString(value["name"])})
				continue
			}
			factors = append(factors, Factor{
				Name:        payload.Name,
				Impact:      payload.Impact,
				Description: payload.Description,
			})
		default:
			factors = append(factors, Factor{Name: coerceString(value)})
		}
	}
	return factors
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, coerceString(item))
		}
		return items
	default:
		return nil
	}
}

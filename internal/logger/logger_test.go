package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "multipart payload",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "score",
			limit:  10,
			expect: "score",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "missing_skills",
			limit:  7,
			expect: "missing...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  verdict  ",
			limit:  4,
			expect: "verd...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

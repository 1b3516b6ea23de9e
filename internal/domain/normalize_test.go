package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercase passthrough", "ubiquitous", "ubiquitous"},
		{"uppercase", "Serendipity", "serendipity"},
		{"surrounding space", "  gregarious  ", "gregarious"},
		{"inner space compression", "in  spite   of", "in spite of"},
		{"apostrophe preserved", "o'clock", "o'clock"},
		{"hyphen preserved", "well-being", "well-being"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeUpper(t *testing.T) {
	if got := NormalizeUpper(" b2 "); got != "B2" {
		t.Errorf("NormalizeUpper(\" b2 \") = %q, want B2", got)
	}
}

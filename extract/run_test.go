package extract

import "testing"

func TestOutputName(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{".sec01", "sec01.css"},
		{".sec01 .card", "sec01-card.css"},
		{"#hero", "hero.css"},
		{"div.card", "div-card.css"},
		{"...", "skeleton.css"},
	}
	for _, tt := range tests {
		if got := outputName(tt.selector); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.selector, got, tt.want)
		}
	}
}

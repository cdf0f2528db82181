package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDeckColors(t *testing.T) {
	from := lipgloss.Color("#ff0000")
	to := lipgloss.Color("#0000ff")

	tests := []struct {
		name string
		size int
		want int
	}{
		{"empty", 0, 0},
		{"negative", -2, 0},
		{"single", 1, 1},
		{"ramp", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeckColors(tt.size, from, to)
			if len(got) != tt.want {
				t.Fatalf("DeckColors(%d) returned %d colors", tt.size, len(got))
			}
		})
	}
}

func TestDeckColorsEndpoints(t *testing.T) {
	from := lipgloss.Color("#ff0000")
	to := lipgloss.Color("#0000ff")

	colors := DeckColors(4, from, to)
	if colors[0] != from {
		t.Errorf("first color = %v, want %v", colors[0], from)
	}
	if colors[3] != to {
		t.Errorf("last color = %v, want %v", colors[3], to)
	}
}

func TestApplyGradientEmpty(t *testing.T) {
	if got := ApplyGradient("", lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff")); got != "" {
		t.Errorf("ApplyGradient(\"\") = %q", got)
	}
}

package config

import (
	"testing"

	"github.com/llehouerou/cardstack/internal/stack"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Stack().Validate(); err != nil {
		t.Fatalf("default geometry failed validation: %v", err)
	}
	if cfg.Demo.ItemCount <= 0 {
		t.Errorf("default item count = %d, want positive", cfg.Demo.ItemCount)
	}
}

func TestStackConversion(t *testing.T) {
	cfg := defaultConfig()
	cfg.Deck.CardHeight = 9
	cfg.Deck.CardOffset = 3

	sc := cfg.Stack()
	if sc.CardHeight != 9 {
		t.Errorf("CardHeight = %v, want 9", sc.CardHeight)
	}
	if sc.CardOffset != 3 {
		t.Errorf("CardOffset = %v, want 3", sc.CardOffset)
	}
	if sc.TravelRange() != cfg.Deck.ExpandedHeight-cfg.Deck.CollapsedHeight {
		t.Errorf("TravelRange = %v", sc.TravelRange())
	}
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name          string
		startExpanded bool
		want          stack.Phase
	}{
		{"default collapsed", false, stack.PhaseCollapsed},
		{"start expanded", true, stack.PhaseExpanded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Demo.StartExpanded = tt.startExpanded
			if got := cfg.InitialState().Phase; got != tt.want {
				t.Errorf("InitialState().Phase = %v, want %v", got, tt.want)
			}
		})
	}
}

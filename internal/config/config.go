// Package config loads the deck geometry and demo options from config.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cardstack/internal/stack"
)

// Config is the full application configuration.
type Config struct {
	Deck DeckConfig `koanf:"deck"`
	Demo DemoConfig `koanf:"demo"`
}

// DeckConfig holds the deck geometry in terminal cell units. Values are
// float64 so partial-cell geometry stays possible for hosts with finer
// coordinate spaces; the terminal demo rounds at paint time.
type DeckConfig struct {
	LeftSpacing       float64 `koanf:"left_spacing"`
	RightSpacing      float64 `koanf:"right_spacing"`
	CardHeight        float64 `koanf:"card_height"`
	VerticalSpacing   float64 `koanf:"vertical_spacing"`
	CardOffset        float64 `koanf:"card_offset"`        // exposed rows per stacked card
	CollapsedHeight   float64 `koanf:"collapsed_height"`   // container height when collapsed
	ExpandedHeight    float64 `koanf:"expanded_height"`    // container height when expanded
	UpwardThreshold   float64 `koanf:"upward_threshold"`   // rows of travel to commit an upward drag
	DownwardThreshold float64 `koanf:"downward_threshold"` // rows of slack near the expanded boundary
}

// DemoConfig holds options for the demo host.
type DemoConfig struct {
	ItemCount     int    `koanf:"item_count"`
	StartExpanded bool   `koanf:"start_expanded"`
	GradientFrom  string `koanf:"gradient_from"` // hex color for card title gradients
	GradientTo    string `koanf:"gradient_to"`
}

// Load reads config files in order of priority (last wins), applies defaults
// for anything unset, and validates the resulting geometry. A geometry that
// violates the deck invariants fails here, before any component is built.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Demo.ItemCount < 0 {
		cfg.Demo.ItemCount = 0
	}
	if err := cfg.Stack().Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Deck: DeckConfig{
			LeftSpacing:       2,
			RightSpacing:      2,
			CardHeight:        7,
			VerticalSpacing:   1,
			CardOffset:        2,
			CollapsedHeight:   9,
			ExpandedHeight:    32,
			UpwardThreshold:   4,
			DownwardThreshold: 3,
		},
		Demo: DemoConfig{
			ItemCount:    8,
			GradientFrom: "#7D56F4",
			GradientTo:   "#43BF6D",
		},
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/cardstack/config.toml
		filepath.Join(xdg.ConfigHome, "cardstack", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// Stack converts the geometry section into the core configuration.
func (c *Config) Stack() stack.Config {
	return stack.Config{
		LeftSpacing:       c.Deck.LeftSpacing,
		RightSpacing:      c.Deck.RightSpacing,
		CardHeight:        c.Deck.CardHeight,
		VerticalSpacing:   c.Deck.VerticalSpacing,
		CardOffset:        c.Deck.CardOffset,
		CollapsedHeight:   c.Deck.CollapsedHeight,
		ExpandedHeight:    c.Deck.ExpandedHeight,
		UpwardThreshold:   c.Deck.UpwardThreshold,
		DownwardThreshold: c.Deck.DownwardThreshold,
	}
}

// InitialState returns the terminal state the deck starts in.
func (c *Config) InitialState() stack.State {
	if c.Demo.StartExpanded {
		return stack.Expanded()
	}
	return stack.Collapsed()
}

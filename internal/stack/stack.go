// Package stack computes the geometry of a vertically stacked, overlapping
// card deck and drives it between its collapsed and expanded layouts through
// a drag gesture.
//
// The package has three parts, used in dependency order: Config holds the
// geometric constants, Engine maps item indices to frames for a given
// interaction state, and Controller owns the interaction state machine that
// feeds the engine. Nothing here renders or touches a UI toolkit; the host
// observes the invalidation hook, pulls frames, and paints them itself.
package stack

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps all configuration invariant violations.
// It is returned once at construction and never mid-interaction.
var ErrInvalidConfig = errors.New("invalid stack config")

// ErrIndexOutOfRange is returned by FrameAt for indices at or beyond the
// current item count.
var ErrIndexOutOfRange = errors.New("item index out of range")

// Config holds the geometric constants of the deck. It is immutable: both
// the engine and the controller read it, neither mutates it.
type Config struct {
	// LeftSpacing and RightSpacing are the horizontal insets between the
	// container edges and every card.
	LeftSpacing  float64
	RightSpacing float64

	// CardHeight is the height of a single card at rest. Height never
	// interpolates; only vertical position does.
	CardHeight float64

	// VerticalSpacing is the gap between cards when fully expanded, and the
	// top offset of the non-top cards when collapsed.
	VerticalSpacing float64

	// CardOffset is the vertical offset between successively stacked cards
	// when collapsed: only the top CardOffset units of each non-top card
	// stay exposed.
	CardOffset float64

	// CollapsedHeight and ExpandedHeight are the container heights at the
	// two terminal states. ExpandedHeight > CollapsedHeight > 0.
	CollapsedHeight float64
	ExpandedHeight  float64

	// UpwardThreshold and DownwardThreshold are the minimum drag distances,
	// in container-height units, required at gesture end to commit to the
	// opposite terminal state instead of snapping back.
	UpwardThreshold   float64
	DownwardThreshold float64
}

// Validate checks the configuration invariants. A Config that fails
// validation must not be handed to NewEngine or NewController.
func (c Config) Validate() error {
	if c.CollapsedHeight <= 0 {
		return fmt.Errorf("%w: collapsed height must be positive, got %v", ErrInvalidConfig, c.CollapsedHeight)
	}
	if c.ExpandedHeight <= c.CollapsedHeight {
		return fmt.Errorf("%w: expanded height %v must exceed collapsed height %v",
			ErrInvalidConfig, c.ExpandedHeight, c.CollapsedHeight)
	}
	if c.CardHeight <= 0 {
		return fmt.Errorf("%w: card height must be positive, got %v", ErrInvalidConfig, c.CardHeight)
	}
	if c.LeftSpacing < 0 || c.RightSpacing < 0 {
		return fmt.Errorf("%w: horizontal spacings must be non-negative", ErrInvalidConfig)
	}
	if c.VerticalSpacing < 0 || c.CardOffset < 0 {
		return fmt.Errorf("%w: vertical spacing and card offset must be non-negative", ErrInvalidConfig)
	}
	if c.UpwardThreshold < 0 || c.DownwardThreshold < 0 {
		return fmt.Errorf("%w: thresholds must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// TravelRange returns the total progress range between the two terminal
// states, i.e. ExpandedHeight - CollapsedHeight.
func (c Config) TravelRange() float64 {
	return c.ExpandedHeight - c.CollapsedHeight
}

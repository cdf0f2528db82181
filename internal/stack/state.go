package stack

// Phase identifies which variant of the interaction state the deck is in.
type Phase int

const (
	// PhaseCollapsed is the terminal state where cards overlap in a stack.
	PhaseCollapsed Phase = iota
	// PhaseExpanded is the terminal state where cards are fully laid out.
	PhaseExpanded
	// PhaseInTransit means a gesture is actively driving the layout between
	// the two terminal states.
	PhaseInTransit
)

// String returns the phase name for debugging and test output.
func (p Phase) String() string {
	switch p {
	case PhaseCollapsed:
		return "collapsed"
	case PhaseExpanded:
		return "expanded"
	case PhaseInTransit:
		return "in-transit"
	}
	return "unknown"
}

// State is the interaction state of the deck: one of the two terminal phases
// or InTransit with a progress payload. Progress is the current container
// height minus Config.CollapsedHeight, the single continuous degree of
// freedom, and is meaningful only while Phase is PhaseInTransit.
type State struct {
	Phase    Phase
	Progress float64
}

// Collapsed returns the collapsed terminal state.
func Collapsed() State {
	return State{Phase: PhaseCollapsed}
}

// Expanded returns the expanded terminal state.
func Expanded() State {
	return State{Phase: PhaseExpanded}
}

// InTransit returns an in-transit state at the given progress. The caller is
// responsible for keeping progress within [0, Config.TravelRange()]; the
// layout engine produces well-defined arithmetic for out-of-range values but
// the controller never emits them.
func InTransit(progress float64) State {
	return State{Phase: PhaseInTransit, Progress: progress}
}

// IsTerminal reports whether the state is Collapsed or Expanded, i.e. no
// gesture is in flight.
func (s State) IsTerminal() bool {
	return s.Phase != PhaseInTransit
}

// progressIn returns the progress value this state pins the deck to, given
// the configured travel range. Terminal states sit exactly at the range
// boundaries.
func (s State) progressIn(cfg Config) float64 {
	switch s.Phase {
	case PhaseCollapsed:
		return 0
	case PhaseExpanded:
		return cfg.TravelRange()
	case PhaseInTransit:
		return s.Progress
	}
	return 0
}

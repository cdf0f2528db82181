package stack

import "math"

// Engine maps item indices to frames for a given interaction state. It is a
// pure function of (index, state, viewport width, config): identical inputs
// always yield identical output. The only state it carries is a per-pass
// frame arena, a contiguous slice rebuilt wholesale whenever any input
// changes, kept purely so repeated viewport-intersection queries against the
// same layout do not recompute every frame.
type Engine struct {
	cfg Config

	frames     []Frame
	cacheState State
	cacheCount int
	cacheWidth float64
	cacheOK    bool
}

// NewEngine returns an engine for the given configuration. The config must
// already be validated; the engine itself never fails.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// FrameFor computes the frame of a single item. Index 0 is pinned to Y=0 in
// every state: while the deck moves, the top card never does, only the
// container height changes beneath it.
//
// The engine performs no clamping: an out-of-range progress still produces
// well-defined arithmetic. Keeping progress within bounds is the
// controller's job.
func (e *Engine) FrameFor(index int, state State, viewportWidth float64) Frame {
	return Frame{
		X:      e.cfg.LeftSpacing,
		Y:      e.originY(index, state),
		Width:  viewportWidth - e.cfg.LeftSpacing - e.cfg.RightSpacing,
		Height: e.cfg.CardHeight,
	}
}

// FrameSet computes frames for all items in index order. An itemCount of
// zero (or below) yields an empty slice, never an error. The returned slice
// is the engine's arena and is only valid until the next FrameSet call with
// different inputs; callers that need to retain frames must copy them.
func (e *Engine) FrameSet(itemCount int, state State, viewportWidth float64) []Frame {
	if itemCount < 0 {
		itemCount = 0
	}
	if e.cacheOK && e.cacheCount == itemCount && e.cacheState == state && e.cacheWidth == viewportWidth {
		return e.frames
	}

	e.frames = e.frames[:0]
	for i := 0; i < itemCount; i++ {
		e.frames = append(e.frames, e.FrameFor(i, state, viewportWidth))
	}
	e.cacheState = state
	e.cacheCount = itemCount
	e.cacheWidth = viewportWidth
	e.cacheOK = true
	return e.frames
}

// FramesIntersecting returns, in index order, the frames that overlap the
// given rectangle. A rectangle taller than the whole stack returns every
// frame; one entirely outside the stack returns none.
func (e *Engine) FramesIntersecting(rect Rect, itemCount int, state State, viewportWidth float64) []Frame {
	all := e.FrameSet(itemCount, state, viewportWidth)
	var visible []Frame
	for _, f := range all {
		if f.Intersects(rect) {
			visible = append(visible, f)
		}
	}
	return visible
}

// StackHeight returns the total vertical extent of the deck in the given
// state: the bottom edge of the last card, or 0 for an empty deck.
func (e *Engine) StackHeight(itemCount int, state State) float64 {
	if itemCount <= 0 {
		return 0
	}
	return e.originY(itemCount-1, state) + e.cfg.CardHeight
}

// originY computes the vertical position of one item.
//
// Expanded lays cards out gapped by VerticalSpacing with no overlap.
// Collapsed pins every non-top card VerticalSpacing below the top, exposing
// only CardOffset units of each. InTransit interpolates linearly between
// those two positions by the unitary-method rule: the ratio of current
// progress to the total travel range equals the ratio of this card's partial
// displacement to its total displacement. The interpolation is exact at both
// endpoints and monotonic in progress for a fixed index.
func (e *Engine) originY(index int, state State) float64 {
	if index <= 0 {
		return 0
	}
	fi := float64(index)
	switch state.Phase {
	case PhaseExpanded:
		return e.cfg.VerticalSpacing*fi + e.cfg.CardHeight*fi
	case PhaseCollapsed:
		return e.cfg.VerticalSpacing + e.cfg.CardOffset*fi
	case PhaseInTransit:
		collapsedY := e.cfg.VerticalSpacing + e.cfg.CardOffset*fi
		expandedY := e.cfg.VerticalSpacing*fi + e.cfg.CardHeight*fi
		totalDelta := math.Abs(expandedY - collapsedY)
		fraction := totalDelta * state.Progress / e.cfg.TravelRange()
		return collapsedY + fraction
	}
	return 0
}

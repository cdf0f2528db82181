package stack

import "fmt"

// Controller owns the interaction state machine that drives the layout
// engine. It consumes gesture lifecycle events from the host, keeps progress
// clamped to the travel range, resolves gesture ends to a terminal state per
// the threshold policy, and notifies the host after every mutation so it can
// pull fresh frames and re-render.
//
// All methods must be called from a single goroutine, the host's event loop.
// The controller never blocks and never renders.
type Controller struct {
	cfg    Config
	engine *Engine

	state         State
	itemCount     int
	viewportWidth float64

	// gestureStart is the progress at the last GestureBegin, used to decide
	// the gesture's net direction at resolution time.
	gestureStart float64
	dragging     bool

	onInvalidate func()
}

// NewController builds a controller with a validated configuration. The
// initial state must be terminal; a deck is never born mid-gesture.
// onInvalidate may be nil; when set it is called after every state or
// progress mutation, and the host is expected to react by re-reading frames
// and updating any externally owned height constraint to ContainerHeight.
func NewController(cfg Config, itemCount int, initial State, onInvalidate func()) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !initial.IsTerminal() {
		return nil, fmt.Errorf("%w: initial state must be collapsed or expanded", ErrInvalidConfig)
	}
	if itemCount < 0 {
		itemCount = 0
	}
	return &Controller{
		cfg:          cfg,
		engine:       NewEngine(cfg),
		state:        initial,
		itemCount:    itemCount,
		onInvalidate: onInvalidate,
	}, nil
}

// Config returns the geometry configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Progress returns the current progress: 0 when collapsed, the full travel
// range when expanded, the live value while in transit.
func (c *Controller) Progress() float64 {
	return c.state.progressIn(c.cfg)
}

// ContainerHeight returns the container height matching the current
// progress, CollapsedHeight + progress. Hosts bind their height constraint
// to this value.
func (c *Controller) ContainerHeight() float64 {
	return c.cfg.CollapsedHeight + c.Progress()
}

// Dragging reports whether a gesture currently owns vertical motion. While
// true the host must suppress its own scroll handling so the gesture and
// the scroller never fight over the same axis.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// ItemCount returns the current item count.
func (c *Controller) ItemCount() int {
	return c.itemCount
}

// SetItemCount updates the item count. Negative counts clamp to zero.
func (c *Controller) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	if n == c.itemCount {
		return
	}
	c.itemCount = n
	c.invalidate()
}

// SetViewportWidth updates the width frames are computed against. The host
// calls this on resize.
func (c *Controller) SetViewportWidth(w float64) {
	if w == c.viewportWidth {
		return
	}
	c.viewportWidth = w
	c.invalidate()
}

// GestureBegin moves a terminal state into transit at its boundary progress.
// Beginning during an in-flight transit simply rebases the net-direction
// reference to the current progress.
func (c *Controller) GestureBegin() {
	switch c.state.Phase {
	case PhaseCollapsed:
		c.state = InTransit(0)
	case PhaseExpanded:
		c.state = InTransit(c.cfg.TravelRange())
	case PhaseInTransit:
		// keep current progress
	}
	c.gestureStart = c.state.Progress
	c.dragging = true
	c.invalidate()
}

// GestureChange applies an incremental vertical drag. deltaY follows screen
// convention, positive pointing down, so dragging upward increases progress.
// Progress is clamped to [0, TravelRange] no matter the drag magnitude;
// malformed deltas are absorbed, never rejected. Events arriving without a
// preceding GestureBegin are ignored.
func (c *Controller) GestureChange(deltaY float64) {
	if c.state.Phase != PhaseInTransit {
		return
	}
	p := clamp(c.state.Progress-deltaY, 0, c.cfg.TravelRange())
	c.state = InTransit(p)
	c.invalidate()
}

// GestureEnd resolves an in-flight transit to a terminal state.
//
// The deck commits to Expanded when progress ended within DownwardThreshold
// of the expanded boundary, or when the gesture's net direction was upward
// and progress cleared UpwardThreshold; otherwise it springs back to
// Collapsed. Comparisons are against absolute traveled distance only, never
// gesture velocity.
func (c *Controller) GestureEnd() {
	c.resolveGesture()
}

// GestureCancel resolves exactly like GestureEnd, threshold evaluation
// included.
func (c *Controller) GestureCancel() {
	c.resolveGesture()
}

func (c *Controller) resolveGesture() {
	if c.state.Phase != PhaseInTransit {
		return
	}
	p := c.state.Progress
	netUpward := p > c.gestureStart

	target := Collapsed()
	switch {
	case p >= c.cfg.TravelRange()-c.cfg.DownwardThreshold:
		target = Expanded()
	case netUpward && p > c.cfg.UpwardThreshold:
		target = Expanded()
	}

	c.state = target
	c.dragging = false
	c.invalidate()
}

// ChangeState jumps straight to a terminal state with no in-transit
// pass-through, for non-gesture transitions such as a tap handler. Requests
// for PhaseInTransit are ignored: transit is only ever entered through
// GestureBegin.
func (c *Controller) ChangeState(to Phase) {
	if to == PhaseInTransit || to == c.state.Phase {
		return
	}
	switch to {
	case PhaseCollapsed:
		c.state = Collapsed()
	case PhaseExpanded:
		c.state = Expanded()
	}
	c.dragging = false
	c.invalidate()
}

// CurrentFrames returns the frames of every item in index order for the
// current state. The slice is only valid until the next layout mutation.
func (c *Controller) CurrentFrames() []Frame {
	return c.engine.FrameSet(c.itemCount, c.state, c.viewportWidth)
}

// FrameAt returns the frame of one item, or ErrIndexOutOfRange for an index
// at or beyond the item count.
func (c *Controller) FrameAt(index int) (Frame, error) {
	if index < 0 || index >= c.itemCount {
		return Frame{}, fmt.Errorf("%w: index %d with %d items", ErrIndexOutOfRange, index, c.itemCount)
	}
	return c.engine.FrameFor(index, c.state, c.viewportWidth), nil
}

// FramesIntersecting returns, in index order, the frames overlapping the
// given rectangle. The host's virtualization layer uses this to decide which
// items need a live visual representation.
func (c *Controller) FramesIntersecting(rect Rect) []Frame {
	return c.engine.FramesIntersecting(rect, c.itemCount, c.state, c.viewportWidth)
}

// StackHeight returns the total vertical extent of the deck in its current
// state.
func (c *Controller) StackHeight() float64 {
	return c.engine.StackHeight(c.itemCount, c.state)
}

func (c *Controller) invalidate() {
	if c.onInvalidate != nil {
		c.onInvalidate()
	}
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

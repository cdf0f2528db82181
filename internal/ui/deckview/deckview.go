// Package deckview renders a virtualized card deck driven by the stack
// controller. It is the host collaborator of the core: it feeds gesture and
// resize events in, observes the invalidation hook, and pulls frames back
// out to decide which cards get painted.
package deckview

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/stack"
	"github.com/llehouerou/cardstack/internal/ui"
	"github.com/llehouerou/cardstack/internal/ui/canvas"
	"github.com/llehouerou/cardstack/internal/ui/styles"
)

// Model is the card deck component.
type Model struct {
	ui.Base

	ctrl     *stack.Controller
	resolver *keymap.Resolver

	scroll     int // first visible stack row
	lastMouseY int

	gradientFrom lipgloss.Color
	gradientTo   lipgloss.Color

	// dirty is raised by the controller's invalidation hook; the cached
	// view is rebuilt on the next View call.
	dirty   bool
	cache   string
	cacheOK bool
}

// New builds the deck view and its controller. The configuration must
// validate, and the initial state must be terminal.
func New(cfg stack.Config, itemCount int, initial stack.State, from, to lipgloss.Color) (*Model, error) {
	m := &Model{
		resolver:     keymap.NewResolver(keymap.ByContext("deck")),
		gradientFrom: from,
		gradientTo:   to,
	}
	ctrl, err := stack.NewController(cfg, itemCount, initial, m.invalidate)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	return m, nil
}

// Controller exposes the underlying controller for status queries.
func (m *Model) Controller() *stack.Controller {
	return m.ctrl
}

func (m *Model) invalidate() {
	m.dirty = true
}

// SetSize resizes the component and pushes the new viewport width into the
// controller.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.ctrl.SetViewportWidth(float64(width))
	m.clampScroll()
	m.dirty = true
}

// SetItemCount changes how many cards the deck holds.
func (m *Model) SetItemCount(n int) {
	m.ctrl.SetItemCount(n)
	m.clampScroll()
}

// Update handles key and mouse input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleKey(key string) {
	switch m.resolver.Resolve(key) {
	case keymap.ActionToggleDeck:
		m.toggle()
	case keymap.ActionExpand:
		m.ctrl.ChangeState(stack.PhaseExpanded)
	case keymap.ActionCollapse:
		m.ctrl.ChangeState(stack.PhaseCollapsed)
	case keymap.ActionScrollUp:
		m.scrollBy(-1)
	case keymap.ActionScrollDown:
		m.scrollBy(1)
	case keymap.ActionJumpTop:
		m.scrollTo(0)
	case keymap.ActionJumpBottom:
		m.scrollTo(int(math.Round(m.ctrl.StackHeight())))
	}
	// Collapsing can shrink the stack out from under the scroll offset.
	m.clampScroll()
}

// handleMouse maps raw mouse input onto the gesture lifecycle: press begins
// a drag, motion feeds incremental deltas, release ends it. The wheel
// scrolls the container, but only while no drag owns the vertical axis.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.ctrl.GestureBegin()
		m.lastMouseY = msg.Y
	case msg.Action == tea.MouseActionMotion && m.ctrl.Dragging():
		m.ctrl.GestureChange(float64(msg.Y - m.lastMouseY))
		m.lastMouseY = msg.Y
	case msg.Action == tea.MouseActionRelease && m.ctrl.Dragging():
		m.ctrl.GestureEnd()
		m.clampScroll()
	}
}

func (m *Model) toggle() {
	switch m.ctrl.State().Phase {
	case stack.PhaseCollapsed:
		m.ctrl.ChangeState(stack.PhaseExpanded)
	case stack.PhaseExpanded:
		m.ctrl.ChangeState(stack.PhaseCollapsed)
	case stack.PhaseInTransit:
		// a live gesture owns the deck
	}
}

func (m *Model) scrollBy(delta int) {
	m.scrollTo(m.scroll + delta)
}

func (m *Model) scrollTo(row int) {
	if m.ctrl.Dragging() {
		return
	}
	old := m.scroll
	m.scroll = row
	m.clampScroll()
	if m.scroll != old {
		m.dirty = true
	}
}

func (m *Model) clampScroll() {
	maxScroll := int(math.Round(m.ctrl.StackHeight())) - m.containerRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
		m.dirty = true
	}
	if m.scroll < 0 {
		m.scroll = 0
		m.dirty = true
	}
}

// containerRows is the on-screen height of the deck container: the
// animated container height, capped by the component's allotted rows.
func (m *Model) containerRows() int {
	rows := int(math.Round(m.ctrl.ContainerHeight()))
	if rows > m.Height() {
		rows = m.Height()
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// viewport is the rectangle of the stack currently on screen, in stack
// coordinates.
func (m *Model) viewport() stack.Rect {
	return stack.Rect{
		X:      0,
		Y:      float64(m.scroll),
		Width:  float64(m.Width()),
		Height: float64(m.containerRows()),
	}
}

// VisibleCount returns how many cards intersect the current viewport.
func (m *Model) VisibleCount() int {
	return len(m.ctrl.FramesIntersecting(m.viewport()))
}

// Status returns the footer line describing the deck state.
func (m *Model) Status() string {
	return fmt.Sprintf("%s · %d cards · %d visible",
		m.ctrl.State().Phase, m.ctrl.ItemCount(), m.VisibleCount())
}

// View renders the deck. The cached render is reused until the controller
// signals an invalidation or the host changes scroll or size.
func (m *Model) View() string {
	if !m.cacheOK || m.dirty {
		m.cache = m.render()
		m.cacheOK = true
		m.dirty = false
	}
	return m.cache
}

func (m *Model) render() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	cv := canvas.New(width, m.containerRows())
	vp := m.viewport()

	frames := m.ctrl.CurrentFrames()
	colors := styles.DeckColors(len(frames), m.gradientFrom, m.gradientTo)
	for i, f := range frames {
		// Only cards intersecting the viewport get a visual; everything
		// else stays virtual.
		if !f.Intersects(vp) {
			continue
		}
		card := m.renderCard(i, f, colors[i])
		cv.Paint(card, int(math.Round(f.X)), int(math.Round(f.Y))-m.scroll)
	}

	return cv.Render()
}

func (m *Model) renderCard(index int, f stack.Frame, border lipgloss.Color) string {
	w := int(math.Round(f.Width))
	if w < ui.MinCardWidth {
		w = ui.MinCardWidth
	}
	h := int(math.Round(f.Height))

	title := styles.Title().Foreground(border).Render(fmt.Sprintf("Card %d", index+1))
	body := styles.Subtitle().Render(fmt.Sprintf("frame y=%.0f", f.Y))
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)

	return styles.Card(w, h, border).Render(content)
}

// Package countprompt provides a small input popup for changing how many
// cards the deck holds.
package countprompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/ui/styles"
)

// SubmittedMsg is emitted when a valid count is entered.
type SubmittedMsg struct {
	Count int
}

// CancelledMsg is emitted when the prompt is dismissed.
type CancelledMsg struct{}

// Model holds the prompt state.
type Model struct {
	input textinput.Model
}

// New creates a prompt pre-filled with the current count as placeholder.
func New(current int) Model {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.Focus()
	ti.CharLimit = 4
	ti.Width = 8
	return Model{input: ti}
}

// Init implements tea.Model-style initialization.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input. Enter submits when the value parses as a
// non-negative integer, escape cancels, anything else feeds the text input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		case "enter":
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil || n < 0 {
				return m, func() tea.Msg { return CancelledMsg{} }
			}
			return m, func() tea.Msg { return SubmittedMsg{Count: n} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the bordered prompt.
func (m Model) View() string {
	return styles.Prompt().Render("Cards: " + m.input.View())
}

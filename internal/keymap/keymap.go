// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding describes a single key binding for dispatch and documentation.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global" or "deck"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"n"}, ActionSetCount, "Set card count", "global"},

	// Deck
	{[]string{" ", "enter"}, ActionToggleDeck, "Expand/collapse deck", "deck"},
	{[]string{"e"}, ActionExpand, "Expand deck", "deck"},
	{[]string{"c"}, ActionCollapse, "Collapse deck", "deck"},
	{[]string{"k", "up"}, ActionScrollUp, "Scroll up", "deck"},
	{[]string{"j", "down"}, ActionScrollDown, "Scroll down", "deck"},
	{[]string{"g", "home"}, ActionJumpTop, "Jump to top", "deck"},
	{[]string{"G", "end"}, ActionJumpBottom, "Jump to bottom", "deck"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionSetCount Action = "set_count"

	// Deck actions
	ActionToggleDeck Action = "toggle_deck"
	ActionExpand     Action = "expand"
	ActionCollapse   Action = "collapse"
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionJumpTop    Action = "jump_top"
	ActionJumpBottom Action = "jump_bottom"
)

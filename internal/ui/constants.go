package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the space for the title line above the deck.
	HeaderHeight = 1

	// FooterHeight is the space for the status/help line below the deck.
	FooterHeight = 1

	// CardBorderWidth is the horizontal space consumed by a card border.
	CardBorderWidth = 2

	// CardBorderHeight is the vertical space consumed by a card border.
	CardBorderHeight = 2

	// MinCardWidth is the narrowest a card can render and stay legible.
	MinCardWidth = 10
)

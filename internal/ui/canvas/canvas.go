// Package canvas provides an ANSI-aware line buffer that card views are
// painted onto at their computed frame positions. Later paints win where
// they overlap earlier ones, so cards drawn in index order stack the way a
// collapsed deck should: each card covering the body of the one above it.
package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of styled text.
type Canvas struct {
	width int
	lines []string
}

// New returns a blank canvas of the given dimensions.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, lines: lines}
}

// Width returns the canvas width in display columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return len(c.lines)
}

// Paint draws a multi-line view with its top-left corner at (x, y),
// replacing whatever was painted there before. Content outside the canvas
// bounds is clipped. The view may contain ANSI styling; splicing is done in
// display columns, not bytes.
func (c *Canvas) Paint(view string, x, y int) {
	if c.width == 0 || len(c.lines) == 0 {
		return
	}
	for i, line := range strings.Split(view, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = c.compose(c.lines[row], line, x)
	}
}

// compose splices one overlay line into a base line at column x.
func (c *Canvas) compose(base, overlay string, x int) string {
	w := ansi.StringWidth(overlay)
	if w == 0 || x >= c.width {
		return base
	}
	if x < 0 {
		if x+w <= 0 {
			return base
		}
		overlay = ansi.Cut(overlay, -x, w)
		w += x
		x = 0
	}
	end := x + w
	if end > c.width {
		overlay = ansi.Cut(overlay, 0, c.width-x)
		end = c.width
	}

	if bw := ansi.StringWidth(base); bw < c.width {
		base += strings.Repeat(" ", c.width-bw)
	}

	result := ansi.Cut(base, 0, x) + overlay
	if end < c.width {
		result += ansi.Cut(base, end, c.width)
	}
	return result
}

// Render joins the canvas rows into a single view string.
func (c *Canvas) Render() string {
	return strings.Join(c.lines, "\n")
}

package stack

// Frame is the computed position and size of one card. Frames are derived
// values: they are recomputed on every layout pass and never stored as a
// source of truth.
type Frame struct {
	X, Y          float64
	Width, Height float64
}

// Rect is a query rectangle in the same coordinate space as frames,
// typically the host's visible viewport.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the frame overlaps the rectangle. Touching
// edges do not count as overlap, matching the host's cell-visibility
// semantics: a card whose top edge sits exactly at the viewport bottom is
// not visible.
func (f Frame) Intersects(r Rect) bool {
	return f.X < r.X+r.Width && r.X < f.X+f.Width &&
		f.Y < r.Y+r.Height && r.Y < f.Y+f.Height
}

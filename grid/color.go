package grid

// RGB is a normalized background color with each channel in [0,1].
// External renderers scale it to their own pixel depth.
type RGB struct {
	R, G, B float64
}

// Labeler supplies the up-to-three-character interior label drawn inside
// a cell. Labels longer than three characters are truncated by renderers.
type Labeler interface {
	Label(c *Cell) string
}

// Colorer supplies an optional background color for a cell. The second
// return value reports whether a color applies; renderers leave cells
// without one unpainted, and draw absent (masked-off) slots as solid
// wall regardless.
type Colorer interface {
	Color(c *Cell) (RGB, bool)
}

package distance

import "github.com/katalvlaran/amaze/grid"

// base62 digits used for compact single-cell distance labels.
const digits62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Labeler renders each reached cell's distance in base 62 so distances
// up to 61 fit a single interior character. Implements grid.Labeler.
type Labeler struct {
	m *Map
}

// NewLabeler builds a Labeler over m.
func NewLabeler(m *Map) *Labeler { return &Labeler{m: m} }

// Label returns the cell's distance in base 62, or "" for cells the map
// never reached.
func (l *Labeler) Label(cell *grid.Cell) string {
	d, ok := l.m.Distance(cell)
	if !ok {
		return ""
	}
	if d == 0 {
		return "0"
	}

	var rep []byte
	for d > 0 {
		rep = append(rep, digits62[d%len(digits62)])
		d /= len(digits62)
	}
	for i, j := 0, len(rep)-1; i < j; i, j = i+1, j-1 {
		rep[i], rep[j] = rep[j], rep[i]
	}

	return string(rep)
}

// Colorer shades reached cells along a green gradient: the root is
// brightest and the farthest cell darkest. Implements grid.Colorer.
type Colorer struct {
	m   *Map
	max int
}

// NewColorer builds a Colorer over m, fixing the gradient to m's current
// maximum distance.
func NewColorer(m *Map) *Colorer {
	_, max := m.Max()

	return &Colorer{m: m, max: max}
}

// Color returns the cell's shade and whether the map reached it.
// The green channel is 0.5*(norm+1) - 0.25 with norm = (max-d)/max,
// spanning 0.25 (farthest) to 0.75 (root).
func (c *Colorer) Color(cell *grid.Cell) (grid.RGB, bool) {
	d, ok := c.m.Distance(cell)
	if !ok {
		return grid.RGB{}, false
	}
	norm := 1.0
	if c.max > 0 {
		norm = float64(c.max-d) / float64(c.max)
	}

	return grid.RGB{G: 0.5*(norm+1.0) - 0.25}, true
}

package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amaze/grid"
)

var (
	// ErrNilRoot is returned if a nil root cell is passed to From.
	ErrNilRoot = errors.New("distance: root cell is nil")
	// ErrUnreachable is returned when a path is requested to a cell the
	// root's link graph never reaches.
	ErrUnreachable = errors.New("distance: goal not reachable from root")
)

// Map holds BFS hop counts from one root cell over the link graph.
// Build one with From; a Map is never mutated after construction.
type Map struct {
	root  *grid.Cell
	dist  map[*grid.Cell]int
	order []*grid.Cell // discovery order, root first
}

// From runs breadth-first search over root's link graph and returns the
// resulting distance map. Cells joined only by lattice adjacency, with
// no carved link, are not entered. Returns ErrNilRoot on a nil root.
// Complexity: O(cells + links) for the reachable component.
func From(root *grid.Cell) (*Map, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	m := &Map{
		root:  root,
		dist:  map[*grid.Cell]int{root: 0},
		order: []*grid.Cell{root},
	}

	frontier := []*grid.Cell{root}
	for len(frontier) > 0 {
		var next []*grid.Cell
		for _, cell := range frontier {
			for _, linked := range cell.Links() {
				if _, seen := m.dist[linked]; seen {
					continue
				}
				m.dist[linked] = m.dist[cell] + 1
				m.order = append(m.order, linked)
				next = append(next, linked)
			}
		}
		frontier = next
	}

	return m, nil
}

// Root returns the cell at distance zero.
func (m *Map) Root() *grid.Cell { return m.root }

// Len reports how many cells the map reached, root included.
func (m *Map) Len() int { return len(m.dist) }

// Distance reports cell's hop count from the root and whether the cell
// was reached at all.
func (m *Map) Distance(cell *grid.Cell) (int, bool) {
	d, ok := m.dist[cell]

	return d, ok
}

// Cells returns the reached cells in discovery order, root first.
func (m *Map) Cells() []*grid.Cell {
	out := make([]*grid.Cell, len(m.order))
	copy(out, m.order)

	return out
}

// Max returns the farthest reached cell and its distance. Among equally
// distant cells the first in discovery order wins.
func (m *Map) Max() (*grid.Cell, int) {
	maxCell, maxDist := m.root, 0
	for _, cell := range m.order {
		if d := m.dist[cell]; d > maxDist {
			maxCell, maxDist = cell, d
		}
	}

	return maxCell, maxDist
}

// PathTo returns a new map restricted to one shortest path from the root
// to goal: exactly one cell per distance value, walking backward from
// goal through any linked neighbor one hop closer (lowest row-major
// first). Returns ErrUnreachable when goal is outside the map.
func (m *Map) PathTo(goal *grid.Cell) (*Map, error) {
	goalDist, ok := m.dist[goal]
	if !ok {
		return nil, fmt.Errorf("%w: no link path to goal", ErrUnreachable)
	}

	// Collect goal → root, then reverse into discovery order.
	cells := make([]*grid.Cell, 0, goalDist+1)
	current := goal
	for current != m.root {
		cells = append(cells, current)
		for _, linked := range current.Links() {
			if d, reached := m.dist[linked]; reached && d == m.dist[current]-1 {
				current = linked
				break
			}
		}
	}
	cells = append(cells, m.root)

	path := &Map{
		root:  m.root,
		dist:  make(map[*grid.Cell]int, len(cells)),
		order: make([]*grid.Cell, 0, len(cells)),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		path.dist[cell] = m.dist[cell]
		path.order = append(path.order, cell)
	}

	return path, nil
}

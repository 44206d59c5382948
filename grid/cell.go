package grid

import (
	"math/rand"
	"sort"
)

// Cell is one node of the grid graph. Its coordinates and neighbor slots
// are fixed at wiring time; only the link set mutates afterwards.
type Cell struct {
	row, column int

	north, east, south, west *Cell

	links map[*Cell]struct{}
}

func newCell(row, column int) *Cell {
	return &Cell{row: row, column: column, links: make(map[*Cell]struct{})}
}

// Row reports the cell's row coordinate.
func (c *Cell) Row() int { return c.row }

// Column reports the cell's column coordinate.
func (c *Cell) Column() int { return c.column }

// North returns the northern lattice neighbor, or nil at the boundary.
func (c *Cell) North() *Cell { return c.north }

// East returns the eastern lattice neighbor, or nil at the boundary.
func (c *Cell) East() *Cell { return c.east }

// South returns the southern lattice neighbor, or nil at the boundary.
func (c *Cell) South() *Cell { return c.south }

// West returns the western lattice neighbor, or nil at the boundary.
func (c *Cell) West() *Cell { return c.west }

// Link carves a passage between c and other. The edge is one logical
// link maintained symmetrically on both cells; linking an already linked
// pair is a no-op. Nil and self links are ignored.
func (c *Cell) Link(other *Cell) {
	if other == nil || other == c {
		return
	}
	c.links[other] = struct{}{}
	other.links[c] = struct{}{}
}

// Unlink removes the passage between c and other from both cells.
func (c *Cell) Unlink(other *Cell) {
	if other == nil {
		return
	}
	delete(c.links, other)
	delete(other.links, c)
}

// LinkedTo reports whether a carved passage joins c and other.
// LinkedTo(nil) is false, so wall checks against absent neighbors
// need no special casing.
func (c *Cell) LinkedTo(other *Cell) bool {
	if other == nil {
		return false
	}
	_, ok := c.links[other]

	return ok
}

// HasLinks reports whether at least one passage has been carved from c.
func (c *Cell) HasLinks() bool { return len(c.links) > 0 }

// Links returns the linked cells in row-major order. The fixed order
// keeps BFS discovery, Max tie-breaks, and path reconstruction
// reproducible for a fixed seed.
func (c *Cell) Links() []*Cell {
	out := make([]*Cell, 0, len(c.links))
	for linked := range c.links {
		out = append(out, linked)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.row != b.row {
			return a.row < b.row
		}
		return a.column < b.column
	})

	return out
}

// Neighbors returns the non-empty lattice neighbor slots in N, E, S, W
// order.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, 0, 4)
	for _, n := range [4]*Cell{c.north, c.east, c.south, c.west} {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// NeighborsWithLinks returns the lattice neighbors that already carry at
// least one link of their own.
func (c *Cell) NeighborsWithLinks() []*Cell {
	return c.filterNeighbors(true)
}

// NeighborsWithoutLinks returns the lattice neighbors that carry no link
// yet. Hunt-and-kill and the backtracker treat these as unvisited.
func (c *Cell) NeighborsWithoutLinks() []*Cell {
	return c.filterNeighbors(false)
}

func (c *Cell) filterNeighbors(linked bool) []*Cell {
	out := make([]*Cell, 0, 4)
	for _, n := range c.Neighbors() {
		if n.HasLinks() == linked {
			out = append(out, n)
		}
	}

	return out
}

// RandomNeighbor returns a uniformly random lattice neighbor, drawing
// from rng (the shared global source when rng is nil).
// Returns ErrNoNeighbors if the cell is isolated, which cannot happen on
// a lattice-connected grid of two or more cells.
func (c *Cell) RandomNeighbor(rng *rand.Rand) (*Cell, error) {
	neighbors := c.Neighbors()
	if len(neighbors) == 0 {
		return nil, ErrNoNeighbors
	}

	return neighbors[intn(rng, len(neighbors))], nil
}

// intn draws from rng, falling back to the global source on nil.
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}

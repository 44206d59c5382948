package grid

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/amaze/mask"
)

// Grid owns a rows×columns arena of cells. A slot is nil when masked off.
// The lattice is wired exactly once, at construction; a carver mutates
// only the link relation afterwards.
type Grid struct {
	rows, columns int
	cells         [][]*Cell
	mask          *mask.Mask // nil for an unmasked grid

	labeler Labeler
	colorer Colorer
}

// New constructs a fully populated rows×columns grid with the lattice
// wired. Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(rows×columns).
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, columns)
	}
	g := &Grid{rows: rows, columns: columns}
	g.prepare(func(int, int) bool { return true })
	g.wire()

	return g, nil
}

// NewMasked constructs a grid over the mask's index space in which
// masked-off slots hold no cell; its Size equals the mask's on count.
// Returns ErrNilMask on a nil mask. Complexity: O(rows×columns).
func NewMasked(m *mask.Mask) (*Grid, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	g := &Grid{rows: m.Rows(), columns: m.Columns(), mask: m}
	g.prepare(m.Get)
	g.wire()

	return g, nil
}

// prepare allocates one cell per present slot.
func (g *Grid) prepare(present func(r, c int) bool) {
	g.cells = make([][]*Cell, g.rows)
	for r := range g.cells {
		g.cells[r] = make([]*Cell, g.columns)
		for c := range g.cells[r] {
			if present(r, c) {
				g.cells[r][c] = newCell(r, c)
			}
		}
	}
}

// wire assigns the four neighbor slots of every cell by coordinate
// offset, clamped to nil at boundaries and masked-off slots. Runs once.
func (g *Grid) wire() {
	for cell := range g.EachCell() {
		r, c := cell.row, cell.column
		cell.north = g.At(r-1, c)
		cell.east = g.At(r, c+1)
		cell.south = g.At(r+1, c)
		cell.west = g.At(r, c-1)
	}
}

// Rows reports the grid height.
func (g *Grid) Rows() int { return g.rows }

// Columns reports the grid width.
func (g *Grid) Columns() int { return g.columns }

// At returns the cell at (r,c), or nil when the location is out of range
// or masked off. At never errors. Complexity: O(1).
func (g *Grid) At(r, c int) *Cell {
	if r < 0 || r >= g.rows || c < 0 || c >= g.columns {
		return nil
	}

	return g.cells[r][c]
}

// Size reports the number of present cells: rows×columns unmasked,
// the mask's on count otherwise.
func (g *Grid) Size() int {
	if g.mask != nil {
		return g.mask.Count()
	}

	return g.rows * g.columns
}

// EachCell yields every present cell in row-major order. The sequence is
// lazy and restartable.
func (g *Grid) EachCell() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, row := range g.cells {
			for _, cell := range row {
				if cell == nil {
					continue
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// EachRow yields each row's slots top to bottom. Masked-off slots appear
// as nil entries so renderers can account for every column. The yielded
// slice is shared; callers must not retain or mutate it.
func (g *Grid) EachRow() iter.Seq[[]*Cell] {
	return func(yield func([]*Cell) bool) {
		for _, row := range g.cells {
			if !yield(row) {
				return
			}
		}
	}
}

// RandomCell returns a uniformly random present cell, drawing from rng
// (the shared global source when rng is nil). On a masked grid the draw
// delegates to the mask's on-cell sampler to preserve uniformity; an
// all-off mask surfaces mask.ErrNoOnCells.
func (g *Grid) RandomCell(rng *rand.Rand) (*Cell, error) {
	if g.mask != nil {
		r, c, err := g.mask.RandomOn(rng)
		if err != nil {
			return nil, err
		}
		return g.cells[r][c], nil
	}

	return g.cells[intn(rng, g.rows)][intn(rng, g.columns)], nil
}

// DeadEnds returns the cells with exactly one link, in row-major order.
func (g *Grid) DeadEnds() []*Cell {
	var out []*Cell
	for cell := range g.EachCell() {
		if len(cell.links) == 1 {
			out = append(out, cell)
		}
	}

	return out
}

// SetLabeler installs the interior-label strategy used by String and by
// external renderers. A nil labeler restores the blank default.
func (g *Grid) SetLabeler(l Labeler) { g.labeler = l }

// SetColorer installs the background-color strategy consumed by external
// renderers. A nil colorer restores the colorless default.
func (g *Grid) SetColorer(c Colorer) { g.colorer = c }

// CellLabel returns the interior label for cell, or "" without a labeler.
func (g *Grid) CellLabel(cell *Cell) string {
	if g.labeler == nil {
		return ""
	}

	return g.labeler.Label(cell)
}

// CellColor returns the background color for cell and whether one is set.
func (g *Grid) CellColor(cell *Cell) (RGB, bool) {
	if g.colorer == nil {
		return RGB{}, false
	}

	return g.colorer.Color(cell)
}

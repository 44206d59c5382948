package mask

import (
	"fmt"
	"math/rand"
	"strings"
)

// Mask is a rows×columns boolean occupancy bitmap, independent of any grid.
// Dimensions are fixed at construction; only cell values mutate.
type Mask struct {
	rows, columns int
	on            [][]bool
}

// New returns a mask of the given dimensions with every cell on.
// Returns ErrEmptyMask if rows or columns is below 1.
// Complexity: O(rows×columns).
func New(rows, columns int) (*Mask, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyMask, rows, columns)
	}
	on := make([][]bool, rows)
	for r := range on {
		on[r] = make([]bool, columns)
		for c := range on[r] {
			on[r][c] = true
		}
	}

	return &Mask{rows: rows, columns: columns, on: on}, nil
}

// Rows reports the mask height.
func (m *Mask) Rows() int { return m.rows }

// Columns reports the mask width.
func (m *Mask) Columns() int { return m.columns }

// Get reports whether cell (r,c) is on. Out-of-range locations are off;
// Get never errors. Complexity: O(1).
func (m *Mask) Get(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.columns {
		return false
	}
	return m.on[r][c]
}

// Set switches cell (r,c) on or off.
// Returns ErrIndexOutOfRange for locations outside the mask.
func (m *Mask) Set(r, c int, on bool) error {
	if r < 0 || r >= m.rows {
		return fmt.Errorf("%w: row %d", ErrIndexOutOfRange, r)
	}
	if c < 0 || c >= m.columns {
		return fmt.Errorf("%w: column %d", ErrIndexOutOfRange, c)
	}
	m.on[r][c] = on

	return nil
}

// Count reports the number of on cells. Complexity: O(rows×columns).
func (m *Mask) Count() int {
	n := 0
	for _, row := range m.on {
		for _, v := range row {
			if v {
				n++
			}
		}
	}

	return n
}

// RandomOn returns the location of a uniformly random on cell, drawing
// from rng (the shared global source when rng is nil).
// Returns ErrNoOnCells when every cell is off.
// Deterministic for a fixed seeded rng: the k-th on cell in row-major
// order is selected, with k uniform over the on count.
func (m *Mask) RandomOn(rng *rand.Rand) (r, c int, err error) {
	count := m.Count()
	if count == 0 {
		return 0, 0, ErrNoOnCells
	}
	k := intn(rng, count)
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.columns; c++ {
			if !m.on[r][c] {
				continue
			}
			if k == 0 {
				return r, c, nil
			}
			k--
		}
	}
	// unreachable: k < count by construction
	return 0, 0, ErrNoOnCells
}

// String renders the bitmap one row per line, '.' for on and 'o' for off.
func (m *Mask) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	for r, row := range m.on {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				b.WriteByte('.')
			} else {
				b.WriteByte('o')
			}
		}
	}

	return b.String()
}

// intn draws from rng, falling back to the global source on nil.
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}

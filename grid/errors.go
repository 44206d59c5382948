package grid

import "errors"

var (
	// ErrEmptyGrid indicates requested dimensions below 1×1.
	ErrEmptyGrid = errors.New("grid: dimensions must be at least 1×1")
	// ErrNilMask indicates NewMasked received a nil mask.
	ErrNilMask = errors.New("grid: mask is nil")
	// ErrNoNeighbors indicates a random-neighbor request on a cell with
	// no lattice neighbors at all.
	ErrNoNeighbors = errors.New("grid: cell has no neighbors")
)

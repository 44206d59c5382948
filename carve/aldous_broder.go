package carve

import (
	"fmt"

	"github.com/katalvlaran/amaze/grid"
)

// AldousBroder carves by unbiased random walk: from a random cell, keep
// stepping to a uniformly random lattice neighbor, linking each neighbor
// the first time the walk reaches it unvisited. The result is a uniform
// random spanning tree, paid for with an expected running time that can
// be quadratic or worse in cell count; impatient callers should set
// WithMaxSteps and handle ErrStepLimit.
func AldousBroder(g *grid.Grid, opts ...Option) error {
	o, err := buildOptions(g, opts)
	if err != nil {
		return err
	}
	if err = requireConnected(g); err != nil {
		return err
	}
	if g.Size() == 0 {
		return nil
	}

	cell, err := g.RandomCell(o.rng)
	if err != nil {
		return err
	}

	unvisited := g.Size() - 1
	steps := 0
	for unvisited > 0 {
		if o.maxSteps > 0 && steps >= o.maxSteps {
			return fmt.Errorf("%w: %d cells still unvisited after %d steps",
				ErrStepLimit, unvisited, steps)
		}
		steps++

		neighbor, nErr := cell.RandomNeighbor(o.rng)
		if nErr != nil {
			return nErr
		}
		if !neighbor.HasLinks() {
			cell.Link(neighbor)
			unvisited--
		}
		cell = neighbor
	}

	return nil
}

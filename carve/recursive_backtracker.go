package carve

import (
	"fmt"

	"github.com/katalvlaran/amaze/grid"
)

// RecursiveBacktracker carves depth-first with an explicit stack: while
// the top cell has an unlinked lattice neighbor, link to a random one
// and push it; otherwise pop. WithStart pins the opening cell.
// Complexity: O(size) links, O(size) worst-case stack depth; yields
// long winding passages with few short dead ends.
func RecursiveBacktracker(g *grid.Grid, opts ...Option) error {
	o, err := buildOptions(g, opts)
	if err != nil {
		return err
	}
	if g.Size() == 0 {
		return nil
	}

	start := o.start
	if start == nil {
		if start, err = g.RandomCell(o.rng); err != nil {
			return err
		}
	} else if g.At(start.Row(), start.Column()) != start {
		return fmt.Errorf("%w: start cell belongs to another grid", ErrOptionViolation)
	}

	stack := []*grid.Cell{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		fresh := current.NeighborsWithoutLinks()
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		neighbor := fresh[o.rng.Intn(len(fresh))]
		current.Link(neighbor)
		stack = append(stack, neighbor)
	}

	return nil
}

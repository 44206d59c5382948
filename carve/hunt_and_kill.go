package carve

import (
	"fmt"

	"github.com/katalvlaran/amaze/grid"
)

// HuntAndKill alternates two phases: "kill" random-walks from the
// current cell into unlinked neighbors, linking as it goes, until stuck;
// "hunt" then scans all cells row-major for the first unlinked cell
// bordering the carved region, links it to a random carved neighbor, and
// resumes walking there. Finishes when a hunt comes up empty.
// Complexity: O(size) kill steps, worst-case O(size²) with hunt scans;
// produces fewer dead ends than the backtracker family.
func HuntAndKill(g *grid.Grid, opts ...Option) error {
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

	current, err := g.RandomCell(o.rng)
	if err != nil {
		return err
	}

	steps := 0
	for current != nil {
		if o.maxSteps > 0 && steps >= o.maxSteps {
			return fmt.Errorf("%w: carve incomplete after %d steps", ErrStepLimit, steps)
		}
		steps++

		if fresh := current.NeighborsWithoutLinks(); len(fresh) > 0 {
			// Kill: keep walking into unvisited territory.
			neighbor := fresh[o.rng.Intn(len(fresh))]
			current.Link(neighbor)
			current = neighbor
			continue
		}

		// Hunt: first unlinked cell adjacent to the carved region.
		current = nil
		for cell := range g.EachCell() {
			carved := cell.NeighborsWithLinks()
			if !cell.HasLinks() && len(carved) > 0 {
				cell.Link(carved[o.rng.Intn(len(carved))])
				current = cell
				break
			}
		}
	}

	return nil
}

package carve

import (
	"fmt"

	"github.com/katalvlaran/amaze/grid"
)

// Wilsons carves by loop-erased random walk. One arbitrary cell seeds
// the tree; then, while unvisited cells remain, a walk starts at a
// random unvisited cell and wanders until it touches the tree, erasing
// any loop it closes along the way, and the surviving path is committed.
// The result is a uniform random spanning tree, without Aldous–Broder's
// pathological tail on most shapes.
func Wilsons(g *grid.Grid, opts ...Option) error {
	o, err := buildOptions(g, opts)
	if err != nil {
		return err
	}
	if err = requireConnected(g); err != nil {
		return err
	}

	var unvisited []*grid.Cell
	for cell := range g.EachCell() {
		unvisited = append(unvisited, cell)
	}
	if len(unvisited) == 0 {
		return nil
	}

	// slot tracks each unvisited cell's index for O(1) swap-removal.
	slot := make(map[*grid.Cell]int, len(unvisited))
	for i, cell := range unvisited {
		slot[cell] = i
	}
	remove := func(cell *grid.Cell) {
		i, last := slot[cell], len(unvisited)-1
		unvisited[i] = unvisited[last]
		slot[unvisited[i]] = i
		unvisited = unvisited[:last]
		delete(slot, cell)
	}

	// Seed the tree with one random cell.
	remove(unvisited[o.rng.Intn(len(unvisited))])

	steps := 0
	for len(unvisited) > 0 {
		cell := unvisited[o.rng.Intn(len(unvisited))]
		path := []*grid.Cell{cell}
		visited := map[*grid.Cell]int{cell: 0} // cell → position in path

		for {
			if _, pending := slot[cell]; !pending {
				break // walk reached the tree
			}
			if o.maxSteps > 0 && steps >= o.maxSteps {
				return fmt.Errorf("%w: %d cells still unvisited after %d steps",
					ErrStepLimit, len(unvisited), steps)
			}
			steps++

			next, nErr := cell.RandomNeighbor(o.rng)
			if nErr != nil {
				return nErr
			}
			if at, looped := visited[next]; looped {
				// Erase the loop: truncate the path back to next.
				for _, trimmed := range path[at+1:] {
					delete(visited, trimmed)
				}
				path = path[:at+1]
			} else {
				visited[next] = len(path)
				path = append(path, next)
			}
			cell = next
		}

		// Commit the surviving path into the tree.
		for i := 0; i+1 < len(path); i++ {
			path[i].Link(path[i+1])
			remove(path[i])
		}
	}

	return nil
}

package carve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/amaze/grid"
)

// Func is the shared shape of every maze generator: carve the grid's
// link relation into a spanning tree over its present cells.
type Func func(g *grid.Grid, opts ...Option) error

// algorithms is the static name→generator table, built once at process
// start. The six snake_case names are the registry's public contract.
var algorithms = map[string]Func{
	"binary_tree":           BinaryTree,
	"sidewinder":            Sidewinder,
	"aldous_broder":         AldousBroder,
	"wilsons":               Wilsons,
	"hunt_and_kill":         HuntAndKill,
	"recursive_backtracker": RecursiveBacktracker,
}

// Lookup resolves an algorithm by its registry name.
func Lookup(name string) (Func, bool) {
	fn, ok := algorithms[name]

	return fn, ok
}

// Algorithms lists the registry names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// requireConnected verifies the present cells form a single
// lattice-connected component, returning ErrDisconnectedRegion
// otherwise. The walk-based algorithms run it before carving, since
// they never terminate on a split region. Complexity: O(size).
func requireConnected(g *grid.Grid) error {
	var start *grid.Cell
	total := 0
	for cell := range g.EachCell() {
		if start == nil {
			start = cell
		}
		total++
	}
	if total <= 1 {
		return nil
	}

	seen := map[*grid.Cell]struct{}{start: {}}
	queue := []*grid.Cell{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, n := range cell.Neighbors() {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	if len(seen) != total {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrDisconnectedRegion, len(seen), total)
	}

	return nil
}

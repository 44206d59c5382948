package carve

import "github.com/katalvlaran/amaze/grid"

// BinaryTree links every cell to a uniformly random choice between its
// north and east lattice neighbors, when either exists. The north row
// and east column collapse into two long corridors, so the distribution
// is far from uniform over spanning trees. The north/east escape route
// assumes a full rectangle; on masked shapes cells can be stranded.
// Complexity: O(size), no auxiliary state.
func BinaryTree(g *grid.Grid, opts ...Option) error {
	o, err := buildOptions(g, opts)
	if err != nil {
		return err
	}

	for cell := range g.EachCell() {
		candidates := make([]*grid.Cell, 0, 2)
		if n := cell.North(); n != nil {
			candidates = append(candidates, n)
		}
		if e := cell.East(); e != nil {
			candidates = append(candidates, e)
		}
		if len(candidates) > 0 {
			cell.Link(candidates[o.rng.Intn(len(candidates))])
		}
	}

	return nil
}

package carve

import "github.com/katalvlaran/amaze/grid"

// Sidewinder processes rows top to bottom, accumulating a left-to-right
// run of cells. At each cell a coin decides whether to extend the run
// east or close it by linking one random run member north — forced
// closed at the east edge, forced open while no north neighbor exists
// (the top row becomes one corridor). Runs escape northward, so like
// BinaryTree this assumes a full rectangle; masked holes can strand a
// run whose chosen member has no north neighbor.
// Complexity: O(size); only the current run is retained.
func Sidewinder(g *grid.Grid, opts ...Option) error {
	o, err := buildOptions(g, opts)
	if err != nil {
		return err
	}

	var run []*grid.Cell
	for row := range g.EachRow() {
		run = run[:0]
		for _, cell := range row {
			if cell == nil {
				continue
			}
			run = append(run, cell)

			atEastEdge := cell.East() == nil
			hasNorth := cell.North() != nil
			if atEastEdge || (hasNorth && o.rng.Intn(2) == 1) {
				member := run[o.rng.Intn(len(run))]
				run = run[:0]
				if n := member.North(); n != nil {
					member.Link(n)
				}
			} else {
				cell.Link(cell.East())
			}
		}
	}

	return nil
}

package carve_test

import (
	"fmt"

	"github.com/katalvlaran/amaze/carve"
	"github.com/katalvlaran/amaze/distance"
	"github.com/katalvlaran/amaze/grid"
)

// ExampleLookup selects an algorithm by its registry name and carves a
// reproducible maze.
func ExampleLookup() {
	fn, ok := carve.Lookup("recursive_backtracker")
	if !ok {
		fmt.Println("unknown algorithm")
		return
	}

	g, _ := grid.New(8, 8)
	if err := fn(g, carve.WithSeed(2026)); err != nil {
		fmt.Println("error:", err)
		return
	}

	// A perfect maze: exactly size-1 passages, every cell reachable.
	links := 0
	for cell := range g.EachCell() {
		links += len(cell.Links())
	}
	m, _ := distance.From(g.At(0, 0))

	fmt.Println("links:", links/2)
	fmt.Println("reachable:", m.Len())
	// Output:
	// links: 63
	// reachable: 64
}

// ExampleAlgorithms compares dead-end texture across the six carvers by
// averaging over repeated runs, the classic way to see each algorithm's
// bias. Counts vary run to run, so none are printed here.
func ExampleAlgorithms() {
	const tries = 10
	g, _ := grid.New(20, 20)

	for _, name := range carve.Algorithms() {
		fn, _ := carve.Lookup(name)
		total := 0
		for i := 0; i < tries; i++ {
			fresh, _ := grid.New(g.Rows(), g.Columns())
			if err := fn(fresh, carve.WithSeed(int64(i))); err != nil {
				fmt.Println("error:", err)
				return
			}
			total += len(fresh.DeadEnds())
		}
		_ = total / tries // average dead ends for this algorithm
	}

	fmt.Println("algorithms compared:", len(carve.Algorithms()))
	// Output:
	// algorithms compared: 6
}

package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/amaze/grid"
	"github.com/katalvlaran/amaze/mask"
)

// snake carves a 3×3 grid into one path winding row-major:
// (0,0)-(0,1)-(0,2)-(1,2)-(1,1)-(1,0)-(2,0)-(2,1)-(2,2).
func snake(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	order := [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 1}, {1, 0}, {2, 0}, {2, 1}, {2, 2},
	}
	for i := 0; i+1 < len(order); i++ {
		g.At(order[i][0], order[i][1]).Link(g.At(order[i+1][0], order[i+1][1]))
	}
	return g
}

// TestString_Unlinked renders all walls.
func TestString_Unlinked(t *testing.T) {
	g, _ := grid.New(1, 2)
	want := strings.Join([]string{
		"+---+---+",
		"|   |   |",
		"+---+---+",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}

// TestString_Snake pins the full preview of a carved maze.
func TestString_Snake(t *testing.T) {
	g := snake(t)
	want := strings.Join([]string{
		"+---+---+---+",
		"|           |",
		"+---+---+   +",
		"|           |",
		"+   +---+---+",
		"|           |",
		"+---+---+---+",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}

// TestString_MaskedPlaceholder renders absent slots as wall-only cells.
func TestString_MaskedPlaceholder(t *testing.T) {
	m, _ := mask.Decode("2w2h1o3.!") // (0,0) off
	g, _ := grid.NewMasked(m)
	g.At(0, 1).Link(g.At(1, 1))
	g.At(1, 0).Link(g.At(1, 1))

	want := strings.Join([]string{
		"+---+---+",
		"|   |   |",
		"+---+   +",
		"|       |",
		"+---+---+",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}

// TestString_Labels pads interiors to three characters.
func TestString_Labels(t *testing.T) {
	g, _ := grid.New(1, 4)
	labels := map[*grid.Cell]string{
		g.At(0, 0): "",
		g.At(0, 1): "a",
		g.At(0, 2): "ab",
		g.At(0, 3): "abcd",
	}
	g.SetLabeler(mapLabeler(labels))

	want := strings.Join([]string{
		"+---+---+---+---+",
		"|   | a | ab|abc|",
		"+---+---+---+---+",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}

// mapLabeler labels cells from a fixed table.
type mapLabeler map[*grid.Cell]string

func (m mapLabeler) Label(c *grid.Cell) string { return m[c] }

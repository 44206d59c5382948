package mask_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/amaze/mask"
)

// TestNew_Errors verifies that degenerate dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := mask.New(tc.rows, tc.cols); !errors.Is(err, mask.ErrEmptyMask) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyMask", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_AllOn checks that a fresh mask has every cell on.
func TestNew_AllOn(t *testing.T) {
	m, err := mask.New(3, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := m.Rows(), 3; got != want {
		t.Errorf("Rows = %d; want %d", got, want)
	}
	if got, want := m.Columns(), 4; got != want {
		t.Errorf("Columns = %d; want %d", got, want)
	}
	if got, want := m.Count(), 12; got != want {
		t.Errorf("Count = %d; want %d", got, want)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if !m.Get(r, c) {
				t.Errorf("Get(%d,%d) = false; want true", r, c)
			}
		}
	}
}

// TestGet_OutOfRange ensures reads outside the bounds are off, not errors.
func TestGet_OutOfRange(t *testing.T) {
	m, _ := mask.New(2, 2)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		if m.Get(rc[0], rc[1]) {
			t.Errorf("Get(%d,%d) = true; want false", rc[0], rc[1])
		}
	}
}

// TestSet verifies in-range writes and strict out-of-range failures.
func TestSet(t *testing.T) {
	m, _ := mask.New(2, 3)
	if err := m.Set(1, 2, false); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if m.Get(1, 2) {
		t.Error("Get(1,2) = true after Set(false)")
	}
	if got, want := m.Count(), 5; got != want {
		t.Errorf("Count = %d; want %d", got, want)
	}

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		if err := m.Set(rc[0], rc[1], true); !errors.Is(err, mask.ErrIndexOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v; want ErrIndexOutOfRange", rc[0], rc[1], err)
		}
	}
}

// TestRandomOn_SingleCandidate pins the draw when only one cell is on.
func TestRandomOn_SingleCandidate(t *testing.T) {
	m, _ := mask.New(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r != 1 || c != 2 {
				m.Set(r, c, false)
			}
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		r, c, err := m.RandomOn(rng)
		if err != nil {
			t.Fatalf("RandomOn error: %v", err)
		}
		if r != 1 || c != 2 {
			t.Fatalf("RandomOn = (%d,%d); want (1,2)", r, c)
		}
	}
}

// TestRandomOn_AllOff verifies the all-off failure mode.
func TestRandomOn_AllOff(t *testing.T) {
	m, _ := mask.New(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			m.Set(r, c, false)
		}
	}
	if _, _, err := m.RandomOn(rand.New(rand.NewSource(1))); !errors.Is(err, mask.ErrNoOnCells) {
		t.Errorf("RandomOn error = %v; want ErrNoOnCells", err)
	}
}

// TestRandomOn_OnlyOnCells checks that off cells are never drawn.
func TestRandomOn_OnlyOnCells(t *testing.T) {
	m, _ := mask.New(4, 4)
	m.Set(0, 0, false)
	m.Set(3, 3, false)
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		r, c, err := m.RandomOn(rng)
		if err != nil {
			t.Fatalf("RandomOn error: %v", err)
		}
		if !m.Get(r, c) {
			t.Fatalf("RandomOn drew off cell (%d,%d)", r, c)
		}
	}
}

// TestString renders the dot/o dump.
func TestString(t *testing.T) {
	m, _ := mask.New(2, 3)
	m.Set(0, 1, false)
	m.Set(1, 0, false)
	if got, want := m.String(), ".o.\no.."; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
}

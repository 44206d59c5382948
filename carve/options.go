package carve

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/amaze/grid"
)

// Option configures a carve via functional arguments. An invalid value
// is recorded internally and surfaced as ErrOptionViolation when the
// algorithm is invoked.
type Option func(*Options)

// Options holds the tunable parameters shared by all six algorithms.
type Options struct {
	// rng drives every random choice. Defaults to a time-seeded source.
	rng *rand.Rand

	// maxSteps, if > 0, caps the number of random-walk steps taken by
	// the walk-based algorithms. 0 disables the cap.
	maxSteps int

	// start pins the opening cell for RecursiveBacktracker. nil means a
	// random present cell. Other algorithms ignore it.
	start *grid.Cell

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a fresh time-seeded source, no
// step cap, and a random start cell.
func DefaultOptions() Options {
	return Options{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		maxSteps: 0,
		start:    nil,
		err:      nil,
	}
}

// WithRand drives all random choices from r. Prefer WithSeed when only
// reproducibility is needed. A nil r is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.rng = r
	}
}

// WithSeed creates a deterministic source from seed, making the carve
// reproducible call to call.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxSteps caps the random-walk step count of AldousBroder, Wilsons,
// and HuntAndKill, exhausting to ErrStepLimit.
//
//	n > 0: cap at n steps
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxSteps = n
	}
}

// WithStart pins RecursiveBacktracker's opening cell. nil keeps the
// random default. Algorithms without a start concept ignore it.
func WithStart(c *grid.Cell) Option {
	return func(o *Options) {
		o.start = c
	}
}

// buildOptions folds opts over the defaults and validates the grid.
func buildOptions(g *grid.Grid, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGridNil
	}

	return o, nil
}

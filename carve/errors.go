package carve

import "errors"

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("carve: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("carve: invalid option supplied")
	// ErrDisconnectedRegion is returned by the walk-based algorithms when
	// the present cells do not form one lattice-connected component.
	ErrDisconnectedRegion = errors.New("carve: masked region is not lattice-connected")
	// ErrStepLimit is returned when a WithMaxSteps cap runs out before
	// the carve completes.
	ErrStepLimit = errors.New("carve: step limit exhausted")
)

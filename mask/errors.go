package mask

import "errors"

var (
	// ErrEmptyMask indicates requested dimensions below 1×1.
	ErrEmptyMask = errors.New("mask: dimensions must be at least 1×1")
	// ErrInvalidCharacter indicates an unexpected symbol in RLE input.
	ErrInvalidCharacter = errors.New("mask: invalid character in RLE input")
	// ErrDuplicateDimension indicates width or height was declared twice.
	ErrDuplicateDimension = errors.New("mask: dimension already specified")
	// ErrDimensionsNotSet indicates an occupancy command arrived before
	// both width and height were known.
	ErrDimensionsNotSet = errors.New("mask: dimensions not yet specified")
	// ErrIndexOutOfRange indicates a cell write outside the mask bounds.
	ErrIndexOutOfRange = errors.New("mask: index out of range")
	// ErrNoOnCells indicates a random sample was requested with no cell on.
	ErrNoOnCells = errors.New("mask: no locations on")
)

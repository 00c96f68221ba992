package hypercube

import "errors"

var (
	// Width or dimensions out of range, or the board would exceed the Limits
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Wrong number of coordinates or a coordinate outside [0, width)
	ErrInvalidPosition = errors.New("invalid position")

	// Returned by Mark only on boards created WithStrictOccupancy
	ErrOccupiedCell = errors.New("cell already occupied")

	// The board has more than 2 dimensions and has no row-major grid
	ErrNotRenderable = errors.New("board cannot be rendered as a grid")
)

// Package hexgeom implements the axial-coordinate hex grid geometry that
// underlies pattern search: directions, relative angles, canonical segment
// identity, and the integer/quasi-area bounding primitives used to prune
// the search space.
package hexgeom

import "errors"

// Sentinel errors for hexgeom operations.
var (
	// ErrInvalidChar indicates a pattern string contained a character
	// outside the six recognized angle letters.
	ErrInvalidChar = errors.New("hexgeom: invalid pattern character")

	// ErrInvalidAngle indicates an Angle with no accumulator mapping: Back,
	// or a value outside [Forward, Left].
	ErrInvalidAngle = errors.New("hexgeom: invalid angle")
)

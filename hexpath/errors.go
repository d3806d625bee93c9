// Package hexpath implements Path, the immutable-by-extension walk that a
// search builds one Angle at a time, together with the PathLimits predicate
// bundle that governs which extensions are legal.
package hexpath

import "errors"

// Sentinel errors surfaced by Path.Extend.
var (
	// ErrSegmentAlreadyExists indicates the extension would re-traverse an
	// edge already present in the path (direction-agnostic).
	ErrSegmentAlreadyExists = errors.New("hexpath: segment already exists")

	// ErrOutOfLimits indicates the extension violates PathLimits (target,
	// fraction policy, or bounds) or the caller's veto predicate.
	ErrOutOfLimits = errors.New("hexpath: extension out of limits")
)

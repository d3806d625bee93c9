// Package search implements the two path-generation strategies —
// BeamSearch and AStarSearch — together with the shared-state primitives
// (SharedBest, Frontier) that the pool- and split-parallel variants in
// workerpool and splitparallel build on top of.
package search

import "errors"

// ErrNoPatternFound is the top-level failure a search reports when it
// exhausts its paths/frontier without ever reaching the target value.
var ErrNoPatternFound = errors.New("search: no pattern found for target")

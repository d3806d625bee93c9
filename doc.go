// Package hexpattern searches for hex-grid "number patterns": walks on an
// axial hex grid whose turning angles fold into an accumulator value, used
// to find a minimal-footprint pattern that evaluates to a given target.
//
// What is hexpattern?
//
//	A small, dependency-light library that brings together:
//
//	  - Hex geometry: axial coordinates, directions, relative angles,
//	    and direction-agnostic segment identity (hexgeom)
//	  - Path construction: an immutable-by-extension walk with the
//	    four cross-checked invariants a search relies on (hexpath)
//	  - Two complementary search strategies - beam search and A*,
//	    each with a sequential, worker-pool, and split-parallel form
//	    (search, workerpool, splitparallel)
//
// Why choose hexpattern?
//
//   - Exact arithmetic      - accumulator values are math/big.Rat under the
//     hood, so no floating-point drift across thousands of extensions
//   - Pluggable parallelism - the same expand/trim/update and
//     frontier/heuristic/prune cycles run sequentially, pool-parallel,
//     or split-parallel behind one Options-driven entry point
//   - Small surface         - five Options constructors, one Generate call
//
// Under the hood, everything is organized under five subpackages:
//
//	hexgeom/       - coordinates, directions, angles, segments, bounds
//	hexpath/       - Path, PathLimits, and the extension algorithm
//	search/        - BeamSearch, AStarSearch, SharedBest, Frontier
//	workerpool/    - fixed-size goroutine pool with ordered results
//	splitparallel/ - divide-and-conquer coordinator for the split variants
//
// Quick example:
//
//	pattern, err := hexpattern.Generate(5, hexpattern.Beam())
//	// pattern.StartingDirection == hexgeom.SouthEast
//	// pattern.Pattern == "q"
//
//	go get github.com/hexpattern/hexpattern
package hexpattern

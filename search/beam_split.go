package search

import (
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/splitparallel"
)

// drainEveryOther removes every other element of paths (starting with
// index 1) and returns them, leaving paths holding the rest. Since paths
// is already sorted by the triple-criterion after TrimToBest, alternating
// elements splits the work into two comparably strong halves rather than
// handing the child generation's worst half.
func drainEveryOther(paths []*hexpath.Path) (kept, drained []*hexpath.Path) {
	kept = paths[:0:0]
	drained = make([]*hexpath.Path, 0, len(paths)/2)
	for i, p := range paths {
		if i%2 == 0 {
			kept = append(kept, p)
		} else {
			drained = append(drained, p)
		}
	}
	return kept, drained
}

// Size implements splitparallel.Worker.
func (b *Beam) Size() int { return len(b.Paths) }

// Step implements splitparallel.Worker: one expand/trim/update cycle.
func (b *Beam) Step() {
	b.Expand()
	b.TrimToBest()
	b.UpdateSmallest()
}

// SplitOff implements splitparallel.Worker: the child takes every other
// path from the (already sorted) beam, leaving the parent the rest.
func (b *Beam) SplitOff() splitparallel.Worker {
	kept, drained := drainEveryOther(b.Paths)
	b.Paths = kept
	child := &Beam{
		Paths:     drained,
		Limits:    b.Limits,
		Carryover: b.Carryover,
		Best:      b.Best,
	}
	return child
}

var _ splitparallel.Worker = (*Beam)(nil)

// RunSplit runs b across numThreads goroutines, recursively splitting off
// sibling goroutines as work permits, and returns the best path found.
func (b *Beam) RunSplit(numThreads int) *hexpath.Path {
	if b.Limits.Target.Sign() == 0 {
		return b.Paths[0]
	}
	splitparallel.NewCoordinator(numThreads).Run(b)
	return b.Best.Get()
}

package search

import (
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/workerpool"
)

// RunPool runs b's expand/trim/update cycle the same way Run does, but
// distributes each cycle's per-path expansion across a fixed workerpool.Pool
// of numThreads goroutines instead of a single loop.
func (b *Beam) RunPool(numThreads int) *hexpath.Path {
	if b.Limits.Target.Sign() == 0 {
		return b.Paths[0]
	}

	pool := workerpool.New(numThreads, b.ExpandOne)
	for len(b.Paths) > 0 {
		b.ExpandWith(func(paths []*hexpath.Path, _ func(*hexpath.Path) []*hexpath.Path) [][]*hexpath.Path {
			return pool.Map(paths)
		})
		b.TrimToBest()
		b.UpdateSmallest()
	}
	return b.Best.Get()
}

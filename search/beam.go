package search

import (
	"sort"

	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/internal/xlog"
)

// Beam holds the mutable state of a single beam search run: the current
// generation of candidate paths, the limits they are extended under, the
// carryover width K, and the best path found so far. Beam, BeamPool, and
// BeamSplit all share this same expand/trim/update cycle; the pool and
// split variants differ only in how Expand's per-path work is distributed.
type Beam struct {
	Paths     []*hexpath.Path
	Limits    hexpath.Limits
	Carryover int
	Best      *SharedBest
}

// NewBeam seeds a Beam with the zero Path for sign, ready to run.
func NewBeam(sign hexpath.Sign, limits hexpath.Limits, carryover int, best *SharedBest) *Beam {
	return &Beam{
		Paths:     []*hexpath.Path{hexpath.Zero(sign)},
		Limits:    limits,
		Carryover: carryover,
		Best:      best,
	}
}

// angles excludes Back, which always fails at the accumulator step.
var angles = []hexgeom.Angle{hexgeom.Forward, hexgeom.Right, hexgeom.RightBack, hexgeom.LeftBack, hexgeom.Left}

// veto is the standard extension veto every strategy in this package uses:
// a candidate only survives if it would still be an improvement over the
// best path found so far (or no best exists yet).
func veto(best *SharedBest) func(*hexpath.Path) bool {
	return func(p *hexpath.Path) bool {
		return p.ShouldReplace(best.Get())
	}
}

// ExpandOne returns every legal one-angle extension of a single path,
// dropping extensions that fail for any reason. It is the unit of work
// both the sequential Expand and the pool-parallel variant apply per path;
// workerpool.Pool.Map distributes exactly this closure across goroutines
// for the BeamPool variant.
func (b *Beam) ExpandOne(p *hexpath.Path) []*hexpath.Path {
	out := make([]*hexpath.Path, 0, len(angles))
	for _, a := range angles {
		child, err := p.Extend(a, b.Limits, veto(b.Best))
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// Expand replaces b.Paths with every legal one-angle extension of every
// current path, dropping extensions that fail for any reason.
func (b *Beam) Expand() {
	next := make([]*hexpath.Path, 0, len(b.Paths)*len(angles))
	for _, p := range b.Paths {
		next = append(next, b.ExpandOne(p)...)
	}
	b.Paths = next
}

// ExpandWith replaces b.Paths with the flattened results of calling
// mapFn(b.Paths, b.ExpandOne) — mapFn is expected to apply ExpandOne to
// every path and return per-path result slices. RunPool passes a
// workerpool.Pool's Map here; the split variant calls Expand directly.
func (b *Beam) ExpandWith(mapFn func([]*hexpath.Path, func(*hexpath.Path) []*hexpath.Path) [][]*hexpath.Path) {
	grouped := mapFn(b.Paths, b.ExpandOne)
	next := make([]*hexpath.Path, 0, len(b.Paths)*len(angles))
	for _, g := range grouped {
		next = append(next, g...)
	}
	b.Paths = next
}

// TrimToBest applies the three stable sort-and-cap filters (by length, then
// by distance-to-target, then by num_points), keeping at most Carryover
// survivors from each pass for a beam of at most 3*Carryover.
func (b *Beam) TrimToBest() {
	rest := b.Paths
	out := make([]*hexpath.Path, 0, 3*b.Carryover)

	out, rest = takeSortedPrefix(out, rest, b.Carryover, func(p *hexpath.Path) int { return p.Len() })
	out, rest = takeSortedPrefix(out, rest, b.Carryover, func(p *hexpath.Path) hexgeom.Rational {
		return p.Value().Sub(b.Limits.Target)
	})
	out, rest = takeSortedPrefix(out, rest, b.Carryover, func(p *hexpath.Path) int { return p.NumPoints() })
	_ = rest

	b.Paths = out
}

// takeSortedPrefix stably sorts rest by key ascending, appends the first n
// to out, and returns the updated out and the remainder.
func takeSortedPrefix[K sortKey](out, rest []*hexpath.Path, n int, key func(*hexpath.Path) K) ([]*hexpath.Path, []*hexpath.Path) {
	sorted := append([]*hexpath.Path{}, rest...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(key(sorted[i]), key(sorted[j]))
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return append(out, sorted[:n]...), sorted[n:]
}

// sortKey is the constraint on keys takeSortedPrefix can order: plain ints
// and the absolute-distance Rational both need an ordering defined below.
type sortKey interface {
	int | hexgeom.Rational
}

func less[K sortKey](a, b K) bool {
	switch va := any(a).(type) {
	case int:
		return va < any(b).(int)
	case hexgeom.Rational:
		return va.Abs().Cmp(any(b).(hexgeom.Rational).Abs()) < 0
	default:
		return false
	}
}

// UpdateSmallest removes every path whose value equals the target from the
// beam, installing the best of them (by quasi-area) into Best.
func (b *Beam) UpdateSmallest() {
	remaining := b.Paths[:0:0]
	var bestMatch *hexpath.Path
	for _, p := range b.Paths {
		if p.Value().Cmp(b.Limits.Target) == 0 {
			if bestMatch == nil || p.ShouldReplace(bestMatch) {
				bestMatch = p
			}
			continue
		}
		remaining = append(remaining, p)
	}
	b.Paths = remaining
	if bestMatch != nil {
		b.Best.TryInstall(bestMatch)
	}
}

// Run executes the full Beam search loop and returns the best path found,
// or nil if none ever matched the target.
func (b *Beam) Run() *hexpath.Path {
	if b.Limits.Target.Sign() == 0 {
		return b.Paths[0]
	}
	for cycle := 0; len(b.Paths) > 0; cycle++ {
		xlog.Cycle("beam", cycle, len(b.Paths))
		b.Expand()
		b.TrimToBest()
		b.UpdateSmallest()
	}
	return b.Best.Get()
}

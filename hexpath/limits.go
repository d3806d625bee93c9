package hexpath

import "github.com/hexpattern/hexpattern/hexgeom"

// Limits bundles the pure predicates an Extend call checks: the target
// value and whether overshoot/fractions are allowed, plus an optional
// bounding box. Limits carries no mutable state and is shared by every
// path in a search.
type Limits struct {
	// Target is the accumulator value the search is trying to reach.
	Target hexgeom.Rational

	// TrimLarger rejects any extension whose new value exceeds Target.
	TrimLarger bool

	// AllowFractions, when false, rejects any extension whose new value
	// is not an integer.
	AllowFractions bool

	// Bounds, when non-nil, rejects any extension that would grow the
	// path's bounding box past it.
	Bounds *hexgeom.Bounds
}

// Bounded returns Limits with bounds enforced.
func Bounded(target hexgeom.Rational, trimLarger, allowFractions bool, bounds hexgeom.Bounds) Limits {
	b := bounds
	return Limits{Target: target, TrimLarger: trimLarger, AllowFractions: allowFractions, Bounds: &b}
}

// Unbounded returns Limits with no bounding-box restriction, the mode
// AStarSearch runs under per the reference design (A* has no bounds field).
func Unbounded(target hexgeom.Rational, trimLarger, allowFractions bool) Limits {
	return Limits{Target: target, TrimLarger: trimLarger, AllowFractions: allowFractions}
}

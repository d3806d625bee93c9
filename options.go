package hexpattern

import "github.com/hexpattern/hexpattern/hexgeom"

// Strategy selects which of the five search variants Generate runs.
type Strategy int

// The five ways a pattern search can be run, matching the reference tool's
// Options enum: two sequential, two parallel Beam variants, and two A*
// variants (A* carries no bounds field — it is implicitly unbounded).
const (
	StrategyBeam Strategy = iota
	StrategyBeamPool
	StrategyBeamSplit
	StrategyAStar
	StrategyAStarSplit
)

// Default option values, set by every Options constructor before the
// caller's options are applied.
const (
	DefaultBoundsAxis = 8
	DefaultCarryover  = 25
)

// Options configures a single Generate call.
type Options struct {
	Strategy Strategy

	// Bounds is the per-axis bounding box, used by every Beam variant.
	// The Options constructors start it at DefaultBoundsAxis on every axis;
	// a zero value is used as given.
	Bounds hexgeom.Bounds

	// Carryover is the beam width K, used by every Beam variant. The
	// Options constructors start it at DefaultCarryover; zero is used as
	// given.
	Carryover int

	// NumThreads is the worker/goroutine count for the pool and split
	// variants. Ignored by StrategyBeam and StrategyAStar.
	NumThreads int

	// TrimLarger rejects any extension whose value exceeds the target.
	TrimLarger bool

	// AllowFractions permits non-integer accumulator values mid-search.
	AllowFractions bool
}

// Option mutates an Options value before a Generate call.
type Option func(*Options)

// WithBounds overrides the per-axis bounding box for a Beam variant.
func WithBounds(bounds hexgeom.Bounds) Option {
	return func(o *Options) { o.Bounds = bounds }
}

// WithCarryover overrides the beam width K.
func WithCarryover(k int) Option {
	return func(o *Options) { o.Carryover = k }
}

// WithNumThreads sets the worker/goroutine count for a pool or split
// variant.
func WithNumThreads(n int) Option {
	return func(o *Options) { o.NumThreads = n }
}

// WithTrimLarger enables rejecting any extension whose value overshoots
// the target.
func WithTrimLarger() Option {
	return func(o *Options) { o.TrimLarger = true }
}

// WithAllowFractions permits non-integer accumulator values mid-search.
func WithAllowFractions() Option {
	return func(o *Options) { o.AllowFractions = true }
}

// newOptions builds a defaulted Options for strategy and applies opts.
func newOptions(strategy Strategy, opts []Option) Options {
	o := Options{
		Strategy:   strategy,
		Bounds:     hexgeom.Bounds{Q: DefaultBoundsAxis, R: DefaultBoundsAxis, S: DefaultBoundsAxis},
		Carryover:  DefaultCarryover,
		NumThreads: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.NumThreads < 1 {
		o.NumThreads = 1
	}
	return o
}

// Beam builds Options for the sequential beam-search strategy.
func Beam(opts ...Option) Options { return newOptions(StrategyBeam, opts) }

// BeamPool builds Options for the worker-pool-parallel beam-search strategy.
func BeamPool(opts ...Option) Options { return newOptions(StrategyBeamPool, opts) }

// BeamSplit builds Options for the split-parallel beam-search strategy.
func BeamSplit(opts ...Option) Options { return newOptions(StrategyBeamSplit, opts) }

// AStar builds Options for the sequential A* strategy. Bounds/Carryover
// options are accepted but ignored: A* runs unbounded.
func AStar(opts ...Option) Options { return newOptions(StrategyAStar, opts) }

// AStarSplit builds Options for the split-parallel A* strategy.
func AStarSplit(opts ...Option) Options { return newOptions(StrategyAStarSplit, opts) }

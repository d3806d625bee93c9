package hexpattern

import (
	"fmt"

	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/search"
)

// Generate searches for a pattern whose accumulator value equals target,
// using the strategy and parameters carried by opts. target's sign selects
// the seed (SE/"aqaa" for nonnegative, NE/"dedd" for negative); the search
// itself always runs against target's absolute value, since Path's
// accumulator is defined over Rational≥0.
//
// Generate returns ErrNoPatternFound if the chosen strategy exhausts its
// search space without ever reaching target.
func Generate(target int64, options Options) (*GeneratedPattern, error) {
	sign := hexpath.Positive
	abs := target
	if target < 0 {
		sign = hexpath.Negative
		abs = -target
	}
	return GenerateRat(hexgeom.FromInt(abs), sign, options)
}

// GenerateRat is Generate's fraction-aware counterpart: target is an exact
// rational magnitude and sign is given explicitly, so callers parsing a
// target off the command line (where "-3/4" and "3/4" share a magnitude but
// pick different seeds) don't need to round-trip through int64. cmd/hexpattern
// uses this to support fraction targets via (*big.Rat).SetString.
func GenerateRat(target hexgeom.Rational, sign hexpath.Sign, options Options) (*GeneratedPattern, error) {
	targetRat := target

	best := &search.SharedBest{}

	var result *hexpath.Path
	switch options.Strategy {
	case StrategyBeam:
		limits := hexpath.Bounded(targetRat, options.TrimLarger, options.AllowFractions, options.Bounds)
		result = search.NewBeam(sign, limits, options.Carryover, best).Run()

	case StrategyBeamPool:
		limits := hexpath.Bounded(targetRat, options.TrimLarger, options.AllowFractions, options.Bounds)
		result = search.NewBeam(sign, limits, options.Carryover, best).RunPool(options.NumThreads)

	case StrategyBeamSplit:
		limits := hexpath.Bounded(targetRat, options.TrimLarger, options.AllowFractions, options.Bounds)
		result = search.NewBeam(sign, limits, options.Carryover, best).RunSplit(options.NumThreads)

	case StrategyAStar:
		limits := hexpath.Unbounded(targetRat, options.TrimLarger, options.AllowFractions)
		result = search.NewAStar(sign, limits, best).Run()

	case StrategyAStarSplit:
		limits := hexpath.Unbounded(targetRat, options.TrimLarger, options.AllowFractions)
		result = search.NewAStar(sign, limits, best).RunSplit(options.NumThreads)

	default:
		return nil, fmt.Errorf("hexpattern: unknown strategy %v", options.Strategy)
	}

	if result == nil {
		return nil, fmt.Errorf("%w: %s", search.ErrNoPatternFound, target.String())
	}
	return fromPath(result), nil
}

package search

import (
	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
)

// heuristic estimates the number of further steps p needs to reach target
// (smaller is more promising). It is not an admissible lower bound — it is
// a halving/doubling distance estimate between p's current value and
// target, biased by p's current length, the same tie-break the reference
// A* search prunes its frontier with.
func heuristic(p *hexpath.Path, target hexgeom.Rational) int {
	h := p.Len()
	val := p.Value()
	tgt := target

	if val.Sign() == 0 {
		h++
		switch {
		case tgt.Cmp(hexgeom.FromInt(10)) > 0:
			val = val.AddInt(10)
		case tgt.Cmp(hexgeom.FromInt(5)) > 0:
			val = val.AddInt(5)
		default:
			val = val.AddInt(1)
		}
	}

	if tgt.Sign() != 0 {
		for val.Cmp(tgt) > 0 {
			val = val.Div2()
			h++
		}
		for tgt.Div2().Cmp(val) > 0 {
			tgt = tgt.Div2()
			h++
		}
	}

	return h
}

package hexpattern

import (
	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
)

// GeneratedPattern is the product a successful Generate call returns: the
// heading and the turning angles that follow the seed prefix ("aqaa" for a
// nonnegative target, "dedd" for a negative one), plus the search-time
// statistics that justified it. hexgeom.ParsePattern(StartingDirection,
// seed+Pattern) rebuilds the whole walk.
type GeneratedPattern struct {
	StartingDirection hexgeom.Direction
	Pattern           string
	Bounds            hexgeom.Bounds
	NumPoints         int
	NumSegments       int
}

func fromPath(p *hexpath.Path) *GeneratedPattern {
	return &GeneratedPattern{
		StartingDirection: p.StartingDirection(),
		Pattern:           p.Pattern(),
		Bounds:            p.Bounds(),
		NumPoints:         p.NumPoints(),
		NumSegments:       p.Len(),
	}
}

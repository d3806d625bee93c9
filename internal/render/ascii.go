// Package render draws a hexpattern.GeneratedPattern as an ASCII grid of
// its visited points, enough to eyeball a pattern's shape from a terminal
// without pulling in an image-encoding dependency (PNG rendering is
// explicitly out of scope — see SPEC_FULL.md's Non-goals).
package render

import (
	"strings"

	"github.com/hexpattern/hexpattern/hexgeom"
)

// ASCII walks pattern from the origin along startDir and returns a text
// grid marking every visited axial coordinate with '*' and the origin
// with 'o', rows ordered by increasing R and columns by increasing Q.
func ASCII(startDir hexgeom.Direction, pattern string) (string, error) {
	segments, err := hexgeom.ParsePattern(startDir, pattern)
	if err != nil {
		return "", err
	}

	points := make(map[hexgeom.Coord]bool)
	var mm hexgeom.MinMax
	for _, seg := range segments {
		for _, pt := range []hexgeom.Coord{seg.Root, seg.End()} {
			points[pt] = true
			mm = mm.WithPoint(pt)
		}
	}

	var b strings.Builder
	for r := mm.MinR; r <= mm.MaxR; r++ {
		for q := mm.MinQ; q <= mm.MaxQ; q++ {
			c := hexgeom.Coord{Q: q, R: r}
			switch {
			case c == hexgeom.Origin():
				b.WriteByte('o')
			case points[c]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

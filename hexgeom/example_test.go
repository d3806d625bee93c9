package hexgeom_test

import (
	"fmt"

	"github.com/hexpattern/hexpattern/hexgeom"
)

// ExampleParsePattern walks a short pattern from the origin and reports its
// final bounding box.
func ExampleParsePattern() {
	segs, err := hexgeom.ParsePattern(hexgeom.SouthEast, "aqaa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	mm := hexgeom.NewMinMax(hexgeom.Origin())
	for _, s := range segs {
		mm = mm.WithPoint(s.End())
	}

	fmt.Println("segments:", len(segs))
	fmt.Println("bounds:", mm.ToBounds())

	// Output:
	// segments: 5
	// bounds: {2 3 2}
}

// ExampleSegment_Canonical shows that the same edge walked in either
// direction canonicalizes to the same form.
func ExampleSegment_Canonical() {
	forward := hexgeom.NewSegment(hexgeom.Origin(), hexgeom.SouthEast)
	backward := hexgeom.NewSegment(forward.End(), hexgeom.NorthWest)

	fmt.Println(forward.Canonical() == backward.Canonical())

	// Output:
	// true
}

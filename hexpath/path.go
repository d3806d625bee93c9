package hexpath

import (
	"strings"

	"github.com/hexpattern/hexpattern/hexgeom"
)

// Sign records which half of the target range a Path was seeded for; it
// selects the seed's starting direction and pattern prefix and has no
// further effect on the accumulator (both seeds start it at zero).
type Sign int

// The two signs a search target can carry.
const (
	Positive Sign = iota
	Negative
)

// seedPattern and seedDirection are the fixed, bit-exact openings every
// search starts from (see the reference tool's seed literals).
const (
	positiveSeedPattern = "aqaa"
	negativeSeedPattern = "dedd"
)

func seedDirection(sign Sign) hexgeom.Direction {
	if sign == Negative {
		return hexgeom.NorthEast
	}
	return hexgeom.SouthEast
}

func seedPattern(sign Sign) string {
	if sign == Negative {
		return negativeSeedPattern
	}
	return positiveSeedPattern
}

// Path is an immutable-by-extension walk on the hex grid: a sequence of
// connected Segments together with the running accumulator value and the
// three derived indexes (segment_set, point_set, minmax) that let every
// invariant check and bounds query run in O(1) rather than rescanning the
// whole walk. A Path is never mutated in place; Extend always returns a new
// value sharing no mutable state with its parent.
type Path struct {
	sign       Sign
	value      hexgeom.Rational
	segments   []hexgeom.Segment
	segmentSet map[hexgeom.Segment]struct{}
	pointSet   map[hexgeom.Coord]struct{}
	minmax     hexgeom.MinMax
}

// Zero builds the fixed seed Path for sign: starting direction SE with
// pattern "aqaa" for Positive, NE with "dedd" for Negative. The seed's
// accumulator value is always exactly zero — it is a fixed geometric
// prefix, not a value computed by folding its own characters through the
// accumulator rules.
func Zero(sign Sign) *Path {
	segments, err := hexgeom.ParsePattern(seedDirection(sign), seedPattern(sign))
	if err != nil {
		// The seed literals are constants owned by this package; a failure
		// here means the constants themselves are broken.
		panic("hexpath: invalid seed pattern: " + err.Error())
	}

	p := &Path{
		sign:       sign,
		value:      hexgeom.Zero(),
		segments:   segments,
		segmentSet: make(map[hexgeom.Segment]struct{}, len(segments)),
		pointSet:   make(map[hexgeom.Coord]struct{}, len(segments)+1),
	}
	for _, seg := range segments {
		p.segmentSet[seg.Canonical()] = struct{}{}
		p.pointSet[seg.Root] = struct{}{}
		p.pointSet[seg.End()] = struct{}{}
		p.minmax = p.minmax.WithPoint(seg.Root)
		p.minmax = p.minmax.WithPoint(seg.End())
	}
	return p
}

// Sign returns the sign this path was seeded with.
func (p *Path) Sign() Sign { return p.sign }

// Value returns the current accumulator value.
func (p *Path) Value() hexgeom.Rational { return p.value }

// Segments returns the path's segment sequence. The returned slice must not
// be mutated by callers.
func (p *Path) Segments() []hexgeom.Segment { return p.segments }

// Len returns the number of segments in the path.
func (p *Path) Len() int { return len(p.segments) }

// NumPoints returns the number of distinct coordinates the path visits.
func (p *Path) NumPoints() int { return len(p.pointSet) }

// Bounds returns the path's current bounding box.
func (p *Path) Bounds() hexgeom.Bounds { return p.minmax.ToBounds() }

// HasSegment reports whether a segment traversing the same physical edge
// (in either direction) is already part of the path.
func (p *Path) HasSegment(seg hexgeom.Segment) bool {
	_, ok := p.segmentSet[seg.Canonical()]
	return ok
}

// last returns the path's final segment; Zero always seeds at least one
// segment, so this is never called on an empty path.
func (p *Path) last() hexgeom.Segment {
	return p.segments[len(p.segments)-1]
}

// ShouldReplace reports whether p is a strictly better candidate than
// other, the rule used both for SharedBest installation and for vetoing
// extensions against the running best: other being nil always yields true.
func (p *Path) ShouldReplace(other *Path) bool {
	if other == nil {
		return true
	}
	return p.Bounds().IsBetterThan(other.Bounds())
}

// Pattern reconstructs the textual pattern string (the inter-segment
// turning angles) from the path's segment headings, starting after the
// fixed seed prefix consumed by Zero.
func (p *Path) Pattern() string {
	var b strings.Builder
	for i := len(seedPattern(p.sign)); i+1 < len(p.segments); i++ {
		angle := p.segments[i+1].Direction.AngleFrom(p.segments[i].Direction)
		b.WriteRune(angle.Rune())
	}
	return b.String()
}

// StartingDirection returns the heading of the path's first segment.
func (p *Path) StartingDirection() hexgeom.Direction {
	return p.segments[0].Direction
}

// Extend is try_with_angle: it attempts to grow p by one segment turned
// angle relative to p's current heading, checking (in order) the
// accumulator rules and PathLimits' target/fraction policy, segment
// uniqueness, the bounds limit, and finally the caller's veto predicate.
// veto may be nil, in which case no extension is vetoed on that basis.
func (p *Path) Extend(angle hexgeom.Angle, limits Limits, veto func(*Path) bool) (*Path, error) {
	newValue, err := angle.ApplyTo(p.value)
	if err != nil {
		return nil, err
	}
	if limits.TrimLarger && newValue.Cmp(limits.Target) > 0 {
		return nil, ErrOutOfLimits
	}
	if !limits.AllowFractions && !newValue.IsInteger() {
		return nil, ErrOutOfLimits
	}

	newSegment := p.last().NextSegment(angle)
	if p.HasSegment(newSegment) {
		return nil, ErrSegmentAlreadyExists
	}

	newMinMax := p.minmax.WithPoint(newSegment.End())
	if limits.Bounds != nil && !newMinMax.ToBounds().FitsIn(*limits.Bounds) {
		return nil, ErrOutOfLimits
	}

	next := &Path{
		sign:       p.sign,
		value:      newValue,
		segments:   append(append([]hexgeom.Segment{}, p.segments...), newSegment),
		segmentSet: make(map[hexgeom.Segment]struct{}, len(p.segmentSet)+1),
		pointSet:   make(map[hexgeom.Coord]struct{}, len(p.pointSet)+1),
		minmax:     newMinMax,
	}
	for seg := range p.segmentSet {
		next.segmentSet[seg] = struct{}{}
	}
	next.segmentSet[newSegment.Canonical()] = struct{}{}
	for pt := range p.pointSet {
		next.pointSet[pt] = struct{}{}
	}
	next.pointSet[newSegment.Root] = struct{}{}
	next.pointSet[newSegment.End()] = struct{}{}

	if veto != nil && !veto(next) {
		return nil, ErrOutOfLimits
	}

	return next, nil
}

package hexgeom

// MinMax tracks the axis-wise minimum and maximum of every point visited so
// far, so a path's bounding Bounds can be recomputed in O(1) after each
// extension instead of rescanning point_set.
type MinMax struct {
	MinQ, MaxQ int
	MinR, MaxR int
	MinS, MaxS int
	set        bool
}

// NewMinMax seeds a MinMax with a single starting point.
func NewMinMax(p Coord) MinMax {
	return MinMax{
		MinQ: p.Q, MaxQ: p.Q,
		MinR: p.R, MaxR: p.R,
		MinS: p.S(), MaxS: p.S(),
		set: true,
	}
}

// WithPoint returns a MinMax widened to also cover p.
func (m MinMax) WithPoint(p Coord) MinMax {
	if !m.set {
		return NewMinMax(p)
	}
	s := p.S()
	out := m
	if p.Q < out.MinQ {
		out.MinQ = p.Q
	}
	if p.Q > out.MaxQ {
		out.MaxQ = p.Q
	}
	if p.R < out.MinR {
		out.MinR = p.R
	}
	if p.R > out.MaxR {
		out.MaxR = p.R
	}
	if s < out.MinS {
		out.MinS = s
	}
	if s > out.MaxS {
		out.MaxS = s
	}
	return out
}

// ToBounds converts m into a Bounds, with each axis extent being
// (max - min + 1) so a single visited point yields a 1x1x1 box.
func (m MinMax) ToBounds() Bounds {
	if !m.set {
		return Bounds{}
	}
	return Bounds{
		Q: m.MaxQ - m.MinQ + 1,
		R: m.MaxR - m.MinR + 1,
		S: m.MaxS - m.MinS + 1,
	}
}

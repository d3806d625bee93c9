package hexgeom

// Bounds is a nonnegative triple (Q, R, S) of extents along the three cube
// axes, the bounding-box figure of merit a search prunes on.
type Bounds struct {
	Q, R, S int
}

// FitsIn reports whether b is componentwise less than or equal to other.
func (b Bounds) FitsIn(other Bounds) bool {
	return b.Q <= other.Q && b.R <= other.R && b.S <= other.S
}

// QuasiArea returns Q*R*S, the scalar tie-break used to compare two
// otherwise-equal paths.
func (b Bounds) QuasiArea() int {
	return b.Q * b.R * b.S
}

// IsBetterThan reports whether b has strictly smaller quasi-area than other.
func (b Bounds) IsBetterThan(other Bounds) bool {
	return b.QuasiArea() < other.QuasiArea()
}

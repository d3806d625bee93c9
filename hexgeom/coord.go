package hexgeom

// Coord is an axial hex-grid coordinate. The implicit third cube axis
// S satisfies Q + R + S == 0 and is exposed via S().
type Coord struct {
	Q, R int
}

// Origin returns the coordinate (0, 0).
func Origin() Coord { return Coord{0, 0} }

// S returns the third cube-coordinate axis, derived from Q and R.
func (c Coord) S() int { return -c.Q - c.R }

// Add returns c translated by other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.Q + other.Q, c.R + other.R}
}

// AddDirection returns c translated one step in dir.
func (c Coord) AddDirection(dir Direction) Coord {
	return c.Add(dir.Vector())
}

// Neg returns the coordinate mirrored through the origin.
func (c Coord) Neg() Coord { return Coord{-c.Q, -c.R} }

// Sub returns c minus other.
func (c Coord) Sub(other Coord) Coord { return c.Add(other.Neg()) }

// Rotated returns c rotated angle steps about the origin, using the same
// 60-degree cube-coordinate rotation as Direction.Rotated.
func (c Coord) Rotated(angle Angle) Coord {
	rotated := c
	for i := 0; i < int(angle); i++ {
		rotated = Coord{-rotated.R, -rotated.S()}
	}
	return rotated
}

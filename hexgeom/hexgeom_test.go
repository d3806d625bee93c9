package hexgeom_test

import (
	"testing"

	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Rotated(t *testing.T) {
	cases := []struct {
		dir   hexgeom.Direction
		angle hexgeom.Angle
		want  hexgeom.Direction
	}{
		{hexgeom.NorthEast, hexgeom.Forward, hexgeom.NorthEast},
		{hexgeom.NorthEast, hexgeom.Right, hexgeom.East},
		{hexgeom.NorthEast, hexgeom.Back, hexgeom.SouthWest},
		{hexgeom.NorthWest, hexgeom.Right, hexgeom.NorthEast},
		{hexgeom.East, hexgeom.Left, hexgeom.NorthEast},
	}
	for _, tc := range cases {
		got := tc.dir.Rotated(tc.angle)
		assert.Equalf(t, tc.want, got, "%v.Rotated(%v)", tc.dir, tc.angle)
	}
}

func TestDirection_AngleFrom(t *testing.T) {
	for _, dir := range []hexgeom.Direction{hexgeom.NorthEast, hexgeom.East, hexgeom.SouthWest} {
		for _, angle := range hexgeom.All() {
			rotated := dir.Rotated(angle)
			assert.Equal(t, angle, rotated.AngleFrom(dir))
		}
	}
}

func TestDirection_IsEast(t *testing.T) {
	east := map[hexgeom.Direction]bool{
		hexgeom.NorthEast: true,
		hexgeom.East:      true,
		hexgeom.SouthEast: true,
		hexgeom.SouthWest: false,
		hexgeom.West:      false,
		hexgeom.NorthWest: false,
	}
	for dir, want := range east {
		assert.Equal(t, want, dir.IsEast(), dir.String())
	}
}

func TestAngle_ApplyTo(t *testing.T) {
	v := hexgeom.FromInt(3)

	got, err := hexgeom.Forward.ApplyTo(v)
	require.NoError(t, err)
	assert.Equal(t, "4", got.String())

	got, err = hexgeom.Left.ApplyTo(v)
	require.NoError(t, err)
	assert.Equal(t, "8", got.String())

	got, err = hexgeom.Right.ApplyTo(v)
	require.NoError(t, err)
	assert.Equal(t, "13", got.String())

	got, err = hexgeom.LeftBack.ApplyTo(v)
	require.NoError(t, err)
	assert.Equal(t, "6", got.String())

	got, err = hexgeom.RightBack.ApplyTo(hexgeom.FromInt(4))
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())

	_, err = hexgeom.Back.ApplyTo(v)
	assert.ErrorIs(t, err, hexgeom.ErrInvalidAngle)
}

func TestAngle_RuneRoundTrip(t *testing.T) {
	for _, a := range hexgeom.All() {
		got, err := hexgeom.AngleFromRune(a.Rune())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := hexgeom.AngleFromRune('z')
	assert.ErrorIs(t, err, hexgeom.ErrInvalidChar)
}

func TestSegment_Canonical(t *testing.T) {
	forward := hexgeom.NewSegment(hexgeom.Coord{Q: 2, R: -1}, hexgeom.East)
	reverse := hexgeom.NewSegment(forward.End(), hexgeom.West)

	assert.Equal(t, forward.Canonical(), reverse.Canonical())
}

func TestParsePattern_SegmentCount(t *testing.T) {
	segs, err := hexgeom.ParsePattern(hexgeom.SouthEast, "aqaa")
	require.NoError(t, err)
	assert.Len(t, segs, 5, "an N-character pattern yields N+1 segments")

	for i := 0; i+1 < len(segs); i++ {
		assert.Equal(t, segs[i].End(), segs[i+1].Root, "segments must be connected")
	}
}

func TestParsePattern_InvalidChar(t *testing.T) {
	_, err := hexgeom.ParsePattern(hexgeom.SouthEast, "aqzz")
	assert.ErrorIs(t, err, hexgeom.ErrInvalidChar)
}

func TestMinMax_ToBounds(t *testing.T) {
	mm := hexgeom.NewMinMax(hexgeom.Origin())
	mm = mm.WithPoint(hexgeom.Coord{Q: 2, R: -1})
	mm = mm.WithPoint(hexgeom.Coord{Q: -1, R: 3})

	b := mm.ToBounds()
	assert.Equal(t, 2-(-1)+1, b.Q)
	assert.Equal(t, 3-(-1)+1, b.R)
}

func TestBounds_QuasiAreaAndFits(t *testing.T) {
	small := hexgeom.Bounds{Q: 2, R: 2, S: 2}
	big := hexgeom.Bounds{Q: 4, R: 4, S: 4}

	assert.True(t, small.FitsIn(big))
	assert.False(t, big.FitsIn(small))
	assert.True(t, small.IsBetterThan(big))
	assert.Equal(t, 8, small.QuasiArea())
}

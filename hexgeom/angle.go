package hexgeom

import "fmt"

// Angle is a turn relative to a segment's current heading.
type Angle int

// The six relative turns a path may take at each step, in clockwise order.
const (
	Forward Angle = iota
	Right
	RightBack
	Back
	LeftBack
	Left
)

// AngleFromInt normalizes num into [Forward, Left] modulo 6.
func AngleFromInt(num int) Angle {
	m := num % 6
	if m < 0 {
		m += 6
	}
	return Angle(m)
}

// Rune is the single-character pattern-string encoding of a, mirroring the
// w/e/d/s/a/q keyboard layout the reference tool uses for its angle letters.
func (a Angle) Rune() rune {
	switch a {
	case Forward:
		return 'w'
	case Right:
		return 'e'
	case RightBack:
		return 'd'
	case Back:
		return 's'
	case LeftBack:
		return 'a'
	case Left:
		return 'q'
	default:
		return '?'
	}
}

// AngleFromRune inverts Angle.Rune, reporting ErrInvalidChar for anything
// outside {w, e, d, s, a, q}.
func AngleFromRune(c rune) (Angle, error) {
	switch c {
	case 'w':
		return Forward, nil
	case 'e':
		return Right, nil
	case 'd':
		return RightBack, nil
	case 's':
		return Back, nil
	case 'a':
		return LeftBack, nil
	case 'q':
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, c)
	}
}

// ApplyTo folds a into the running accumulator value num, per the
// pattern-number mapping: Forward adds 1, Left adds 5, Right adds 10,
// LeftBack doubles, RightBack halves. Back has no defined mapping and
// always reports ErrInvalidAngle; callers must veto Back before extending
// a path's accumulator.
func (a Angle) ApplyTo(num Rational) (Rational, error) {
	switch a {
	case Forward:
		return num.AddInt(1), nil
	case Left:
		return num.AddInt(5), nil
	case Right:
		return num.AddInt(10), nil
	case LeftBack:
		return num.MulInt(2), nil
	case RightBack:
		return num.Div2(), nil
	default:
		return Rational{}, fmt.Errorf("%w: %v", ErrInvalidAngle, a)
	}
}

// String names a the way the reference tool's error messages do.
func (a Angle) String() string {
	switch a {
	case Forward:
		return "Forward"
	case Right:
		return "Right"
	case RightBack:
		return "RightBack"
	case Back:
		return "Back"
	case LeftBack:
		return "LeftBack"
	case Left:
		return "Left"
	default:
		return "InvalidAngle"
	}
}

// All lists the six angles in index order (Forward, Right, RightBack, Back,
// LeftBack, Left); beam and A* expansion use the same order without Back.
func All() []Angle {
	return []Angle{Forward, Right, RightBack, Back, LeftBack, Left}
}

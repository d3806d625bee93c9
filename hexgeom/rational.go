package hexgeom

import (
	"fmt"
	"math/big"
)

// Rational is an exact rational number, the value type carried by a Path's
// accumulator (which is never negative). It wraps math/big.Rat so every arithmetic step of
// a search (+1, +5, +10, *2, /2) stays exact, with no floating-point drift
// across the thousands of extensions a single search performs.
type Rational struct {
	r *big.Rat
}

// Zero is the additive identity.
func Zero() Rational { return Rational{r: new(big.Rat)} }

// FromInt builds a Rational equal to the integer n.
func FromInt(n int64) Rational { return Rational{r: new(big.Rat).SetInt64(n)} }

// FromFrac builds a Rational equal to num/den.
func FromFrac(num, den int64) Rational { return Rational{r: big.NewRat(num, den)} }

// FromRat builds a Rational from the absolute value of an already-parsed
// big.Rat, e.g. one produced by (*big.Rat).SetString off a CLI flag. The
// caller is expected to extract the sign separately via r.Sign(), since
// search targets are always non-negative magnitudes.
func FromRat(r *big.Rat) Rational {
	return Rational{r: new(big.Rat).Abs(r)}
}

func (x Rational) clone() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(x.r)
}

// AddInt returns x + n.
func (x Rational) AddInt(n int64) Rational {
	return Rational{r: x.clone().Add(x.clone(), new(big.Rat).SetInt64(n))}
}

// MulInt returns x * n.
func (x Rational) MulInt(n int64) Rational {
	return Rational{r: x.clone().Mul(x.clone(), new(big.Rat).SetInt64(n))}
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational {
	return Rational{r: x.clone().Sub(x.clone(), y.clone())}
}

// Div2 returns x / 2.
func (x Rational) Div2() Rational {
	return Rational{r: x.clone().Quo(x.clone(), big.NewRat(2, 1))}
}

// IsInteger reports whether x has a denominator of 1.
func (x Rational) IsInteger() bool {
	return x.clone().IsInt()
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Rational) Sign() int {
	if x.r == nil {
		return 0
	}
	return x.r.Sign()
}

// Cmp compares x and y, returning -1, 0, or 1.
func (x Rational) Cmp(y Rational) int {
	return x.clone().Cmp(y.clone())
}

// Abs returns the absolute value of x.
func (x Rational) Abs() Rational {
	return Rational{r: x.clone().Abs(x.clone())}
}

// Float64 returns the nearest float64 approximation of x. No search or
// invariant check in this module calls it.
func (x Rational) Float64() float64 {
	f, _ := x.clone().Float64()
	return f
}

// String renders x as an integer when possible, otherwise as "num/den".
func (x Rational) String() string {
	if x.r == nil {
		return "0"
	}
	if x.r.IsInt() {
		return x.r.Num().String()
	}
	return fmt.Sprintf("%s/%s", x.r.Num().String(), x.r.Denom().String())
}

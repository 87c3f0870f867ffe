package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar type set every linrot kernel is generic over.
// The two expected instantiations are float32 and float64; named types
// with those underlying widths work as well.
type Float interface {
	constraints.Float
}

// Pi returns π at the precision of F.
func Pi[F Float]() F {
	return F(math.Pi)
}

// Sqrt returns the square root of x at the precision of F.
func Sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin[F Float](x F) F {
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[F Float](x F) F {
	return F(math.Cos(float64(x)))
}

// SinCos returns sin(x) and cos(x) in a single call (radians).
func SinCos[F Float](x F) (sin, cos F) {
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

// Acos returns the arccosine of x, in radians.
// The result is NaN when x is outside [-1, 1], as the standard library does.
func Acos[F Float](x F) F {
	return F(math.Acos(float64(x)))
}

// Atan2 returns the arctangent of y/x, using the signs of both to determine
// the quadrant.
func Atan2[F Float](y, x F) F {
	return F(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[F Float](x, lo, hi F) F {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

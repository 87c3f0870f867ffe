package angle

import "github.com/qvetlan/linrot/scalar"

// Angle is a scalar angle denominated internally in radians.
// It carries no normalization invariant: Degrees(720) and Degrees(0) are
// distinct values.
type Angle[F scalar.Float] struct {
	rad F
}

// Radians constructs an Angle from a value in radians.
func Radians[F scalar.Float](rad F) Angle[F] {
	return Angle[F]{rad: rad}
}

// Degrees constructs an Angle from a value in degrees.
func Degrees[F scalar.Float](deg F) Angle[F] {
	return Angle[F]{rad: scalar.Pi[F]() * deg / 180}
}

// Cycles constructs an Angle from a value in full turns (1 cycle = 2π rad).
func Cycles[F scalar.Float](cycles F) Angle[F] {
	return Angle[F]{rad: 2 * scalar.Pi[F]() * cycles}
}

// AsRadians returns the angle in radians.
func (a Angle[F]) AsRadians() F {
	return a.rad
}

// AsDegrees returns the angle in degrees.
func (a Angle[F]) AsDegrees() F {
	return a.rad * 180 / scalar.Pi[F]()
}

// AsCycles returns the angle in full turns.
func (a Angle[F]) AsCycles() F {
	return a.rad / (2 * scalar.Pi[F]())
}

// Neg returns the angle of opposite sense.
func (a Angle[F]) Neg() Angle[F] {
	return Angle[F]{rad: -a.rad}
}

// Add returns the sum of two angles.
func (a Angle[F]) Add(b Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad + b.rad}
}

// Sub returns the difference a - b.
func (a Angle[F]) Sub(b Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad - b.rad}
}

// Scale returns the angle scaled by s.
func (a Angle[F]) Scale(s F) Angle[F] {
	return Angle[F]{rad: a.rad * s}
}

// SinCos returns the sine and cosine of the angle.
func (a Angle[F]) SinCos() (sin, cos F) {
	return scalar.SinCos(a.rad)
}

// Sin returns the sine of the angle.
func (a Angle[F]) Sin() F {
	return scalar.Sin(a.rad)
}

// Cos returns the cosine of the angle.
func (a Angle[F]) Cos() F {
	return scalar.Cos(a.rad)
}

// Acos returns the angle whose cosine is x. NaN radians when |x| > 1,
// as the scalar field dictates.
func Acos[F scalar.Float](x F) Angle[F] {
	return Angle[F]{rad: scalar.Acos(x)}
}

// Atan2 returns the angle of the point (x, y) from the positive x-axis.
func Atan2[F scalar.Float](y, x F) Angle[F] {
	return Angle[F]{rad: scalar.Atan2(y, x)}
}

package vec

import "github.com/qvetlan/linrot/scalar"

// Vec2 is an ordered pair of scalars. No invariant beyond component count.
type Vec2[F scalar.Float] struct {
	X, Y F
}

// New2 constructs a Vec2 from its components.
func New2[F scalar.Float](x, y F) Vec2[F] {
	return Vec2[F]{X: x, Y: y}
}

// Add returns the componentwise sum v + w.
func (v Vec2[F]) Add(w Vec2[F]) Vec2[F] {
	return Vec2[F]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v - w.
func (v Vec2[F]) Sub(w Vec2[F]) Vec2[F] {
	return Vec2[F]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns -v.
func (v Vec2[F]) Neg() Vec2[F] {
	return Vec2[F]{X: -v.X, Y: -v.Y}
}

// Mul returns v scaled by s.
func (v Vec2[F]) Mul(s F) Vec2[F] {
	return Vec2[F]{X: v.X * s, Y: v.Y * s}
}

// Div returns v scaled by 1/s. Division by zero propagates the scalar
// field's behavior (±Inf / NaN).
func (v Vec2[F]) Div(s F) Vec2[F] {
	return Vec2[F]{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product v · w.
func (v Vec2[F]) Dot(w Vec2[F]) F {
	return v.X*w.X + v.Y*w.Y
}

// MagnitudeSquared returns |v|².
func (v Vec2[F]) MagnitudeSquared() F {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v Vec2[F]) Magnitude() F {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// Normalized returns v scaled to unit magnitude, or ErrZeroVector when
// |v| == 0.
func (v Vec2[F]) Normalized() (Vec2[F], error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2[F]{}, ErrZeroVector
	}
	return v.Div(mag), nil
}

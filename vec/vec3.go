package vec

import "github.com/qvetlan/linrot/scalar"

// Vec3 is an ordered triple of scalars. No invariant beyond component count.
type Vec3[F scalar.Float] struct {
	X, Y, Z F
}

// New3 constructs a Vec3 from its components.
func New3[F scalar.Float](x, y, z F) Vec3[F] {
	return Vec3[F]{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum v + w.
func (v Vec3[F]) Add(w Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vec3[F]) Sub(w Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns -v.
func (v Vec3[F]) Neg() Vec3[F] {
	return Vec3[F]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns v scaled by s.
func (v Vec3[F]) Mul(s F) Vec3[F] {
	return Vec3[F]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v scaled by 1/s. Division by zero propagates the scalar
// field's behavior (±Inf / NaN).
func (v Vec3[F]) Div(s F) Vec3[F] {
	return Vec3[F]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product v · w.
func (v Vec3[F]) Dot(w Vec3[F]) F {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w (right-handed).
func (v Vec3[F]) Cross(w Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// MagnitudeSquared returns |v|².
func (v Vec3[F]) MagnitudeSquared() F {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v Vec3[F]) Magnitude() F {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// Normalized returns v scaled to unit magnitude, or ErrZeroVector when
// |v| == 0.
func (v Vec3[F]) Normalized() (Vec3[F], error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec3[F]{}, ErrZeroVector
	}
	return v.Div(mag), nil
}

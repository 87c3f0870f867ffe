package vec

import "github.com/qvetlan/linrot/scalar"

// Vec4 is an ordered quadruple of scalars. No invariant beyond component
// count.
type Vec4[F scalar.Float] struct {
	X, Y, Z, W F
}

// New4 constructs a Vec4 from its components.
func New4[F scalar.Float](x, y, z, w F) Vec4[F] {
	return Vec4[F]{X: x, Y: y, Z: z, W: w}
}

// Add returns the componentwise sum v + w.
func (v Vec4[F]) Add(w Vec4[F]) Vec4[F] {
	return Vec4[F]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the componentwise difference v - w.
func (v Vec4[F]) Sub(w Vec4[F]) Vec4[F] {
	return Vec4[F]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Neg returns -v.
func (v Vec4[F]) Neg() Vec4[F] {
	return Vec4[F]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Mul returns v scaled by s.
func (v Vec4[F]) Mul(s F) Vec4[F] {
	return Vec4[F]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns v scaled by 1/s. Division by zero propagates the scalar
// field's behavior (±Inf / NaN).
func (v Vec4[F]) Div(s F) Vec4[F] {
	return Vec4[F]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Dot returns the dot product v · w.
func (v Vec4[F]) Dot(w Vec4[F]) F {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// MagnitudeSquared returns |v|².
func (v Vec4[F]) MagnitudeSquared() F {
	return v.Dot(v)
}

// Magnitude returns |v|.
func (v Vec4[F]) Magnitude() F {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// Normalized returns v scaled to unit magnitude, or ErrZeroVector when
// |v| == 0.
func (v Vec4[F]) Normalized() (Vec4[F], error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec4[F]{}, ErrZeroVector
	}
	return v.Div(mag), nil
}

// Truncate drops the W component.
func (v Vec4[F]) Truncate() Vec3[F] {
	return Vec3[F]{X: v.X, Y: v.Y, Z: v.Z}
}

// TruncateN drops component n (0=X, 1=Y, 2=Z, 3=W), keeping the order of
// the remaining three. Panics on any other n; an out-of-range component
// index is a programmer error, not a runtime condition.
func (v Vec4[F]) TruncateN(n int) Vec3[F] {
	switch n {
	case 0:
		return Vec3[F]{X: v.Y, Y: v.Z, Z: v.W}
	case 1:
		return Vec3[F]{X: v.X, Y: v.Z, Z: v.W}
	case 2:
		return Vec3[F]{X: v.X, Y: v.Y, Z: v.W}
	case 3:
		return Vec3[F]{X: v.X, Y: v.Y, Z: v.Z}
	default:
		panic("vec: TruncateN component index out of range")
	}
}

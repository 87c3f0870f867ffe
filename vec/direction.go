package vec

import (
	"github.com/qvetlan/linrot/angle"
	"github.com/qvetlan/linrot/scalar"
)

// Direction3 is a Vec3 carrying the invariant |v| == 1. It is only
// constructible through explicit normalization (Direction) or through the
// axis helpers; the wrapped vector is never exposed mutably, so the
// invariant cannot be violated after construction.
//
// The zero value is not a valid Direction3; use Direction or an axis helper.
type Direction3[F scalar.Float] struct {
	v Vec3[F]
}

// Direction normalizes v into a Direction3. Returns ErrZeroVector when
// |v| == 0 — the one input for which no direction exists.
func Direction[F scalar.Float](v Vec3[F]) (Direction3[F], error) {
	unit, err := v.Normalized()
	if err != nil {
		return Direction3[F]{}, err
	}
	return Direction3[F]{v: unit}, nil
}

// XAxis returns the +X basis direction.
func XAxis[F scalar.Float]() Direction3[F] {
	return Direction3[F]{v: Vec3[F]{X: 1}}
}

// YAxis returns the +Y basis direction.
func YAxis[F scalar.Float]() Direction3[F] {
	return Direction3[F]{v: Vec3[F]{Y: 1}}
}

// ZAxis returns the +Z basis direction.
func ZAxis[F scalar.Float]() Direction3[F] {
	return Direction3[F]{v: Vec3[F]{Z: 1}}
}

// FromLatLong builds the direction at the given latitude/longitude on the
// unit sphere, with +Y up, longitude zero on +Z and longitude π/2 on +X.
func FromLatLong[F scalar.Float](lat, long angle.Angle[F]) Direction3[F] {
	slat, clat := lat.SinCos()
	slon, clon := long.SinCos()
	return Direction3[F]{v: Vec3[F]{
		X: clat * slon,
		Y: slat,
		Z: clat * clon,
	}}
}

// Vec3 returns the wrapped unit vector.
func (d Direction3[F]) Vec3() Vec3[F] {
	return d.v
}

// Dot returns the cosine of the angle between two directions.
func (d Direction3[F]) Dot(e Direction3[F]) F {
	return d.v.Dot(e.v)
}

// Cross returns d × e. The result is a plain Vec3: the cross product of two
// unit vectors has magnitude sin(angle), not 1.
func (d Direction3[F]) Cross(e Direction3[F]) Vec3[F] {
	return d.v.Cross(e.v)
}

// Neg returns the opposite direction. Negation preserves unit magnitude.
func (d Direction3[F]) Neg() Direction3[F] {
	return Direction3[F]{v: d.v.Neg()}
}

package mat

import (
	"github.com/qvetlan/linrot/angle"
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// RotationX returns the 3x3 matrix rotating by theta about the +X axis
// (right-handed).
func RotationX[F scalar.Float](theta angle.Angle[F]) Mat3[F] {
	s, c := theta.SinCos()
	return New3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY returns the 3x3 matrix rotating by theta about the +Y axis.
func RotationY[F scalar.Float](theta angle.Angle[F]) Mat3[F] {
	s, c := theta.SinCos()
	return New3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ returns the 3x3 matrix rotating by theta about the +Z axis.
func RotationZ[F scalar.Float](theta angle.Angle[F]) Mat3[F] {
	s, c := theta.SinCos()
	return New3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RotationAxisAngle returns the 3x3 matrix rotating by theta about an
// arbitrary unit axis (Rodrigues form).
func RotationAxisAngle[F scalar.Float](axis vec.Direction3[F], theta angle.Angle[F]) Mat3[F] {
	a := axis.Vec3()
	x, y, z := a.X, a.Y, a.Z
	s, c := theta.SinCos()
	ic := 1 - c
	return New3(
		x*x*ic+c, x*y*ic-z*s, x*z*ic+y*s,
		y*x*ic+z*s, y*y*ic+c, y*z*ic-x*s,
		z*x*ic-y*s, z*y*ic+x*s, z*z*ic+c,
	)
}

// Scaling returns the 3x3 matrix scaling each axis by the corresponding
// component of v.
func Scaling[F scalar.Float](v vec.Vec3[F]) Mat3[F] {
	return New3(
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	)
}

// ReflectOriginPlane returns the 3x3 matrix reflecting through the plane
// that passes through the origin with unit normal a.
func ReflectOriginPlane[F scalar.Float](a vec.Direction3[F]) Mat3[F] {
	n := a.Vec3()
	x := n.X * -2
	y := n.Y * -2
	z := n.Z * -2
	axay := x * n.Y
	axaz := x * n.Z
	ayaz := y * n.Z
	return New3(
		x*n.X+1, axay, axaz,
		axay, y*n.Y+1, ayaz,
		axaz, ayaz, z*n.Z+1,
	)
}

package quat

import (
	"github.com/qvetlan/linrot/angle"
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// FromAxisAngle builds the unit quaternion rotating by theta about axis:
//
//	q = (axis·sin(θ/2), cos(θ/2))
//
// Given a unit axis the result is unit by construction (sin²+cos²=1), so
// this cannot fail.
func FromAxisAngle[F scalar.Float](axis vec.Direction3[F], theta angle.Angle[F]) NQuat[F] {
	s, c := angle.Radians(theta.AsRadians() / 2).SinCos()
	return NQuat[F]{v: axis.Vec3().Mul(s), w: c}
}

// AxisAngle decomposes q into a rotation axis and angle:
//
//	θ = 2·acos(w), axis = normalize(v)
//
// The scalar part is clamped into [-1, 1] before acos so accumulated
// rounding from long composition chains cannot produce NaN.
//
// Near the identity rotation (θ ≈ 0 or 2π) the vector part vanishes and the
// axis is inherently undefined; this implementation returns the +X axis by
// convention rather than dividing by (near) zero. Any axis is equally
// correct for a zero-angle rotation.
func (q NQuat[F]) AxisAngle() (vec.Direction3[F], angle.Angle[F]) {
	theta := angle.Radians(2 * scalar.Acos(scalar.Clamp(q.w, -1, 1)))
	axis, err := vec.Direction(q.v)
	if err != nil {
		return vec.XAxis[F](), theta
	}
	return axis, theta
}

package pose

import (
	"github.com/qvetlan/linrot/quat"
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// Pose is a rigid transform: rotate by Orientation, then translate by Point.
// Immutable value semantics like the rest of linrot.
type Pose[F scalar.Float] struct {
	Point       vec.Vec3[F]
	Orientation quat.NQuat[F]
}

// Identity returns the pose at the origin with identity orientation.
func Identity[F scalar.Float]() Pose[F] {
	return Pose[F]{Orientation: quat.Identity[F]()}
}

// Transform maps p from the pose's local frame into the parent frame.
func (a Pose[F]) Transform(p vec.Vec3[F]) vec.Vec3[F] {
	return a.Orientation.Rotate(p).Add(a.Point)
}

// Mul composes two poses: the result applies b first, then a.
func (a Pose[F]) Mul(b Pose[F]) Pose[F] {
	return Pose[F]{
		Point:       a.Transform(b.Point),
		Orientation: a.Orientation.Mul(b.Orientation),
	}
}

// Inverse returns the pose mapping the parent frame back into a's local
// frame, so a.Inverse().Transform(a.Transform(p)) == p.
func (a Pose[F]) Inverse() Pose[F] {
	inv := a.Orientation.Conjugate()
	return Pose[F]{
		Point:       inv.Rotate(a.Point.Neg()),
		Orientation: inv,
	}
}

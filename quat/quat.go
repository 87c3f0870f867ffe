package quat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// Quat is a general quaternion: a vector part V and a scalar part W.
// It carries no invariant — use it for intermediate algebra. For rotations,
// convert to NQuat via Normalize (or construct an NQuat directly).
type Quat[F scalar.Float] struct {
	V vec.Vec3[F]
	W F
}

// New constructs a general quaternion from its vector and scalar parts.
func New[F scalar.Float](v vec.Vec3[F], w F) Quat[F] {
	return Quat[F]{V: v, W: w}
}

// Add returns the componentwise sum q + r.
func (q Quat[F]) Add(r Quat[F]) Quat[F] {
	return Quat[F]{V: q.V.Add(r.V), W: q.W + r.W}
}

// Sub returns the componentwise difference q - r.
func (q Quat[F]) Sub(r Quat[F]) Quat[F] {
	return Quat[F]{V: q.V.Sub(r.V), W: q.W - r.W}
}

// Scale returns q with every component multiplied by s.
func (q Quat[F]) Scale(s F) Quat[F] {
	return Quat[F]{V: q.V.Mul(s), W: q.W * s}
}

// Dot returns the 4-component dot product of q and r.
func (q Quat[F]) Dot(r Quat[F]) F {
	return q.V.Dot(r.V) + q.W*r.W
}

// Conjugate returns q with the vector part negated.
func (q Quat[F]) Conjugate() Quat[F] {
	return Quat[F]{V: q.V.Neg(), W: q.W}
}

// MagnitudeSquared returns |q|².
func (q Quat[F]) MagnitudeSquared() F {
	return q.Dot(q)
}

// Magnitude returns |q|. The magnitude of the zero quaternion is zero.
func (q Quat[F]) Magnitude() F {
	return scalar.Sqrt(q.MagnitudeSquared())
}

// Mul returns the Hamiltonian product q·r:
//
//	(v1,w1)·(v2,w2) = (v1×v2 + v2·w1 + v1·w2, w1·w2 − v1·v2)
//
// Associative, not commutative. This is the sole composition rule:
// "rotate by A then by B" composes as B.Mul(A) under the sandwich
// convention used by NQuat.Rotate.
func (q Quat[F]) Mul(r Quat[F]) Quat[F] {
	return Quat[F]{
		V: q.V.Cross(r.V).Add(r.V.Mul(q.W)).Add(q.V.Mul(r.W)),
		W: q.W*r.W - q.V.Dot(r.V),
	}
}

// Normalize returns q scaled to unit magnitude as an NQuat, or
// ErrZeroQuaternion when |q| == 0.
func (q Quat[F]) Normalize() (NQuat[F], error) {
	mag := q.Magnitude()
	if mag == 0 {
		return NQuat[F]{}, ErrZeroQuaternion
	}
	u := q.Scale(1 / mag)
	return NQuat[F]{v: u.V, w: u.W}, nil
}

package quat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// unitULPs is the tolerance, in representable-value steps around 1.0, within
// which NewNQuat accepts a magnitude as unit.
const unitULPs = 8

// NQuat is a unit-magnitude quaternion representing a rotation in 3-space.
// The fields are unexported: an NQuat is only ever created through a
// constructor that establishes the invariant or an operation that provably
// preserves it, and is never bit-patched afterwards.
//
// The zero value is not a valid NQuat; use Identity.
type NQuat[F scalar.Float] struct {
	v vec.Vec3[F]
	w F
}

// NewNQuat validates that (v, w) has unit magnitude (within a fixed number
// of ULPs around 1.0) and wraps it as an NQuat. Returns ErrNotNormalized
// otherwise — never silently renormalizes, so upstream bugs surface at the
// boundary. Callers holding a non-unit quaternion on purpose should use
// Quat.Normalize instead.
func NewNQuat[F scalar.Float](v vec.Vec3[F], w F) (NQuat[F], error) {
	mag := scalar.Sqrt(v.Dot(v) + w*w)
	if !scalar.EqualWithinULP(mag, 1, unitULPs) {
		return NQuat[F]{}, ErrNotNormalized
	}
	return NQuat[F]{v: v, w: w}, nil
}

// Identity returns the identity rotation (v=0, w=1).
func Identity[F scalar.Float]() NQuat[F] {
	return NQuat[F]{w: 1}
}

// V returns the vector part.
func (q NQuat[F]) V() vec.Vec3[F] {
	return q.v
}

// W returns the scalar part.
func (q NQuat[F]) W() F {
	return q.w
}

// Quat unwraps q into a general quaternion for intermediate algebra.
func (q NQuat[F]) Quat() Quat[F] {
	return Quat[F]{V: q.v, W: q.w}
}

// Conjugate returns the inverse rotation. For a unit quaternion the
// conjugate is the inverse, and negating the vector part preserves unit
// magnitude, so the invariant holds by construction.
func (q NQuat[F]) Conjugate() NQuat[F] {
	return NQuat[F]{v: q.v.Neg(), w: q.w}
}

// Magnitude returns |q|, which is 1 up to floating error.
func (q NQuat[F]) Magnitude() F {
	return scalar.Sqrt(q.v.Dot(q.v) + q.w*q.w)
}

// Mul returns the Hamiltonian product q·r. The product of two unit
// quaternions has unit magnitude (up to floating error), so the result is
// an NQuat without revalidation or renormalization — renormalizing here
// would mask non-unit input sneaking in upstream.
//
// "Rotate by A then by B" composes as B.Mul(A).
func (q NQuat[F]) Mul(r NQuat[F]) NQuat[F] {
	return NQuat[F]{
		v: q.v.Cross(r.v).Add(r.v.Mul(q.w)).Add(q.v.Mul(r.w)),
		w: q.w*r.w - q.v.Dot(r.v),
	}
}

// Rotate applies the rotation q to the vector p. This is the closed-form
// expansion of the sandwich product q·p·q⁻¹ specialized for unit q (where
// q⁻¹ == conjugate), avoiding an intermediate pure quaternion for p:
//
//	p·(w² − |v|²) + v·(2(p·v)) + (v×p)·(2w)
func (q NQuat[F]) Rotate(p vec.Vec3[F]) vec.Vec3[F] {
	return p.Mul(q.w*q.w - q.v.Dot(q.v)).
		Add(q.v.Mul(2 * p.Dot(q.v))).
		Add(q.v.Cross(p).Mul(2 * q.w))
}

// ApproxEqual reports whether q and r are componentwise equal within tol.
// Note the double cover: q and q.Neg() represent the same rotation but are
// not componentwise equal; use EqualRotation to compare rotations.
func (q NQuat[F]) ApproxEqual(r NQuat[F], tol scalar.Tolerance) bool {
	return scalar.Within(q.v.X, r.v.X, tol) &&
		scalar.Within(q.v.Y, r.v.Y, tol) &&
		scalar.Within(q.v.Z, r.v.Z, tol) &&
		scalar.Within(q.w, r.w, tol)
}

// Neg returns the antipodal representative -q, which encodes the same
// rotation (double cover of SO(3)).
func (q NQuat[F]) Neg() NQuat[F] {
	return NQuat[F]{v: q.v.Neg(), w: -q.w}
}

// EqualRotation reports whether q and r represent the same rotation within
// tol, accepting either representative of the double cover.
func (q NQuat[F]) EqualRotation(r NQuat[F], tol scalar.Tolerance) bool {
	return q.ApproxEqual(r, tol) || q.ApproxEqual(r.Neg(), tol)
}

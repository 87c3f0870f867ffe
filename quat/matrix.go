package quat

import (
	"github.com/qvetlan/linrot/mat"
	"github.com/qvetlan/linrot/scalar"
)

// Mat3 expands q into the equivalent 3x3 rotation matrix:
//
//	| 1-2(y²+z²)   2(xy-wz)     2(xz+wy)   |
//	| 2(xy+wz)     1-2(x²+z²)   2(yz-wx)   |
//	| 2(xz-wy)     2(yz+wx)     1-2(x²+y²) |
//
// q and q.Neg() expand to the same matrix (double cover).
func (q NQuat[F]) Mat3() mat.Mat3[F] {
	x, y, z, w := q.v.X, q.v.Y, q.v.Z, q.w
	x2, y2, z2 := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return mat.New3(
		1-2*(y2+z2), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(x2+z2), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(x2+y2),
	)
}

// FromMat3 extracts the unit quaternion encoded by the rotation matrix m.
// m must be orthonormal (a proper rotation); the result then satisfies the
// unit invariant by construction, which is why this conversion may build an
// NQuat directly.
//
// It uses the four-branch largest-diagonal-term algorithm: first try the
// trace, otherwise derive the component matching the largest diagonal entry
// first. The branch choice guarantees the divisor 4·q_major is the largest
// of the four candidate magnitudes, bounding the error in the derived
// components.
//
// The result may be the negation/conjugate of the quaternion m was built
// from — both encode the same matrix. No sign canonicalization is applied;
// compare rotations with EqualRotation.
func FromMat3[F scalar.Float](m mat.Mat3[F]) NQuat[F] {
	m00, m11, m22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)

	var q NQuat[F]
	switch {
	case m00+m11+m22 > 0:
		w := scalar.Sqrt(m00+m11+m22+1) / 2
		f := 1 / (4 * w)
		q.w = w
		q.v.X = (m.At(2, 1) - m.At(1, 2)) * f
		q.v.Y = (m.At(0, 2) - m.At(2, 0)) * f
		q.v.Z = (m.At(1, 0) - m.At(0, 1)) * f
	case m00 >= m11 && m00 >= m22:
		x := scalar.Sqrt(m00-m11-m22+1) / 2
		f := 1 / (4 * x)
		q.v.X = x
		q.w = (m.At(2, 1) - m.At(1, 2)) * f
		q.v.Y = (m.At(0, 1) + m.At(1, 0)) * f
		q.v.Z = (m.At(0, 2) + m.At(2, 0)) * f
	case m11 >= m22:
		y := scalar.Sqrt(m11-m00-m22+1) / 2
		f := 1 / (4 * y)
		q.v.Y = y
		q.w = (m.At(0, 2) - m.At(2, 0)) * f
		q.v.X = (m.At(0, 1) + m.At(1, 0)) * f
		q.v.Z = (m.At(1, 2) + m.At(2, 1)) * f
	default:
		z := scalar.Sqrt(m22-m00-m11+1) / 2
		f := 1 / (4 * z)
		q.v.Z = z
		q.w = (m.At(1, 0) - m.At(0, 1)) * f
		q.v.X = (m.At(0, 2) + m.At(2, 0)) * f
		q.v.Y = (m.At(1, 2) + m.At(2, 1)) * f
	}
	return q
}

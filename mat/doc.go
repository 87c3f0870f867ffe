// Package mat implements fixed-size 2x2, 3x3 and 4x4 matrices with
// determinant, inverse and transpose, plus the rotation/reflection/scale
// constructors a 3D pipeline needs.
//
// 🚀 What is mat?
//
//	The square-matrix kernel of linrot:
//	  • Mat2 / Mat3 / Mat4 — value types, generic over float32/float64
//	  • Determinant via cofactor expansion (exact for exact inputs)
//	  • Inverse via the adjugate/determinant identity; singular matrices
//	    (determinant exactly zero) return ErrSingular, never a NaN-filled
//	    result
//	  • Mat×Mat, Mat×Vec, Add, Scale, Transposed
//	  • Mat3 rotation constructors: about X/Y/Z, about an arbitrary axis
//
// ✨ Storage contract:
//
//	Matrices are stored column-major internally (vectors laid out
//	contiguously, ready for GPU upload) but the public API is row-major:
//	the New* constructors take scalars in the order matrices are written
//	on paper, and At(row, col) indexes the same way. The storage order is
//	an implementation detail hidden behind unexported fields.
//
// ⚙️ Usage:
//
//	import "github.com/qvetlan/linrot/mat"
//
//	m := mat.New3(7.0, 2, 1, 0, 3, -1, -3, 4, -2)
//	inv, err := m.Inverse() // errors.Is(err, mat.ErrSingular) when det == 0
//
// Singularity is detected by exact determinant comparison with zero, not by
// epsilon: near-singular filtering is the caller's policy decision.
package mat

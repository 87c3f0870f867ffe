// Package quat implements quaternions and the rotation-representation
// conversions built on them: unit quaternion ↔ rotation matrix ↔ axis-angle,
// plus composition and vector rotation.
//
// 🚀 What is quat?
//
//	Two types with a deliberate division of labor:
//	  • Quat  — a general 4-component hypercomplex number with no invariant.
//	    Use it for intermediate algebra (sums, scaling, differences) that
//	    does not preserve unit norm.
//	  • NQuat — a quaternion carrying the invariant |q| == 1, the canonical
//	    composable rotation form. Only constructible through the validating
//	    NewNQuat or through operations proven to preserve the invariant:
//	    composition of two NQuats, FromAxisAngle, FromDirections, FromMat3.
//
// ✨ Why two types?
//
//   - Rotation application can skip renormalization: Rotate uses the
//     closed-form sandwich product specialized for unit q (q⁻¹ == conjugate)
//   - Composition stays cheap — the product of two unit quaternions has unit
//     norm, so Mul neither re-checks nor renormalizes. Renormalizing by
//     default would mask upstream bugs; NewNQuat rejects non-unit input
//     with ErrNotNormalized instead of silently fixing it
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/qvetlan/linrot/angle"
//	  "github.com/qvetlan/linrot/quat"
//	  "github.com/qvetlan/linrot/vec"
//	)
//
//	q := quat.FromAxisAngle(vec.XAxis[float64](), angle.Degrees(90.0))
//	p := q.Rotate(vec.New3(10.0, 5, 3)) // (10, -3, 5)
//	m := q.Mat3()                       // hand off to the render pipeline
//
// Double cover: q and -q represent the same rotation, so FromMat3 may
// recover the conjugate/negation of the quaternion a matrix was built from.
// Round-trip comparisons must accept either representative. FromMat3 does
// not canonicalize sign.
//
// Numerical notes: FromMat3 uses the four-branch largest-diagonal extraction
// so the divisor is always the largest of the four candidate magnitudes;
// FromDirections uses the half-angle form that avoids the cancellation of a
// naive acos-then-axis-angle construction.
package quat

// Package linrot is a compact linear-algebra kernel for 3D graphics and
// simulation — fixed-size vectors and matrices, angles, and rotation
// representations built around the unit quaternion.
//
// 🚀 What is linrot?
//
//	A generic (float32/float64), allocation-free library that brings together:
//		• Vector kernel: Vec2/Vec3/Vec4 with dot, cross, normalization
//		• Matrix kernel: Mat2/Mat3/Mat4 — determinant, inverse, transpose
//		• Angles: a radians-backed scalar with degree/cycle conversions
//		• Rotations: quaternions, unit quaternions, axis-angle, matrices,
//		  and numerically-stable conversions between all three forms
//		• Poses: a point + orientation pair for rigid transforms
//
// ✨ Why choose linrot?
//
//   - Invariants in the type system – Direction3 and NQuat are only
//     constructible through validating or invariant-preserving paths
//   - Numerically careful – largest-diagonal quaternion extraction,
//     half-angle shortest-arc construction, ULP-based equality
//   - Pure value types – immutable, safe for unrestricted concurrent use
//   - Generic over precision – one implementation for float32 and float64
//
// Under the hood, everything is organized into small subpackages:
//
//	scalar/ — the numeric capability set: generic math, ULP comparison
//	vec/    — Vec2, Vec3, Vec4 and the unit-magnitude Direction3
//	mat/    — Mat2, Mat3, Mat4: column-major storage, row-major API
//	angle/  — radians-backed Angle with degree/cycle conversions
//	quat/   — Quat, NQuat and every rotation conversion (the core)
//	pose/   — Pose: translation + orientation, composable
//
// Quick flow: build a rotation in whichever form is convenient (axis+angle
// from input, a matrix from a camera basis), convert it to a unit quaternion
// as the canonical composable form, compose, then convert back to a matrix
// for the rendering or physics pipeline.
//
//	go get github.com/qvetlan/linrot/quat
package linrot

// Package scalar defines the numeric capability set shared by every other
// package in linrot: the Float type constraint, generic wrappers over the
// standard math functions, and approximate floating-point equality.
//
// 🚀 What is scalar?
//
//	The single place where "what must a scalar be able to do" is declared:
//	  • Float — the type set (~float32 | ~float64) all kernels are generic over
//	  • Sqrt, SinCos, Acos, Atan2, Abs, Clamp — width-preserving math helpers
//	  • EqualWithinULP / EqualWithinAbs — tolerant comparison for invariants
//
// ✨ Why a dedicated package?
//
//   - Declared once, reused everywhere – no per-package re-derivation of
//     the numeric trait
//   - ULP (units in the last place) distance is the comparison currency for
//     every invariant check in vec and quat; it scales with the magnitude
//     of the operands, unlike a fixed epsilon
//   - Keeps float32 instantiations honest: helpers convert through float64
//     only where the standard library forces it, and measure ULPs at the
//     operand's own width
//
// ⚙️ Usage:
//
//	import "github.com/qvetlan/linrot/scalar"
//
//	if scalar.EqualWithinULP(mag, 1.0, 4) { ... }
//	s, c := scalar.SinCos(theta)
//
// Determinism: every function is a pure, branch-stable computation; no
// global state, no allocation.
package scalar

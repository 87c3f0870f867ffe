// Package vec implements fixed-size 2-, 3- and 4-component vectors and the
// unit-magnitude Direction3 wrapper.
//
// 🚀 What is vec?
//
//	The leaf kernel everything else in linrot consumes:
//	  • Vec2 / Vec3 / Vec4 — plain value tuples with componentwise
//	    arithmetic, dot product, cross product (3-D), magnitude,
//	    normalization
//	  • Direction3 — a Vec3 carrying the invariant |v| == 1, constructible
//	    only by explicit normalization (never by raw component assignment)
//
// ✨ Why a separate Direction3 type?
//
//   - Code that needs unit input (axis-angle rotation, reflection planes)
//     can demand it in the signature instead of renormalizing defensively
//   - A zero vector cannot become a Direction3: Direction returns
//     ErrZeroVector, so the division-by-zero edge case fails fast at the
//     boundary rather than propagating NaN downstream
//
// ⚙️ Usage:
//
//	import "github.com/qvetlan/linrot/vec"
//
//	v := vec.New3(3.0, 0.0, 4.0)
//	d, err := vec.Direction(v) // (0.6, 0, 0.8)
//
// All types are immutable values; every method returns a new value. Safe
// for unrestricted concurrent use.
package vec

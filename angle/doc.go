// Package angle provides a radians-backed angle type with degree and cycle
// conversions.
//
// 🚀 What is angle?
//
//	A thin scalar wrapper that makes angular units explicit at the type
//	level. Internally everything is radians; Degrees and Cycles exist only
//	at the construction/accessor boundary, so no unit confusion can survive
//	past a call site.
//
// ✨ Key properties:
//   - Not self-normalizing – two full turns is legitimately different from
//     zero (think winding counts, cumulative rotations)
//   - Generic over float32/float64 via scalar.Float
//   - sin/cos/acos/atan2 pass-throughs so trigonometry stays in angle terms
//
// ⚙️ Usage:
//
//	import "github.com/qvetlan/linrot/angle"
//
//	theta := angle.Degrees(90.0)
//	s, c := theta.SinCos()
//	fmt.Println(theta.AsCycles()) // 0.25
//
// Round-trip guarantee: converting through any unit pair reproduces the
// original value within floating tolerance.
package angle

// Package pose pairs a location with an orientation into a rigid transform.
//
// 🚀 What is pose?
//
//	Pose = point + unit quaternion. An orientation is more than a facing
//	vector — it must also resolve which way is up — and a normalized
//	quaternion carries exactly that with no extra state.
//
// ⚙️ Usage:
//
//	import "github.com/qvetlan/linrot/pose"
//
//	cam := pose.Pose[float64]{
//	  Point:       vec.New3(0.0, 1.7, 5),
//	  Orientation: quat.FromAxisAngle(vec.YAxis[float64](), angle.Degrees(180.0)),
//	}
//	world := cam.Transform(local) // rotate, then translate
//
// Composition follows the usual rigid-motion rule: a.Mul(b) applies b first,
// then a, so a.Mul(b).Transform(p) == a.Transform(b.Transform(p)).
package pose

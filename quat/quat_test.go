package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qvetlan/linrot/angle"
	"github.com/qvetlan/linrot/mat"
	"github.com/qvetlan/linrot/quat"
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// TestQuat_Algebra covers the invariant-free operations: add, sub, scale,
// dot, conjugate, magnitude.
func TestQuat_Algebra(t *testing.T) {
	a := quat.New(vec.New3(1.0, 2, 3), 4)
	b := quat.New(vec.New3(5.0, 6, 7), 8)

	assert.Equal(t, quat.New(vec.New3(6.0, 8, 10), 12), a.Add(b))
	assert.Equal(t, quat.New(vec.New3(-4.0, -4, -4), -4), a.Sub(b))
	assert.Equal(t, quat.New(vec.New3(2.0, 4, 6), 8), a.Scale(2))
	assert.Equal(t, 1.0*5+2*6+3*7+4*8, a.Dot(b))
	assert.Equal(t, quat.New(vec.New3(-1.0, -2, -3), 4), a.Conjugate())
	assert.Equal(t, 30.0, a.MagnitudeSquared())
	assert.Equal(t, math.Sqrt(30), a.Magnitude())
}

// TestQuat_HamiltonianProduct verifies the defining identities of the basis
// quaternions: i·j = k, j·i = -k, i·i = -1.
func TestQuat_HamiltonianProduct(t *testing.T) {
	i := quat.New(vec.New3(1.0, 0, 0), 0)
	j := quat.New(vec.New3(0.0, 1, 0), 0)
	k := quat.New(vec.New3(0.0, 0, 1), 0)
	minusOne := quat.New(vec.Vec3[float64]{}, -1)

	assert.Equal(t, k, i.Mul(j), "i·j = k")
	assert.Equal(t, k.Scale(-1), j.Mul(i), "j·i = -k: the product is not commutative")
	assert.Equal(t, minusOne, i.Mul(i), "i² = -1")
}

// TestQuat_MulAssociates verifies associativity on arbitrary operands.
func TestQuat_MulAssociates(t *testing.T) {
	a := quat.New(vec.New3(1.0, 2, 3), 4)
	b := quat.New(vec.New3(-2.0, 1, 0.5), 1)
	c := quat.New(vec.New3(0.0, -1, 2), -3)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	assert.InDelta(t, left.W, right.W, 1e-12)
	assert.InDelta(t, left.V.X, right.V.X, 1e-12)
	assert.InDelta(t, left.V.Y, right.V.Y, 1e-12)
	assert.InDelta(t, left.V.Z, right.V.Z, 1e-12)
}

// TestQuat_Normalize verifies normalization and the zero-quaternion guard.
func TestQuat_Normalize(t *testing.T) {
	n, err := quat.New(vec.Vec3[float64]{}, 2).Normalize()
	require.NoError(t, err)
	assert.Equal(t, quat.Identity[float64](), n)

	_, err = quat.Quat[float64]{}.Normalize()
	assert.ErrorIs(t, err, quat.ErrZeroQuaternion, "the zero quaternion has no direction")

	assert.Equal(t, 0.0, quat.Quat[float64]{}.Magnitude(), "magnitude of the zero quaternion is zero")
}

// TestNewNQuat verifies the unit-magnitude contract: valid unit input is
// accepted, anything else is rejected rather than renormalized.
func TestNewNQuat(t *testing.T) {
	h := math.Sqrt(0.5)
	q, err := quat.NewNQuat(vec.New3(h, 0, 0), h)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, q.Magnitude(), 1e-15)

	_, err = quat.NewNQuat(vec.New3(1.0, 0, 0), 1)
	assert.ErrorIs(t, err, quat.ErrNotNormalized, "magnitude √2 must be rejected")

	_, err = quat.NewNQuat(vec.Vec3[float64]{}, 0.999)
	assert.ErrorIs(t, err, quat.ErrNotNormalized, "0.999 is far more than a few ULPs from 1")
}

// TestNQuat_RotateQuarterTurn is the end-to-end physical check: axis
// (1,0,0), angle 90°, rotating (10,5,3) yields (10,-3,5).
func TestNQuat_RotateQuarterTurn(t *testing.T) {
	q := quat.FromAxisAngle(vec.XAxis[float64](), angle.Degrees(90.0))
	p := q.Rotate(vec.New3(10.0, 5, 3))
	assert.InDelta(t, 10.0, p.X, 1e-12)
	assert.InDelta(t, -3.0, p.Y, 1e-12)
	assert.InDelta(t, 5.0, p.Z, 1e-12)
}

// TestNQuat_RotateMatchesMatrix verifies that Rotate agrees with expanding
// to a matrix and multiplying, across a spread of rotations.
func TestNQuat_RotateMatchesMatrix(t *testing.T) {
	axis, err := vec.Direction(vec.New3(1.0, -2, 0.5))
	require.NoError(t, err)
	p := vec.New3(3.0, -1, 7)

	for _, deg := range []float64{10, 45, 90, 135, 200, 340} {
		q := quat.FromAxisAngle(axis, angle.Degrees(deg))
		fromQuat := q.Rotate(p)
		fromMat := q.Mat3().MulVec(p)
		assert.InDelta(t, fromMat.X, fromQuat.X, 1e-12, "angle %v", deg)
		assert.InDelta(t, fromMat.Y, fromQuat.Y, 1e-12, "angle %v", deg)
		assert.InDelta(t, fromMat.Z, fromQuat.Z, 1e-12, "angle %v", deg)
	}
}

// TestNQuat_ConjugateInverts verifies that the conjugate undoes a rotation.
func TestNQuat_ConjugateInverts(t *testing.T) {
	q := quat.FromAxisAngle(vec.ZAxis[float64](), angle.Degrees(73.0))
	p := vec.New3(1.0, 2, 3)
	back := q.Conjugate().Rotate(q.Rotate(p))
	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
	assert.InDelta(t, p.Z, back.Z, 1e-12)
}

// TestNQuat_CompositionPreservesNorm verifies that long composition chains
// keep the magnitude at 1 without any renormalization.
func TestNQuat_CompositionPreservesNorm(t *testing.T) {
	axes := []vec.Direction3[float64]{vec.XAxis[float64](), vec.YAxis[float64](), vec.ZAxis[float64]()}
	q := quat.Identity[float64]()
	for i := 0; i < 300; i++ {
		q = quat.FromAxisAngle(axes[i%3], angle.Degrees(float64(i)*7.3)).Mul(q)
	}
	assert.InDelta(t, 1.0, q.Magnitude(), 1e-12, "product of unit quaternions stays unit")
}

// TestNQuat_ComposeOrder verifies the convention "rotate by A then B
// composes as B·A" on a concrete pair of quarter turns.
func TestNQuat_ComposeOrder(t *testing.T) {
	a := quat.FromAxisAngle(vec.XAxis[float64](), angle.Degrees(90.0))
	b := quat.FromAxisAngle(vec.YAxis[float64](), angle.Degrees(90.0))
	p := vec.New3(0.0, 0, 1)

	sequential := b.Rotate(a.Rotate(p))
	composed := b.Mul(a).Rotate(p)
	assert.InDelta(t, sequential.X, composed.X, 1e-12)
	assert.InDelta(t, sequential.Y, composed.Y, 1e-12)
	assert.InDelta(t, sequential.Z, composed.Z, 1e-12)
}

// TestAxisAngle_RoundTrip verifies from_axis_angle → as_axis_angle
// reproduces the input for angles away from the 0/2π singularity.
func TestAxisAngle_RoundTrip(t *testing.T) {
	axis, err := vec.Direction(vec.New3(2.0, -1, 3))
	require.NoError(t, err)

	for _, deg := range []float64{5, 30, 90, 120, 179, 270, 355} {
		q := quat.FromAxisAngle(axis, angle.Degrees(deg))
		gotAxis, gotAngle := q.AxisAngle()

		wantAxis := axis.Vec3()
		assert.InDelta(t, deg, gotAngle.AsDegrees(), 1e-9, "angle for %v°", deg)
		assert.InDelta(t, wantAxis.X, gotAxis.Vec3().X, 1e-12, "axis.X for %v°", deg)
		assert.InDelta(t, wantAxis.Y, gotAxis.Vec3().Y, 1e-12, "axis.Y for %v°", deg)
		assert.InDelta(t, wantAxis.Z, gotAxis.Vec3().Z, 1e-12, "axis.Z for %v°", deg)
	}
}

// TestAxisAngle_Identity verifies the documented convention at the
// degenerate point: the identity rotation reports the +X axis and zero angle.
func TestAxisAngle_Identity(t *testing.T) {
	axis, theta := quat.Identity[float64]().AxisAngle()
	assert.Equal(t, vec.XAxis[float64](), axis)
	assert.Equal(t, 0.0, theta.AsRadians())
}

// TestFromDirections covers the shortest-arc construction: quarter turn,
// coincident directions, and the antipodal failure.
func TestFromDirections(t *testing.T) {
	x := vec.XAxis[float64]()
	y := vec.YAxis[float64]()

	// X onto Y: a 90° turn about Z.
	q, err := quat.FromDirections(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, q.Magnitude(), 1e-15, "unit by construction")
	got := q.Rotate(x.Vec3())
	assert.InDelta(t, y.Vec3().X, got.X, 1e-12)
	assert.InDelta(t, y.Vec3().Y, got.Y, 1e-12)
	assert.InDelta(t, y.Vec3().Z, got.Z, 1e-12)
	_, theta := q.AxisAngle()
	assert.InDelta(t, 90.0, theta.AsDegrees(), 1e-9)

	// start == end: the identity rotation.
	q, err = quat.FromDirections(x, x)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(quat.Identity[float64](), scalar.DefaultTolerance()))

	// Antipodal: no unique shortest rotation exists.
	_, err = quat.FromDirections(x, x.Neg())
	assert.ErrorIs(t, err, quat.ErrOppositeDirections)
}

// TestFromDirections_ArbitraryPair verifies the construction on a
// non-orthogonal pair: the result must carry start onto end.
func TestFromDirections_ArbitraryPair(t *testing.T) {
	start, err := vec.Direction(vec.New3(1.0, 2, -0.5))
	require.NoError(t, err)
	end, err := vec.Direction(vec.New3(-3.0, 0.25, 1))
	require.NoError(t, err)

	q, err := quat.FromDirections(start, end)
	require.NoError(t, err)
	got := q.Rotate(start.Vec3())
	assert.InDelta(t, end.Vec3().X, got.X, 1e-12)
	assert.InDelta(t, end.Vec3().Y, got.Y, 1e-12)
	assert.InDelta(t, end.Vec3().Z, got.Z, 1e-12)
	assert.InDelta(t, 1.0, q.Magnitude(), 1e-12)
}

// TestMat3_IdentityQuat verifies that the identity quaternion expands to the
// identity matrix.
func TestMat3_IdentityQuat(t *testing.T) {
	m := quat.Identity[float64]().Mat3()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if row == col {
				want = 1.0
			}
			assert.Equal(t, want, m.At(row, col))
		}
	}
}

// TestMat3_MatchesAxisAngleMatrix verifies the quaternion expansion against
// the independent Rodrigues construction in mat.
func TestMat3_MatchesAxisAngleMatrix(t *testing.T) {
	axis, err := vec.Direction(vec.New3(1.0, 1, 1))
	require.NoError(t, err)
	theta := angle.Degrees(50.0)

	fromQuat := quat.FromAxisAngle(axis, theta).Mat3()
	rodrigues := mat.RotationAxisAngle(axis, theta)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.InDelta(t, rodrigues.At(row, col), fromQuat.At(row, col), 1e-12, "element (%d,%d)", row, col)
		}
	}
}

// TestFromMat3_RoundTrip verifies matrix → quaternion → matrix identity, and
// quaternion → matrix → quaternion up to the double cover, for rotations
// that exercise all four extraction branches.
func TestFromMat3_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		axis vec.Vec3[float64]
		deg  float64
	}{
		{"trace branch (small angle)", vec.New3(1.0, 2, 3), 20},
		{"x branch (near half-turn about x)", vec.New3(1.0, 0.05, 0.05), 179},
		{"y branch (near half-turn about y)", vec.New3(0.05, 1, 0.05), 179},
		{"z branch (near half-turn about z)", vec.New3(0.05, 0.05, 1), 179},
		{"exact half-turn about x", vec.New3(1.0, 0, 0), 180},
		{"exact half-turn about y", vec.New3(0.0, 1, 0), 180},
		{"exact half-turn about z", vec.New3(0.0, 0, 1), 180},
		{"large angle", vec.New3(-1.0, 4, 2), 310},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			axis, err := vec.Direction(tc.axis)
			require.NoError(t, err)
			q := quat.FromAxisAngle(axis, angle.Degrees(tc.deg))
			m := q.Mat3()

			back := quat.FromMat3(m)
			assert.InDelta(t, 1.0, back.Magnitude(), 1e-12, "extraction preserves unit norm")
			assert.True(t, back.EqualRotation(q, scalar.Tolerance{ULPs: 64, AbsEps: 1e-12}),
				"recovered quaternion must match q or -q")

			m2 := back.Mat3()
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					assert.InDelta(t, m.At(row, col), m2.At(row, col), 1e-12, "element (%d,%d)", row, col)
				}
			}
		})
	}
}

// TestNQuat_Float32 exercises the single-precision instantiation through a
// rotation and a matrix round trip.
func TestNQuat_Float32(t *testing.T) {
	q := quat.FromAxisAngle(vec.XAxis[float32](), angle.Degrees[float32](90))
	p := q.Rotate(vec.New3[float32](10, 5, 3))
	assert.InDelta(t, 10.0, float64(p.X), 1e-5)
	assert.InDelta(t, -3.0, float64(p.Y), 1e-5)
	assert.InDelta(t, 5.0, float64(p.Z), 1e-5)

	back := quat.FromMat3(q.Mat3())
	assert.True(t, back.EqualRotation(q, scalar.Tolerance{ULPs: 64}), "float32 round trip up to double cover")
}

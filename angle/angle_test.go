package angle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qvetlan/linrot/angle"
)

// TestRoundTrip_AllUnitPairs verifies that converting an angle through every
// unit pair reproduces the original value within floating tolerance.
func TestRoundTrip_AllUnitPairs(t *testing.T) {
	for _, deg := range []float64{-720, -90, -33.5, 0, 1, 45, 90, 180, 359, 360, 1080} {
		a := angle.Degrees(deg)
		assert.InDelta(t, deg, angle.Radians(a.AsRadians()).AsDegrees(), 1e-12, "degrees→radians→degrees (%v)", deg)
		assert.InDelta(t, deg, angle.Cycles(a.AsCycles()).AsDegrees(), 1e-12, "degrees→cycles→degrees (%v)", deg)
	}
	for _, cyc := range []float64{-2, -0.25, 0, 0.5, 1, 3.75} {
		a := angle.Cycles(cyc)
		assert.InDelta(t, cyc, angle.Radians(a.AsRadians()).AsCycles(), 1e-12, "cycles→radians→cycles (%v)", cyc)
	}
}

// TestRoundTrip_Float32 repeats the unit round trip at single precision.
func TestRoundTrip_Float32(t *testing.T) {
	for _, deg := range []float32{-90, 0, 45, 360} {
		a := angle.Degrees(deg)
		assert.InDelta(t, float64(deg), float64(a.AsDegrees()), 1e-4)
		assert.InDelta(t, float64(deg), float64(angle.Cycles(a.AsCycles()).AsDegrees()), 1e-3)
	}
}

// TestNoNormalization confirms the documented non-invariant: two full turns
// is a different angle from zero.
func TestNoNormalization(t *testing.T) {
	assert.NotEqual(t, angle.Degrees(0.0), angle.Degrees(720.0), "angles do not self-normalize")
	assert.InDelta(t, 2.0, angle.Degrees(720.0).AsCycles(), 1e-12)
}

// TestTrig verifies the trigonometric pass-throughs.
func TestTrig(t *testing.T) {
	right := angle.Degrees(90.0)
	s, c := right.SinCos()
	assert.InDelta(t, 1.0, s, 1e-15)
	assert.InDelta(t, 0.0, c, 1e-15)
	assert.InDelta(t, right.Sin(), s, 1e-15)
	assert.InDelta(t, right.Cos(), c, 1e-15)

	assert.InDelta(t, math.Pi/2, angle.Acos(0.0).AsRadians(), 1e-15)
	assert.InDelta(t, math.Pi/4, angle.Atan2(1.0, 1.0).AsRadians(), 1e-15)
	assert.True(t, math.IsNaN(angle.Acos(1.5).AsRadians()), "acos outside [-1,1] propagates NaN")
}

// TestArithmetic covers Add/Sub/Scale/Neg.
func TestArithmetic(t *testing.T) {
	a := angle.Degrees(30.0)
	b := angle.Degrees(60.0)
	assert.InDelta(t, 90.0, a.Add(b).AsDegrees(), 1e-12)
	assert.InDelta(t, -30.0, a.Sub(b).AsDegrees(), 1e-12)
	assert.InDelta(t, 15.0, a.Scale(0.5).AsDegrees(), 1e-12)
	assert.InDelta(t, -30.0, a.Neg().AsDegrees(), 1e-12)
}

package scalar

import (
	"math"
	"unsafe"
)

// Tolerance bundles the two tolerance measures used for approximate
// floating-point equality: a maximum ULP (units in the last place) distance
// and an optional absolute epsilon. A comparison passes when either measure
// accepts it.
//
// Fields:
//   - ULPs   — maximum permitted distance in representable-value steps.
//   - AbsEps — absolute difference accepted regardless of ULP distance
//     (useful near zero, where ULP distance explodes). Zero disables it.
type Tolerance struct {
	ULPs   uint64
	AbsEps float64
}

// DefaultTolerance returns the tolerance used by linrot's own invariant
// checks: 4 ULPs, no absolute epsilon.
func DefaultTolerance() Tolerance {
	return Tolerance{ULPs: 4}
}

// Within reports whether a and b are approximately equal under tol.
func Within[F Float](a, b F, tol Tolerance) bool {
	if tol.AbsEps > 0 && EqualWithinAbs(a, b, F(tol.AbsEps)) {
		return true
	}
	return EqualWithinULP(a, b, tol.ULPs)
}

// EqualWithinAbs reports whether |a-b| <= eps.
func EqualWithinAbs[F Float](a, b, eps F) bool {
	return Abs(a-b) <= eps
}

// EqualWithinULP reports whether a and b are within ulps representable
// values of one another at the width of F. NaN is never equal to anything;
// +0 and -0 are equal. Infinities compare equal only to themselves.
func EqualWithinULP[F Float](a, b F, ulps uint64) bool {
	return ULPDistance(a, b) <= ulps
}

// ULPDistance returns the distance between a and b in representable values
// of F. The distance between +0 and -0 is zero. If either operand is NaN
// the distance is math.MaxUint64.
func ULPDistance[F Float](a, b F) uint64 {
	if unsafe.Sizeof(a) == 4 {
		return ulpDistance32(float32(a), float32(b))
	}
	return ulpDistance64(float64(a), float64(b))
}

// orderedBits64 maps the IEEE-754 bit pattern of f onto a signed integer
// whose ordering matches the numeric ordering of floats, so ULP distance
// becomes plain integer subtraction. Both zeros map to 0.
func orderedBits64(f float64) int64 {
	i := int64(math.Float64bits(f))
	if i < 0 {
		i = math.MinInt64 - i
	}
	return i
}

func orderedBits32(f float32) int32 {
	i := int32(math.Float32bits(f))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return i
}

func ulpDistance64(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	ia, ib := orderedBits64(a), orderedBits64(b)
	if ia < ib {
		ia, ib = ib, ia
	}
	// Unsigned subtraction is exact even when ia-ib would overflow int64.
	return uint64(ia) - uint64(ib)
}

func ulpDistance32(a, b float32) uint64 {
	if a != a || b != b { // NaN
		return math.MaxUint64
	}
	ia, ib := orderedBits32(a), orderedBits32(b)
	if ia < ib {
		ia, ib = ib, ia
	}
	return uint64(uint32(ia) - uint32(ib))
}

package quat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// FromDirections builds the shortest rotation carrying start onto end.
//
// It uses the numerically-stable half-angle form
//
//	e = start·end, term = √(2(1+e)), v = start×end / term, w = term/2
//
// which avoids the angle-doubling cancellation of a naive
// acos-then-axis-angle construction, and is unit by construction.
//
// Returns ErrOppositeDirections when the directions are antipodal (e ≤ −1):
// every axis perpendicular to start gives an equally short half-turn, so no
// unique rotation exists. Callers hitting this case must pick an axis
// themselves.
func FromDirections[F scalar.Float](start, end vec.Direction3[F]) (NQuat[F], error) {
	e := start.Dot(end)
	if e <= -1 {
		return NQuat[F]{}, ErrOppositeDirections
	}
	term := scalar.Sqrt(2 * (1 + e))
	return NQuat[F]{
		v: start.Cross(end).Div(term),
		w: term / 2,
	}, nil
}

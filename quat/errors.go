package quat

import "errors"

// Sentinel errors for quat operations.
var (
	// ErrNotNormalized indicates NewNQuat received components whose
	// magnitude is not 1 within the unit tolerance. The constructor never
	// silently renormalizes; fix the producer instead.
	ErrNotNormalized = errors.New("quat: quaternion is not unit magnitude")

	// ErrZeroQuaternion indicates an attempt to normalize the zero
	// quaternion, which has no direction.
	ErrZeroQuaternion = errors.New("quat: cannot normalize a zero quaternion")

	// ErrOppositeDirections indicates FromDirections received antipodal
	// directions: infinitely many equally-short rotations exist, so there
	// is no unique answer.
	ErrOppositeDirections = errors.New("quat: directions are opposite, rotation is ambiguous")
)

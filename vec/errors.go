package vec

import "errors"

// Sentinel errors for vec operations.
var (
	// ErrZeroVector indicates an attempt to normalize a vector of zero
	// magnitude (including building a Direction3 from one).
	ErrZeroVector = errors.New("vec: cannot normalize a zero vector")
)

package mat

import "errors"

// Sentinel errors for mat operations.
var (
	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero: no inverse exists. Callers that need epsilon-based filtering of
	// near-singular matrices must pre-check the determinant themselves.
	ErrSingular = errors.New("mat: singular matrix")
)

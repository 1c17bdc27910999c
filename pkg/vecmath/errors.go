package vecmath

import "errors"

var (
	// ErrInvalidVector reports a value that is not an accepted vector
	// representation: anything with fewer than 2 or more than 3 components.
	ErrInvalidVector = errors.New("not an accepted representation of a vector")

	// ErrDimensionMismatch reports addition over vectors whose dimensions
	// disagree while mismatch fixing is disabled.
	ErrDimensionMismatch = errors.New("vector dimensions do not match")
)

package vecmath

import "fmt"

// AddCartesian sums one or more Cartesian vectors componentwise. The first
// vector fixes the base dimension (2 or 3) and with it the shape of the
// result. When operand dimensions disagree the whole sum fails unless
// fixDimensionMismatch is set, in which case a 3D operand over a 2D base
// contributes only x and y, and a 2D operand under a 3D base counts z as 0.
// A single operand is validated and returned as a copy.
//
// Any failure, validation or mismatch alike, yields the empty vector; use
// AddCartesianStrict to tell them apart.
func AddCartesian(fixDimensionMismatch bool, vectors ...Vector) Vector {
	out, _ := AddCartesianStrict(fixDimensionMismatch, vectors...)
	return out
}

// AddCartesianStrict is AddCartesian with the failure exposed: the error
// wraps ErrInvalidVector or ErrDimensionMismatch.
func AddCartesianStrict(fixDimensionMismatch bool, vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return Vector{}, fmt.Errorf("no vectors given: %w", ErrInvalidVector)
	}

	if ok, err := Validate(vectors[0], true); !ok {
		return Vector{}, err
	}
	if len(vectors) == 1 {
		return vectors[0].Clone(), nil
	}

	baseDim := len(vectors[0])
	result := make(Vector, baseDim)
	for _, v := range vectors {
		if ok, err := Validate(v, true); !ok {
			return Vector{}, err
		}
		if len(v) != baseDim && !fixDimensionMismatch {
			return Vector{}, fmt.Errorf("%d vs base %d: %w", len(v), baseDim, ErrDimensionMismatch)
		}

		result[0] += v[0]
		result[1] += v[1]
		if baseDim == 3 && len(v) == 3 {
			result[2] += v[2]
		}
	}
	return result, nil
}

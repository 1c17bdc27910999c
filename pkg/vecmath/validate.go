package vecmath

import "fmt"

// Validate reports whether v qualifies as a raw vector: exactly 2 or 3
// components. With reportError unset a failed check returns (false, nil)
// and has no other effect; with it set the error wraps ErrInvalidVector
// and carries the offending length.
//
// Component values are not inspected. NaN or Inf components pass here and
// surface later, inside whatever arithmetic consumes them.
func Validate(v Vector, reportError bool) (bool, error) {
	if 1 < len(v) && len(v) < 4 {
		return true, nil
	}
	if reportError {
		return false, fmt.Errorf("length %d: %w", len(v), ErrInvalidVector)
	}
	return false, nil
}

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"nil", nil, false},
		{"empty", Vector{}, false},
		{"one component", Vector{1}, false},
		{"two components", Vector{1, 2}, true},
		{"three components", Vector{1, 2, 3}, true},
		{"four components", Vector{1, 2, 3, 4}, false},
		{"five components", Vector{1, 2, 3, 4, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Validate(tt.v, false)
			require.NoError(t, err, "silent mode must never return an error")
			assert.Equal(t, tt.valid, ok)

			ok, err = Validate(tt.v, true)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidVector)
			}
		})
	}
}

func TestValidateIgnoresComponentValues(t *testing.T) {
	// Only the length is gated; malformed numbers surface later, in the
	// arithmetic that consumes them.
	ok, err := Validate(Vector{math.NaN(), math.Inf(1)}, true)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Package vecmath implements coordinate conversions and addition for raw
// 2D/3D vectors held as plain float64 sequences rather than a dedicated
// vector type. Supported operations are Cartesian <-> Polar/Spherical
// conversion and componentwise addition; vectors in other dimensions are
// not supported.
//
// Every function is pure: inputs are never mutated and results are newly
// allocated, so concurrent use needs no coordination.
package vecmath

import "math"

// Vector is a raw vector representation: an ordered sequence of exactly 2
// or 3 components. Whether a value is read as Cartesian, Polar or Spherical
// is decided by the function it is passed to, never by the value itself.
type Vector []float64

// Clone returns a copy of v sharing no memory with it.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

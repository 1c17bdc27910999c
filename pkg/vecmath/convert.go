package vecmath

import "math"

// ToCartesian converts a vector in Polar (2D) or Spherical (3D) coordinates
// to Cartesian coordinates. Angles are in degrees. A 3D input is read in the
// mathematics ordering (radius, azimuth, inclination); set physics to read
// the physics ordering (radius, inclination, azimuth) instead. An invalid
// input yields the empty vector; use ToCartesianStrict to observe the error.
func ToCartesian(v Vector, physics bool) Vector {
	out, _ := ToCartesianStrict(v, physics)
	return out
}

// ToCartesianStrict is ToCartesian with the validation error exposed.
func ToCartesianStrict(v Vector, physics bool) (Vector, error) {
	if ok, err := Validate(v, true); !ok {
		return Vector{}, err
	}

	if len(v) == 2 {
		r, ang := v[0], radians(v[1])
		return Vector{r * math.Cos(ang), r * math.Sin(ang)}, nil
	}

	azimuth, inclin := v[1], v[2]
	if physics {
		azimuth, inclin = v[2], v[1]
	}
	return Vector{
		v[0] * math.Sin(radians(inclin)) * math.Cos(radians(azimuth)),
		v[0] * math.Sin(radians(inclin)) * math.Sin(radians(azimuth)),
		v[0] * math.Cos(radians(inclin)),
	}, nil
}

// ToPolar converts a vector in Cartesian coordinates to Polar (2D) or
// Spherical (3D) coordinates, angles in degrees. 3D results use the
// mathematics ordering (radius, azimuth, inclination) unless physics is
// set, which swaps the last two. An invalid input yields the empty vector;
// use ToPolarStrict to observe the error.
//
// The angle against the x-axis is computed with the single-argument
// arctangent and therefore lives in -90..90 degrees: vectors that differ by
// 180 degrees map to the same angle. x == 0 maps to +90 for y > 0 and -90
// otherwise, the origin included. Both are inherited behavior and kept as
// is. A zero-radius 3D input produces a NaN inclination.
func ToPolar(v Vector, physics bool) Vector {
	out, _ := ToPolarStrict(v, physics)
	return out
}

// ToPolarStrict is ToPolar with the validation error exposed.
func ToPolarStrict(v Vector, physics bool) (Vector, error) {
	if ok, err := Validate(v, true); !ok {
		return Vector{}, err
	}

	if len(v) == 2 {
		return Vector{math.Hypot(v[0], v[1]), halfPlaneAngle(v[0], v[1])}, nil
	}

	r := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	azimuth := halfPlaneAngle(v[0], v[1])
	inclination := degrees(math.Acos(v[2] / r))
	if physics {
		return Vector{r, inclination, azimuth}, nil
	}
	return Vector{r, azimuth, inclination}, nil
}

// halfPlaneAngle maps (x, y) to an angle in degrees via the single-argument
// arctangent. Range is -90..90.
func halfPlaneAngle(x, y float64) float64 {
	if x == 0 {
		if y > 0 {
			return 90
		}
		return -90
	}
	return degrees(math.Atan(y / x))
}

// TwoToThree promotes a 2D Cartesian vector to 3D by appending z = 0. A 3D
// input comes back as a copy; an invalid input yields the empty vector.
func TwoToThree(v Vector) Vector {
	if ok, _ := Validate(v, false); !ok {
		return Vector{}
	}
	if len(v) == 3 {
		return v.Clone()
	}
	return Vector{v[0], v[1], 0}
}

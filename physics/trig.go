package physics

import "math"

// Sin returns the sine of an angle given in degrees.
// Multiples of 180 return exactly zero so axis-aligned vertices stay on the axis.
func Sin(angle float64) float64 {
	if math.Mod(angle, 180) == 0 {
		return 0
	}
	return math.Sin(angle * math.Pi / 180)
}

// Cos returns the cosine of an angle given in degrees.
// Odd multiples of 90 return exactly zero.
func Cos(angle float64) float64 {
	q := angle / 90
	if q == math.Trunc(q) && int64(q)%2 != 0 {
		return 0
	}
	return math.Cos(angle * math.Pi / 180)
}

// Asin returns the principal arcsine of x in degrees.
func Asin(x float64) float64 {
	return math.Asin(x) * 180 / math.Pi
}

// Acos returns the principal arccosine of x in degrees.
func Acos(x float64) float64 {
	return math.Acos(x) * 180 / math.Pi
}

// Package astro provides the coordinate pipeline for the star map:
// angle math, sidereal time, and equatorial-to-horizontal transformation.
package astro

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDeg wraps an angle into [0, 360). A single modulo plus shift,
// so the cost does not grow with the input magnitude.
func NormalizeDeg(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// WrapTo180 wraps an angle into (-180, 180], for signed angular deltas.
func WrapTo180(deg float64) float64 {
	a := NormalizeDeg(deg)
	if a > 180 {
		a -= 360
	}
	return a
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

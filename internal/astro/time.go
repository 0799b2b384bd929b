package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00 UTC).
const J2000 = 2451545.0

// JulianDay converts a time to a continuous Julian Day count.
// Standard Gregorian algorithm: January and February are treated as months
// 13/14 of the previous year, with the century leap correction
// B = 2 - floor(Y/100) + floor(floor(Y/100)/4).
func JulianDay(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24

	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// GreenwichSiderealTime returns the Greenwich mean sidereal time in degrees,
// in [0, 360). Uses the IAU 1982 polynomial in Julian centuries since J2000.
func GreenwichSiderealTime(t time.Time) float64 {
	jd := JulianDay(t)
	T := (jd - J2000) / 36525

	gst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000

	return NormalizeDeg(gst)
}

// LocalSiderealTime returns the local mean sidereal time in degrees for an
// east-positive longitude, in [0, 360). At longitude 0 it equals GST.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return NormalizeDeg(GreenwichSiderealTime(t) + lonDeg)
}

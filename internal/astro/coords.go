package astro

import (
	"math"
	"time"
)

// Observer is a fixed ground site. Longitude is east-positive.
// Configured once at startup and never mutated afterwards.
type Observer struct {
	LatDeg float64 `json:"latitude"`
	LonDeg float64 `json:"longitude"`
	Name   string  `json:"name"`
}

// Lyon is the default deployment site.
var Lyon = Observer{LatDeg: 45.764, LonDeg: 4.8357, Name: "Lyon"}

// Horizontal is an observer-relative sky position.
// Azimuth follows the compass convention: 0 = North, 90 = East, clockwise.
type Horizontal struct {
	AltDeg float64 `json:"altitude"`
	AzDeg  float64 `json:"azimuth"`
}

// cosAltEpsilon guards the azimuth computation near the zenith, where
// cos(alt) vanishes and azimuth is undefined.
const cosAltEpsilon = 1e-4

// EquatorialToHorizontal converts equatorial coordinates (degrees) to
// horizontal coordinates for a given local sidereal time and latitude.
//
// Hour angle H = LST - RA, then
//
//	sin(alt) = sin(dec)·sin(lat) + cos(dec)·cos(lat)·cos(H)
//	cos(az)  = (sin(dec) - sin(alt)·sin(lat)) / (cos(alt)·cos(lat))
//
// Both trig arguments are clamped to [-1, 1] to absorb floating error at the
// poles and zenith; acos only covers [0, 180], so the azimuth is mirrored to
// 360-az when the object is west of the meridian (sin H > 0).
// Always returns alt in [-90, 90] and az in [0, 360).
func EquatorialToHorizontal(raDeg, decDeg, lstDeg, latDeg float64) Horizontal {
	lat := DegToRad(latDeg)
	dec := DegToRad(decDeg)
	ha := DegToRad(lstDeg - raDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(Clamp(sinAlt, -1, 1))

	if math.Abs(math.Cos(alt)) <= cosAltEpsilon {
		// Straight overhead (or underfoot): azimuth is undefined.
		return Horizontal{AltDeg: RadToDeg(alt), AzDeg: 0}
	}

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(Clamp(cosAz, -1, 1))
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AltDeg: RadToDeg(alt),
		AzDeg:  NormalizeDeg(RadToDeg(az)),
	}
}

// HorizontalAt is a convenience wrapper computing LST for the observer.
// Callers transforming a whole catalog should compute LST once with
// LocalSiderealTime and call EquatorialToHorizontal directly instead.
func HorizontalAt(raDeg, decDeg float64, obs Observer, t time.Time) Horizontal {
	lst := LocalSiderealTime(t, obs.LonDeg)
	return EquatorialToHorizontal(raDeg, decDeg, lst, obs.LatDeg)
}

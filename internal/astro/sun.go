package astro

import (
	"math"
	"time"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Simplified solar ephemeris from the Astronomical Almanac; ~0.01 degree
// accuracy, plenty for deciding how dark the sky is.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	jd := JulianDay(t)
	T := (jd - J2000) / 36525

	// Mean longitude and mean anomaly (degrees)
	l0 := NormalizeDeg(280.46646 + 36000.76983*T + 0.0003032*T*T)
	m := NormalizeDeg(357.52911 + 35999.05029*T - 0.0001537*T*T)
	mRad := DegToRad(m)

	// Equation of center
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(mRad) +
		(0.019993-0.000101*T)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	// Apparent longitude, corrected for aberration and nutation
	omega := 125.04 - 1934.136*T
	lonApp := l0 + c - 0.00569 - 0.00478*math.Sin(DegToRad(omega))

	// Obliquity of the ecliptic
	eps := 23.439291 - 0.0130042*T + 0.00256*math.Cos(DegToRad(omega))

	lonRad := DegToRad(lonApp)
	epsRad := DegToRad(eps)

	raDeg = RadToDeg(math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad)))
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = RadToDeg(math.Asin(math.Sin(epsRad) * math.Sin(lonRad)))

	return raDeg, decDeg
}

// SunAltitude returns the Sun's altitude in degrees for an observer.
func SunAltitude(obs Observer, t time.Time) float64 {
	ra, dec := SunPosition(t)
	return HorizontalAt(ra, dec, obs, t).AltDeg
}

// TwilightPhase categorizes sky darkness by solar altitude.
type TwilightPhase int

const (
	Daylight           TwilightPhase = iota // sun above horizon
	CivilTwilight                           // sun at 0 to -6 degrees
	NauticalTwilight                        // -6 to -12
	AstronomicalDusk                        // -12 to -18
	Night                                   // below -18
)

func (p TwilightPhase) String() string {
	switch p {
	case Daylight:
		return "daylight"
	case CivilTwilight:
		return "civil twilight"
	case NauticalTwilight:
		return "nautical twilight"
	case AstronomicalDusk:
		return "astronomical twilight"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// CurrentTwilight returns the twilight phase for an observer at a given time.
func CurrentTwilight(obs Observer, t time.Time) TwilightPhase {
	alt := SunAltitude(obs, t)
	switch {
	case alt > 0:
		return Daylight
	case alt > -6:
		return CivilTwilight
	case alt > -12:
		return NauticalTwilight
	case alt > -18:
		return AstronomicalDusk
	default:
		return Night
	}
}

package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunPosition_Solstices(t *testing.T) {
	// Around the June solstice the Sun's declination peaks near +23.4,
	// around the December solstice near -23.4.
	_, decJun := SunPosition(time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC))
	if math.Abs(decJun-23.4) > 0.5 {
		t.Errorf("June solstice declination = %v, want ~23.4", decJun)
	}

	_, decDec := SunPosition(time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC))
	if math.Abs(decDec+23.4) > 0.5 {
		t.Errorf("December solstice declination = %v, want ~-23.4", decDec)
	}
}

func TestSunPosition_Equinox(t *testing.T) {
	// Near the March equinox the declination crosses zero.
	_, dec := SunPosition(time.Date(2024, 3, 20, 3, 0, 0, 0, time.UTC))
	if math.Abs(dec) > 0.5 {
		t.Errorf("equinox declination = %v, want ~0", dec)
	}
}

func TestCurrentTwilight(t *testing.T) {
	// Local noon in midsummer is daylight; 1 AM in midwinter is night.
	noon := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	if phase := CurrentTwilight(Lyon, noon); phase != Daylight {
		t.Errorf("midsummer noon = %v, want daylight", phase)
	}

	midnight := time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)
	if phase := CurrentTwilight(Lyon, midnight); phase != Night {
		t.Errorf("midwinter 1am local = %v, want night", phase)
	}
}

func TestTwilightPhase_String(t *testing.T) {
	phases := map[TwilightPhase]string{
		Daylight:         "daylight",
		CivilTwilight:    "civil twilight",
		NauticalTwilight: "nautical twilight",
		AstronomicalDusk: "astronomical twilight",
		Night:            "night",
	}
	for p, want := range phases {
		if p.String() != want {
			t.Errorf("phase %d String() = %q, want %q", p, p.String(), want)
		}
	}
}

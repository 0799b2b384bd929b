package astro

import (
	"math"
	"testing"
)

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{360, 0},
		{-360, 0},
		{45, 45},
		{-45, 315},
		{1000, 280},
		{-1000, 80},
		{359.5, 359.5},
		{720.25, 0.25},
	}

	for _, tt := range tests {
		got := NormalizeDeg(tt.input)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeDeg_Idempotent(t *testing.T) {
	for a := -1800.0; a <= 1800; a += 37.3 {
		once := NormalizeDeg(a)
		twice := NormalizeDeg(once)
		if once != twice {
			t.Errorf("NormalizeDeg not idempotent at %v: %v != %v", a, once, twice)
		}
		if once < 0 || once >= 360 {
			t.Errorf("NormalizeDeg(%v) = %v out of [0,360)", a, once)
		}
	}
}

func TestWrapTo180(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{181, -179},
		{350, -10},
		{-190, 170},
		{540, 180},
	}

	for _, tt := range tests {
		got := WrapTo180(tt.input)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("WrapTo180(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.rad) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if got := RadToDeg(tt.rad); math.Abs(got-tt.deg) > 1e-12 {
			t.Errorf("RadToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}

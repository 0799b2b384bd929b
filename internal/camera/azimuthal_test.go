package camera

import (
	"math"
	"testing"
)

func TestAzimuthal_ProjectLandmarks(t *testing.T) {
	v := NewAzimuthal(800, 600)
	r := v.ProjectionRadius()

	// Zenith maps to the exact canvas center.
	p, ok := v.Project(123, 90)
	if !ok {
		t.Fatal("zenith should project")
	}
	if math.Abs(p.X-400) > 1e-9 || math.Abs(p.Y-300) > 1e-9 {
		t.Errorf("zenith at (%v, %v), want (400, 300)", p.X, p.Y)
	}

	// North on the horizon is straight up the screen at the projection
	// radius.
	p, ok = v.Project(0, 0)
	if !ok {
		t.Fatal("horizon point should project")
	}
	if math.Abs(p.X-400) > 1e-9 || math.Abs(p.Y-(300-r)) > 1e-9 {
		t.Errorf("north horizon at (%v, %v), want (400, %v)", p.X, p.Y, 300-r)
	}

	// East on the horizon is to the right.
	p, _ = v.Project(90, 0)
	if math.Abs(p.X-(400+r)) > 1e-9 || math.Abs(p.Y-300) > 1e-9 {
		t.Errorf("east horizon at (%v, %v), want (%v, 300)", p.X, p.Y, 400+r)
	}

	// Halfway up the sky sits halfway along the radius.
	p, _ = v.Project(0, 45)
	if math.Abs(p.Y-(300-r/2)) > 1e-9 {
		t.Errorf("alt 45 at y=%v, want %v", p.Y, 300-r/2)
	}
	if math.Abs(p.DistanceFromCenter-0.5) > 1e-9 {
		t.Errorf("DistanceFromCenter = %v, want 0.5", p.DistanceFromCenter)
	}
}

func TestAzimuthal_BelowHorizon(t *testing.T) {
	v := NewAzimuthal(800, 600)
	if _, ok := v.Project(180, -0.1); ok {
		t.Error("points below the horizon are not representable")
	}
	if _, ok := v.Project(180, 0); !ok {
		t.Error("the horizon itself should project onto the outer ring")
	}
}

func TestAzimuthal_ZoomAtPivotFixed(t *testing.T) {
	v := NewAzimuthal(800, 600)

	// Project a star, zoom at its screen position, and check it has not
	// moved.
	before, ok := v.Project(210, 30)
	if !ok {
		t.Fatal("star should project")
	}

	v.ZoomAt(2, before.X, before.Y)
	after, ok := v.Project(210, 30)
	if !ok {
		t.Fatal("star should still project")
	}
	if math.Abs(after.X-before.X) > 1e-6 || math.Abs(after.Y-before.Y) > 1e-6 {
		t.Errorf("pivot moved: (%v, %v) -> (%v, %v)", before.X, before.Y, after.X, after.Y)
	}

	// A different point must have moved away from the center of scaling.
	other, _ := v.Project(30, 70)
	otherAtZoom1, _ := NewAzimuthal(800, 600).Project(30, 70)
	if math.Abs(other.X-otherAtZoom1.X) < 1e-9 && math.Abs(other.Y-otherAtZoom1.Y) < 1e-9 {
		t.Error("zooming should displace points away from the pivot")
	}
}

func TestAzimuthal_ZoomClamps(t *testing.T) {
	v := NewAzimuthal(800, 600)

	v.ZoomAt(1000, 400, 300)
	if v.ZoomLevel() != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", v.ZoomLevel(), MaxZoom)
	}

	v.ZoomAt(1e-6, 400, 300)
	if v.ZoomLevel() != MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", v.ZoomLevel(), MinZoom)
	}
}

func TestAzimuthal_PanUnbounded(t *testing.T) {
	v := NewAzimuthal(800, 600)
	v.Pan(10000, -50000)
	s := v.State()
	if s.OffsetX != 10000 || s.OffsetY != -50000 {
		t.Errorf("offset = (%v, %v), want (10000, -50000)", s.OffsetX, s.OffsetY)
	}

	// The projection follows the offset.
	p, _ := v.Project(0, 90)
	if p.X != 400+10000 || p.Y != 300-50000 {
		t.Errorf("zenith at (%v, %v) after pan", p.X, p.Y)
	}
}

func TestAzimuthal_Reset(t *testing.T) {
	v := NewAzimuthal(800, 600)
	v.ZoomAt(3, 100, 100)
	v.Pan(40, 40)

	v.Reset()
	s := v.State()
	if s.Zoom != 1 || s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("reset state = %+v, want zoom 1 offset (0,0)", s)
	}
}

func TestAzimuthal_StateRoundTrip(t *testing.T) {
	v := NewAzimuthal(800, 600)

	states := []State{
		{Zoom: 0.5, OffsetX: -12.5, OffsetY: 800},
		{Zoom: 10, OffsetX: 0, OffsetY: 0},
		{Zoom: 2.75, OffsetX: 33.3, OffsetY: -1.5},
	}
	for _, s := range states {
		v.SetState(s)
		got := v.State()
		if got.Zoom != s.Zoom || got.OffsetX != s.OffsetX || got.OffsetY != s.OffsetY {
			t.Errorf("round-trip %+v -> %+v", s, got)
		}
		if got.Mode != ModeAzimuthal {
			t.Errorf("state mode = %q, want %q", got.Mode, ModeAzimuthal)
		}
	}
}

func TestAzimuthal_Resize(t *testing.T) {
	v := NewAzimuthal(800, 600)
	r1 := v.ProjectionRadius()

	v.Resize(1600, 1200)
	if r2 := v.ProjectionRadius(); r2 <= r1 {
		t.Errorf("projection radius after growing the canvas = %v, want > %v", r2, r1)
	}
}

package camera

import (
	"math"
	"testing"
)

func TestPerspective_ProjectCenter(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 120, Altitude: 40, Fov: 90})

	p, ok := c.Project(120, 40)
	if !ok {
		t.Fatal("star on the view axis should be visible")
	}
	if math.Hypot(p.X-400, p.Y-300) > 50 {
		t.Errorf("centered star projected to (%v, %v), want near (400, 300)", p.X, p.Y)
	}
	if math.Abs(p.DistanceFromCenter) > 0.1 {
		t.Errorf("DistanceFromCenter = %v, want ~0", p.DistanceFromCenter)
	}
}

func TestPerspective_BehindCamera(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 90, Altitude: 20, Fov: 90})

	if _, ok := c.Project(90, 20); !ok {
		t.Fatal("star at view center should be visible")
	}

	c.Rotate(180, 0)
	if _, ok := c.Project(90, 20); ok {
		t.Error("star should be behind the camera after a 180 degree turn")
	}
}

func TestPerspective_ProjectOrientation(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 0, Altitude: 30, Fov: 90})

	// Looking north: a star slightly east of the axis lands right of
	// center, a star slightly higher lands above center.
	east, ok := c.Project(10, 30)
	if !ok {
		t.Fatal("near-axis star should project")
	}
	if east.X <= 400 {
		t.Errorf("eastward star at x=%v, want > 400", east.X)
	}

	higher, ok := c.Project(0, 40)
	if !ok {
		t.Fatal("near-axis star should project")
	}
	if higher.Y >= 300 {
		t.Errorf("higher star at y=%v, want < 300 (screen up)", higher.Y)
	}
}

func TestPerspective_OutsideFov(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 180, Altitude: 30, Fov: 60})

	// 80 degrees off-axis is outside a 60 degree fov's half-diagonal but
	// still in front of the camera.
	if _, ok := c.Project(100, 30); ok {
		t.Error("star 80 degrees off-axis should be rejected at fov 60")
	}
}

func TestPerspective_ZenithView(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 0, Altitude: 90, Fov: 90})

	p, ok := c.Project(45, 80)
	if !ok {
		t.Fatal("star near the zenith should be visible when looking up")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Errorf("zenith projection produced NaN: %+v", p)
	}
}

func TestPerspective_RotateWrapAndClamp(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 350, Altitude: 0, Fov: 90})

	c.Rotate(20, 0)
	if math.Abs(c.Azimuth()-10) > 1e-9 {
		t.Errorf("azimuth after wrap = %v, want 10", c.Azimuth())
	}

	c.SetState(State{Azimuth: 0, Altitude: 85, Fov: 90})
	c.Rotate(0, 20)
	if c.Altitude() != MaxAltitude {
		t.Errorf("altitude = %v, want clamped to %v", c.Altitude(), MaxAltitude)
	}

	c.Rotate(0, -200)
	if c.Altitude() != MinAltitude {
		t.Errorf("altitude = %v, want clamped to %v", c.Altitude(), MinAltitude)
	}
}

func TestPerspective_ZoomClamps(t *testing.T) {
	c := NewPerspective(800, 600)

	c.Zoom(100)
	if c.Fov() != MinFov {
		t.Errorf("fov = %v, want clamped to %v", c.Fov(), MinFov)
	}

	c.Zoom(0.001)
	if c.Fov() != MaxFov {
		t.Errorf("fov = %v, want clamped to %v", c.Fov(), MaxFov)
	}
}

func TestPerspective_ZoomLevel(t *testing.T) {
	c := NewPerspective(800, 600)

	if got := c.ZoomLevel(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ZoomLevel at default fov = %v, want 1.0", got)
	}

	c.Zoom(2) // fov 45
	if got := c.ZoomLevel(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("ZoomLevel at fov 45 = %v, want 2.0", got)
	}
}

func TestPerspective_Horizon(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 180, Altitude: 15, Fov: 90})

	// vfov = 90/(800/600) = 67.5; 15 - 33.75 <= 0, horizon in view.
	if !c.HorizonVisible() {
		t.Fatal("horizon should be visible at altitude 15")
	}
	y, ok := c.HorizonY()
	if !ok {
		t.Fatal("HorizonY should be defined")
	}
	want := (0.5 + 15/67.5) * 600
	if math.Abs(y-want) > 0.01 {
		t.Errorf("HorizonY = %v, want %v", y, want)
	}

	c.SetState(State{Azimuth: 180, Altitude: 80, Fov: 90})
	if c.HorizonVisible() {
		t.Error("horizon should not be visible looking near the zenith")
	}
	if _, ok := c.HorizonY(); ok {
		t.Error("HorizonY should be undefined when the horizon is out of view")
	}
}

func TestPerspective_DirectionName(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{22.4, "N"},
		{22.6, "NE"},
		{45, "NE"},
		{90, "E"},
		{170, "S"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "N"},
		{359.9, "N"},
	}

	c := NewPerspective(800, 600)
	for _, tt := range tests {
		c.SetState(State{Azimuth: tt.az, Altitude: 0, Fov: 90})
		if got := c.DirectionName(); got != tt.want {
			t.Errorf("DirectionName at az=%v = %q, want %q", tt.az, got, tt.want)
		}
	}
}

func TestPerspective_StateRoundTrip(t *testing.T) {
	c := NewPerspective(800, 600)

	states := []State{
		{Azimuth: 0, Altitude: -5, Fov: 20},
		{Azimuth: 359.9, Altitude: 90, Fov: 140},
		{Azimuth: 123.456, Altitude: 42.42, Fov: 77.7},
	}
	for _, s := range states {
		c.SetState(s)
		got := c.State()
		if got.Azimuth != s.Azimuth || got.Altitude != s.Altitude || got.Fov != s.Fov {
			t.Errorf("round-trip %+v -> %+v", s, got)
		}
		if got.Mode != ModePerspective {
			t.Errorf("state mode = %q, want %q", got.Mode, ModePerspective)
		}
	}
}

func TestPerspective_SetStateReclamps(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 725, Altitude: 120, Fov: 500})

	if math.Abs(c.Azimuth()-5) > 1e-9 {
		t.Errorf("azimuth = %v, want normalized 5", c.Azimuth())
	}
	if c.Altitude() != MaxAltitude || c.Fov() != MaxFov {
		t.Errorf("altitude/fov = %v/%v, want clamped %v/%v", c.Altitude(), c.Fov(), MaxAltitude, MaxFov)
	}
}

func TestPerspective_ResetAspect(t *testing.T) {
	landscape := NewPerspective(800, 600)
	portrait := NewPerspective(400, 800)

	if landscape.Altitude() >= portrait.Altitude() {
		t.Errorf("portrait default altitude %v should exceed landscape %v",
			portrait.Altitude(), landscape.Altitude())
	}
	if landscape.Fov() != DefaultFov || portrait.Fov() != DefaultFov {
		t.Error("reset should restore the default fov")
	}
}

func TestPerspective_VisibleCardinals(t *testing.T) {
	c := NewPerspective(800, 600)
	c.SetState(State{Azimuth: 180, Altitude: 10, Fov: 120})

	cards := c.VisibleCardinals()
	found := map[string]bool{}
	for _, cd := range cards {
		found[cd.Label] = true
	}
	if !found["S"] {
		t.Errorf("south marker missing while facing south: %+v", cards)
	}
	if found["N"] {
		t.Error("north marker should be behind the camera while facing south")
	}
}

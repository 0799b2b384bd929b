package sky

import (
	"testing"
	"time"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
)

func TestIsAboveHorizon(t *testing.T) {
	tests := []struct {
		alt  float64
		want bool
	}{
		{45, true},
		{0.001, true},
		{0, false}, // exactly on the horizon is not visible
		{-0.001, false},
		{-90, false},
	}
	for _, tt := range tests {
		if got := IsAboveHorizon(tt.alt); got != tt.want {
			t.Errorf("IsAboveHorizon(%v) = %v, want %v", tt.alt, got, tt.want)
		}
	}
}

func TestVisible_PolarPair(t *testing.T) {
	// From 45.76N the north celestial pole region never sets and the south
	// pole region never rises, whatever the time.
	cat := catalog.Catalog{Stars: []catalog.Star{
		{ID: 1, Name: "NearNCP", RAHours: 0, DecDeg: 89, Mag: 2},
		{ID: 2, Name: "NearSCP", RAHours: 12, DecDeg: -89, Mag: 2},
	}}
	obs := astro.Observer{LatDeg: 45.76, LonDeg: 4.84, Name: "Lyon"}

	for hour := 0; hour < 24; hour += 6 {
		at := time.Date(2024, 3, 15, hour, 0, 0, 0, time.UTC)
		vis := Visible(cat, obs, at)

		if len(vis) != 1 {
			t.Fatalf("hour %d: %d visible stars, want 1", hour, len(vis))
		}
		if vis[0].ID != 1 {
			t.Errorf("hour %d: visible star is %v, want NearNCP", hour, vis[0].Name)
		}
		if vis[0].AltDeg <= 0 {
			t.Errorf("hour %d: retained star has altitude %v", hour, vis[0].AltDeg)
		}
	}
}

func TestVisible_AllRetainedAboveHorizon(t *testing.T) {
	cat := catalog.DefaultCatalog()
	obs := astro.Lyon
	at := time.Date(2024, 8, 20, 22, 0, 0, 0, time.UTC)

	vis := Visible(cat, obs, at)
	if len(vis) == 0 {
		t.Fatal("no stars visible, expected a populated sky")
	}
	if len(vis) >= cat.Len() {
		t.Errorf("all %d stars visible, expected some below horizon", cat.Len())
	}
	for _, v := range vis {
		if v.AltDeg <= 0 {
			t.Errorf("%s retained with altitude %v", v.Name, v.AltDeg)
		}
	}
}

func TestVisible_SortedDimmestFirst(t *testing.T) {
	vis := Visible(catalog.DefaultCatalog(), astro.Lyon, time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC))
	for i := 1; i < len(vis); i++ {
		if vis[i-1].Mag < vis[i].Mag {
			t.Fatalf("order broken at %d: %v (mag %v) before %v (mag %v)",
				i, vis[i-1].Name, vis[i-1].Mag, vis[i].Name, vis[i].Mag)
		}
	}
}

func TestVisible_InputUntouched(t *testing.T) {
	cat := catalog.Catalog{Stars: []catalog.Star{
		{ID: 1, RAHours: 3, DecDeg: 80, Mag: 1},
	}}
	before := cat.Stars[0]
	_ = Visible(cat, astro.Lyon, time.Now())
	if cat.Stars[0] != before {
		t.Error("input catalog mutated")
	}
}

func TestStarSize(t *testing.T) {
	// Brighter stars render larger.
	sirius := StarSize(-1.46, 1)
	dim := StarSize(5, 1)
	if sirius <= dim {
		t.Errorf("StarSize(-1.46) = %v not larger than StarSize(5) = %v", sirius, dim)
	}

	// Clamped for any magnitude or zoom.
	extremes := []struct{ mag, zoom float64 }{
		{-30, 1}, {30, 1}, {0, 100}, {0, 0}, {-1.46, 10}, {6, 0.1},
	}
	for _, e := range extremes {
		got := StarSize(e.mag, e.zoom)
		if got < 0.5 || got > 8 {
			t.Errorf("StarSize(%v, %v) = %v outside [0.5, 8]", e.mag, e.zoom, got)
		}
	}
}

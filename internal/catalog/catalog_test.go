package catalog

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() < 50 {
		t.Fatalf("embedded catalog too small: %d stars", c.Len())
	}

	seen := make(map[int]bool)
	for _, s := range c.Stars {
		if s.RAHours < 0 || s.RAHours >= 24 {
			t.Errorf("%s: RA %v hours out of range", s.Name, s.RAHours)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("%s: Dec %v out of range", s.Name, s.DecDeg)
		}
		if seen[s.ID] {
			t.Errorf("duplicate star ID %d", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestStar_RADeg(t *testing.T) {
	s := Star{RAHours: 6.7525}
	if got := s.RADeg(); math.Abs(got-101.2875) > 1e-9 {
		t.Errorf("RADeg() = %v, want 101.2875", got)
	}
}

const sampleCSV = `id,name,ra,dec,mag,bv,constellation,distance,spectral
1,Sirius,6.7525,-16.716,-1.46,0.00,Canis Major,8.6,A1V
2,Vega,18.6157,38.784,0.03,0.00,Lyra,25,A0V
3,Faint,12.0,10.0,9.5,0.5,,,
4,BadRA,oops,10.0,1.0,0.5,,,
5,BadDec,12.0,95.0,1.0,0.5,,,
6,NoColor,5.5,20.0,3.0,,,,
`

func TestLoad(t *testing.T) {
	res, err := Load(strings.NewReader(sampleCSV), 6.0)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := res.Catalog.Len(); got != 3 {
		t.Fatalf("loaded %d stars, want 3", got)
	}
	if res.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 (bad RA, bad Dec)", res.Skipped)
	}
	if res.Culled != 1 {
		t.Errorf("culled = %d, want 1 (mag 9.5 over limit)", res.Culled)
	}

	sirius := res.Catalog.Stars[0]
	if sirius.Name != "Sirius" || sirius.DistanceLY != 8.6 || sirius.SpectralType != "A1V" {
		t.Errorf("unexpected first star: %+v", sirius)
	}

	// Missing color index falls back to the solar default.
	noColor := res.Catalog.Stars[2]
	if noColor.ColorIndex != 0.65 {
		t.Errorf("default color index = %v, want 0.65", noColor.ColorIndex)
	}
}

func TestLoad_BadHeader(t *testing.T) {
	_, err := Load(strings.NewReader("a,b,c\n1,2,3\n"), 6)
	if err == nil {
		t.Fatal("expected error for bad header")
	}
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader("id,name,ra,dec,mag,bv,constellation,distance,spectral\n"), 6)
	if err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestBVToRGB(t *testing.T) {
	// Hot stars blue-ish, cool stars orange-ish.
	hot := BVToRGB(-0.3)
	if hot.B <= hot.R {
		t.Errorf("hot star should be blue-dominant: %+v", hot)
	}
	cool := BVToRGB(1.8)
	if cool.R <= cool.B {
		t.Errorf("cool star should be red-dominant: %+v", cool)
	}

	// Clamped outside the table range.
	if BVToRGB(-5) != BVToRGB(-0.4) {
		t.Error("B-V below -0.4 should clamp")
	}
	if BVToRGB(9) != BVToRGB(2.0) {
		t.Error("B-V above 2.0 should clamp")
	}

	// Channels stay in [0,1].
	for bv := -0.4; bv <= 2.0; bv += 0.05 {
		c := BVToRGB(bv)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("BVToRGB(%v) channel out of range: %+v", bv, c)
			}
		}
	}
}

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{1, 1, 1}, "#ffffff"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{1, 0.753, 0.530}, "#ffc087"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

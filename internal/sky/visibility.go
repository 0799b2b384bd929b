// Package sky computes what is above the horizon for an observer and how
// each star should be rendered.
package sky

import (
	"sort"
	"time"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
)

// VisibleStar pairs a catalog star with its horizontal position at one
// instant. Recomputed on every tick, never persisted.
type VisibleStar struct {
	catalog.Star
	astro.Horizontal
}

// IsAboveHorizon reports whether an altitude counts as visible.
// Strictly above: a star exactly on the horizon is not shown.
func IsAboveHorizon(altDeg float64) bool {
	return altDeg > 0
}

// Visible transforms the whole catalog for one timestamp and keeps the
// stars above the horizon. The sidereal time is computed once and shared
// across the catalog so every star sees the same instant.
//
// The result is sorted dimmest-first, so a renderer drawing in order puts
// the brightest stars on top.
func Visible(c catalog.Catalog, obs astro.Observer, t time.Time) []VisibleStar {
	lst := astro.LocalSiderealTime(t, obs.LonDeg)

	visible := make([]VisibleStar, 0, len(c.Stars))
	for _, star := range c.Stars {
		h := astro.EquatorialToHorizontal(star.RADeg(), star.DecDeg, lst, obs.LatDeg)
		if !IsAboveHorizon(h.AltDeg) {
			continue
		}
		visible = append(visible, VisibleStar{Star: star, Horizontal: h})
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Mag > visible[j].Mag
	})

	return visible
}

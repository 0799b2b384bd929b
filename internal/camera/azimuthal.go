package camera

import (
	"math"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
)

// horizonMargin keeps the horizon ring just inside the canvas edge.
const horizonMargin = 0.95

// AzimuthalViewport is the full-sky view: a fixed azimuthal-equidistant
// projection with the zenith at the center and the horizon on the outer
// ring, plus pan/zoom. Unlike the perspective camera it has no viewing
// direction; the whole visible hemisphere is always mapped.
type AzimuthalViewport struct {
	zoom    float64
	offsetX float64
	offsetY float64

	width  int
	height int
}

// NewAzimuthal creates a viewport for a canvas size at zoom 1.
func NewAzimuthal(width, height int) *AzimuthalViewport {
	v := &AzimuthalViewport{width: width, height: height}
	v.Reset()
	return v
}

// ProjectionRadius is the horizon radius in pixels at zoom 1, derived from
// the canvas dimensions.
func (v *AzimuthalViewport) ProjectionRadius() float64 {
	short := v.width
	if v.height < short {
		short = v.height
	}
	return float64(short) / 2 * horizonMargin
}

func (v *AzimuthalViewport) center() (float64, float64) {
	return float64(v.width)/2 + v.offsetX, float64(v.height)/2 + v.offsetY
}

// Project maps a horizontal sky position into the dome. Angular distance
// from the zenith maps linearly to radial pixel distance: altitude 90 is
// the exact center, altitude 0 the projection radius. Points below the
// horizon are not representable in this projection.
// Azimuth 0 (north) points screen-up.
func (v *AzimuthalViewport) Project(azDeg, altDeg float64) (ScreenPoint, bool) {
	if altDeg < 0 {
		return ScreenPoint{}, false
	}

	r := (90 - altDeg) / 90 * v.ProjectionRadius() * v.zoom
	theta := astro.DegToRad(azDeg - 90)

	cx, cy := v.center()
	return ScreenPoint{
		X:                  cx + r*math.Cos(theta),
		Y:                  cy + r*math.Sin(theta),
		DistanceFromCenter: (90 - altDeg) / 90,
	}, true
}

// ZoomAt scales the zoom around a screen pivot: the sky point under the
// pivot stays fixed. The pivot's offset from the current center is scaled
// by the applied factor and folded back into the pan offset.
func (v *AzimuthalViewport) ZoomAt(factor, pivotX, pivotY float64) {
	if factor <= 0 {
		return
	}
	newZoom := astro.Clamp(v.zoom*factor, MinZoom, MaxZoom)
	applied := newZoom / v.zoom
	if applied == 1 {
		return
	}

	cx, cy := v.center()
	v.offsetX -= (pivotX - cx) * (applied - 1)
	v.offsetY -= (pivotY - cy) * (applied - 1)
	v.zoom = newZoom
}

// Pan shifts the view. The offset is unconstrained; panning the dome fully
// off screen is allowed and undone by Reset.
func (v *AzimuthalViewport) Pan(dx, dy float64) {
	v.offsetX += dx
	v.offsetY += dy
}

// Drag pans the dome with the pointer.
func (v *AzimuthalViewport) Drag(dxPx, dyPx float64) {
	v.Pan(dxPx, dyPx)
}

// ZoomLevel reports the current zoom factor.
func (v *AzimuthalViewport) ZoomLevel() float64 {
	return v.zoom
}

// Reset restores zoom 1 and a centered dome.
func (v *AzimuthalViewport) Reset() {
	v.zoom = 1
	v.offsetX = 0
	v.offsetY = 0
}

// Resize updates the canvas dimensions; the projection radius and center
// derive from them on the next projection.
func (v *AzimuthalViewport) Resize(width, height int) {
	v.width = width
	v.height = height
}

// State returns a snapshot that SetState restores exactly. The projection
// radius and center are derived from the canvas, so only zoom and pan are
// carried.
func (v *AzimuthalViewport) State() State {
	return State{
		Mode:    ModeAzimuthal,
		Zoom:    v.zoom,
		OffsetX: v.offsetX,
		OffsetY: v.offsetY,
	}
}

// SetState restores a snapshot, re-clamping the zoom.
func (v *AzimuthalViewport) SetState(s State) {
	v.zoom = astro.Clamp(s.Zoom, MinZoom, MaxZoom)
	v.offsetX = s.OffsetX
	v.offsetY = s.OffsetY
}

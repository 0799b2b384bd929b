package camera

import (
	"math"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
)

// Perspective camera limits and defaults, in degrees.
const (
	DefaultFov  = 90.0
	MinFov      = 20.0
	MaxFov      = 140.0
	MinAltitude = -5.0
	MaxAltitude = 90.0

	defaultAzimuth = 180.0 // facing south
	defaultAlt     = 15.0
	portraitAlt    = 30.0 // taller-than-wide canvases start higher up
)

// PerspectiveCamera is a point-of-view camera: a viewing direction
// (azimuth, altitude) and a field of view, projecting the sky gnomonically
// onto the canvas. Azimuth stays normalized to [0,360), altitude and fov
// clamped to their ranges after every mutation. Single-owner: one instance
// per viewport, no internal locking.
type PerspectiveCamera struct {
	azDeg  float64
	altDeg float64
	fovDeg float64

	width  int
	height int
}

// NewPerspective creates a camera for a canvas size, facing the default
// direction.
func NewPerspective(width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{width: width, height: height}
	c.Reset()
	return c
}

// Azimuth returns the viewing azimuth in [0, 360).
func (c *PerspectiveCamera) Azimuth() float64 { return c.azDeg }

// Altitude returns the viewing altitude in degrees.
func (c *PerspectiveCamera) Altitude() float64 { return c.altDeg }

// Fov returns the horizontal field of view in degrees.
func (c *PerspectiveCamera) Fov() float64 { return c.fovDeg }

// Rotate turns the camera. Azimuth wraps across 0/360; altitude is clamped,
// not wrapped, since looking past the zenith is not a valid continuation.
func (c *PerspectiveCamera) Rotate(dAz, dAlt float64) {
	c.azDeg = astro.NormalizeDeg(c.azDeg + dAz)
	c.altDeg = astro.Clamp(c.altDeg+dAlt, MinAltitude, MaxAltitude)
}

// Zoom scales the field of view by 1/factor (factor > 1 narrows the view,
// zooming in), clamped to [MinFov, MaxFov].
func (c *PerspectiveCamera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.fovDeg = astro.Clamp(c.fovDeg/factor, MinFov, MaxFov)
}

func (c *PerspectiveCamera) aspect() float64 {
	if c.height == 0 {
		return 1
	}
	return float64(c.width) / float64(c.height)
}

// VerticalFov returns the vertical field of view in degrees, derived from
// the horizontal fov and the canvas aspect ratio.
func (c *PerspectiveCamera) VerticalFov() float64 {
	return c.fovDeg / c.aspect()
}

// Project maps a horizontal sky position to screen pixels using a true
// gnomonic (rectilinear) projection: great circles stay straight on screen.
//
// The camera direction and the star are taken as unit vectors in the
// horizon frame; their dot product is the cosine of the angular
// separation. A star at separation >= 90 degrees is behind the camera.
// Within the field of view, the star vector's component orthogonal to the
// view axis is projected onto the camera's right/up tangent frame and
// scaled by 1/dot, then converted to pixels.
func (c *PerspectiveCamera) Project(azDeg, altDeg float64) (ScreenPoint, bool) {
	view := astro.DirectionVector(c.azDeg, c.altDeg)
	star := astro.DirectionVector(azDeg, altDeg)

	dot := star.Dot(view)
	if dot <= 0 {
		return ScreenPoint{}, false
	}

	sepDeg := astro.RadToDeg(math.Acos(astro.Clamp(dot, -1, 1)))
	halfFov := c.fovDeg / 2
	halfVFov := c.VerticalFov() / 2
	if sepDeg > math.Sqrt(halfFov*halfFov+halfVFov*halfVFov) {
		return ScreenPoint{}, false
	}

	// Tangent frame at the view direction: right is horizontal, up
	// completes the basis. At the zenith the cross product degenerates,
	// so fall back to the horizontal direction 90 degrees clockwise of
	// the viewing azimuth.
	right := view.Cross(astro.Vec3{Z: 1})
	if right.Norm() < 1e-9 {
		right = astro.DirectionVector(c.azDeg+90, 0)
	}
	right = right.Normalized()
	up := right.Cross(view)

	rel := star.Sub(view.Scale(dot))
	xn := rel.Dot(right) / dot
	yn := rel.Dot(up) / dot

	pixelScale := float64(c.width) / (2 * math.Tan(astro.DegToRad(halfFov)))

	return ScreenPoint{
		X:                  float64(c.width)/2 + xn*pixelScale,
		Y:                  float64(c.height)/2 - yn*pixelScale,
		DistanceFromCenter: sepDeg / halfFov,
	}, true
}

// CardinalPoint is a compass label with its projected screen position.
type CardinalPoint struct {
	Label string      `json:"label"`
	Point ScreenPoint `json:"point"`
}

// ProjectCardinal projects a cardinal direction on the horizon.
func (c *PerspectiveCamera) ProjectCardinal(azDeg float64) (ScreenPoint, bool) {
	return c.Project(azDeg, 0)
}

// VisibleCardinals returns the four cardinal points currently in view.
func (c *PerspectiveCamera) VisibleCardinals() []CardinalPoint {
	var out []CardinalPoint
	for _, card := range []struct {
		label string
		az    float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}} {
		if p, ok := c.ProjectCardinal(card.az); ok {
			out = append(out, CardinalPoint{Label: card.label, Point: p})
		}
	}
	return out
}

// HorizonVisible reports whether the horizon line crosses the view.
func (c *PerspectiveCamera) HorizonVisible() bool {
	return c.altDeg-c.VerticalFov()/2 <= 0
}

// HorizonY returns the vertical pixel position of the horizon line.
// Only meaningful while HorizonVisible; the second return is false
// otherwise.
func (c *PerspectiveCamera) HorizonY() (float64, bool) {
	if !c.HorizonVisible() {
		return 0, false
	}
	normalized := 0.5 + c.altDeg/c.VerticalFov()
	return normalized * float64(c.height), true
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DirectionName maps the viewing azimuth to one of eight compass sectors of
// 45 degrees each, with boundaries at odd multiples of 22.5.
func (c *PerspectiveCamera) DirectionName() string {
	idx := int(astro.NormalizeDeg(c.azDeg+22.5) / 45)
	return directionNames[idx%8]
}

// ZoomLevel reports the zoom relative to the default field of view; a
// narrower fov means a larger zoom.
func (c *PerspectiveCamera) ZoomLevel() float64 {
	return DefaultFov / c.fovDeg
}

// Drag rotates the view following the pointer: the sky patch under the
// pointer tracks it. Sensitivity is one field of view per canvas width.
func (c *PerspectiveCamera) Drag(dxPx, dyPx float64) {
	if c.width == 0 || c.height == 0 {
		return
	}
	dAz := -dxPx * c.fovDeg / float64(c.width)
	dAlt := dyPx * c.VerticalFov() / float64(c.height)
	c.Rotate(dAz, dAlt)
}

// ZoomAt narrows or widens the field of view. The perspective projection is
// always centered on the view axis, so the pivot is ignored.
func (c *PerspectiveCamera) ZoomAt(factor, _, _ float64) {
	c.Zoom(factor)
}

// Reset restores the default view. Portrait canvases reset to a higher
// viewing altitude so the horizon stays in frame.
func (c *PerspectiveCamera) Reset() {
	c.azDeg = defaultAzimuth
	c.fovDeg = DefaultFov
	if c.aspect() < 1 {
		c.altDeg = portraitAlt
	} else {
		c.altDeg = defaultAlt
	}
}

// Resize updates the canvas dimensions.
func (c *PerspectiveCamera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// State returns a snapshot that SetState restores exactly.
func (c *PerspectiveCamera) State() State {
	return State{
		Mode:     ModePerspective,
		Azimuth:  c.azDeg,
		Altitude: c.altDeg,
		Fov:      c.fovDeg,
	}
}

// SetState restores a snapshot, re-applying normalization and clamping so a
// hand-edited session file cannot break the invariants.
func (c *PerspectiveCamera) SetState(s State) {
	c.azDeg = astro.NormalizeDeg(s.Azimuth)
	c.altDeg = astro.Clamp(s.Altitude, MinAltitude, MaxAltitude)
	c.fovDeg = astro.Clamp(s.Fov, MinFov, MaxFov)
}

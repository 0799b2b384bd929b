// Package camera implements the two sky viewports: a perspective
// point-of-view camera with a gnomonic projection, and an
// azimuthal-equidistant full-sky viewport. Both satisfy SkyCamera so the
// gesture controller and the renderers are written once.
package camera

// Display modes, selected at startup.
const (
	ModePerspective = "perspective"
	ModeAzimuthal   = "azimuthal"
)

// ScreenPoint is a projected sky position in pixels, origin at the top-left
// of the canvas.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// DistanceFromCenter is the angular separation from the view axis
	// normalized by the half field of view (perspective) or the zenith
	// distance normalized by 90 degrees (azimuthal). Renderers use it for
	// vignetting and size falloff.
	DistanceFromCenter float64 `json:"distanceFromCenter"`
}

// State is a serializable camera snapshot, round-tripped exactly through
// SetState. Suitable for JSON session persistence across reloads.
type State struct {
	Mode     string  `json:"mode"`
	Azimuth  float64 `json:"azimuth,omitempty"`
	Altitude float64 `json:"altitude,omitempty"`
	Fov      float64 `json:"fov,omitempty"`
	Zoom     float64 `json:"zoom,omitempty"`
	OffsetX  float64 `json:"offsetX,omitempty"`
	OffsetY  float64 `json:"offsetY,omitempty"`
}

// SkyCamera is the common viewport capability: project a horizontal sky
// position to the screen, and mutate the view in response to gestures.
// All mutators leave the state normalized and clamped.
type SkyCamera interface {
	// Project maps azimuth/altitude (degrees) to screen pixels. The second
	// return is false when the point is not representable: behind the
	// perspective camera or outside its field of view, or below the horizon
	// for the azimuthal viewport.
	Project(azDeg, altDeg float64) (ScreenPoint, bool)

	// Drag applies a pointer drag of (dx, dy) pixels: rotation for the
	// perspective camera, panning for the azimuthal viewport.
	Drag(dxPx, dyPx float64)

	// ZoomAt scales the zoom by factor (>1 zooms in) around a screen pivot.
	ZoomAt(factor, pivotX, pivotY float64)

	// ZoomLevel reports the current zoom, 1.0 at the default view.
	ZoomLevel() float64

	Reset()
	Resize(width, height int)

	State() State
	SetState(State)
}

// Zoom limits shared by both viewports.
const (
	MinZoom = 0.5
	MaxZoom = 10.0
)

package camera

import (
	"math"
	"time"
)

// Gesture tuning.
const (
	wheelZoomStep   = 1.1
	doubleTapWindow = 350 * time.Millisecond
	doubleTapRadius = 24.0 // px
)

// Controller translates raw pointer, wheel, and pinch events into camera
// mutations. Drags and pinches are applied from the gesture's baseline
// state rather than incrementally, so per-event rounding never accumulates
// into drift. Stateless beyond the in-progress gesture.
type Controller struct {
	cam SkyCamera

	dragging   bool
	dragStartX float64
	dragStartY float64
	dragBase   State

	pinching      bool
	pinchBaseDist float64
	pinchBase     State

	lastTapAt time.Time
	lastTapX  float64
	lastTapY  float64
}

// NewController wraps a camera.
func NewController(cam SkyCamera) *Controller {
	return &Controller{cam: cam}
}

// Camera returns the controlled camera.
func (g *Controller) Camera() SkyCamera { return g.cam }

// PointerDown begins a drag, or resets the view on a double tap (two taps
// within the tap window and radius).
func (g *Controller) PointerDown(x, y float64, at time.Time) {
	if !g.lastTapAt.IsZero() &&
		at.Sub(g.lastTapAt) <= doubleTapWindow &&
		math.Hypot(x-g.lastTapX, y-g.lastTapY) <= doubleTapRadius {
		g.lastTapAt = time.Time{}
		g.dragging = false
		g.cam.Reset()
		return
	}

	g.lastTapAt = at
	g.lastTapX = x
	g.lastTapY = y

	g.dragging = true
	g.dragStartX = x
	g.dragStartY = y
	g.dragBase = g.cam.State()
}

// PointerMove continues a drag. The total pixel delta since the drag began
// is applied on top of the drag's starting camera state.
func (g *Controller) PointerMove(x, y float64) {
	if !g.dragging {
		return
	}
	g.cam.SetState(g.dragBase)
	g.cam.Drag(x-g.dragStartX, y-g.dragStartY)
}

// PointerUp ends a drag.
func (g *Controller) PointerUp() {
	g.dragging = false
}

// Dragging reports whether a drag is in progress.
func (g *Controller) Dragging() bool { return g.dragging }

// Wheel applies a scroll step at a pivot: scrolling up (negative delta)
// zooms out, scrolling down zooms in.
func (g *Controller) Wheel(deltaY, pivotX, pivotY float64) {
	if deltaY == 0 {
		return
	}
	factor := wheelZoomStep
	if deltaY < 0 {
		factor = 1 / wheelZoomStep
	}
	g.cam.ZoomAt(factor, pivotX, pivotY)
}

// PinchStart captures the baseline finger distance and camera state.
func (g *Controller) PinchStart(dist float64) {
	if dist <= 0 {
		return
	}
	g.dragging = false
	g.pinching = true
	g.pinchBaseDist = dist
	g.pinchBase = g.cam.State()
}

// PinchMove applies the scale current/baseline from the baseline state, so
// jittery intermediate events cannot compound. Spreading the fingers zooms
// in.
func (g *Controller) PinchMove(dist, centerX, centerY float64) {
	if !g.pinching || dist <= 0 {
		return
	}
	g.cam.SetState(g.pinchBase)
	g.cam.ZoomAt(dist/g.pinchBaseDist, centerX, centerY)
}

// PinchEnd ends the pinch.
func (g *Controller) PinchEnd() {
	g.pinching = false
}

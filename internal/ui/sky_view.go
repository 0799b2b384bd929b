package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
)

// Keyboard step sizes, in fractions of the current field of view.
const (
	keyRotateStep = 0.1
	keyZoomFactor = 1.25
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// wide: the cameras work in square pixels, one cell spanning two of them
// vertically.
const cellAspect = 2

// SkyViewModel renders the first-person perspective view: the sky as seen
// when facing a direction, with the horizon and cardinal points.
type SkyViewModel struct {
	width  int
	height int

	cam      *camera.PerspectiveCamera
	gestures *camera.Controller

	snapshot state.Snapshot
	hasData  bool
}

// NewSkyViewModel creates a perspective sky view.
func NewSkyViewModel() SkyViewModel {
	cam := camera.NewPerspective(80, 24)
	return SkyViewModel{
		cam:      cam,
		gestures: camera.NewController(cam),
	}
}

// RestoreCamera applies a persisted camera state.
func (m SkyViewModel) RestoreCamera(s camera.State) SkyViewModel {
	m.cam.SetState(s)
	return m
}

// CameraState returns the camera state for session persistence.
func (m SkyViewModel) CameraState() camera.State {
	return m.cam.State()
}

// SetSize updates the viewport size. The canvas reserves two lines for the
// view's own status bar.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	m.cam.Resize(width, m.canvasHeight()*cellAspect)
	return m
}

func (m SkyViewModel) canvasHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// UpdateData updates with a new sky snapshot.
func (m SkyViewModel) UpdateData(snapshot state.Snapshot) SkyViewModel {
	m.snapshot = snapshot
	m.hasData = true
	return m
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.cam.Rotate(-m.cam.Fov()*keyRotateStep, 0)
		case "right", "l":
			m.cam.Rotate(m.cam.Fov()*keyRotateStep, 0)
		case "up", "k":
			m.cam.Rotate(0, m.cam.VerticalFov()*keyRotateStep)
		case "down", "j":
			m.cam.Rotate(0, -m.cam.VerticalFov()*keyRotateStep)
		case "+", "=":
			m.cam.Zoom(keyZoomFactor)
		case "-", "_":
			m.cam.Zoom(1 / keyZoomFactor)
		case "r", "0":
			m.cam.Reset()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *SkyViewModel) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)*cellAspect
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.gestures.Wheel(120, x, y)
	case msg.Button == tea.MouseButtonWheelUp:
		m.gestures.Wheel(-120, x, y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.gestures.PointerDown(x, y, time.Now())
	case msg.Action == tea.MouseActionMotion:
		m.gestures.PointerMove(x, y)
	case msg.Action == tea.MouseActionRelease:
		m.gestures.PointerUp()
	}
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Sky view requires a larger terminal"
	}

	c := newCanvas(m.width, m.canvasHeight())
	m.drawHorizon(c)
	m.drawStars(c)
	m.drawCardinals(c)

	return c.render() + "\n" + m.renderStatus()
}

func (m SkyViewModel) drawStars(c *canvas) {
	if !m.hasData {
		return
	}
	// The snapshot is ordered dimmest-first, so brighter stars overwrite
	// dimmer ones in shared cells.
	for _, vs := range m.snapshot.Stars {
		p, ok := m.cam.Project(vs.AzDeg, vs.AltDeg)
		if !ok {
			continue
		}
		glyph, color := starGlyph(vs.Mag, vs.ColorIndex)
		c.set(int(p.X+0.5), int(p.Y/cellAspect+0.5), glyph, color)
	}
}

func (m SkyViewModel) drawHorizon(c *canvas) {
	y, ok := m.cam.HorizonY()
	if !ok {
		return
	}
	row := int(y/cellAspect + 0.5)
	for x := 0; x < c.width; x++ {
		c.set(x, row, '─', "60")
	}
	// Ground shading below the horizon.
	for gy := row + 1; gy < c.height; gy++ {
		for x := 0; x < c.width; x++ {
			c.set(x, gy, '░', "236")
		}
	}
}

func (m SkyViewModel) drawCardinals(c *canvas) {
	for _, card := range m.cam.VisibleCardinals() {
		x := int(card.Point.X + 0.5)
		y := int(card.Point.Y/cellAspect + 0.5)
		c.set(x, y, rune(card.Label[0]), "252")
	}
}

func (m SkyViewModel) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	line1 := fmt.Sprintf(">>> %s | Az:%.0f° Alt:%.0f° | FOV:%.0f° | Zoom:%.1fx",
		m.cam.DirectionName(),
		m.cam.Azimuth(),
		m.cam.Altitude(),
		m.cam.Fov(),
		m.cam.ZoomLevel(),
	)

	line2 := "    waiting for data"
	if m.hasData {
		lst := astro.LocalSiderealTime(m.snapshot.At, m.snapshot.Observer.LonDeg)
		line2 = fmt.Sprintf("    LST %5.1f° | %s | %d stars in view",
			lst, m.snapshot.Twilight, m.countInView())
	}

	return accentStyle.Render(line1) + "\n" + dimStyle.Render(line2)
}

func (m SkyViewModel) countInView() int {
	maxY := float64(m.canvasHeight() * cellAspect)
	n := 0
	for _, vs := range m.snapshot.Stars {
		if p, ok := m.cam.Project(vs.AzDeg, vs.AltDeg); ok {
			if p.X >= 0 && p.X < float64(m.width) && p.Y >= 0 && p.Y < maxY {
				n++
			}
		}
	}
	return n
}

// Init returns nil cmd.
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}

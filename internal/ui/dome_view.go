package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
)

const keyPanStep = 4.0 // cells per arrow key press

// DomeViewModel renders the whole sky at once: an azimuthal projection with
// the zenith at the center and the horizon as the outer ring.
type DomeViewModel struct {
	width  int
	height int

	viewport *camera.AzimuthalViewport
	gestures *camera.Controller

	snapshot state.Snapshot
	hasData  bool
}

// NewDomeViewModel creates a full-sky dome view.
func NewDomeViewModel() DomeViewModel {
	v := camera.NewAzimuthal(80, 24)
	return DomeViewModel{
		viewport: v,
		gestures: camera.NewController(v),
	}
}

// RestoreCamera applies a persisted viewport state.
func (m DomeViewModel) RestoreCamera(s camera.State) DomeViewModel {
	m.viewport.SetState(s)
	return m
}

// CameraState returns the viewport state for session persistence.
func (m DomeViewModel) CameraState() camera.State {
	return m.viewport.State()
}

// SetSize updates the viewport size.
func (m DomeViewModel) SetSize(width, height int) DomeViewModel {
	m.width = width
	m.height = height
	m.viewport.Resize(width, m.canvasHeight()*cellAspect)
	return m
}

func (m DomeViewModel) canvasHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// UpdateData updates with a new sky snapshot.
func (m DomeViewModel) UpdateData(snapshot state.Snapshot) DomeViewModel {
	m.snapshot = snapshot
	m.hasData = true
	return m
}

// Update handles messages.
func (m DomeViewModel) Update(msg tea.Msg) (DomeViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.viewport.Pan(keyPanStep, 0)
		case "right", "l":
			m.viewport.Pan(-keyPanStep, 0)
		case "up", "k":
			m.viewport.Pan(0, keyPanStep)
		case "down", "j":
			m.viewport.Pan(0, -keyPanStep)
		case "+", "=":
			m.viewport.ZoomAt(keyZoomFactor, float64(m.width)/2, float64(m.canvasHeight()*cellAspect)/2)
		case "-", "_":
			m.viewport.ZoomAt(1/keyZoomFactor, float64(m.width)/2, float64(m.canvasHeight()*cellAspect)/2)
		case "r", "0":
			m.viewport.Reset()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *DomeViewModel) handleMouse(msg tea.MouseMsg) {
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

// View renders the dome view.
func (m DomeViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Dome view requires a larger terminal"
	}

	c := newCanvas(m.width, m.canvasHeight())
	m.drawHorizonRing(c)
	m.drawStars(c)
	m.drawCardinals(c)

	return c.render() + "\n" + m.renderStatus()
}

// drawHorizonRing traces the horizon circle by sampling the projection at
// altitude zero around the full compass.
func (m DomeViewModel) drawHorizonRing(c *canvas) {
	for az := 0.0; az < 360; az += 0.5 {
		p, ok := m.viewport.Project(az, 0)
		if !ok {
			continue
		}
		c.set(int(p.X+0.5), int(p.Y/cellAspect+0.5), '·', "60")
	}
}

func (m DomeViewModel) drawStars(c *canvas) {
	if !m.hasData {
		return
	}
	for _, vs := range m.snapshot.Stars {
		p, ok := m.viewport.Project(vs.AzDeg, vs.AltDeg)
		if !ok {
			continue
		}
		glyph, color := starGlyph(vs.Mag, vs.ColorIndex)
		c.set(int(p.X+0.5), int(p.Y/cellAspect+0.5), glyph, color)
	}
}

func (m DomeViewModel) drawCardinals(c *canvas) {
	for _, card := range []struct {
		label string
		az    float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}} {
		p, ok := m.viewport.Project(card.az, 0)
		if !ok {
			continue
		}
		c.set(int(p.X+0.5), int(p.Y/cellAspect+0.5), rune(card.label[0]), "252")
	}
}

func (m DomeViewModel) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	s := m.viewport.State()
	line1 := fmt.Sprintf(">>> Dome | Zoom:%.1fx | Offset:(%.0f, %.0f)",
		m.viewport.ZoomLevel(), s.OffsetX, s.OffsetY)

	line2 := "    waiting for data"
	if m.hasData {
		line2 = fmt.Sprintf("    %s | %d stars above the horizon",
			m.snapshot.Twilight, len(m.snapshot.Stars))
	}

	return accentStyle.Render(line1) + "\n" + dimStyle.Render(line2)
}

// Init returns nil cmd.
func (m DomeViewModel) Init() tea.Cmd {
	return nil
}

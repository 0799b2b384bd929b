// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky  ViewMode = iota // first-person perspective view
	ViewDome                 // full-sky azimuthal view
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// SkyUpdateMsg signals a fresh sky snapshot is available.
	SkyUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a background error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	skyView  SkyViewModel
	domeView DomeViewModel

	snapshot state.Snapshot
	hasData  bool
	lastErr  error
}

// New creates a new root UI model. The session argument restores the camera
// state from a previous run; pass an empty Session to start at the defaults.
func New(stateMgr *state.Manager, session Session) Model {
	m := Model{
		state:    stateMgr,
		viewMode: ViewSky,
		skyView:  NewSkyViewModel(),
		domeView: NewDomeViewModel(),
	}
	if session.Mode == camera.ModeAzimuthal {
		m.viewMode = ViewDome
	}
	if session.Perspective.Mode == camera.ModePerspective {
		m.skyView = m.skyView.RestoreCamera(session.Perspective)
	}
	if session.Azimuthal.Mode == camera.ModeAzimuthal {
		m.domeView = m.domeView.RestoreCamera(session.Azimuthal)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSky
		case "2", "d":
			m.viewMode = ViewDome
		case "tab", "m":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 2 lines, footer 2 lines.
		contentHeight := msg.Height - 4
		m.skyView = m.skyView.SetSize(msg.Width, contentHeight)
		m.domeView = m.domeView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if snap, ok := m.state.Snapshot(); ok {
			m.snapshot = snap
			m.hasData = true
			m.skyView = m.skyView.UpdateData(snap)
			m.domeView = m.domeView.UpdateData(snap)
		}

	case SkyUpdateMsg:
		m.snapshot = msg.Snapshot
		m.hasData = true
		m.lastErr = nil
		m.skyView = m.skyView.UpdateData(msg.Snapshot)
		m.domeView = m.domeView.UpdateData(msg.Snapshot)

	case ErrorMsg:
		m.lastErr = msg.Error

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSky:
		m.skyView, cmd = m.skyView.Update(msg)
	case ViewDome:
		m.domeView, cmd = m.domeView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSky:
		content = m.skyView.View()
	case ViewDome:
		content = m.domeView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB4FF"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	site := "-"
	if m.hasData {
		site = m.snapshot.Observer.Name
	}
	title := titleStyle.Render("✦ Carte du Ciel") +
		dimStyle.Render(fmt.Sprintf("  %s · v%s", site, version.Version))

	return title + "\n" + m.renderTabs()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Sky", "[2] Dome"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB4FF")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.lastErr != nil:
		status = errorStyle.Render("ERROR: " + m.lastErr.Error())
	case m.hasData:
		status = dimStyle.Render(fmt.Sprintf("%d stars up · %s · computed in %s",
			len(m.snapshot.Stars),
			m.snapshot.Twilight,
			m.snapshot.ComputeDuration.Round(time.Microsecond)))
	default:
		status = dimStyle.Render("Waiting for the first sky computation...")
	}

	var help string
	switch m.viewMode {
	case ViewSky:
		help = dimStyle.Render("arrows/drag: look | +/-: zoom | r: reset | tab: dome view | q: quit")
	case ViewDome:
		help = dimStyle.Render("arrows/drag: pan | +/-: zoom | r: reset | tab: sky view | q: quit")
	}

	return "  " + status + "\n  " + help
}

// Session is the persisted camera state for both views.
func (m Model) Session() Session {
	mode := camera.ModePerspective
	if m.viewMode == ViewDome {
		mode = camera.ModeAzimuthal
	}
	return Session{
		Mode:        mode,
		Perspective: m.skyView.CameraState(),
		Azimuthal:   m.domeView.CameraState(),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SendSkyUpdate creates a command that delivers a fresh snapshot.
func SendSkyUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return SkyUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that delivers a background error.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}

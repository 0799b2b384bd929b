// Package state owns the shared application state: the configured observer,
// the loaded catalog, and the latest sky snapshot. The core math stays
// stateless; everything mutable lives here behind one lock.
package state

import (
	"sync"
	"time"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/sky"
)

// Config holds configuration for the state manager.
type Config struct {
	// RefreshInterval is how often the sky positions are recomputed.
	// Projection and rendering read the latest snapshot and are not tied
	// to this cadence.
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{RefreshInterval: time.Second}
}

// Snapshot is an immutable view of the sky at one instant. The star slice
// is owned by the snapshot; callers may read it freely.
type Snapshot struct {
	Observer        astro.Observer
	At              time.Time
	Stars           []sky.VisibleStar
	Twilight        astro.TwilightPhase
	ComputeDuration time.Duration
}

// Manager is the single owner of mutable application state. All access is
// serialized through its lock, so TUI, HTTP handlers, and the recompute
// ticker can share one instance.
type Manager struct {
	mu sync.RWMutex

	observer astro.Observer
	catalog  catalog.Catalog

	current         Snapshot
	hasData         bool
	refreshInterval time.Duration
}

// NewManager creates a manager for a fixed observer and catalog.
func NewManager(cat catalog.Catalog, obs astro.Observer, cfg Config) *Manager {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Manager{
		observer:        obs,
		catalog:         cat,
		refreshInterval: interval,
	}
}

// Observer returns the configured site. Fixed after construction.
func (m *Manager) Observer() astro.Observer {
	return m.observer
}

// CatalogSize reports how many stars survived the magnitude cutoff at load.
func (m *Manager) CatalogSize() int {
	return m.catalog.Len()
}

// ComputeAt transforms the catalog for one timestamp without touching the
// stored snapshot. For ad-hoc queries at arbitrary times; the shared
// snapshot keeps serving the live sky.
func (m *Manager) ComputeAt(t time.Time) Snapshot {
	started := time.Now()
	stars := sky.Visible(m.catalog, m.observer, t)
	twilight := astro.CurrentTwilight(m.observer, t)

	return Snapshot{
		Observer:        m.observer,
		At:              t,
		Stars:           stars,
		Twilight:        twilight,
		ComputeDuration: time.Since(started),
	}
}

// Recompute transforms the catalog for one timestamp and installs the
// result as the current snapshot. The sidereal time is sampled once inside
// sky.Visible, so the whole catalog sees a consistent instant.
func (m *Manager) Recompute(now time.Time) Snapshot {
	snap := m.ComputeAt(now)

	m.mu.Lock()
	m.current = snap
	m.hasData = true
	m.mu.Unlock()

	return snap
}

// Snapshot returns the current sky. The second return is false before the
// first Recompute.
func (m *Manager) Snapshot() (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.hasData
}

// RefreshInterval returns the recompute cadence.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the recompute cadence.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.refreshInterval = d
	m.mu.Unlock()
}

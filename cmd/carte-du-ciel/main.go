// Command carte-du-ciel is an interactive star map: a terminal UI showing
// the sky above an observer, plus an HTTP API mode for browser clients.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/astro"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/camera"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/catalog"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/logging"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/server"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/ui"
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 250 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

func main() {
	refresh := flag.Duration("refresh", defaultRefresh, "Sky recompute interval (e.g., 1s, 30s)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	mode := flag.String("mode", "", "Initial view: perspective or azimuthal (default: last session)")
	catalogPath := flag.String("catalog", "", "Load star catalog from a CSV file instead of the embedded one")
	magLimit := flag.Float64("mag-limit", 6.0, "Discard stars dimmer than this magnitude")
	lat := flag.Float64("lat", astro.Lyon.LatDeg, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", astro.Lyon.LonDeg, "Observer longitude in degrees (east positive)")
	site := flag.String("site", astro.Lyon.Name, "Observer site name")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of the TUI (configured via environment)")
	summary := flag.Bool("summary", false, "Print the visible stars and exit")
	atStr := flag.String("at", "", "Timestamp for -summary (RFC3339, default: now)")
	sessionPath := flag.String("session", "", "Session file path (default: user config dir)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if *serve {
		if err := runServer(ctx, logger, *refresh); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cat, err := buildCatalog(*catalogPath, *magLimit, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon, Name: *site}
	stateCfg := state.Config{RefreshInterval: *refresh}
	stateMgr := state.NewManager(cat, obs, stateCfg)

	if *summary {
		if err := printSummary(stateMgr, *atStr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runTUI(ctx, stateMgr, logger, *mode, *sessionPath)
}

// buildCatalog loads the star catalog, from CSV when a path is given,
// applying the magnitude cutoff either way.
func buildCatalog(path string, magLimit float64, logger *logging.Logger) (catalog.Catalog, error) {
	if path != "" {
		result, err := catalog.LoadFile(path, magLimit)
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
		}
		logger.Info("Loaded %d stars from %s (%d skipped, %d over magnitude limit)",
			result.Catalog.Len(), path, result.Skipped, result.Culled)
		return result.Catalog, nil
	}

	embedded := catalog.DefaultCatalog()
	kept := make([]catalog.Star, 0, len(embedded.Stars))
	for _, s := range embedded.Stars {
		if s.Mag <= magLimit {
			kept = append(kept, s)
		}
	}
	return catalog.Catalog{Stars: kept}, nil
}

func runTUI(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger, mode, sessionPath string) {
	if sessionPath == "" {
		if p, err := ui.DefaultSessionPath(); err == nil {
			sessionPath = p
		}
	}

	var session ui.Session
	if sessionPath != "" {
		s, err := ui.LoadSession(sessionPath)
		if err != nil {
			logger.Warn("Session not restored: %v", err)
		} else {
			session = s
		}
	}
	switch mode {
	case camera.ModePerspective, camera.ModeAzimuthal:
		session.Mode = mode
	case "":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		os.Exit(1)
	}

	model := ui.New(stateMgr, session)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go runRecomputeLoop(ctx, stateMgr, p, logger)

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(ui.Model); ok && sessionPath != "" {
		if err := ui.SaveSession(sessionPath, m.Session()); err != nil {
			logger.Warn("Session not saved: %v", err)
		}
	}
}

// runRecomputeLoop recomputes the sky on the refresh cadence and pushes the
// snapshots into the running program. Rendering stays decoupled: the UI
// redraws from the latest snapshot regardless of this loop.
func runRecomputeLoop(ctx context.Context, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	log := logger.WithPrefix("state")

	snap := stateMgr.Recompute(time.Now().UTC())
	p.Send(ui.SkyUpdateMsg{Snapshot: snap})

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Recompute loop shutting down")
			return
		case <-ticker.C:
			snap := stateMgr.Recompute(time.Now().UTC())
			log.Debug("Recomputed %d visible stars in %v", len(snap.Stars), snap.ComputeDuration)
			p.Send(ui.SkyUpdateMsg{Snapshot: snap})
		}
	}
}

// printSummary writes the visible stars as a table, brightest first.
func printSummary(stateMgr *state.Manager, atStr string) error {
	at := time.Now().UTC()
	if atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			return fmt.Errorf("invalid -at (expected RFC3339): %w", err)
		}
		at = parsed.UTC()
	}

	snap := stateMgr.Recompute(at)
	obs := snap.Observer
	lst := astro.LocalSiderealTime(at, obs.LonDeg)

	fmt.Printf("%s (%.3f°N, %.3f°E) at %s\n", obs.Name, obs.LatDeg, obs.LonDeg, at.Format(time.RFC3339))
	fmt.Printf("LST %.1f° | %s | %d of %d stars above the horizon\n\n",
		lst, snap.Twilight, len(snap.Stars), stateMgr.CatalogSize())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONST\tMAG\tAZ\tALT")
	for i := len(snap.Stars) - 1; i >= 0; i-- {
		s := snap.Stars[i]
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.1f°\t%.1f°\n",
			s.Name, s.Constellation, s.Mag, s.AzDeg, s.AltDeg)
	}
	return w.Flush()
}

// runServer runs the HTTP API with a background recompute loop.
func runServer(ctx context.Context, logger *logging.Logger, refresh time.Duration) error {
	cfg, err := server.LoadConfig(ctx)
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cfg.CatalogPath, cfg.MagLimit, logger)
	if err != nil {
		return err
	}

	obs := astro.Observer{LatDeg: cfg.Latitude, LonDeg: cfg.Longitude, Name: cfg.SiteName}
	stateMgr := state.NewManager(cat, obs, state.Config{RefreshInterval: refresh})
	stateMgr.Recompute(time.Now().UTC())

	go func() {
		ticker := time.NewTicker(stateMgr.RefreshInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stateMgr.Recompute(time.Now().UTC())
			}
		}
	}()

	router := server.NewRouter(logger, stateMgr, cfg)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving %s sky on :%s (%d stars)", obs.Name, cfg.Port, stateMgr.CatalogSize())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

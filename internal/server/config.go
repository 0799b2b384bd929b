// Package server exposes the sky over HTTP for browser renderers: JSON
// endpoints for visible stars and projections, and a WebSocket stream
// pushing fresh positions on every recompute tick.
package server

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the API configuration, read from the environment.
type Config struct {
	Port string `env:"PORT,default=8080"`

	// Comma-separated allowed origins; empty allows all.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS"`

	// Observer override. Defaults to the built-in site.
	Latitude  float64 `env:"OBSERVER_LAT,default=45.764"`
	Longitude float64 `env:"OBSERVER_LON,default=4.8357"`
	SiteName  string  `env:"OBSERVER_NAME,default=Lyon"`

	// Catalog: optional CSV path and the magnitude cutoff applied at load.
	CatalogPath string  `env:"CATALOG_PATH"`
	MagLimit    float64 `env:"MAG_LIMIT,default=6.0"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return nil, fmt.Errorf("invalid OBSERVER_LAT %v", cfg.Latitude)
	}
	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return nil, fmt.Errorf("invalid OBSERVER_LON %v", cfg.Longitude)
	}
	return &cfg, nil
}

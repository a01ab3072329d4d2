package vpic

import (
	"log/slog"
	"time"
)

const DefaultURL = "https://vpic.nhtsa.dot.gov/api/vehicles/getallmanufacturers?format=json"

var defaultTimeout = 30 * time.Second

type Config struct {
	URL     string
	Timeout time.Duration
	Logger  *slog.Logger
}

func (cfg *Config) applyDefaults() {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}

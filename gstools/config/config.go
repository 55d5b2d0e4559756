package config

import (
	"fmt"

	"github.com/github/go-config"
)

// Valid values for the output settings.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"

	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config holds the default output settings of the CLI. Flags given on a
// subcommand override these per invocation.
type Config struct {
	Units  string `config:"metric,env=GPXSTAT_UNITS"`
	Format string `config:"text,env=GPXSTAT_FORMAT"`
}

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	switch cfg.Units {
	case UnitsMetric, UnitsImperial:
	default:
		return nil, fmt.Errorf("invalid units '%s'", cfg.Units)
	}

	switch cfg.Format {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return nil, fmt.Errorf("invalid format '%s'", cfg.Format)
	}

	return cfg, nil
}

// Package config loads mapramp settings from defaults, a JSON file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jmylchreest/mapramp/internal/legend"
	"github.com/jmylchreest/mapramp/internal/scale"
)

// Environment variables read by WithEnvConfig.
const (
	EnvLegendPosition = "MAPRAMP_LEGEND_POSITION"
	EnvBarWidth       = "MAPRAMP_BAR_WIDTH"
	EnvStripWidth     = "MAPRAMP_STRIP_WIDTH"
	EnvWorkers        = "MAPRAMP_WORKERS"
)

// Config holds the settings shared by all commands.
type Config struct {
	Legend    legend.Layout     `json:"legend"`
	Workers   int               `json:"workers"`
	Normalise *scale.Normaliser `json:"normalise,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Legend:  legend.DefaultLayout(),
		Workers: 0,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Legend.Validate(); err != nil {
		return fmt.Errorf("invalid legend layout: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Normalise != nil {
		if err := c.Normalise.Validate(); err != nil {
			return fmt.Errorf("invalid normalise settings: %w", err)
		}
	}
	return nil
}

// Builder assembles a Config from its sources.
type Builder struct {
	config   Config
	filePath string
	useEnv   bool
	lookup   func(string) (string, bool)
}

// NewBuilder returns a builder seeded with the defaults.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithFile layers a JSON config file over the base configuration.
// An empty path is ignored.
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// WithEnvConfig layers the MAPRAMP_* environment variables over the file.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs and validates the configuration.
// Precedence, lowest first: base config, file, environment.
func (b *Builder) Build() (*Config, error) {
	cfg := b.config

	if b.filePath != "" {
		data, err := os.ReadFile(b.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Fields absent from the file keep their current values.
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", b.filePath, err)
		}
	}

	if b.useEnv {
		if err := b.applyEnv(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (b *Builder) applyEnv(cfg *Config) error {
	if v, ok := b.lookup(EnvLegendPosition); ok && v != "" {
		cfg.Legend.Position = v
	}

	ints := []struct {
		name   string
		target *int
	}{
		{EnvBarWidth, &cfg.Legend.BarWidthPx},
		{EnvStripWidth, &cfg.Legend.StripWidthPx},
		{EnvWorkers, &cfg.Workers},
	}
	for _, e := range ints {
		v, ok := b.lookup(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.name, err)
		}
		*e.target = n
	}
	return nil
}

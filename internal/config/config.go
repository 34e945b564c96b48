// Package config holds the ambient settings of fibiter. The computed index is
// not configurable; only logging, color output and the metrics textfile can be
// tuned from the environment.
package config

import (
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "FIBITER_"

// DefaultLogLevel keeps stderr quiet so a run prints only its result line.
const DefaultLogLevel = "warn"

// AppConfig aggregates the application's settings.
type AppConfig struct {
	// N is the Fibonacci index to compute.
	N int64
	// LogLevel is a zerolog level name (debug, info, warn, error, ...).
	LogLevel string
	// NoColor disables styled diagnostics.
	NoColor bool
	// MetricsFile, when set, receives the Prometheus registry in text
	// exposition format after the computation.
	MetricsFile string
}

// DefaultConfig returns the configuration used when no environment override
// is present.
func DefaultConfig() AppConfig {
	return AppConfig{
		N:        fibonacci.DefaultN,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig returns DefaultConfig with environment overrides applied.
func LoadConfig() AppConfig {
	cfg := DefaultConfig()
	applyEnvOverrides(&cfg)
	return cfg
}

// Validate checks that every setting can be used.
func (c AppConfig) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty value selects DefaultLogLevel.
func (c AppConfig) Level() (zerolog.Level, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		name = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, apperrors.NewConfigError("invalid log level %q (set via %sLOG_LEVEL)", c.LogLevel, EnvPrefix)
	}
	return level, nil
}

// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strings"
)

// envOverride declares a single environment variable override. envKey is
// given without EnvPrefix.
type envOverride struct {
	envKey string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"LOG_LEVEL", func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"NO_COLOR", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"METRICS_FILE", func(c *AppConfig, v string) {
		c.MetricsFile = strings.TrimSpace(v)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies every non-empty FIBITER_* variable listed in
// envOverrides to config.
func applyEnvOverrides(config *AppConfig) {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}

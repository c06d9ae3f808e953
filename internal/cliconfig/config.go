package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds CLI configuration for runlet.
type Config struct {
	// Interval is the delay between heartbeats.
	Interval time.Duration

	// Beats limits how many beats are emitted; zero means run until
	// interrupted.
	Beats int

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Pretty selects human-readable console output over JSON.
	Pretty bool

	// WatchConfig restarts the worker when the config file changes.
	WatchConfig bool

	// ShutdownTimeout bounds how long shutdown waits for the worker to
	// unwind.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Interval:        time.Second,
		LogLevel:        "info",
		Pretty:          true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Beats < 0 {
		return fmt.Errorf("beats must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value if present and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration value if not empty and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration for %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses and sets an int value if not empty and flag not changed.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setBoolFromString parses and sets a bool value if not empty and flag not changed.
// Accepts the forms strconv.ParseBool accepts ("1", "true", "false", ...).
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if b, err := strconv.ParseBool(value); err == nil {
		*dst = b
	}
}

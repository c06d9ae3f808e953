package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RUNLET_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("interval", os.Getenv("RUNLET_INTERVAL"), &cfg.Interval); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("RUNLET_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}
	if err := s.setIntFromString("beats", os.Getenv("RUNLET_BEATS"), &cfg.Beats); err != nil {
		return err
	}

	s.setString("log-level", os.Getenv("RUNLET_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("pretty", os.Getenv("RUNLET_PRETTY"), &cfg.Pretty)
	s.setBoolFromString("watch-config", os.Getenv("RUNLET_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}

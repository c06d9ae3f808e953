package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
interval = "250ms"
beats = 5
log_level = "debug"
pretty = false
watch_config = true
shutdown_timeout = "3s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Interval != "250ms" {
		t.Errorf("Interval = %q, want 250ms", fc.Interval)
	}
	if fc.Beats != 5 {
		t.Errorf("Beats = %d, want 5", fc.Beats)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", fc.LogLevel)
	}
	if fc.Pretty == nil || *fc.Pretty != false {
		t.Errorf("Pretty = %v, want false", fc.Pretty)
	}
	if fc.WatchConfig == nil || *fc.WatchConfig != true {
		t.Errorf("WatchConfig = %v, want true", fc.WatchConfig)
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig() = nil error for missing file")
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("interval = ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() = nil error for malformed TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	boolTrue := true

	cfg := DefaultConfig()
	fc := FileConfig{
		Interval:        "2s",
		Beats:           7,
		LogLevel:        "warn",
		WatchConfig:     &boolTrue,
		ShutdownTimeout: "5s",
	}

	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", cfg.Interval)
	}
	if cfg.Beats != 7 {
		t.Errorf("Beats = %d, want 7", cfg.Beats)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if !cfg.WatchConfig {
		t.Error("WatchConfig = false, want true")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	// Absent pretty key keeps the default.
	if !cfg.Pretty {
		t.Error("Pretty = false, want default true")
	}
}

func TestApplyFileConfig_RespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 5 * time.Second // set via flag

	fc := FileConfig{Interval: "2s", LogLevel: "warn"}
	changed := map[string]bool{"interval": true}

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.Interval != 5*time.Second {
		t.Errorf("Interval = %v, want 5s (flag wins)", cfg.Interval)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn (file sets unflagged field)", cfg.LogLevel)
	}
}

func TestApplyFileConfig_InvalidDuration(t *testing.T) {
	cfg := DefaultConfig()
	fc := FileConfig{Interval: "not-a-duration"}

	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err == nil {
		t.Error("ApplyFileConfig() = nil error for invalid duration")
	}
}

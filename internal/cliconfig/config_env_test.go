package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"RUNLET_INTERVAL":         "10m",
				"RUNLET_BEATS":            "42",
				"RUNLET_LOG_LEVEL":        "debug",
				"RUNLET_PRETTY":           "false",
				"RUNLET_WATCH_CONFIG":     "true",
				"RUNLET_SHUTDOWN_TIMEOUT": "30s",
			},
			changed: map[string]bool{},
			initial: Config{Pretty: true},
			expected: Config{
				Interval:        10 * time.Minute,
				Beats:           42,
				LogLevel:        "debug",
				Pretty:          false,
				WatchConfig:     true,
				ShutdownTimeout: 30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"RUNLET_INTERVAL":  "10m",
				"RUNLET_LOG_LEVEL": "debug",
			},
			changed: map[string]bool{"interval": true},
			initial: Config{Interval: time.Second},
			expected: Config{
				Interval: time.Second,
				LogLevel: "debug",
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"RUNLET_INTERVAL": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"RUNLET_BEATS": "not-a-number",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"RUNLET_WATCH_CONFIG": "1",
			},
			changed: map[string]bool{},
			expected: Config{
				WatchConfig: true,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}

			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	boolFalse := false

	fileConf := FileConfig{
		Interval: "3s",
		LogLevel: "error",
		Pretty:   &boolFalse,
	}

	t.Setenv("RUNLET_INTERVAL", "7s")
	t.Setenv("RUNLET_LOG_LEVEL", "warn")

	// Simulate CLI flags
	changed := map[string]bool{
		"interval": true, // CLI flag was set for interval
	}

	cfg := DefaultConfig()
	cfg.Interval = 9 * time.Second // from the flag

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	// Verify precedence: CLI > Env > File
	if cfg.Interval != 9*time.Second {
		t.Errorf("Interval = %v, want 9s (CLI should win)", cfg.Interval)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn (env should override file)", cfg.LogLevel)
	}
	if cfg.Pretty {
		t.Error("Pretty = true, want false (file should set)")
	}
}

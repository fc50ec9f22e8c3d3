package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Shape != "rect" {
		t.Errorf("Display.Shape = %q, want %q", cfg.Display.Shape, "rect")
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("Display.Color = %q, want %q", cfg.Display.Color, "auto")
	}
	if cfg.Display.Clock != "24h" {
		t.Errorf("Display.Clock = %q, want %q", cfg.Display.Clock, "24h")
	}

	// No BMR and no Strava by default
	if cfg.Athlete.BMRKcal != 0 {
		t.Errorf("Athlete.BMRKcal = %d, want 0", cfg.Athlete.BMRKcal)
	}
	if cfg.StravaEnabled() {
		t.Error("Strava should be disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "round color 12h",
			mutate: func(c *Config) { c.Display = DisplayConfig{Shape: "round", Color: "on", Clock: "12h"} },
		},
		{
			name:        "bad shape",
			mutate:      func(c *Config) { c.Display.Shape = "square" },
			expectError: true,
			errContains: "display.shape",
		},
		{
			name:        "bad color",
			mutate:      func(c *Config) { c.Display.Color = "yes" },
			expectError: true,
			errContains: "display.color",
		},
		{
			name:        "bad clock",
			mutate:      func(c *Config) { c.Display.Clock = "24" },
			expectError: true,
			errContains: "display.clock",
		},
		{
			name:        "negative bmr",
			mutate:      func(c *Config) { c.Athlete.BMRKcal = -1 },
			expectError: true,
			errContains: "bmr_kcal",
		},
		{
			name:        "strava id without secret",
			mutate:      func(c *Config) { c.Strava.ClientID = "12345" },
			expectError: true,
			errContains: "strava",
		},
		{
			name: "strava pair",
			mutate: func(c *Config) {
				c.Strava = StravaConfig{ClientID: "12345", ClientSecret: "secret"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display":{"shape":"round"},"athlete":{"bmr_kcal":1700}}`), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Display.Shape != "round" {
		t.Errorf("Display.Shape = %q, want %q", cfg.Display.Shape, "round")
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("Display.Color = %q, want default %q", cfg.Display.Color, "auto")
	}
	if cfg.Display.Clock != "24h" {
		t.Errorf("Display.Clock = %q, want default %q", cfg.Display.Clock, "24h")
	}
	if cfg.Athlete.BMRKcal != 1700 {
		t.Errorf("Athlete.BMRKcal = %d, want 1700", cfg.Athlete.BMRKcal)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != ErrNoConfig {
		t.Errorf("Load error = %v, want ErrNoConfig", err)
	}
}

func TestCreateExampleDoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	if err := CreateExample(path); err != nil {
		t.Fatalf("CreateExample: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Athlete.BMRKcal != 1800 {
		t.Errorf("example BMRKcal = %d, want 1800", cfg.Athlete.BMRKcal)
	}

	cfg.Athlete.BMRKcal = 2000
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := CreateExample(path); err != nil {
		t.Fatalf("CreateExample (second): %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Athlete.BMRKcal != 2000 {
		t.Errorf("BMRKcal = %d after CreateExample, want 2000 (untouched)", cfg.Athlete.BMRKcal)
	}
}

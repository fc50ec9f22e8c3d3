package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Athlete AthleteConfig `json:"athlete"`
	Strava  StravaConfig  `json:"strava"`
	Log     LogConfig     `json:"log"`
}

// DisplayConfig describes the emulated watch display
type DisplayConfig struct {
	Shape string `json:"shape"` // "rect" or "round"
	Color string `json:"color"` // "auto", "on" or "off"
	Clock string `json:"clock"` // "24h" or "12h"
}

// AthleteConfig holds settings used to estimate resting calories
type AthleteConfig struct {
	BMRKcal int `json:"bmr_kcal"`
}

// StravaConfig holds optional Strava API credentials.
// Leaving both fields empty disables activity import.
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LogConfig controls the log file
type LogConfig struct {
	Debug bool `json:"debug"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Shape: "rect",
			Color: "auto",
			Clock: "24h",
		},
	}
}

// Load reads the configuration from path, or ~/.calwatch/config.json when path is empty
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.Shape == "" {
		c.Display.Shape = defaults.Display.Shape
	}
	if c.Display.Color == "" {
		c.Display.Color = defaults.Display.Color
	}
	if c.Display.Clock == "" {
		c.Display.Clock = defaults.Display.Clock
	}
}

// Save writes the configuration to path, or ~/.calwatch/config.json when path is empty
func Save(path string, cfg *Config) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes a default config file if none exists
func CreateExample(path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return nil // don't overwrite
	}

	example := DefaultConfig()
	example.Athlete.BMRKcal = 1800
	return Save(path, &example)
}

// Validate checks the enumerated fields
func (c *Config) Validate() error {
	switch c.Display.Shape {
	case "rect", "round":
	default:
		return fmt.Errorf("display.shape must be \"rect\" or \"round\", got %q", c.Display.Shape)
	}

	switch c.Display.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("display.color must be \"auto\", \"on\" or \"off\", got %q", c.Display.Color)
	}

	switch c.Display.Clock {
	case "24h", "12h":
	default:
		return fmt.Errorf("display.clock must be \"24h\" or \"12h\", got %q", c.Display.Clock)
	}

	if c.Athlete.BMRKcal < 0 {
		return fmt.Errorf("athlete.bmr_kcal must not be negative, got %d", c.Athlete.BMRKcal)
	}

	// Strava credentials come as a pair
	if (c.Strava.ClientID == "") != (c.Strava.ClientSecret == "") {
		return errors.New("strava.client_id and strava.client_secret must both be set or both be empty")
	}

	return nil
}

// StravaEnabled reports whether activity import is configured
func (c *Config) StravaEnabled() bool {
	return c.Strava.ClientID != "" && c.Strava.ClientSecret != ""
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".calwatch"), nil
}

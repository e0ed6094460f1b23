// Package config holds the settings of a game session. Gameplay itself is not
// configurable; these only cover the window, assets, logging and profiling.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds session configuration
type Config struct {
	// Title is the window title
	Title string `yaml:"title"`

	// Scale multiplies the logical 1100x650 canvas to get the window size
	Scale float64 `yaml:"scale"`

	// Fullscreen starts the game in fullscreen mode
	Fullscreen bool `yaml:"fullscreen"`

	// AssetDir, if set, is searched for images before the embedded assets
	AssetDir string `yaml:"asset_dir"`

	// Seed for hazard placement; 0 picks one from the clock
	Seed uint64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// ProfileDir, if set, receives a CPU profile of the session
	ProfileDir string `yaml:"profile_dir"`
}

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid config")

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns a default configuration
func Default() Config {
	return Config{
		Title:    "たたかえ！こうかとん",
		Scale:    1.0,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be used as given.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalid, c.Scale)
	}
	if !isLogLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q is not one of %s", ErrInvalid, c.LogLevel, strings.Join(logLevels, ", "))
	}
	return nil
}

// WindowSize returns the window size in pixels for a logical canvas size.
func (c Config) WindowSize(width, height int) (int, int) {
	return int(float64(width) * c.Scale), int(float64(height) * c.Scale)
}

func isLogLevel(s string) bool {
	s = strings.ToLower(s)
	for _, l := range logLevels {
		if s == l {
			return true
		}
	}
	return false
}

// Package config loads render settings from TOML files.
package config

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Config holds the render and window settings shared by both binaries
type Config struct {
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	FOVDegrees      float64 `toml:"fov"`
	MaxDepth        int     `toml:"max_depth"`
	EmissiveSamples int     `toml:"emissive_samples"`
	Workers         int     `toml:"workers"` // 0 = one per CPU
	AssetsDir       string  `toml:"assets"`
	Scene           string  `toml:"scene"` // "day" or "night"
}

// Default returns the settings used when no config file is given
func Default() Config {
	return Config{
		Width:           800,
		Height:          600,
		FOVDegrees:      60,
		MaxDepth:        3,
		EmissiveSamples: 16,
		Workers:         0,
		AssetsDir:       "assets",
		Scene:           "day",
	}
}

// Load reads a TOML config file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values the renderer cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		return fmt.Errorf("fov must be in (0, 180) degrees, got %g", c.FOVDegrees)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.EmissiveSamples < 0 {
		return fmt.Errorf("emissive_samples must not be negative, got %d", c.EmissiveSamples)
	}
	if c.Scene != "day" && c.Scene != "night" {
		return fmt.Errorf("unknown scene %q, expected \"day\" or \"night\"", c.Scene)
	}
	return nil
}

// FOV returns the field of view in radians
func (c Config) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}

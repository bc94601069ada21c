package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config must validate, got %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	content := `
width = 320
height = 240
fov = 45.0
scene = "night"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("Expected 320x240, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FOVDegrees != 45 {
		t.Errorf("Expected fov 45, got %g", cfg.FOVDegrees)
	}
	if cfg.Scene != "night" {
		t.Errorf("Expected night scene, got %q", cfg.Scene)
	}

	// Unset fields keep their defaults
	if cfg.MaxDepth != 3 {
		t.Errorf("Expected default max_depth 3, got %d", cfg.MaxDepth)
	}
	if cfg.AssetsDir != "assets" {
		t.Errorf("Expected default assets dir, got %q", cfg.AssetsDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.toml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero fov", func(c *Config) { c.FOVDegrees = 0 }},
		{"fov too wide", func(c *Config) { c.FOVDegrees = 180 }},
		{"zero max depth", func(c *Config) { c.MaxDepth = 0 }},
		{"negative emissive samples", func(c *Config) { c.EmissiveSamples = -1 }},
		{"unknown scene", func(c *Config) { c.Scene = "noon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestFOV_Radians(t *testing.T) {
	cfg := Default()
	cfg.FOVDegrees = 60

	if math.Abs(cfg.FOV()-math.Pi/3) > 1e-12 {
		t.Errorf("Expected π/3, got %f", cfg.FOV())
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jmorales/go-diorama-raytracer/pkg/config"
	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/renderer"
	"github.com/jmorales/go-diorama-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "", "Scene type: 'day' or 'night' (overrides config)")
	configPath := flag.String("config", "", "Path to a TOML render config")
	outputDir := flag.String("out", "output", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diorama Raytracer")
		fmt.Println("Usage: diorama [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  day   - House diorama under a white sun")
		fmt.Println("  night - Same diorama under moonlight with an emissive lantern")
		fmt.Println()
		fmt.Println("Output is saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *sceneType != "" {
		cfg.Scene = *sceneType
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		os.Exit(1)
	}

	logger := core.NewDefaultLogger()
	selectedScene, err := buildScene(cfg, logger)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(*outputDir, cfg.Scene)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	rt := renderer.NewRaytracer(selectedScene)
	rt.SetConfig(renderer.Config{
		MaxDepth:        cfg.MaxDepth,
		EmissiveSamples: cfg.EmissiveSamples,
	})

	fb := renderer.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear()

	fmt.Printf("Rendering %s scene at %dx%d...\n", cfg.Scene, cfg.Width, cfg.Height)
	startTime := time.Now()
	if err := rt.RenderParallel(context.Background(), fb, selectedScene.Camera, cfg.FOV(), cfg.Workers); err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// buildScene constructs the scene named by the config
func buildScene(cfg config.Config, logger core.Logger) (*scene.Scene, error) {
	switch cfg.Scene {
	case "day":
		return scene.NewDioramaScene(cfg.AssetsDir, logger), nil
	case "night":
		return scene.NewNightScene(cfg.AssetsDir, logger), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", cfg.Scene)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jmorales/go-diorama-raytracer/pkg/config"
	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/viewer/app"
)

func main() {
	sceneType := flag.String("scene", "", "Scene type: 'day' or 'night' (overrides config)")
	configPath := flag.String("config", "", "Path to a TOML render config")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diorama Raytracer Viewer")
		fmt.Println("Usage: viewer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Controls:")
		fmt.Println("  arrows / WASD - orbit the camera")
		fmt.Println("  wheel, + / -  - zoom")
		fmt.Println("  1 / 2         - day / night lighting")
		fmt.Println("  esc           - quit")
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

	viewer, err := app.New(cfg, core.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error starting viewer: %v\n", err)
		os.Exit(1)
	}
	defer viewer.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Diorama Raytracer")
	if err := ebiten.RunGame(viewer); err != nil {
		fmt.Printf("Viewer error: %v\n", err)
		os.Exit(1)
	}
}

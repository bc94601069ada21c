// Package app hosts the interactive viewer: a live window that re-renders
// the diorama whenever the camera moves. The window loop, input polling and
// frame pacing live here, outside the render core.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"

	"github.com/jmorales/go-diorama-raytracer/pkg/config"
	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/renderer"
	"github.com/jmorales/go-diorama-raytracer/pkg/scene"
)

const (
	orbitStep = 0.05
	zoomStep  = 0.25
)

// renderRequest is an immutable snapshot of everything one render needs.
// Snapshotting keeps the render goroutine off the camera and light list
// the Update loop mutates.
type renderRequest struct {
	eye, center, up core.Vec3
	lights          []renderer.Light
}

// frameResult carries a finished framebuffer back to the game loop
type frameResult struct {
	fb      *renderer.Framebuffer
	elapsed time.Duration
}

// App implements ebiten.Game. Rendering happens on a background goroutine;
// Update only records input and hands out work, so the window stays
// responsive while a frame is being traced.
type App struct {
	cfg       config.Config
	baseScene *scene.Scene
	camera    *renderer.Camera
	lights    []renderer.Light
	lighting  string

	pixels     []byte
	requests   chan renderRequest
	frames     chan frameResult
	free       chan *renderer.Framebuffer
	pending    bool
	renderTime time.Duration

	group  *errgroup.Group
	cancel context.CancelFunc
}

// New builds the viewer for the configured scene and starts its render
// goroutine
func New(cfg config.Config, logger core.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid viewer settings: %w", err)
	}

	var s *scene.Scene
	switch cfg.Scene {
	case "night":
		s = scene.NewNightScene(cfg.AssetsDir, logger)
	default:
		s = scene.NewDioramaScene(cfg.AssetsDir, logger)
	}

	a := &App{
		cfg:       cfg,
		baseScene: s,
		camera:    s.Camera,
		lights:    s.Lights,
		lighting:  cfg.Scene,
		pixels:    make([]byte, cfg.Width*cfg.Height*4),
		requests:  make(chan renderRequest, 1),
		frames:    make(chan frameResult, 1),
		free:      make(chan *renderer.Framebuffer, 2),
		pending:   true, // render the first frame
	}
	a.free <- renderer.NewFramebuffer(cfg.Width, cfg.Height)
	a.free <- renderer.NewFramebuffer(cfg.Width, cfg.Height)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.group, ctx = errgroup.WithContext(ctx)
	a.group.Go(func() error { return a.renderLoop(ctx) })

	return a, nil
}

// Close stops the render goroutine and waits for it to finish
func (a *App) Close() error {
	a.cancel()
	return a.group.Wait()
}

// Update polls input, applies camera controls and schedules re-renders.
// Part of ebiten.Game.
func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		a.camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		a.camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		a.camera.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		a.camera.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		a.camera.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		a.camera.Zoom(-zoomStep)
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		a.camera.Zoom(wheelY * zoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) && a.lighting != "day" {
		a.lights = scene.DayLights()
		a.lighting = "day"
		a.pending = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) && a.lighting != "night" {
		a.lights = scene.NightLights()
		a.lighting = "night"
		a.pending = true
	}

	if a.camera.Changed() {
		a.pending = true
	}

	// Hand the snapshot to the render goroutine; if it is still busy, keep
	// the request pending and retry next tick
	if a.pending {
		select {
		case a.requests <- a.snapshot():
			a.pending = false
		default:
		}
	}

	// Adopt a finished frame if one is ready
	select {
	case result := <-a.frames:
		result.fb.WriteRGBA(a.pixels)
		a.free <- result.fb
		a.renderTime = result.elapsed
	default:
	}

	return nil
}

// Draw blits the most recent finished frame. Part of ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.WritePixels(a.pixels)

	hud := fmt.Sprintf("lighting: %s  render: %v", a.lighting, a.renderTime.Round(time.Millisecond))
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
	ebitenutil.DebugPrintAt(screen, "arrows/WASD orbit  wheel/+- zoom  1 day  2 night  esc quit", 8, 24)
}

// Layout reports the fixed framebuffer size. Part of ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

func (a *App) snapshot() renderRequest {
	return renderRequest{
		eye:    a.camera.Eye,
		center: a.camera.Center,
		up:     a.camera.Up,
		lights: a.lights,
	}
}

// renderLoop serves render requests until the context is cancelled. Each
// request renders into a recycled framebuffer against a scene view built
// from the snapshot, so nothing here touches state the game loop owns.
func (a *App) renderLoop(ctx context.Context) error {
	for {
		var req renderRequest
		select {
		case <-ctx.Done():
			return nil
		case req = <-a.requests:
		}

		var fb *renderer.Framebuffer
		select {
		case <-ctx.Done():
			return nil
		case fb = <-a.free:
		}

		camera := renderer.NewCamera(req.eye, req.center, req.up)
		view := &scene.Scene{
			Camera:  camera,
			Objects: a.baseScene.Objects,
			Lights:  req.lights,
			Skybox:  a.baseScene.Skybox,
		}
		rt := renderer.NewRaytracer(view)
		rt.SetConfig(renderer.Config{
			MaxDepth:        a.cfg.MaxDepth,
			EmissiveSamples: a.cfg.EmissiveSamples,
		})

		start := time.Now()
		if err := rt.RenderParallel(ctx, fb, camera, a.cfg.FOV(), a.cfg.Workers); err != nil {
			// Cancelled mid-render during shutdown
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case a.frames <- frameResult{fb: fb, elapsed: time.Since(start)}:
		}
	}
}

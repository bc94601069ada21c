package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Render fills the framebuffer by tracing one primary ray per pixel. Scene
// data is read-only for the duration of the call.
func (rt *Raytracer) Render(fb *Framebuffer, camera *Camera, fov float64) {
	for y := 0; y < fb.Height; y++ {
		rt.renderRow(fb, camera, fov, y)
	}
}

// RenderParallel renders rows across a pool of workers. Each worker owns its
// own Raytracer so sampler state is never shared, and rows partition the
// framebuffer disjointly, so no synchronization is needed beyond the final
// join. Workers <= 0 uses one worker per CPU.
func (rt *Raytracer) RenderParallel(ctx context.Context, fb *Framebuffer, camera *Camera, fov float64, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	rows := make(chan int)

	for i := 0; i < workers; i++ {
		worker := NewRaytracer(rt.scene)
		worker.SetConfig(rt.config)
		g.Go(func() error {
			for y := range rows {
				worker.renderRow(fb, camera, fov, y)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(rows)
		for y := 0; y < fb.Height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

func (rt *Raytracer) renderRow(fb *Framebuffer, camera *Camera, fov float64, y int) {
	for x := 0; x < fb.Width; x++ {
		direction := camera.RayDirection(x, y, fb.Width, fb.Height, fov)
		fb.SetPixel(x, y, rt.CastRay(camera.Eye, direction, 0))
	}
}

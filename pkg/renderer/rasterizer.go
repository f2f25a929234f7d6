package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// Scene is the nearest-hit query the rasterizer needs
type Scene interface {
	Nearest(ray core.Ray) (core.Color, float64, bool)
}

// Rasterizer casts one ray per pixel and records the nearest hit's color
type Rasterizer struct {
	scene  Scene
	config Config
	camera *Camera
	logger core.Logger
}

// NewRasterizer creates a rasterizer. A nil logger discards output.
func NewRasterizer(scene Scene, config Config, logger core.Logger) (*Rasterizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Rasterizer{
		scene:  scene,
		config: config,
		camera: NewCamera(config),
		logger: logger,
	}, nil
}

// Config returns the rasterizer configuration
func (r *Rasterizer) Config() Config {
	return r.config
}

// RenderColumn resolves every pixel of column x into img
func (r *Rasterizer) RenderColumn(x int, img *Image) RenderStats {
	stats := RenderStats{}
	for y := 0; y < img.Height; y++ {
		ray := r.camera.GetRay(x, y)

		c, _, ok := r.scene.Nearest(ray)
		if ok {
			stats.HitPixels++
		} else {
			c = r.config.Background
			stats.BackgroundPixels++
		}

		img.Set(x, y, c)
		stats.TotalPixels++
	}
	return stats
}

// Render rasterizes the whole grid. Columns are spread over the worker pool;
// the result does not depend on the number of workers.
func (r *Rasterizer) Render() (*Image, RenderStats, error) {
	start := time.Now()
	width, height := r.config.Width, r.config.Height
	img := NewImage(width, height, r.config.Background)

	pool := NewWorkerPool(r, min(r.config.workers(), width), width)
	r.logger.Printf("Rendering %dx%d with %d workers\n", width, height, pool.GetNumWorkers())

	pool.Start()
	for x := 0; x < width; x++ {
		pool.SubmitTask(ColumnTask{X: x, Image: img})
	}
	pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	columns := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
		columns++
	}

	if columns != width || stats.TotalPixels != width*height {
		return nil, stats, fmt.Errorf("rendered %d of %d columns (%d pixels)", columns, width, stats.TotalPixels)
	}

	stats.Elapsed = time.Since(start)
	r.logger.Printf("Render completed in %v: %d hit, %d background\n", stats.Elapsed, stats.HitPixels, stats.BackgroundPixels)
	return img, stats, nil
}

package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderConfig contains parallelism and reproducibility settings
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers, must be positive
	Seed       int64 // Base seed; row j uses Seed + j
}

// DefaultRenderConfig returns one worker per CPU and a fixed seed
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: runtime.NumCPU(),
		Seed:       42,
	}
}

// Raytracer renders a world through a camera, one scanline per task
type Raytracer struct {
	world      core.Hittable
	camera     *Camera
	integrator core.Integrator
	sampling   core.SamplingConfig
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. World and camera are shared
// read-only by every worker.
func NewRaytracer(world core.Hittable, camera *Camera, integrator core.Integrator, sampling core.SamplingConfig, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDiscardLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator,
		sampling:   sampling,
		config:     config,
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config core.SamplingConfig) {
	rt.sampling = config
}

// validate rejects settings that cannot produce an image
func (rt *Raytracer) validate() error {
	s := rt.sampling
	// Jitter divides by (width-1) and (height-1)
	if s.Width < 2 || s.Height < 2 {
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if s.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidDimensions, s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidDimensions, s.MaxDepth)
	}
	return nil
}

// Render traces every pixel and blocks until all scanlines are committed.
// The returned buffer is complete and ready for an image writer.
func (rt *Raytracer) Render() (*ImageBuffer, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.sampling.Width, rt.sampling.Height
	buffer := NewImageBuffer(width, height, rt.sampling.SamplesPerPixel)
	progress := NewProgress(height, rt.logger)

	pool, err := NewWorkerPool(rt.config.NumWorkers, height, func(task ScanlineTask) ScanlineResult {
		return rt.renderScanline(task, buffer, progress)
	})
	if err != nil {
		return nil, RenderStats{}, err
	}

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (using %d workers)...\n",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	// Top row first
	for j := height - 1; j >= 0; j-- {
		pool.SubmitTask(ScanlineTask{Row: j, Seed: rt.config.Seed + int64(j)})
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
	}
	var errs []error
	for _, result := range pool.Results() {
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		stats.Scanlines++
		stats.TotalSamples += result.Samples
	}
	stats.Duration = time.Since(startTime)

	if err := errors.Join(errs...); err != nil {
		return nil, stats, fmt.Errorf("rendering scanlines: %w", err)
	}

	buffer.MarkComplete()
	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return buffer, stats, nil
}

// renderScanline samples one row into a local slice, then commits it
func (rt *Raytracer) renderScanline(task ScanlineTask, buffer *ImageBuffer, progress *Progress) ScanlineResult {
	random := rand.New(rand.NewSource(task.Seed))
	width, height := rt.sampling.Width, rt.sampling.Height
	j := task.Row

	row := make([]core.Color, width)
	for i := 0; i < width; i++ {
		var pixelColor core.Color
		for sample := 0; sample < rt.sampling.SamplesPerPixel; sample++ {
			s := (float64(i) + random.Float64()) / float64(width-1)
			t := (float64(j) + random.Float64()) / float64(height-1)
			ray := rt.camera.GetRay(s, t, random)
			pixelColor.AddAssign(rt.integrator.RayColor(ray, rt.world, rt.sampling.MaxDepth, random))
		}
		row[i] = pixelColor
	}

	if err := buffer.WriteRow(height-1-j, row); err != nil {
		return ScanlineResult{Row: j, Error: err}
	}
	progress.Increment()

	return ScanlineResult{Row: j, Samples: width * rt.sampling.SamplesPerPixel}
}

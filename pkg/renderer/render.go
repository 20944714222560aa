package renderer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/geometry"
	"github.com/df07/go-band-raytracer/pkg/integrator"
)

// Options carries the optional collaborators of a render
type Options struct {
	Logger   core.Logger // Must be safe for concurrent use; nil discards output
	Progress *Progress   // Updated as pixels arrive; may be nil
}

// Raytracer renders a world through a camera using one worker per row band
type Raytracer struct {
	world      integrator.World
	camera     geometry.Camera
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
	progress   *Progress
}

// NewRaytracer creates a new raytracer. The world must not change while a render is running.
func NewRaytracer(world integrator.World, camera geometry.Camera, config Config, opts Options) *Raytracer {
	logger := opts.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}
	progress := opts.Progress
	if progress == nil {
		progress = NewProgress()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(world, config.MaxDepth),
		logger:     logger,
		progress:   progress,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Progress returns the counter updated by Render
func (rt *Raytracer) Progress() *Progress {
	return rt.progress
}

// Render validates the configuration, renders every band concurrently and assembles the
// image. Either the whole image is returned or an error; a failed band aborts the render.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.config.Width, rt.config.Height()
	bands, err := PartitionRows(height, rt.config.BandSize)
	if err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	rt.progress.start(width * height)
	rt.logger.Printf("Rendering %dx%d: %d bands of %d rows, %d samples per pixel, max depth %d\n",
		width, height, len(bands), rt.config.BandSize, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	// One row of slack per producer keeps workers from stalling on the collector
	results := make(chan PixelResult, width*len(bands))
	collector := NewCollector(width, bands)

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range bands {
		w := &bandWorker{
			band:       band,
			width:      width,
			height:     height,
			samples:    rt.config.SamplesPerPixel,
			camera:     rt.camera,
			integrator: rt.integrator,
			sampler:    core.NewSeededSampler(rt.config.Seed + int64(band.Index)),
			results:    results,
		}
		g.Go(func() error {
			bandStart := time.Now()
			if err := w.run(gctx); err != nil {
				return err
			}
			rt.logger.Printf("Finished %v in %v\n", w.band, time.Since(bandStart).Round(time.Millisecond))
			return nil
		})
	}

	// The collector stops when every producer has returned and the channel is closed
	var workerErr error
	go func() {
		workerErr = g.Wait()
		close(results)
	}()

	collectErr := collector.Drain(results, rt.progress)
	if workerErr != nil {
		return nil, RenderStats{}, workerErr
	}
	if collectErr != nil {
		return nil, RenderStats{}, fmt.Errorf("collecting render results: %w", collectErr)
	}

	img, err := collector.Image()
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Bands:           len(bands),
		Duration:        time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v\n", stats.Duration.Round(time.Millisecond))
	return img, stats, nil
}

// RenderTo renders and hands the finished image to sink. The sink is not called when rendering fails.
func (rt *Raytracer) RenderTo(ctx context.Context, sink Sink) (RenderStats, error) {
	img, stats, err := rt.Render(ctx)
	if err != nil {
		return stats, err
	}
	if err := sink.WriteImage(img); err != nil {
		return stats, fmt.Errorf("writing image: %w", err)
	}
	return stats, nil
}

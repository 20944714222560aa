package renderer

import (
	"context"
	"fmt"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/geometry"
	"github.com/df07/go-band-raytracer/pkg/integrator"
)

// WorkerError reports the band whose worker failed
type WorkerError struct {
	Band int
	Err  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("render worker for band %d failed: %v", e.Band, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}

// bandWorker renders every pixel of one band. The camera and integrator are shared
// read-only with the other workers; the sampler belongs to this worker alone.
type bandWorker struct {
	band       Band
	width      int
	height     int
	samples    int
	camera     geometry.Camera
	integrator integrator.Integrator
	sampler    core.Sampler
	results    chan<- PixelResult
}

// run renders the band row by row, emitting pixels in scan order
func (w *bandWorker) run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerError{Band: w.band.Index, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	// s and t reach exactly 1 on the last column and row
	xScale := 1.0 / float64(max(w.width-1, 1))
	yScale := 1.0 / float64(max(w.height-1, 1))

	for y := w.band.StartRow; y < w.band.EndRow; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < w.width; x++ {
			var colorAccum core.Color
			for sample := 0; sample < w.samples; sample++ {
				jitter := w.sampler.Get2D()
				s := (float64(x) + jitter.X) * xScale
				t := (float64(y) + jitter.Y) * yScale
				ray := w.camera.GetRay(s, t, w.sampler)
				colorAccum = colorAccum.Add(w.integrator.RayColor(ray, w.sampler))
			}

			result := PixelResult{
				Band:   w.band.Index,
				Offset: (y-w.band.StartRow)*w.width + x,
				Pixel:  colorAccum.ToPixel(w.samples),
			}
			select {
			case w.results <- result:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

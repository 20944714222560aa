package integrator

import (
	"math"

	"github.com/df07/go-band-raytracer/pkg/core"
)

// shadowAcneEpsilon skips intersections right at the ray origin caused by floating-point error
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with purely multiplicative
// transport: light only enters a path from the background.
type PathTracingIntegrator struct {
	world       World
	maxDepth    int
	topColor    core.Color
	bottomColor core.Color
}

// NewPathTracingIntegrator creates a path tracer over world that follows at most maxDepth bounces
func NewPathTracingIntegrator(world World, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		world:       world,
		maxDepth:    maxDepth,
		topColor:    core.NewColor(0.5, 0.7, 1.0), // sky blue
		bottomColor: core.White(),
	}
}

// WithBackground replaces the gradient endpoints: bottom is seen looking straight down, top straight up
func (pt *PathTracingIntegrator) WithBackground(bottom, top core.Color) *PathTracingIntegrator {
	pt.bottomColor = bottom
	pt.topColor = top
	return pt
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray. It is the loop form of
// color(ray, depth) = attenuation * color(scattered, depth-1), with black once
// depth runs out or a material absorbs the ray.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Color {
	throughput := core.White()

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := pt.world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.Multiply(pt.BackgroundColor(ray))
		}
		if hit.Material == nil {
			return core.Black()
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Black()
		}

		throughput = throughput.Multiply(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	return core.Black()
}

// BackgroundColor returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundColor(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.bottomColor.Scale(1.0 - t).Add(pt.topColor.Scale(t))
}

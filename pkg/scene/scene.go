package scene

import (
	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/geometry"
	"github.com/df07/go-band-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. A Scene is immutable once
// built, which is what lets every render worker read it concurrently without locks.
type Scene struct {
	Camera         geometry.Camera
	SamplingConfig SamplingConfig
	shapes         []geometry.Shape
}

// SamplingConfig contains the render settings a scene recommends
type SamplingConfig struct {
	Width           int     // Image width
	AspectRatio     float64 // Image width / height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	BandSize        int     // Rows per render worker
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           450,
		AspectRatio:     1.0,
		SamplesPerPixel: 150,
		MaxDepth:        50,
		BandSize:        150,
	}
}

// Hit returns the closest intersection across all shapes with tMin < t <= tMax.
// Every shape is tested; tMax shrinks to the closest hit found so far.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for i := range s.shapes {
		if hit, isHit := s.shapes[i].Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns a copy of the scene's shapes in insertion order
func (s *Scene) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(s.shapes))
	copy(shapes, s.shapes)
	return shapes
}

// Builder accumulates shapes before a Scene is frozen
type Builder struct {
	camera         geometry.Camera
	samplingConfig SamplingConfig
	shapes         []geometry.Shape
}

// NewBuilder starts an empty scene with the default camera and sampling config
func NewBuilder() *Builder {
	return &Builder{
		camera:         geometry.NewCamera(),
		samplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends shapes in order
func (b *Builder) Add(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// AddSphere appends a sphere
func (b *Builder) AddSphere(center core.Point, radius float64, mat *material.Material) *Builder {
	return b.Add(geometry.NewSphere(center, radius, mat))
}

// WithCamera sets the scene camera
func (b *Builder) WithCamera(camera geometry.Camera) *Builder {
	b.camera = camera
	return b
}

// WithSamplingConfig sets the recommended render settings
func (b *Builder) WithSamplingConfig(config SamplingConfig) *Builder {
	b.samplingConfig = config
	return b
}

// Build freezes the accumulated shapes into a Scene. The builder may keep
// being used; later additions do not affect scenes already built.
func (b *Builder) Build() *Scene {
	shapes := make([]geometry.Shape, len(b.shapes))
	copy(shapes, b.shapes)
	return &Scene{
		Camera:         b.camera.WithAspectRatio(b.samplingConfig.AspectRatio),
		SamplingConfig: b.samplingConfig,
		shapes:         shapes,
	}
}

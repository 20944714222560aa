package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/geometry"
	"github.com/df07/go-band-raytracer/pkg/material"
)

// NewDefaultScene creates a small scene: three spheres on a large ground sphere
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera().
		WithLookFrom(core.NewVec3(0, 0.75, 2)).
		WithLookAt(core.NewVec3(0, 0.25, -1)).
		WithVFov(40).
		WithLensRadius(0.02)

	samplingConfig := SamplingConfig{
		Width:           400,
		AspectRatio:     16.0 / 10.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		BandSize:        50,
	}

	ground := material.NewLambertian(core.ColorFromStd(colornames.Olive))
	diffuse := material.NewLambertian(core.ColorFromStd(colornames.Firebrick))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.ColorFromStd(colornames.Goldenrod), 0.3)

	return NewBuilder().
		WithCamera(camera).
		WithSamplingConfig(samplingConfig).
		AddSphere(core.NewVec3(0, -100.5, -1), 100, ground).
		AddSphere(core.NewVec3(0, 0, -1), 0.5, diffuse).
		AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass).
		// negative radius flips the normals, making a hollow glass bubble
		AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass).
		AddSphere(core.NewVec3(1, 0, -1), 0.5, gold).
		Build()
}

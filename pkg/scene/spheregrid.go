package scene

import (
	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/geometry"
	"github.com/df07/go-band-raytracer/pkg/material"
)

const (
	gridExtent        = 11    // spheres are placed on the integer grid [-11, 11)
	smallSphereRadius = 0.2   // radius of the scattered spheres
	smallSphereHeight = 0.195 // slightly sunk into the ground sphere
)

// NewSphereFieldScene creates a field of small randomly colored spheres on a huge ground
// sphere, with three large feature spheres (diffuse, glass, metal) in the middle.
// The same seed always produces the same scene.
func NewSphereFieldScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	camera := geometry.NewCamera().
		WithVFov(20).
		WithLookFrom(core.NewVec3(8.2, 4.2, 3)).
		WithLookAt(core.NewVec3(0, 0, 0)).
		WithLensRadius(0.02)

	b := NewBuilder().
		WithCamera(camera).
		WithSamplingConfig(DefaultSamplingConfig())

	ground := material.NewLambertian(core.Gray(0.5))
	b.AddSphere(core.NewVec3(0, -1000, -1), 1000, ground)

	// Keep the area around the front feature sphere clear
	clearing := core.NewVec3(4, smallSphereHeight, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for c := -gridExtent; c < gridExtent; c++ {
			choice := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallSphereHeight,
				float64(c)+0.9*sampler.Get1D(),
			)
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			if choice < 0.8 {
				albedo := core.RandomColor(sampler).Multiply(core.RandomColor(sampler))
				mat = material.NewLambertian(albedo)
			} else {
				albedo := core.RandomColorRange(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.35)
				mat = material.NewMetal(albedo, fuzz)
			}
			b.AddSphere(center, smallSphereRadius, mat)
		}
	}

	solid := material.NewLambertian(core.NewColor(0.7, 0.3, 0.3))
	metal := material.NewMetal(core.Gray(0.6), 0.15)
	glass := material.NewDielectric(1.5)

	b.AddSphere(core.NewVec3(-4, 1, 0), 1, solid)
	b.AddSphere(core.NewVec3(0, 1, 0), 1, glass)
	b.AddSphere(core.NewVec3(4, 1, 0), 1, metal)

	return b.Build()
}

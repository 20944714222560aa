package material

import (
	"github.com/df07/go-band-raytracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Color) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian sends the ray along normal + random unit vector, which approximates a
// cosine-weighted lobe around the normal. It always scatters.
func (m *Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector nearly cancelled the normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}

package integrator

import (
	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/material"
)

// World is anything rays can be intersected with. *scene.Scene implements it.
type World interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray
	RayColor(ray core.Ray, sampler core.Sampler) core.Color
}

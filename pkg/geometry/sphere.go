package geometry

import (
	"math"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/material"
)

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, mat *material.Material) Shape {
	return Shape{
		Kind:     KindSphere,
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// hitSphere solves |O + tD - C|² = r² for t
func (s *Shape) hitSphere(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients for a·t² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

package geometry

import (
	"fmt"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/material"
)

// ShapeKind identifies the geometry stored in a Shape
type ShapeKind int

const (
	KindSphere ShapeKind = iota
)

// String returns the name of the geometry kind
func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is a primitive that can be hit by rays. The set of kinds is closed;
// Hit dispatches on Kind so the intersection loop stays free of interface calls.
// A shape owns its geometry and shares its material with other shapes.
type Shape struct {
	Kind     ShapeKind
	Center   core.Point
	Radius   float64
	Material *material.Material
}

// Hit returns the nearest intersection with tMin < t <= tMax, if any
func (s *Shape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	switch s.Kind {
	case KindSphere:
		return s.hitSphere(ray, tMin, tMax)
	default:
		return nil, false
	}
}

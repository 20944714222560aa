package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	mat := material.NewLambertian(core.Gray(0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction scales t",
			rayOrigin:      core.NewVec3(0, 5, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != mat {
				t.Error("Hit record should carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_Interval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)) // roots at t=2 and t=4

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots in range", 0.001, 10, true, 2},
		{"near root excluded by tMax", 0.001, 1.5, false, 0},
		{"near root excluded by tMin", 2.5, 10, true, 4},
		{"tMax inclusive", 0.001, 2, true, 2},
		{"tMin exclusive", 2, 3, false, 0},
		{"both excluded", 4.5, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_RandomRaysFromOutside(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	for i := 0; i < 500; i++ {
		center := core.RandomInUnitSphere(sampler).Multiply(10)
		radius := 0.1 + 3*random.Float64()
		sphere := NewSphere(center, radius, nil)

		// Start outside the sphere and aim at a point inside it
		origin := center.Add(core.RandomUnitVector(sampler).Multiply(radius * (1.5 + 5*random.Float64())))
		target := center.Add(core.RandomInUnitSphere(sampler).Multiply(radius * 0.9))
		ray := core.NewRay(origin, target.Subtract(origin).Multiply(0.5+random.Float64()))

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatalf("Ray from %v towards %v missed sphere %v r=%f", origin, target, center, radius)
		}
		if hit.T <= 0 {
			t.Errorf("Expected positive distance, got %f", hit.T)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
		if math.Abs(hit.Point.Subtract(center).Length()-radius) > 1e-9*math.Max(1, radius) {
			t.Errorf("Hit point %v not on sphere surface", hit.Point)
		}
		if ray.Direction.Dot(hit.Normal) >= 0 {
			t.Errorf("Normal %v should oppose ray direction %v", hit.Normal, ray.Direction)
		}
		if !hit.FrontFace {
			t.Error("A ray from outside should hit the front face")
		}
	}
}

func TestShape_UnknownKindNeverHits(t *testing.T) {
	shape := Shape{Kind: ShapeKind(7), Radius: 1}
	if _, isHit := shape.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); isHit {
		t.Error("Unknown shape kind should never report a hit")
	}
	if KindSphere.String() != "sphere" {
		t.Errorf("Unexpected kind name %q", KindSphere.String())
	}
}

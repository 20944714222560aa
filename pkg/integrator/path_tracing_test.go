package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-band-raytracer/pkg/core"
	"github.com/df07/go-band-raytracer/pkg/material"
	"github.com/df07/go-band-raytracer/pkg/scene"
)

func colorClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

// createTestScene creates a simple scene with a diffuse sphere for testing
func createTestScene() *scene.Scene {
	lambertian := material.NewLambertian(core.NewColor(0.7, 0.3, 0.3))
	return scene.NewBuilder().
		AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertian).
		Build()
}

// countingWorld records how often it is queried and never reports a hit
type countingWorld struct {
	calls int
}

func (w *countingWorld) Hit(core.Ray, float64, float64) (*material.HitRecord, bool) {
	w.calls++
	return nil, false
}

// fixedWorld reports the same hit for every query
type fixedWorld struct {
	hit material.HitRecord
}

func (w fixedWorld) Hit(core.Ray, float64, float64) (*material.HitRecord, bool) {
	hit := w.hit
	return &hit, true
}

func TestPathTracingDepthZeroIsBlack(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // at the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // at the sky
	}

	worlds := map[string]World{
		"scene":       createTestScene(),
		"empty scene": scene.NewBuilder().Build(),
	}

	for name, world := range worlds {
		t.Run(name, func(t *testing.T) {
			for _, depth := range []int{0, -3} {
				pt := NewPathTracingIntegrator(world, depth)
				for _, ray := range rays {
					if got := pt.RayColor(ray, sampler); !got.IsBlack() {
						t.Errorf("Expected black for depth %d, got %v", depth, got)
					}
				}
			}
		})
	}
}

func TestPathTracingDepthZeroNeverQueriesWorld(t *testing.T) {
	world := &countingWorld{}
	NewPathTracingIntegrator(world, 0).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), core.NewSeededSampler(1))
	if world.calls != 0 {
		t.Errorf("Expected no intersection queries at depth 0, got %d", world.calls)
	}
}

func TestPathTracingBackgroundGradient(t *testing.T) {
	pt := NewPathTracingIntegrator(scene.NewBuilder().Build(), 10)
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight up unnormalized", core.NewVec3(0, 25, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.White()},
		{"horizon is halfway", core.NewVec3(1, 0, 0), core.NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pt.RayColor(core.NewRay(core.NewVec3(3, 4, 5), tt.direction), sampler)
			if !colorClose(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingCustomBackground(t *testing.T) {
	pt := NewPathTracingIntegrator(scene.NewBuilder().Build(), 1).
		WithBackground(core.NewColor(1, 0, 0), core.NewColor(0, 0, 1))

	up := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), core.NewSeededSampler(1))
	if up != core.NewColor(0, 0, 1) {
		t.Errorf("Expected top color, got %v", up)
	}
}

func TestPathTracingMirrorBounce(t *testing.T) {
	albedo := core.NewColor(0.9, 0.5, 0.25)
	mirror := material.NewMetal(albedo, 0)
	// A huge sphere whose top is the plane y = 0
	world := scene.NewBuilder().AddSphere(core.NewVec3(0, -1000, 0), 1000, mirror).Build()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(1)

	t.Run("depth one runs out after the bounce", func(t *testing.T) {
		got := NewPathTracingIntegrator(world, 1).RayColor(ray, sampler)
		if !got.IsBlack() {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("depth two sees the sky through the mirror", func(t *testing.T) {
		got := NewPathTracingIntegrator(world, 2).RayColor(ray, sampler)
		expected := albedo.Multiply(core.NewColor(0.5, 0.7, 1.0))
		if !colorClose(got, expected, 1e-12) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})
}

func TestPathTracingDiffuseSingleBounceIsBlack(t *testing.T) {
	pt := NewPathTracingIntegrator(createTestScene(), 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 50; i++ {
		if got := pt.RayColor(ray, sampler); !got.IsBlack() {
			t.Fatalf("A hit with no bounces left should be black, got %v", got)
		}
	}
}

func TestPathTracingAbsorbedIsBlack(t *testing.T) {
	absorber := &material.Material{Kind: material.Kind(-1)}
	world := fixedWorld{hit: material.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1,
		FrontFace: true,
		Material:  absorber,
	}}

	got := NewPathTracingIntegrator(world, 50).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.NewSeededSampler(1))
	if !got.IsBlack() {
		t.Errorf("Expected black for absorbed ray, got %v", got)
	}
}

func TestPathTracingDiffuseStaysBelowBackground(t *testing.T) {
	pt := NewPathTracingIntegrator(createTestScene(), 10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var sum core.Color
	const samples = 500
	for i := 0; i < samples; i++ {
		c := pt.RayColor(ray, sampler)
		if c.R < 0 || c.G < 0 || c.B < 0 {
			t.Fatalf("Negative radiance %v", c)
		}
		// every path ends at the background attenuated by albedo at least once
		if c.R > 0.7+1e-12 || c.G > 0.3+1e-12 {
			t.Fatalf("Radiance %v exceeds single-bounce albedo bound", c)
		}
		sum = sum.Add(c)
	}
	if sum.IsBlack() {
		t.Error("Expected some light to reach the camera through the diffuse sphere")
	}
}

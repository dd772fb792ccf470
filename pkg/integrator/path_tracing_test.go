package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// MockMaterial implements core.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool)
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, random)
}

// MockHittable implements core.Hittable for testing
type MockHittable struct {
	hitFn func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool)
}

func (m *MockHittable) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func colorNear(a, b core.Color) bool {
	return a.Subtract(b).Length() < 1e-9
}

// createTestWorld creates a simple world with a diffuse sphere
func createTestWorld() *geometry.HittableList {
	world := geometry.NewHittableList()
	world.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	return world
}

func TestPathTracing_DepthZeroIsBlack(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultBackground())
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name  string
		ray   core.Ray
		world core.Hittable
	}{
		{"towards sphere", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), createTestWorld()},
		{"towards sky", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), createTestWorld()},
		{"empty world", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), geometry.NewHittableList()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := integrator.RayColor(tt.ray, tt.world, 0, random)
			if color != (core.Color{}) {
				t.Errorf("Expected black color for depth 0, got %v", color)
			}
		})
	}
}

func TestPathTracing_BackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultBackground())
	world := geometry.NewHittableList()
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewColor(1.0, 1.0, 1.0)},
		{"horizon", core.NewVec3(0, 0, -5), core.NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), world, 10, random)
			if !colorNear(color, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracing_AbsorbedRayIsBlack(t *testing.T) {
	absorber := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
			return core.ScatterResult{}, false
		},
	}
	world := geometry.NewHittableList()
	world.AddSphere(core.NewVec3(0, 0, -1), 0.5, absorber)

	integrator := NewPathTracingIntegrator(DefaultBackground())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if color := integrator.RayColor(ray, world, 10, rand.New(rand.NewSource(1))); color != (core.Color{}) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
}

func TestPathTracing_AttenuationMultipliesScatteredColor(t *testing.T) {
	attenuation := core.NewColor(0.5, 0.25, 1.0)
	mirror := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
			// Always bounce straight up into the sky
			return core.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
				Attenuation: attenuation,
			}, true
		},
	}

	calls := 0
	world := &MockHittable{
		hitFn: func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
			calls++
			if rayT.Min != MinHitDistance || !math.IsInf(rayT.Max, 1) {
				t.Errorf("Unexpected hit interval %+v", rayT)
			}
			// Only the initial downward ray hits the floor
			if ray.Direction.Y >= 0 {
				return nil, false
			}
			return core.NewHitRecord(ray, 1.0, core.NewVec3(0, 1, 0), mirror), true
		},
	}

	integrator := NewPathTracingIntegrator(DefaultBackground())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color := integrator.RayColor(ray, world, 5, rand.New(rand.NewSource(1)))

	expected := attenuation.MultiplyVec(DefaultBackground().Top)
	if !colorNear(color, expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if calls != 2 {
		t.Errorf("Expected 2 hit tests, got %d", calls)
	}
}

func TestPathTracing_DepthLimitsBounces(t *testing.T) {
	bounces := 0
	pingPong := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
			bounces++
			return core.ScatterResult{
				Scattered:   core.NewRay(hit.Point, rayIn.Direction.Negate()),
				Attenuation: core.NewColor(1, 1, 1),
			}, true
		},
	}
	world := &MockHittable{
		hitFn: func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
			return core.NewHitRecord(ray, 1.0, ray.Direction.Negate().Normalize(), pingPong), true
		},
	}

	integrator := NewPathTracingIntegrator(DefaultBackground())
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), world, 7, rand.New(rand.NewSource(1)))

	if bounces != 7 {
		t.Errorf("Expected 7 scatter events, got %d", bounces)
	}
	if color != (core.Color{}) {
		t.Errorf("A path that never escapes should be black, got %v", color)
	}
}

func TestPathTracing_DiffuseSphereIsDarkerThanSky(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultBackground())
	world := createTestWorld()
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var sum core.Color
	const samples = 200
	for i := 0; i < samples; i++ {
		sum.AddAssign(integrator.RayColor(ray, world, 10, random))
	}
	avg := sum.Divide(samples)

	if avg.X <= 0 || avg.X > 0.7 {
		t.Errorf("Red channel should be in (0, albedo], got %f", avg.X)
	}
	if avg.Y >= avg.X {
		t.Errorf("Reddish albedo should yield red > green, got %v", avg)
	}
}

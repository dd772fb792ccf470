package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3) bool {
	const tolerance = 1e-9
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 0.5, nil)
	ray := core.NewRay(core.NewVec3(-1, -1, -1), core.NewVec3(-1, -1, -1))

	hit, isHit := sphere.Hit(ray, core.UnboundedFrom(0))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutsideRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0, 0.5))
	if isHit {
		t.Errorf("Expected miss due to range bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_InsideRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0, 2))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if !vecNear(hit.Point, core.NewVec3(2, 0, 0)) {
		t.Errorf("Expected hit point (2,0,0), got %v", hit.Point)
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1.0, got t=%f", hit.T)
	}
	if !vecNear(hit.Normal, core.NewVec3(-1, 0, 0)) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.UnboundedFrom(0.001))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_PrefersNearerRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.UnboundedFrom(0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearer root t=4, got t=%f", hit.T)
	}

	// Excluding the nearer root falls back to the farther one
	hit, isHit = sphere.Hit(ray, core.NewInterval(4.5, 10))
	if !isHit {
		t.Fatal("Expected hit on far side, but got miss")
	}
	if math.Abs(hit.T-6.0) > 1e-9 {
		t.Errorf("Expected farther root t=6, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Far-side hit should be a back face")
	}
}

func TestSphere_Hit_NonUnitDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.Hit(ray, core.UnboundedFrom(0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1.0 for doubled direction, got %f", hit.T)
	}
	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := &stubMaterial{}
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, mat)
	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.UnboundedFrom(0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != mat {
		t.Errorf("Expected hit record to carry the sphere's material")
	}
}

type stubMaterial struct{}

func (m *stubMaterial) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

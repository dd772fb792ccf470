package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Color // Metal color
	Fuzz   float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz into [0, 1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: core.Clamp(fuzz, 0.0, 1.0)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random core.Random) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Rays perturbed into the surface are absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}

package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// MinHitDistance is the lower bound of the hit interval for every traced
// ray, so a freshly scattered ray does not re-hit its own origin.
const MinHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a
// fixed bounce limit and no explicit light sampling
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{background: background}
}

// RayColor computes the color for a single ray, recursing at most depth times
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, depth int, random core.Random) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, core.UnboundedFrom(MinHitDistance))
	if !isHit {
		return pt.background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return core.Color{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, depth-1, random))
}

package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. The material may be shared with other spheres.
func NewSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Contains(root) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !rayT.Contains(root) {
			return nil, false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Divide(s.Radius)
	return core.NewHitRecord(ray, root, outwardNormal, s.Material), true
}

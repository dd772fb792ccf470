package core

import "math"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Interval is a closed range [Min, Max] of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new closed interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// UnboundedFrom returns [minVal, +Inf]
func UnboundedFrom(minVal float64) Interval {
	return Interval{Min: minVal, Max: math.Inf(1)}
}

// Contains reports whether t lies within the closed interval
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Hittable interface for objects that can be hit by rays.
// Implementations must only report hits with T inside the interval.
type Hittable interface {
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns false when the incoming ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, random Random) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray
	Attenuation Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// NewHitRecord builds a hit record at parameter t along ray. The face
// orientation and the ray-opposing normal are both derived from
// outwardNormal, which must be unit length.
func NewHitRecord(ray Ray, t float64, outwardNormal Vec3, material Material) *HitRecord {
	frontFace := ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}

	return &HitRecord{
		Point:     ray.At(t),
		Normal:    normal,
		T:         t,
		FrontFace: frontFace,
		Material:  material,
	}
}

// Integrator computes the radiance carried back along a camera ray
type Integrator interface {
	RayColor(ray Ray, world Hittable, depth int, random Random) Color
}

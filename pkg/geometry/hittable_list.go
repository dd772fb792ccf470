package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// HittableList is an ordered collection of hittables. Hit returns the
// closest intersection, so insertion order never affects the result.
type HittableList struct {
	objects []core.Hittable
}

// NewHittableList creates a collection holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{objects: append([]core.Hittable(nil), objects...)}
}

// Add appends an object to the collection
func (l *HittableList) Add(object core.Hittable) {
	l.objects = append(l.objects, object)
}

// AddSphere is a convenience for Add(NewSphere(center, radius, material))
func (l *HittableList) AddSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	sphere := NewSphere(center, radius, material)
	l.Add(sphere)
	return sphere
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the objects in insertion order
func (l *HittableList) Objects() []core.Hittable {
	return l.objects
}

// Hit scans every object, shrinking the upper bound to the closest hit found so far
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

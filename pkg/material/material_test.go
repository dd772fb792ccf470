package material

import "github.com/df07/go-sphere-raytracer/pkg/core"

// sequenceRandom replays a fixed list of values, cycling when exhausted
type sequenceRandom struct {
	values []float64
	next   int
}

func (s *sequenceRandom) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func hitAt(point, normal core.Vec3, frontFace bool) *core.HitRecord {
	return &core.HitRecord{
		Point:     point,
		Normal:    normal,
		T:         1.0,
		FrontFace: frontFace,
	}
}

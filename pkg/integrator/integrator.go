package integrator

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Background describes the sky gradient returned for rays that escape the scene
type Background struct {
	Bottom core.Color // Color looking straight down
	Top    core.Color // Color looking straight up
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewColor(1.0, 1.0, 1.0),
		Top:    core.NewColor(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for a ray based on its vertical direction
func (b Background) Color(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(b.Bottom, b.Top, t)
}

package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Point3 // Camera position
	LookAt        core.Point3 // Point the camera is looking at
	ViewUp        core.Vec3   // Up hint, must not be parallel to the view direction
	VFov          float64     // Vertical field of view in degrees
	AspectRatio   float64     // Width / height
	Aperture      float64     // Lens diameter, 0 for a pinhole camera
	FocusDistance float64     // Distance to the plane of perfect focus (0 = auto-calculate)
}

// Camera generates rays for rendering. It is immutable once built and
// safe to share between workers.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera with depth of field from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Orthonormal basis for the camera
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray towards viewport coordinates (s, t), where (0,0) is
// the lower left corner and (1,1) the upper right. Values outside [0,1] are
// extrapolated. The origin is jittered across the lens for defocus blur.
func (c *Camera) GetRay(s, t float64, random core.Random) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// Basis returns the camera's right, up and backward unit vectors
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.ViewUp != zero {
		result.ViewUp = override.ViewUp
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

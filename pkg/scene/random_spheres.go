package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Material mix for the small spheres
const (
	diffuseProbability = 0.8
	metalProbability   = 0.95 // cumulative; the rest are glass
)

// NewRandomSpheresScene creates a ground plane scattered with small random
// spheres and three large feature spheres. The layout is fixed by seed.
func NewRandomSpheresScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewHittableList()

	groundMaterial := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	world.AddSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial)

	// Every small glass sphere shares one material
	glass := material.NewDielectric(1.5)
	clearance := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < diffuseProbability:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < metalProbability:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = glass
			}
			world.AddSphere(center, 0.2, sphereMaterial)
		}
	}

	world.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	world.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))
	world.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0))

	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		ViewUp:        core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	width := 1200
	return &Scene{
		Name:         "random-spheres",
		World:        world,
		CameraConfig: cameraConfig,
		SamplingConfig: core.SamplingConfig{
			Width:           width,
			Height:          heightForAspect(width, cameraConfig.AspectRatio),
			SamplesPerPixel: 500,
			MaxDepth:        50,
		},
		Background: integrator.DefaultBackground(),
	}
}

package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates a small scene with one sphere of each material
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		ViewUp:        core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      2.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	world := geometry.NewHittableList()

	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	world.AddSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround)
	world.AddSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5, materialCenter)
	// Negative radius flips the normals, making the left sphere a hollow glass shell
	world.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft)
	world.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), -0.45, materialLeft)
	world.AddSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight)

	width := 400
	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: cameraConfig,
		SamplingConfig: core.SamplingConfig{
			Width:           width,
			Height:          heightForAspect(width, cameraConfig.AspectRatio),
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Background: integrator.DefaultBackground(),
	}
}

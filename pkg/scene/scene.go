package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.HittableList
	CameraConfig   renderer.CameraConfig
	SamplingConfig core.SamplingConfig
	Background     integrator.Background
}

// NewCamera builds the scene's camera
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// NewIntegrator builds a path tracer using the scene's background
func (s *Scene) NewIntegrator() *integrator.PathTracingIntegrator {
	return integrator.NewPathTracingIntegrator(s.Background)
}

// SetWidth changes the image width, keeping the camera's aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = heightForAspect(width, s.CameraConfig.AspectRatio)
}

// heightForAspect derives an image height from its width and aspect ratio
func heightForAspect(width int, aspectRatio float64) int {
	return int(float64(width) / aspectRatio)
}

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
}

// builder constructs a scene from a seed
type builder func(seed int64) *Scene

var builtins = map[string]struct {
	description string
	build       builder
}{
	"default": {
		description: "Diffuse, metal and hollow glass spheres on a ground sphere",
		build:       func(int64) *Scene { return NewDefaultScene() },
	},
	"random-spheres": {
		description: "Large grid of randomly placed small spheres around three feature spheres",
		build:       NewRandomSpheresScene,
	},
}

// Create returns the named built-in scene
func Create(name string, seed int64) (*Scene, error) {
	entry, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return entry.build(seed), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every built-in scene in name order
func List() []Info {
	var infos []Info
	for _, name := range Names() {
		infos = append(infos, Info{Name: name, Description: builtins[name].description})
	}
	return infos
}

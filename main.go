package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Config holds the parsed command line options
type Config struct {
	SceneType  string
	Width      int
	Samples    int
	MaxDepth   int
	NumWorkers int
	Seed       int64
	OutputPath string
	ListScenes bool
	Help       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line arguments into a Config
func parseFlags(args []string, stderr io.Writer) (Config, *flag.FlagSet, error) {
	var config Config
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&config.SceneType, "scene", "default", "Scene type (see -list)")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels, height follows the scene aspect ratio (0 = scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.NumWorkers, "workers", runtime.NumCPU(), "Number of parallel workers")
	fs.Int64Var(&config.Seed, "seed", 42, "Random seed for scene layout and sampling")
	fs.StringVar(&config.OutputPath, "output", "", "Output file (.ppm or .png); empty writes PPM to stdout")
	fs.BoolVar(&config.ListScenes, "list", false, "List available scenes")
	fs.BoolVar(&config.Help, "help", false, "Show help information")

	err := fs.Parse(args)
	return config, fs, err
}

// createScene builds the requested scene and applies command line overrides
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType, config.Seed)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.SetWidth(config.Width)
	}
	s.SamplingConfig = core.MergeSamplingConfig(s.SamplingConfig, core.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	})
	return s, nil
}

func showHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Sphere Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	listScenes(w)
}

func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-15s %s\n", info.Name, info.Description)
	}
}

// run renders a scene according to args. Progress goes to stderr so the
// image can stream to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	config, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if config.Help {
		showHelp(fs, stdout)
		return nil
	}
	if config.ListScenes {
		listScenes(stdout)
		return nil
	}

	logger := renderer.NewWriterLogger(stderr)

	s, err := createScene(config)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d objects...\n", s.Name, s.World.Len())

	raytracer := renderer.NewRaytracer(
		s.World,
		s.NewCamera(),
		s.NewIntegrator(),
		s.SamplingConfig,
		renderer.RenderConfig{NumWorkers: config.NumWorkers, Seed: config.Seed},
		logger,
	)

	buffer, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Printf("Traced %d samples (%.0f samples/sec)\n", stats.TotalSamples, stats.SamplesPerSecond())

	logger.Printf("Writing image...\n")
	if config.OutputPath == "" {
		if err := output.WritePPM(stdout, buffer); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
	} else {
		if err := output.WriteFile(config.OutputPath, buffer); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
		logger.Printf("Render saved as %s\n", config.OutputPath)
	}

	logger.Printf("Done!\n")
	return nil
}

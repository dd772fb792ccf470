package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	Scanlines       int           // Number of rows committed
	Workers         int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

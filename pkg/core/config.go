package core

// SamplingConfig contains image size and per-pixel sampling settings
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ImageBuffer is a row-major buffer of accumulated (un-averaged) sample
// colors, top row first. Rows are written concurrently by the renderer;
// reads fail with ErrRenderIncomplete until the render completes.
type ImageBuffer struct {
	width           int
	height          int
	samplesPerPixel int

	mu       sync.Mutex
	pixels   []core.Color
	complete bool
}

// NewImageBuffer creates a zeroed buffer for a width x height image
func NewImageBuffer(width, height, samplesPerPixel int) *ImageBuffer {
	return &ImageBuffer{
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
		pixels:          make([]core.Color, width*height),
	}
}

// Width returns the image width in pixels
func (b *ImageBuffer) Width() int { return b.width }

// Height returns the image height in pixels
func (b *ImageBuffer) Height() int { return b.height }

// SamplesPerPixel returns the number of samples summed into each pixel
func (b *ImageBuffer) SamplesPerPixel() int { return b.samplesPerPixel }

// WriteRow copies a finished row into the buffer. Only the copy happens under the lock.
func (b *ImageBuffer) WriteRow(row int, colors []core.Color) error {
	if row < 0 || row >= b.height {
		return fmt.Errorf("row %d outside image of height %d", row, b.height)
	}
	if len(colors) != b.width {
		return fmt.Errorf("row has %d pixels, expected %d", len(colors), b.width)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.pixels[row*b.width:(row+1)*b.width], colors)
	return nil
}

// MarkComplete flags the buffer as fully rendered
func (b *ImageBuffer) MarkComplete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.complete = true
}

// IsComplete reports whether every row has been committed
func (b *ImageBuffer) IsComplete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.complete
}

// Pixels returns the accumulated colors in row-major order, top row first
func (b *ImageBuffer) Pixels() ([]core.Color, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.complete {
		return nil, ErrRenderIncomplete
	}
	return b.pixels, nil
}

// At returns the averaged linear color at (x, y), with y = 0 the top row
func (b *ImageBuffer) At(x, y int) (core.Color, error) {
	pixels, err := b.Pixels()
	if err != nil {
		return core.Color{}, err
	}
	return pixels[y*b.width+x].Divide(float64(b.samplesPerPixel)), nil
}

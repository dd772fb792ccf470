package output

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ToImage converts a completed buffer to an RGBA image
func ToImage(buffer *renderer.ImageBuffer) (*image.RGBA, error) {
	pixels, err := buffer.Pixels()
	if err != nil {
		return nil, err
	}

	width := buffer.Width()
	img := image.NewRGBA(image.Rect(0, 0, width, buffer.Height()))
	for i, pixel := range pixels {
		img.SetRGBA(i%width, i/width, ToRGBA(pixel, buffer.SamplesPerPixel()))
	}
	return img, nil
}

// WritePNG encodes the buffer as a PNG image
func WritePNG(w io.Writer, buffer *renderer.ImageBuffer) error {
	img, err := ToImage(buffer)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePPM writes the buffer as an ASCII PPM (P3) image, top row first
func WritePPM(w io.Writer, buffer *renderer.ImageBuffer) error {
	pixels, err := buffer.Pixels()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buffer.Width(), buffer.Height()); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for _, pixel := range pixels {
		r, g, b := ToRGB(pixel, buffer.SamplesPerPixel())
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("writing PPM pixel data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing PPM output: %w", err)
	}
	return nil
}

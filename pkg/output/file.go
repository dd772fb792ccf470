package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Format selects an image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// FormatFromPath picks the encoding from a file extension, defaulting to PPM
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}

// Write encodes the buffer in the given format
func Write(w io.Writer, buffer *renderer.ImageBuffer, format Format) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, buffer)
	case FormatPPM:
		return WritePPM(w, buffer)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// WriteFile writes the buffer to path, creating parent directories as needed
func WriteFile(path string, buffer *renderer.ImageBuffer) (err error) {
	if !buffer.IsComplete() {
		return renderer.ErrRenderIncomplete
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	return Write(file, buffer, FormatFromPath(path))
}

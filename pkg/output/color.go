package output

import (
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// maxChannel keeps 256*c strictly below 256
const maxChannel = 0.999

// ToRGB converts an accumulated sample sum to 8-bit channels: average over
// the sample count, gamma-correct for gamma 2, clamp, then scale to [0, 255].
func ToRGB(sum core.Color, samplesPerPixel int) (r, g, b uint8) {
	c := sum.Divide(float64(samplesPerPixel)).Sqrt().Clamp(0.0, maxChannel)
	return uint8(256 * c.X), uint8(256 * c.Y), uint8(256 * c.Z)
}

// ToRGBA is ToRGB as an opaque color.RGBA
func ToRGBA(sum core.Color, samplesPerPixel int) color.RGBA {
	r, g, b := ToRGB(sum, samplesPerPixel)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

package renderer

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// intensity keeps every channel strictly below 1 so that 256*c floors to at most 255
var intensity = core.NewInterval(0, 0.999)

// LinearToGamma applies gamma-2 correction. Non-positive components map to 0.
func LinearToGamma(linear float32) float32 {
	if linear > 0 {
		return math32.Sqrt(linear)
	}
	return 0
}

// ToRGBA converts a linear color to an opaque 8-bit pixel
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(linear float32) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

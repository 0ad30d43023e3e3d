package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := h * math32.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	unit := core.NewInterval(0, 1)
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(unit.Clamp(r), unit.Clamp(g), unit.Clamp(blue))
}

// NewSphereGridScene creates a scene with a grid of rainbow metal spheres
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewVec3(4.5, 6, 18)  // Farther back and slightly lower
	lookAt := core.NewVec3(4.5, 0.8, 4.5) // Center of the grid

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.LookFrom = lookFrom
	cameraConfig.LookAt = lookAt
	cameraConfig.Width = 400
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.VFov = 40
	cameraConfig.SamplesPerPixel = 20
	cameraConfig.MaxDepth = 40
	cameraConfig.DefocusAngle = 0.2
	cameraConfig.FocusDistance = lookFrom.Subtract(lookAt).Length()

	s := newScene("spheregrid", cameraConfig, cameraOverrides)

	s.Add(NewGroundSphere(0, 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	gridSize := 10

	// Fit the grid into a 9x9 area around the look-at point
	targetArea := float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := core.NewInterval(0.02, 0.35).Clamp(spacing * 0.35)

	// OKLCH parameters for color variation
	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2.0 + 4.5
			z := float32(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue follows X, chroma follows Z
			hue := (float32(i) / float32(gridSize-1)) * 360.0
			chroma := minChroma + (float32(j)/float32(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			s.Add(geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return s
}

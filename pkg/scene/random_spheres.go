package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

// Grid of small spheres spans [-gridHalfSize, gridHalfSize) on X and Z
const gridHalfSize = 11

// smallRadius is the radius of every grid sphere
const smallRadius = 0.2

// NewRandomSpheresScene creates a gray ground covered in small random spheres
// around three large feature spheres. The layout is drawn from sampler.
func NewRandomSpheresScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.Width = 400
	cameraConfig.SamplesPerPixel = 10
	cameraConfig.MaxDepth = 10
	cameraConfig.VFov = 20
	cameraConfig.LookFrom = core.NewVec3(13, 2, 3)
	cameraConfig.LookAt = core.NewVec3(0, 0, 0)
	cameraConfig.Up = core.NewVec3(0, 1, 0)
	cameraConfig.DefocusAngle = 0.6
	cameraConfig.FocusDistance = 10

	s := newScene("random-spheres", cameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the grid clear of the large metal sphere
	clearing := core.NewVec3(4, smallRadius, 0)

	for a := -gridHalfSize; a < gridHalfSize; a++ {
		for b := -gridHalfSize; b < gridHalfSize; b++ {
			chooseMat := core.RandomFloat(sampler)
			center := core.NewVec3(
				float32(a)+0.9*core.RandomFloat(sampler),
				smallRadius,
				float32(b)+0.9*core.RandomFloat(sampler),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var sphereMaterial *material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, smallRadius, sphereMaterial))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return s
}

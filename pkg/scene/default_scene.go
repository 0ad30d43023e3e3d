package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres of every material on a green ground
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.LookFrom = core.NewVec3(0, 0.75, 2) // Position camera higher and farther back
	cameraConfig.LookAt = core.NewVec3(0, 0.5, -1)   // Look at the sphere center
	cameraConfig.Width = 400
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.VFov = 40
	cameraConfig.SamplesPerPixel = 50
	cameraConfig.MaxDepth = 50
	cameraConfig.DefocusAngle = 1
	cameraConfig.FocusDistance = core.NewVec3(0, 0.75, 2).Subtract(core.NewVec3(0, 0.5, -1)).Length()

	s := newScene("default", cameraConfig, cameraOverrides)

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	// Hollow glass: the inner sphere's negative radius flips its normals inward
	center := core.NewVec3(-0.5, 0.25, -0.5)
	hollowGlassOuter := geometry.NewSphere(center, 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(center, -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(center, 0.20, lambertianBlue)

	s.Add(
		NewGroundSphere(0, 1000, lambertianGreen),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass),
		hollowGlassOuter, hollowGlassInner, hollowGlassCenter,
	)

	return s
}

package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

// NewCubeScene creates a row of axis-aligned cubes, one per material, with a glass
// cube that holds a small diffuse cube inside it
func NewCubeScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.LookFrom = core.NewVec3(3, 2.5, 6)
	cameraConfig.LookAt = core.NewVec3(0, 0.5, 0)
	cameraConfig.Width = 400
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.VFov = 35
	cameraConfig.SamplesPerPixel = 50
	cameraConfig.MaxDepth = 20
	cameraConfig.FocusDistance = core.NewVec3(3, 2.5, 6).Subtract(core.NewVec3(0, 0.5, 0)).Length()

	s := newScene("cubes", cameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.45, 0.45, 0.5))
	terracotta := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.2))
	steel := material.NewMetal(core.NewVec3(0.75, 0.75, 0.8), 0.15)
	glass := material.NewDielectric(1.5)
	jade := material.NewLambertian(core.NewVec3(0.2, 0.6, 0.35))

	s.Add(
		NewGroundSphere(0, 1000, ground),
		geometry.NewCubeWithSide(core.NewVec3(-1.6, 0.5, 0), 1, terracotta),
		geometry.NewCubeWithSide(core.NewVec3(0, 0.5, 0), 1, glass),
		geometry.NewCubeWithSide(core.NewVec3(0, 0.5, 0), 0.4, jade),
		geometry.NewCubeWithSide(core.NewVec3(1.6, 0.5, 0), 1, steel),
		geometry.NewSphere(core.NewVec3(0, 0.3, 1.2), 0.3, steel),
	)

	return s
}

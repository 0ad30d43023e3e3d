// Package scene builds the worlds the renderer draws, each with a recommended camera.
package scene

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/geometry"
	"github.com/df07/go-recursive-pathtracer/pkg/log"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.List        // Objects in the scene
	CameraConfig renderer.CameraConfig // Recommended camera for this scene
}

// newScene creates an empty scene with cameraConfig merged with the first override, if any
func newScene(name string, cameraConfig renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return &Scene{
		Name:         name,
		World:        geometry.NewList(),
		CameraConfig: cameraConfig,
	}
}

// Add appends objects to the scene's world
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.World.Add(objects...)
}

// ObjectCount returns the number of top-level objects in the world
func (s *Scene) ObjectCount() int {
	return s.World.Len()
}

// NewGroundSphere creates a huge sphere whose top touches y = top, standing in for a ground plane
func NewGroundSphere(top float32, radius float32, mat *material.Material) *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, top-radius, 0), radius, mat)
}

package geometry

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

const tolerance = 1e-5

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	openRange    = core.NewInterval(0.001, math32.Inf(1))
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func vecNear(a, b core.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

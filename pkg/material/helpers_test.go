package material

import (
	"math"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value1D float32
	value3D core.Vec3
}

func (f fixedSampler) Get1D() float32 { return f.value1D }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value3D.X, f.value3D.Y)
}
func (f fixedSampler) Get3D() core.Vec3 { return f.value3D }

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(float64(a.X-b.X)) <= tolerance &&
		math.Abs(float64(a.Y-b.Y)) <= tolerance &&
		math.Abs(float64(a.Z-b.Z)) <= tolerance
}

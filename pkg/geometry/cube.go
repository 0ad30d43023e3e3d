package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// Cube represents an axis-aligned cube
type Cube struct {
	Center     core.Vec3
	HalfExtent float32 // Half the side length
	Material   *material.Material
}

// NewCube creates a new axis-aligned cube with the given center and half side length
func NewCube(center core.Vec3, halfExtent float32, mat *material.Material) *Cube {
	return &Cube{
		Center:     center,
		HalfExtent: halfExtent,
		Material:   mat,
	}
}

// NewCubeWithSide creates a new axis-aligned cube from its full side length
func NewCubeWithSide(center core.Vec3, side float32, mat *material.Material) *Cube {
	return NewCube(center, side/2, mat)
}

func (c *Cube) isHittable() {}

// Min returns the minimum corner
func (c *Cube) Min() core.Vec3 {
	return c.Center.Subtract(core.NewVec3(c.HalfExtent, c.HalfExtent, c.HalfExtent))
}

// Max returns the maximum corner
func (c *Cube) Max() core.Vec3 {
	return c.Center.Add(core.NewVec3(c.HalfExtent, c.HalfExtent, c.HalfExtent))
}

// slabCrossing records where a ray crosses a face of the cube
type slabCrossing struct {
	t    float32
	axis int
	sign float32 // outward normal direction along axis
}

// Hit tests if a ray intersects with the cube using the slab method.
// The face that bounds the entry (or exit) parameter is tracked per axis
// and supplies the normal, so edge and corner hits are never misclassified.
func (c *Cube) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	min := c.Min()
	max := c.Max()

	near := slabCrossing{t: math32.Inf(-1), axis: -1}
	far := slabCrossing{t: math32.Inf(1), axis: -1}

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)

		// A zero direction component yields ±Inf, which keeps the comparisons below well defined
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (min.Axis(axis) - origin) * invD
		t1 := (max.Axis(axis) - origin) * invD

		// Entering through the min face has outward normal -axis
		entrySign, exitSign := float32(-1), float32(1)
		if invD < 0 {
			t0, t1 = t1, t0
			entrySign, exitSign = 1, -1
		}

		// NaN (origin on a slab plane of a parallel ray) fails both tests and leaves the bounds alone
		if t0 > near.t {
			near = slabCrossing{t: t0, axis: axis, sign: entrySign}
		}
		if t1 < far.t {
			far = slabCrossing{t: t1, axis: axis, sign: exitSign}
		}

		if far.t <= near.t {
			return material.HitRecord{}, false
		}
	}

	// Prefer the entry face; a ray starting inside the cube hits the exit face
	crossing := near
	if !rayT.Surrounds(crossing.t) || crossing.axis < 0 {
		crossing = far
		if !rayT.Surrounds(crossing.t) || crossing.axis < 0 {
			return material.HitRecord{}, false
		}
	}

	hitRecord := material.HitRecord{
		T:        crossing.t,
		Point:    ray.At(crossing.t),
		Material: c.Material,
	}
	hitRecord.SetFaceNormal(ray, axisNormal(crossing.axis, crossing.sign))

	return hitRecord, true
}

// axisNormal returns the unit vector along axis with the given sign
func axisNormal(axis int, sign float32) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

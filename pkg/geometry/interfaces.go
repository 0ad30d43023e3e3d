package geometry

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// Hittable is implemented by everything a ray can intersect: Sphere, Cube and List.
// Hit reports the nearest intersection whose parameter lies strictly inside rayT.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)

	// closes the variant set to this package
	isHittable()
}

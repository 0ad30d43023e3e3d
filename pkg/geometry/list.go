package geometry

import (
	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/material"
)

// List aggregates hittables and reports the closest hit among them.
// Intersection is a linear scan over every object.
type List struct {
	objects []Hittable
}

// NewList creates a list holding the given objects
func NewList(objects ...Hittable) *List {
	l := &List{}
	l.Add(objects...)
	return l
}

func (l *List) isHittable() {}

// Add appends objects to the list
func (l *List) Add(objects ...Hittable) {
	l.objects = append(l.objects, objects...)
}

// Clear removes every object
func (l *List) Clear() {
	l.objects = nil
}

// Len returns the number of direct children
func (l *List) Len() int {
	return len(l.objects)
}

// Objects returns the direct children in insertion order
func (l *List) Objects() []Hittable {
	return l.objects
}

// Hit checks the ray against every object, shrinking the upper bound to the closest hit so far
func (l *List) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := rayT.Max
	hitAnything := false

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

package core

import "github.com/chewxy/math32"

// Interval is a numeric range [Min, Max], used for admissible hit
// parameters and for color channel clamping
type Interval struct {
	Min, Max float32
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
	// UniverseInterval contains every finite value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the length of the interval
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max. Boundary values are rejected.
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x to [min, max]
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

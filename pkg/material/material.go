package material

import (
	"fmt"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

// Kind identifies one of the closed set of material variants
type Kind int

const (
	// KindLambertian is a perfectly diffuse surface
	KindLambertian Kind = iota
	// KindMetal is a specular reflector with optional fuzz
	KindMetal
	// KindDielectric is a clear refractive surface such as glass or water
	KindDielectric
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Material describes how a surface scatters light. Only the fields relevant
// to Kind are meaningful. A Material is built once during scene construction
// and shared by pointer between every primitive that uses it.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal reflectance
	Fuzz            float32   // Metal: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractionIndex float32   // Dielectric: index relative to the enclosing medium
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // The scattered ray
}

// Scatter computes the ray leaving the surface for an incoming ray and its hit.
// It returns false when the material absorbs the ray.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// String describes the material for logging
func (m *Material) String() string {
	switch m.Kind {
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%.2f)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%.2f)", m.RefractionIndex)
	default:
		return fmt.Sprintf("%s(albedo=%v)", m.Kind, m.Albedo)
	}
}

package core

import "math/rand"

// MinHitDistance is the minimum accepted intersection distance,
// suppressing self-intersection (shadow acne). All intersection tests
// raise their lower bound to at least this value.
const MinHitDistance = 1e-3

// HitRecord contains information about a ray-object intersection.
// It is filled and read within one integrator step, never retained.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit from the outward-normal side
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray
	Attenuation Color // Per-channel light-loss factor for this bounce
}

// Material computes how an incoming ray scatters off a surface hit.
// The bool reports whether the ray scattered at all; the current
// material set always scatters, but the absorbed outcome stays
// representable. A non-nil error means a degenerate scattered ray and
// is fatal.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool, error)
}

// Object is anything that can be hit by rays
type Object interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

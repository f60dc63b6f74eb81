package core

import "fmt"

// Ray represents a ray with an origin and direction. Rays are
// immutable after construction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. A direction with squared magnitude below
// Epsilon fails with ErrInvalidArgument; this guards every downstream
// normalization against zero-direction propagation.
func NewRay(origin, direction Vec3) (Ray, error) {
	if direction.LengthSquared() < Epsilon {
		return Ray{}, fmt.Errorf("ray direction must not be near-zero: %w", ErrInvalidArgument)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// At returns the point at parameter t along the ray, valid for any
// real t including negative.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

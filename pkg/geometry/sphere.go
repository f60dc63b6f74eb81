package geometry

import (
	"fmt"
	"math"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material

	invRadius float64
}

// NewSphere creates a new sphere. The radius must be positive and the
// material non-nil; both are load-time validation failures.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g: %w", radius, core.ErrInvalidArgument)
	}
	if material == nil {
		return nil, fmt.Errorf("sphere material must not be nil: %w", core.ErrInvalidArgument)
	}
	return &Sphere{
		Center:    center,
		Radius:    radius,
		Material:  material,
		invRadius: 1.0 / radius,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	effectiveTMin := math.Max(tMin, core.MinHitDistance)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < effectiveTMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < effectiveTMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(s.invRadius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

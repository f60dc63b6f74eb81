package geometry

import (
	"fmt"
	"math"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// capEpsilon widens the axial window of the curved surface so hits on
// the rim are not lost between the lateral surface and the caps.
const capEpsilon = 1e-8

// Cylinder represents a finite capped cylinder, defined by its center,
// radius and an axis vector whose length is the cylinder height.
type Cylinder struct {
	Center   core.Vec3
	Radius   float64
	Axis     core.Vec3
	Material core.Material

	// Cached derived values
	axisNormalized core.Vec3
	height         float64
}

// NewCylinder creates a new cylinder. The radius must be positive, the
// axis non-zero and the material non-nil.
func NewCylinder(center core.Vec3, radius float64, axis core.Vec3, material core.Material) (*Cylinder, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("cylinder radius must be positive, got %g: %w", radius, core.ErrInvalidArgument)
	}
	if axis.NearZero() {
		return nil, fmt.Errorf("cylinder axis must not be the zero vector: %w", core.ErrInvalidArgument)
	}
	if material == nil {
		return nil, fmt.Errorf("cylinder material must not be nil: %w", core.ErrInvalidArgument)
	}
	axisNormalized, err := axis.Normalized()
	if err != nil {
		return nil, err
	}
	return &Cylinder{
		Center:         center,
		Radius:         radius,
		Axis:           axis,
		Material:       material,
		axisNormalized: axisNormalized,
		height:         axis.Length(),
	}, nil
}

// Height returns the cylinder height, the magnitude of the axis vector
func (c *Cylinder) Height() float64 {
	return c.height
}

// Hit tests the ray against the curved lateral surface and both caps,
// returning the nearest valid intersection among the three.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	if hit, ok := c.hitCurvedSurface(ray, tMin, closestT); ok {
		closest = hit
		closestT = hit.T
	}

	top := c.Center.Add(c.axisNormalized.Multiply(c.height / 2))
	if hit, ok := c.hitCap(ray, top, c.axisNormalized, tMin, closestT); ok {
		closest = hit
		closestT = hit.T
	}

	bottom := c.Center.Subtract(c.axisNormalized.Multiply(c.height / 2))
	if hit, ok := c.hitCap(ray, bottom, c.axisNormalized.Negate(), tMin, closestT); ok {
		closest = hit
	}

	return closest, closest != nil
}

// hitCurvedSurface intersects the infinite lateral surface by
// projecting the ray onto the plane perpendicular to the axis, then
// rejects roots outside the cap half-height window.
func (c *Cylinder) hitCurvedSurface(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rc := ray.Origin.Subtract(c.Center)
	rcPerp := rc.PerpendicularTo(c.axisNormalized)
	drPerp := ray.Direction.PerpendicularTo(c.axisNormalized)

	a := drPerp.Dot(drPerp)
	b := 2.0 * rcPerp.Dot(drPerp)
	cc := rcPerp.Dot(rcPerp) - c.Radius*c.Radius

	// Rays parallel to the axis never cross the lateral surface
	if math.Abs(a) < core.Epsilon {
		return nil, false
	}

	t, ok := chooseRoot(a, b, cc, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(t)

	// Keep only hits within the cap half-height window
	axialOffset := math.Abs(point.Subtract(c.Center).Dot(c.axisNormalized))
	if axialOffset > c.height/2+capEpsilon {
		return nil, false
	}

	// Radial outward normal; a point exactly on the axis has no
	// defined radial direction and counts as a miss on this surface
	radial := point.Subtract(c.Center).PerpendicularTo(c.axisNormalized)
	if radial.LengthSquared() < core.Epsilon*core.Epsilon {
		return nil, false
	}
	outwardNormal, err := radial.Normalized()
	if err != nil {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		Material: c.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// hitCap intersects a circular cap: a plane test followed by a radial
// distance check against the cap center.
func (c *Cylinder) hitCap(ray core.Ray, capCenter, capNormal core.Vec3, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(capNormal)
	if math.Abs(denom) < core.Epsilon {
		return nil, false
	}

	t := capCenter.Subtract(ray.Origin).Dot(capNormal) / denom
	effectiveTMin := math.Max(tMin, core.MinHitDistance)
	if t < effectiveTMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	radial := point.Subtract(capCenter).PerpendicularTo(capNormal)
	if radial.LengthSquared() > c.Radius*c.Radius {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		Material: c.Material,
	}
	hit.SetFaceNormal(ray, capNormal)

	return hit, true
}

// chooseRoot solves at² + bt + c = 0 and returns the smallest root in
// [max(tMin, MinHitDistance), tMax], falling back to the larger root.
func chooseRoot(a, b, c, tMin, tMax float64) (float64, bool) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	twoA := 2 * a
	effectiveTMin := math.Max(tMin, core.MinHitDistance)

	t := (-b - sqrtD) / twoA
	if t >= effectiveTMin && t <= tMax {
		return t, true
	}

	t = (-b + sqrtD) / twoA
	if t >= effectiveTMin && t <= tMax {
		return t, true
	}

	return 0, false
}

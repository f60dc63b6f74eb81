package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Epsilon is the tolerance below which magnitudes and components are
// treated as zero throughout the tracer.
const Epsilon = 1e-8

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar. Dividing by a scalar
// with |scalar| < Epsilon fails with ErrDomain instead of letting
// Inf/NaN propagate into the render.
func (v Vec3) Divide(scalar float64) (Vec3, error) {
	if math.Abs(scalar) < Epsilon {
		return Vec3{}, fmt.Errorf("divide vector by near-zero scalar %g: %w", scalar, ErrDomain)
	}
	inv := 1.0 / scalar
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalized returns a unit vector in the same direction. Normalizing
// a vector with magnitude < Epsilon fails with ErrDomain.
func (v Vec3) Normalized() (Vec3, error) {
	length := v.Length()
	if length < Epsilon {
		return Vec3{}, fmt.Errorf("normalize near-zero vector %v: %w", v, ErrDomain)
	}
	inv := 1.0 / length
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// NearZero reports whether every component lies within ±Epsilon.
// Note this is a per-component conjunction, not a magnitude test.
func (v Vec3) NearZero() bool {
	return v.X > -Epsilon && v.X < Epsilon &&
		v.Y > -Epsilon && v.Y < Epsilon &&
		v.Z > -Epsilon && v.Z < Epsilon
}

// PerpendicularTo returns the component of v perpendicular to the
// given axis. The axis must already be unit-length; no renormalization
// is performed.
func (v Vec3) PerpendicularTo(axis Vec3) Vec3 {
	return v.Subtract(axis.Multiply(v.Dot(axis)))
}

// RandomInUnitCube generates a vector with components uniform in [-1, 1)
func RandomInUnitCube(random *rand.Rand) Vec3 {
	return Vec3{
		X: 2*random.Float64() - 1,
		Y: 2*random.Float64() - 1,
		Z: 2*random.Float64() - 1,
	}
}

// RandomFuzz generates a perturbation vector with components uniform
// in [-fuzz, fuzz)
func RandomFuzz(random *rand.Rand, fuzz float64) Vec3 {
	return Vec3{
		X: fuzz * (2*random.Float64() - 1),
		Y: fuzz * (2*random.Float64() - 1),
		Z: fuzz * (2*random.Float64() - 1),
	}
}

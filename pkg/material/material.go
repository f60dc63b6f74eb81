package material

import (
	"fmt"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// validateReflectance checks that every reflectance component lies in [0, 1]
func validateReflectance(reflectance core.Color) error {
	rgb := reflectance.RGB
	if rgb.X < 0 || rgb.X > 1 || rgb.Y < 0 || rgb.Y > 1 || rgb.Z < 0 || rgb.Z > 1 {
		return fmt.Errorf("reflectance components must be in [0, 1], got %v: %w", rgb, core.ErrInvalidArgument)
	}
	return nil
}

// reflect calculates the reflection of a vector v off a surface with
// normal n: r = v - 2*dot(v,n)*n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

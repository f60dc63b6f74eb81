package material

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Refractive represents a transparent material like glass. No color
// absorption is modeled; attenuation is always (1,1,1).
type Refractive struct {
	RefractionIndex float64
}

// NewRefractive creates a new refractive material. The refraction
// index must be positive.
func NewRefractive(refractionIndex float64) (*Refractive, error) {
	if refractionIndex < core.Epsilon {
		return nil, fmt.Errorf("refraction index must be positive, got %g: %w", refractionIndex, core.ErrInvalidArgument)
	}
	return &Refractive{RefractionIndex: refractionIndex}, nil
}

// Scatter implements the Material interface for refractive scattering
// using Snell's law, falling back to reflection under total internal
// reflection.
func (d *Refractive) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool, error) {
	// Entering the material from outside, or exiting back out
	refractionRatio := d.RefractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	}

	unitDirection, err := rayIn.Direction.Normalized()
	if err != nil {
		return core.ScatterResult{}, false, err
	}

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if refractionRatio*sinTheta > 1.0 {
		// Total internal reflection
		direction = reflect(unitDirection, hit.Normal)
	} else {
		rOutPerp := unitDirection.Add(hit.Normal.Multiply(cosTheta)).Multiply(refractionRatio)
		parallelMagSq := math.Max(0.0, 1.0-rOutPerp.LengthSquared())
		rOutParallel := hit.Normal.Multiply(-math.Sqrt(parallelMagSq))
		direction = rOutPerp.Add(rOutParallel)
	}

	scattered, err := core.NewRay(hit.Point, direction)
	if err != nil {
		return core.ScatterResult{}, false, err
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: core.NewColor(1, 1, 1),
	}, true, nil
}

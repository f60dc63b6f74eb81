package material

import (
	"math/rand"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Matte represents a diffuse material that scatters uniformly around
// the surface normal.
type Matte struct {
	Reflectance core.Color
}

// NewMatte creates a new matte material
func NewMatte(reflectance core.Color) (*Matte, error) {
	if err := validateReflectance(reflectance); err != nil {
		return nil, err
	}
	return &Matte{Reflectance: reflectance}, nil
}

// Scatter implements the Material interface for matte scattering
func (m *Matte) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool, error) {
	scatterDirection := hit.Normal.Add(core.RandomInUnitCube(random))

	// If the random offset cancels the normal, fall back to the
	// normal itself to avoid a degenerate zero-direction ray
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered, err := core.NewRay(hit.Point, scatterDirection)
	if err != nil {
		return core.ScatterResult{}, false, err
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Reflectance,
	}, true, nil
}

package material

import (
	"fmt"
	"math/rand"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection and an
// optional fuzz perturbation simulating microfacet roughness.
type Metal struct {
	Reflectance core.Color
	Fuzz        float64
}

// NewMetal creates a new metal material. Fuzz must be non-negative.
func NewMetal(reflectance core.Color, fuzz float64) (*Metal, error) {
	if err := validateReflectance(reflectance); err != nil {
		return nil, err
	}
	if fuzz < 0 {
		return nil, fmt.Errorf("metal fuzz must be non-negative, got %g: %w", fuzz, core.ErrInvalidArgument)
	}
	return &Metal{Reflectance: reflectance, Fuzz: fuzz}, nil
}

// Scatter implements the Material interface for metal scattering.
// Rays that end up pointing into the surface after fuzzing are not
// rejected.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool, error) {
	reflected := reflect(rayIn.Direction, hit.Normal)
	reflectedHat, err := reflected.Normalized()
	if err != nil {
		return core.ScatterResult{}, false, err
	}

	scatterDirection := reflectedHat.Add(core.RandomFuzz(random, m.Fuzz))

	scattered, err := core.NewRay(hit.Point, scatterDirection)
	if err != nil {
		return core.ScatterResult{}, false, err
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Reflectance,
	}, true, nil
}

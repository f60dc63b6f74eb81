package integrator

import (
	"math"
	"math/rand"

	"github.com/renderlab/go-path-tracer/pkg/core"
	"github.com/renderlab/go-path-tracer/pkg/scene"
)

// PathIntegrator evaluates light transport by recursive scattering:
// L = attenuation ⊙ L_scattered, bounded by the bounce depth.
type PathIntegrator struct {
	BackgroundDark  core.Color
	BackgroundLight core.Color
}

// New creates a path integrator with the given background gradient
func New(dark, light core.Color) *PathIntegrator {
	return &PathIntegrator{BackgroundDark: dark, BackgroundLight: light}
}

// RayColor returns the radiance carried along the ray. depth ≤ 0 is
// the recursion's base case and returns black; each recursive call
// strictly decreases depth, so the recursion is hard-bounded.
func (pi *PathIntegrator) RayColor(r core.Ray, scn *scene.Scene, depth int, materialRNG *rand.Rand) (core.Color, error) {
	if depth <= 0 {
		return core.Black(), nil
	}

	hit, isHit := scn.Hit(r, core.MinHitDistance, math.Inf(1))
	if !isHit {
		return pi.backgroundGradient(r)
	}

	scatter, didScatter, err := hit.Material.Scatter(r, *hit, materialRNG)
	if err != nil {
		return core.Color{}, err
	}
	if !didScatter {
		// No current material absorbs rays, but the outcome stays
		// representable
		return core.Black(), nil
	}

	scatteredColor, err := pi.RayColor(scatter.Scattered, scn, depth-1, materialRNG)
	if err != nil {
		return core.Color{}, err
	}

	return scatter.Attenuation.MultiplyColor(scatteredColor), nil
}

// backgroundGradient blends the two background colors by the vertical
// component of the ray direction, mapping y ∈ [-1,1] to [0,1].
func (pi *PathIntegrator) backgroundGradient(r core.Ray) (core.Color, error) {
	unitDirection, err := r.Direction.Normalized()
	if err != nil {
		return core.Color{}, err
	}

	t := 0.5 * (unitDirection.Y + 1.0)
	return pi.BackgroundLight.Multiply(1.0 - t).Add(pi.BackgroundDark.Multiply(t)), nil
}

package renderer

import (
	"math/rand"

	"github.com/renderlab/go-path-tracer/pkg/config"
	"github.com/renderlab/go-path-tracer/pkg/core"
	"github.com/renderlab/go-path-tracer/pkg/integrator"
	"github.com/renderlab/go-path-tracer/pkg/scene"
)

// Renderer drives the per-pixel sampling loop over a scene. The same
// per-pixel computation backs the sequential AOS and SOA strategies
// and the row-parallel strategy.
type Renderer struct {
	cfg    *config.Config
	scn    *scene.Scene
	camera *Camera
	integ  *integrator.PathIntegrator
	width  int
	height int
}

// New builds a renderer, constructing the camera and integrator from
// the configuration. Camera construction errors surface here, before
// any rendering starts.
func New(cfg *config.Config, scn *scene.Scene) (*Renderer, error) {
	camera, err := NewCamera(cfg)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:    cfg,
		scn:    scn,
		camera: camera,
		integ:  integrator.New(cfg.BackgroundDarkColor, cfg.BackgroundLightColor),
		width:  cfg.ImageWidth,
		height: cfg.ImageHeight(),
	}, nil
}

// Width returns the output image width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the output image height in pixels
func (r *Renderer) Height() int { return r.height }

// renderPixel averages samplesPerPixel jittered rays through pixel
// (i, j). Jitter draws come from rayRNG, scattering draws from
// materialRNG.
func (r *Renderer) renderPixel(i, j int, rayRNG, materialRNG *rand.Rand) (core.Color, error) {
	accumulated := core.Black()

	for s := 0; s < r.cfg.SamplesPerPixel; s++ {
		jitterU := rayRNG.Float64() - 0.5
		jitterV := rayRNG.Float64() - 0.5
		u := (float64(i) + 0.5 + jitterU) / float64(r.width)
		v := (float64(j) + 0.5 + jitterV) / float64(r.height)

		ray, err := r.camera.GetRay(u, v)
		if err != nil {
			return core.Color{}, err
		}
		sample, err := r.integ.RayColor(ray, r.scn, r.cfg.MaxDepth, materialRNG)
		if err != nil {
			return core.Color{}, err
		}
		accumulated = accumulated.Add(sample)
	}

	return accumulated.Multiply(1.0 / float64(r.cfg.SamplesPerPixel)), nil
}

// RenderAOS renders sequentially into an array-of-structures color
// buffer; discretization happens at serialization time.
func (r *Renderer) RenderAOS() (*ImageAOS, error) {
	img := NewImageAOS(r.width, r.height)
	rayRNG := core.NewRand(r.cfg.RayRNGSeed)
	materialRNG := core.NewRand(r.cfg.MaterialRNGSeed)

	for j := 0; j < r.height; j++ {
		for i := 0; i < r.width; i++ {
			color, err := r.renderPixel(i, j, rayRNG, materialRNG)
			if err != nil {
				return nil, err
			}
			img.Set(i, j, color)
		}
	}

	return img, nil
}

// RenderSOA renders sequentially into per-channel byte planes,
// discretizing each pixel as it is produced.
func (r *Renderer) RenderSOA() (*ImageSOA, error) {
	img := NewImageSOA(r.width, r.height)
	rayRNG := core.NewRand(r.cfg.RayRNGSeed)
	materialRNG := core.NewRand(r.cfg.MaterialRNGSeed)

	for j := 0; j < r.height; j++ {
		for i := 0; i < r.width; i++ {
			color, err := r.renderPixel(i, j, rayRNG, materialRNG)
			if err != nil {
				return nil, err
			}
			img.SetPixel(i, j, color, r.cfg.Gamma)
		}
	}

	return img, nil
}

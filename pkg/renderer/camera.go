package renderer

import (
	"fmt"
	"math"

	"github.com/renderlab/go-path-tracer/pkg/config"
	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Camera generates world-space rays from normalized image coordinates.
// The orthonormal frame is derived once from the configuration; ray
// generation is stateless after that.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds the camera frame from the configuration. It fails
// before any ray generation when position equals target or when the
// north vector is parallel to the view direction.
func NewCamera(cfg *config.Config) (*Camera, error) {
	aspectRatio := cfg.AspectRatio()
	imageWidth := cfg.ImageWidth
	imageHeight := cfg.ImageHeight()

	focalVector := cfg.CameraPosition.Subtract(cfg.CameraTarget)
	if focalVector.NearZero() {
		return nil, fmt.Errorf("camera position and target cannot be the same: %w", core.ErrInvalidArgument)
	}
	focalDistance := focalVector.Length()
	w, err := focalVector.Normalized()
	if err != nil {
		return nil, err
	}

	// Viewport dimensions from the vertical field of view
	theta := cfg.FieldOfView * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h * focalDistance
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis
	uVec := cfg.CameraNorth.Cross(w)
	if uVec.NearZero() {
		return nil, fmt.Errorf("camera north vector cannot be parallel to view direction: %w", core.ErrInvalidArgument)
	}
	u, err := uVec.Normalized()
	if err != nil {
		return nil, err
	}
	v := w.Cross(u)

	origin := cfg.CameraPosition
	horizontal := u.Multiply(viewportWidth)
	// Image rows grow downward, so the vertical viewport vector is negated
	vertical := v.Multiply(-viewportHeight)

	// Bake the half-pixel offset into the corner so (0,0) and (1,1)
	// map to the true corners of the sampling grid
	deltaU := horizontal.Multiply(1.0 / float64(imageWidth))
	deltaV := vertical.Multiply(1.0 / float64(imageHeight))
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focalDistance)).
		Add(deltaU.Multiply(0.5)).
		Add(deltaV.Multiply(0.5))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// GetRay generates a ray through normalized image coordinates
// (u, v) ∈ [0, 1]².
func (c *Camera) GetRay(u, v float64) (core.Ray, error) {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

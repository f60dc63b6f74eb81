package core

import "math"

// Color wraps a Vec3 interpreted as linear RGB.
type Color struct {
	RGB Vec3
}

// NewColor creates a color from linear RGB components
func NewColor(r, g, b float64) Color {
	return Color{RGB: Vec3{X: r, Y: g, Z: b}}
}

// Black is the zero radiance color
func Black() Color {
	return Color{}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{RGB: c.RGB.Add(other.RGB)}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{RGB: c.RGB.Multiply(scalar)}
}

// MultiplyColor returns the component-wise product of two colors,
// the attenuation step of the rendering-equation recurrence.
func (c Color) MultiplyColor(other Color) Color {
	return Color{RGB: Vec3{
		X: c.RGB.X * other.RGB.X,
		Y: c.RGB.Y * other.RGB.Y,
		Z: c.RGB.Z * other.RGB.Z,
	}}
}

// Discrete converts the linear color to gamma-corrected 8-bit
// channels: trunc(clamp(x,0,1)^(1/gamma) * 255). Truncation, not
// rounding: 0.5 at gamma 1 is 127. Gamma validity is enforced by the
// config loader, not re-checked here.
func (c Color) Discrete(gamma float64) (r, g, b uint8) {
	invGamma := 1.0 / gamma
	return discreteChannel(c.RGB.X, invGamma),
		discreteChannel(c.RGB.Y, invGamma),
		discreteChannel(c.RGB.Z, invGamma)
}

func discreteChannel(value, invGamma float64) uint8 {
	clamped := math.Min(math.Max(value, 0.0), 1.0)
	if clamped <= 0 {
		return 0
	}
	return uint8(math.Pow(clamped, invGamma) * 255.0)
}

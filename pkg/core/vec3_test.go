package core

import (
	"errors"
	"math"
	"testing"
)

func vecAlmostEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"negate", b.Negate(), NewVec3(-4, 5, -6)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); math.Abs(got-12.0) > 1e-12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := a.LengthSquared(); math.Abs(got-14.0) > 1e-12 {
		t.Errorf("Expected squared length 14, got %f", got)
	}
	if got := a.Length(); math.Abs(got-math.Sqrt(14)) > 1e-12 {
		t.Errorf("Expected length sqrt(14), got %f", got)
	}
}

func TestVec3_Divide(t *testing.T) {
	v := NewVec3(2, -4, 6)

	got, err := v.Divide(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !vecAlmostEqual(got, NewVec3(1, -2, 3), 1e-12) {
		t.Errorf("Expected (1, -2, 3), got %v", got)
	}

	if _, err := v.Divide(0); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain for division by zero, got %v", err)
	}
	if _, err := v.Divide(1e-12); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain for near-zero divisor, got %v", err)
	}
}

func TestVec3_Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis aligned", NewVec3(0, 0, 5)},
		{"general", NewVec3(1, 2, 3)},
		{"negative components", NewVec3(-0.3, 0.4, -0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := tt.v.Normalized()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(unit.Length()-1.0) > 1e-12 {
				t.Errorf("Expected unit length, got %f", unit.Length())
			}
			// Direction must be preserved
			if unit.Dot(tt.v) <= 0 {
				t.Errorf("Normalized vector %v points away from %v", unit, tt.v)
			}
		})
	}

	if _, err := NewVec3(0, 0, 0).Normalized(); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain for zero vector, got %v", err)
	}
	if _, err := NewVec3(1e-9, 0, 0).Normalized(); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain for near-zero vector, got %v", err)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero vector", NewVec3(0, 0, 0), true},
		{"all components tiny", NewVec3(1e-9, -1e-9, 1e-9), true},
		{"one large component", NewVec3(1e-9, 0, 1), false},
		{"exactly epsilon", NewVec3(1e-8, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v): expected %t, got %t", tt.v, tt.expected, got)
			}
		})
	}
}

func TestVec3_PerpendicularTo(t *testing.T) {
	v := NewVec3(1, 2, 3)
	axis := NewVec3(0, 1, 0)

	perp := v.PerpendicularTo(axis)
	if !vecAlmostEqual(perp, NewVec3(1, 0, 3), 1e-12) {
		t.Errorf("Expected (1, 0, 3), got %v", perp)
	}
	if math.Abs(perp.Dot(axis)) > 1e-12 {
		t.Errorf("Expected perpendicular component, dot with axis is %f", perp.Dot(axis))
	}
}

func TestRandomInUnitCube_Range(t *testing.T) {
	random := NewRand(42)
	for i := 0; i < 100; i++ {
		v := RandomInUnitCube(random)
		if v.X < -1 || v.X >= 1 || v.Y < -1 || v.Y >= 1 || v.Z < -1 || v.Z >= 1 {
			t.Fatalf("Component out of [-1, 1): %v", v)
		}
	}
}

func TestRandomFuzz_Range(t *testing.T) {
	random := NewRand(42)
	fuzz := 0.3
	for i := 0; i < 100; i++ {
		v := RandomFuzz(random, fuzz)
		if math.Abs(v.X) > fuzz || math.Abs(v.Y) > fuzz || math.Abs(v.Z) > fuzz {
			t.Fatalf("Component out of [-%f, %f]: %v", fuzz, fuzz, v)
		}
	}

	zero := RandomFuzz(random, 0)
	if !vecAlmostEqual(zero, NewVec3(0, 0, 0), 0) {
		t.Errorf("Expected zero perturbation for fuzz 0, got %v", zero)
	}
}

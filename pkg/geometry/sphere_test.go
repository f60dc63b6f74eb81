package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/renderlab/go-path-tracer/pkg/core"
	"github.com/renderlab/go-path-tracer/pkg/material"
)

func testMaterial(t *testing.T) core.Material {
	t.Helper()
	mat, err := material.NewMatte(core.NewColor(0.5, 0.5, 0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return mat
}

func mustRay(t *testing.T, origin, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return ray
}

func TestNewSphere_Validation(t *testing.T) {
	mat := testMaterial(t)

	tests := []struct {
		name     string
		radius   float64
		material core.Material
	}{
		{"zero radius", 0, mat},
		{"negative radius", -1, mat},
		{"nil material", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.material)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, -2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from the center",
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mustRay(t, tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := mustRay(t, core.NewVec3(3, 0, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_RangeBounds(t *testing.T) {
	// Ray from (0,0,-2) along -z intersects at t=2 and t=4
	sphere, err := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ray := mustRay(t, core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots in range takes nearer", 0.001, 1000, true, 2.0},
		{"nearer root below tMin takes farther", 3, 1000, true, 4.0},
		{"tMax below both roots misses", 0.001, 1.5, false, 0},
		{"tMax exactly on root is inclusive", 0.001, 2.0, true, 2.0},
		{"tMin exactly on root is inclusive", 2.0, 1000, true, 2.0},
		{"window between the roots misses", 2.5, 3.5, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_MinHitDistanceFloor(t *testing.T) {
	// Ray starting on the surface: the t=0 root must be suppressed even
	// when the caller passes a lower tMin
	sphere, err := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ray := mustRay(t, core.NewVec3(0, 0, -4), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, 1000)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected the far root t=2, got t=%f", hit.T)
	}
}

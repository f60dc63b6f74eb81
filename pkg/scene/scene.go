package scene

import (
	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Scene owns all materials (keyed by unique name) and all objects in
// insertion order. Built once during scene load, read-only while
// rendering. Objects keep the material value they were attached with;
// re-registering a name only changes later lookups.
type Scene struct {
	materials map[string]core.Material
	objects   []core.Object
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		materials: make(map[string]core.Material),
	}
}

// AddMaterial registers a material under a name, overwriting any prior
// entry. The parser rejects duplicate names before this is reached.
func (s *Scene) AddMaterial(name string, mat core.Material) {
	s.materials[name] = mat
}

// AddObject appends an object to the scene
func (s *Scene) AddObject(obj core.Object) {
	s.objects = append(s.objects, obj)
}

// Material looks up a material by name; missing names report ok=false,
// never an error.
func (s *Scene) Material(name string) (core.Material, bool) {
	mat, ok := s.materials[name]
	return mat, ok
}

// ObjectCount returns the number of objects in the scene
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// Hit returns the globally nearest intersection within [tMin, tMax]
// across all objects. A linear scan with a shrinking upper bound;
// O(objects) per ray by design, no acceleration structure.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, obj := range s.objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/renderlab/go-path-tracer/pkg/core"
	"github.com/renderlab/go-path-tracer/pkg/geometry"
	"github.com/renderlab/go-path-tracer/pkg/material"
)

// Scene file grammar, one entity per line, whitespace separated:
//
//	matte:      <name> <r> <g> <b>
//	metal:      <name> <r> <g> <b> <fuzz>
//	refractive: <name> <ior>
//	sphere:     <cx> <cy> <cz> <radius> <material>
//	cylinder:   <cx> <cy> <cz> <radius> <ax> <ay> <az> <material>
//
// Materials must be defined before the objects that reference them.

// LoadFile parses a scene file into a new Scene
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scene file %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads scene entities line by line. Any malformed line is a
// fatal parse error carrying the line number and content.
func Parse(r io.Reader) (*Scene, error) {
	scn := New()
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		tag := strings.TrimSuffix(parts[0], ":")

		var err error
		switch tag {
		case "matte":
			err = parseMatte(parts, scn)
		case "metal":
			err = parseMetal(parts, scn)
		case "refractive":
			err = parseRefractive(parts, scn)
		case "sphere":
			err = parseSphere(parts, scn)
		case "cylinder":
			err = parseCylinder(parts, scn)
		default:
			err = fmt.Errorf("unknown scene entity [%s]", tag)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w\nline: %s", lineNumber, err, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	return scn, nil
}

// checkExactSize verifies the token count for an entity, reporting
// missing and extra tokens distinctly.
func checkExactSize(parts []string, expected int, entity string) error {
	if len(parts) < expected {
		return fmt.Errorf("invalid %s parameters: expected %d fields, got %d", entity, expected, len(parts))
	}
	if len(parts) > expected {
		extra := strings.Join(parts[expected:], " ")
		return fmt.Errorf("extra data after %s entry: %s", entity, extra)
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number [%s]", s)
	}
	return v, nil
}

// parseVec parses three consecutive tokens starting at index start
func parseVec(parts []string, start int) (core.Vec3, error) {
	x, err := parseFloat(parts[start])
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := parseFloat(parts[start+1])
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := parseFloat(parts[start+2])
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func checkUniqueMaterial(scn *Scene, name string) error {
	if _, exists := scn.Material(name); exists {
		return fmt.Errorf("material with name [%s] already exists", name)
	}
	return nil
}

func lookupMaterial(scn *Scene, name string) (core.Material, error) {
	mat, ok := scn.Material(name)
	if !ok {
		return nil, fmt.Errorf("material not found [%s]", name)
	}
	return mat, nil
}

func parseMatte(parts []string, scn *Scene) error {
	if err := checkExactSize(parts, 5, "matte"); err != nil {
		return err
	}
	name := parts[1]
	if err := checkUniqueMaterial(scn, name); err != nil {
		return err
	}
	reflectance, err := parseVec(parts, 2)
	if err != nil {
		return err
	}
	mat, err := material.NewMatte(core.Color{RGB: reflectance})
	if err != nil {
		return err
	}
	scn.AddMaterial(name, mat)
	return nil
}

func parseMetal(parts []string, scn *Scene) error {
	if err := checkExactSize(parts, 6, "metal"); err != nil {
		return err
	}
	name := parts[1]
	if err := checkUniqueMaterial(scn, name); err != nil {
		return err
	}
	reflectance, err := parseVec(parts, 2)
	if err != nil {
		return err
	}
	fuzz, err := parseFloat(parts[5])
	if err != nil {
		return err
	}
	mat, err := material.NewMetal(core.Color{RGB: reflectance}, fuzz)
	if err != nil {
		return err
	}
	scn.AddMaterial(name, mat)
	return nil
}

func parseRefractive(parts []string, scn *Scene) error {
	if err := checkExactSize(parts, 3, "refractive"); err != nil {
		return err
	}
	name := parts[1]
	if err := checkUniqueMaterial(scn, name); err != nil {
		return err
	}
	ior, err := parseFloat(parts[2])
	if err != nil {
		return err
	}
	mat, err := material.NewRefractive(ior)
	if err != nil {
		return err
	}
	scn.AddMaterial(name, mat)
	return nil
}

func parseSphere(parts []string, scn *Scene) error {
	if err := checkExactSize(parts, 6, "sphere"); err != nil {
		return err
	}
	center, err := parseVec(parts, 1)
	if err != nil {
		return err
	}
	radius, err := parseFloat(parts[4])
	if err != nil {
		return err
	}
	mat, err := lookupMaterial(scn, parts[5])
	if err != nil {
		return err
	}
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	scn.AddObject(sphere)
	return nil
}

func parseCylinder(parts []string, scn *Scene) error {
	if err := checkExactSize(parts, 9, "cylinder"); err != nil {
		return err
	}
	center, err := parseVec(parts, 1)
	if err != nil {
		return err
	}
	radius, err := parseFloat(parts[4])
	if err != nil {
		return err
	}
	axis, err := parseVec(parts, 5)
	if err != nil {
		return err
	}
	mat, err := lookupMaterial(scn, parts[8])
	if err != nil {
		return err
	}
	cylinder, err := geometry.NewCylinder(center, radius, axis, mat)
	if err != nil {
		return err
	}
	scn.AddObject(cylinder)
	return nil
}

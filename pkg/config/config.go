package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// Config holds all render parameters. Fields are populated from a
// "key: value..." text file on top of the defaults below and validated
// per key; an invalid value or unknown key aborts the load.
type Config struct {
	// Image parameters
	AspectWidth  int
	AspectHeight int
	ImageWidth   int
	Gamma        float64

	// Camera parameters
	CameraPosition core.Vec3
	CameraTarget   core.Vec3
	CameraNorth    core.Vec3
	FieldOfView    float64 // vertical, degrees, in (0, 180)

	// Ray tracing parameters
	SamplesPerPixel int
	MaxDepth        int

	// RNG seeds, one stream for pixel jitter and one for scattering
	MaterialRNGSeed uint64
	RayRNGSeed      uint64

	// Background gradient endpoints, components in [0, 1]
	BackgroundDarkColor  core.Color
	BackgroundLightColor core.Color

	// Parallel strategy tuning
	NumThreads  int    // 0 means one worker per CPU
	Partitioner string // auto, static or simple
	GrainSize   int    // rows per chunk for the simple partitioner
}

// Default returns the configuration used when a key is absent from the
// config file.
func Default() *Config {
	return &Config{
		AspectWidth:          16,
		AspectHeight:         9,
		ImageWidth:           1920,
		Gamma:                2.2,
		CameraPosition:       core.NewVec3(0, 0, -10),
		CameraTarget:         core.NewVec3(0, 0, 0),
		CameraNorth:          core.NewVec3(0, 1, 0),
		FieldOfView:          90,
		SamplesPerPixel:      20,
		MaxDepth:             5,
		MaterialRNGSeed:      13,
		RayRNGSeed:           19,
		BackgroundDarkColor:  core.NewColor(0.25, 0.5, 1.0),
		BackgroundLightColor: core.NewColor(1, 1, 1),
		NumThreads:           0,
		Partitioner:          "auto",
		GrainSize:            1,
	}
}

// AspectRatio returns the width/height aspect as a float
func (c *Config) AspectRatio() float64 {
	return float64(c.AspectWidth) / float64(c.AspectHeight)
}

// ImageHeight derives the image height from the width and aspect ratio
func (c *Config) ImageHeight() int {
	return int(float64(c.ImageWidth) / c.AspectRatio())
}

// Load reads and validates a config file
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open config file %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

type handler func(parts []string, cfg *Config) error

var handlers = map[string]handler{
	"aspect_ratio":           handleAspectRatio,
	"image_width":            handleImageWidth,
	"gamma":                  handleGamma,
	"camera_position":        handleCameraPosition,
	"camera_target":          handleCameraTarget,
	"camera_north":           handleCameraNorth,
	"field_of_view":          handleFieldOfView,
	"samples_per_pixel":      handleSamplesPerPixel,
	"max_depth":              handleMaxDepth,
	"material_rng_seed":      handleMaterialRNGSeed,
	"ray_rng_seed":           handleRayRNGSeed,
	"background_dark_color":  handleBackgroundDarkColor,
	"background_light_color": handleBackgroundLightColor,
	"num_threads":            handleNumThreads,
	"partitioner":            handlePartitioner,
	"grain_size":             handleGrainSize,
}

// Parse reads key/value lines on top of the defaults. Blank lines are
// skipped; a trailing ':' on the key is stripped; unknown keys are
// fatal.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		h, ok := handlers[key]
		if !ok {
			return nil, fmt.Errorf("unknown configuration key: [%s:]", key)
		}
		if err := h(parts, cfg); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return cfg, nil
}

func invalidKey(key string) error {
	return fmt.Errorf("invalid value for key [%s:]: %w", key, core.ErrInvalidArgument)
}

func parseInts(parts []string, key string) ([]int, error) {
	values := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, invalidKey(key)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseFloats(parts []string, key string) ([]float64, error) {
	values := make([]float64, 0, len(parts)-1)
	for _, p := range parts[1:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, invalidKey(key)
		}
		values = append(values, v)
	}
	return values, nil
}

func colorInRange(c core.Color) bool {
	rgb := c.RGB
	return rgb.X >= 0 && rgb.X <= 1 && rgb.Y >= 0 && rgb.Y <= 1 && rgb.Z >= 0 && rgb.Z <= 1
}

func handleAspectRatio(parts []string, cfg *Config) error {
	const key = "aspect_ratio"
	if len(parts) != 3 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 || values[1] <= 0 {
		return invalidKey(key)
	}
	cfg.AspectWidth, cfg.AspectHeight = values[0], values[1]
	return nil
}

func handleImageWidth(parts []string, cfg *Config) error {
	const key = "image_width"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return invalidKey(key)
	}
	cfg.ImageWidth = values[0]
	return nil
}

func handleGamma(parts []string, cfg *Config) error {
	const key = "gamma"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return invalidKey(key)
	}
	cfg.Gamma = values[0]
	return nil
}

func handleCameraPosition(parts []string, cfg *Config) error {
	const key = "camera_position"
	if len(parts) != 4 {
		return invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return err
	}
	cfg.CameraPosition = core.NewVec3(values[0], values[1], values[2])
	return nil
}

func handleCameraTarget(parts []string, cfg *Config) error {
	const key = "camera_target"
	if len(parts) != 4 {
		return invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return err
	}
	cfg.CameraTarget = core.NewVec3(values[0], values[1], values[2])
	return nil
}

func handleCameraNorth(parts []string, cfg *Config) error {
	const key = "camera_north"
	if len(parts) != 4 {
		return invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return err
	}
	north := core.NewVec3(values[0], values[1], values[2])
	if north.NearZero() {
		return invalidKey(key)
	}
	cfg.CameraNorth = north
	return nil
}

func handleFieldOfView(parts []string, cfg *Config) error {
	const key = "field_of_view"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 || values[0] >= 180 {
		return invalidKey(key)
	}
	cfg.FieldOfView = values[0]
	return nil
}

func handleSamplesPerPixel(parts []string, cfg *Config) error {
	const key = "samples_per_pixel"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return invalidKey(key)
	}
	cfg.SamplesPerPixel = values[0]
	return nil
}

func handleMaxDepth(parts []string, cfg *Config) error {
	const key = "max_depth"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return invalidKey(key)
	}
	cfg.MaxDepth = values[0]
	return nil
}

func parseSeed(parts []string, key string) (uint64, error) {
	if len(parts) != 2 {
		return 0, invalidKey(key)
	}
	seed, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || seed == 0 {
		return 0, invalidKey(key)
	}
	return seed, nil
}

func handleMaterialRNGSeed(parts []string, cfg *Config) error {
	seed, err := parseSeed(parts, "material_rng_seed")
	if err != nil {
		return err
	}
	cfg.MaterialRNGSeed = seed
	return nil
}

func handleRayRNGSeed(parts []string, cfg *Config) error {
	seed, err := parseSeed(parts, "ray_rng_seed")
	if err != nil {
		return err
	}
	cfg.RayRNGSeed = seed
	return nil
}

func parseBackgroundColor(parts []string, key string) (core.Color, error) {
	if len(parts) != 4 {
		return core.Color{}, invalidKey(key)
	}
	values, err := parseFloats(parts, key)
	if err != nil {
		return core.Color{}, err
	}
	color := core.NewColor(values[0], values[1], values[2])
	if !colorInRange(color) {
		return core.Color{}, invalidKey(key)
	}
	return color, nil
}

func handleBackgroundDarkColor(parts []string, cfg *Config) error {
	color, err := parseBackgroundColor(parts, "background_dark_color")
	if err != nil {
		return err
	}
	cfg.BackgroundDarkColor = color
	return nil
}

func handleBackgroundLightColor(parts []string, cfg *Config) error {
	color, err := parseBackgroundColor(parts, "background_light_color")
	if err != nil {
		return err
	}
	cfg.BackgroundLightColor = color
	return nil
}

func handleNumThreads(parts []string, cfg *Config) error {
	const key = "num_threads"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] < 0 {
		return invalidKey(key)
	}
	cfg.NumThreads = values[0]
	return nil
}

func handlePartitioner(parts []string, cfg *Config) error {
	const key = "partitioner"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	switch parts[1] {
	case "auto", "static", "simple":
		cfg.Partitioner = parts[1]
		return nil
	default:
		return invalidKey(key)
	}
}

func handleGrainSize(parts []string, cfg *Config) error {
	const key = "grain_size"
	if len(parts) != 2 {
		return invalidKey(key)
	}
	values, err := parseInts(parts, key)
	if err != nil {
		return err
	}
	if values[0] <= 0 {
		return invalidKey(key)
	}
	cfg.GrainSize = values[0]
	return nil
}

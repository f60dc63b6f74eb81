package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/renderlab/go-path-tracer/pkg/config"
	"github.com/renderlab/go-path-tracer/pkg/renderer"
	"github.com/renderlab/go-path-tracer/pkg/scene"
)

func main() {
	strategy := flag.String("strategy", "aos", "Execution strategy: 'aos', 'soa' or 'par'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options] <config> <scene> <output>")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Strategies:")
		fmt.Println("  aos - sequential, array-of-structures pixel buffer")
		fmt.Println("  soa - sequential, structure-of-arrays pixel buffer")
		fmt.Println("  par - row-parallel worker pool")
		return
	}

	if err := run(*strategy, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(strategy string, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("invalid number of arguments: %d (want <config> <scene> <output>)", len(args))
	}
	configPath, scenePath, outputPath := args[0], args[1], args[2]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	scn, err := scene.LoadFile(scenePath)
	if err != nil {
		return err
	}
	r, err := renderer.New(cfg, scn)
	if err != nil {
		return err
	}

	fmt.Printf("Rendering scene (%dx%d) with %d samples/pixel, strategy %s...\n",
		r.Width(), r.Height(), cfg.SamplesPerPixel, strategy)

	startTime := time.Now()
	var write func(f *os.File) error

	switch strategy {
	case "aos":
		img, err := r.RenderAOS()
		if err != nil {
			return err
		}
		write = func(f *os.File) error { return img.WritePPM(f, cfg.Gamma) }
	case "soa":
		img, err := r.RenderSOA()
		if err != nil {
			return err
		}
		write = func(f *os.File) error { return img.WritePPM(f) }
	case "par":
		img, err := r.RenderParallel()
		if err != nil {
			return err
		}
		write = func(f *os.File) error { return img.WritePPM(f) }
	default:
		return fmt.Errorf("unknown strategy %q (want aos, soa or par)", strategy)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot open file for writing %s: %w", outputPath, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}

	fmt.Printf("Image saved as %s\n", outputPath)
	return nil
}

package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/renderlab/go-path-tracer/pkg/core"
)

// ImageAOS stores one linear Color per pixel and discretizes at
// serialization time.
type ImageAOS struct {
	width  int
	height int
	pixels []core.Color
}

// NewImageAOS creates an empty array-of-structures pixel buffer
func NewImageAOS(width, height int) *ImageAOS {
	return &ImageAOS{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the image width in pixels
func (img *ImageAOS) Width() int { return img.width }

// Height returns the image height in pixels
func (img *ImageAOS) Height() int { return img.height }

// Set stores the linear color for pixel (x, y)
func (img *ImageAOS) Set(x, y int, color core.Color) {
	img.pixels[y*img.width+x] = color
}

// At returns the linear color stored for pixel (x, y)
func (img *ImageAOS) At(x, y int) core.Color {
	return img.pixels[y*img.width+x]
}

// WritePPM serializes the buffer as a plain PPM (P3) image, applying
// gamma-corrected discretization per pixel, row 0 first.
func (img *ImageAOS) WritePPM(w io.Writer, gamma float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}
	for _, pixel := range img.pixels {
		r, g, b := pixel.Discrete(gamma)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ImageSOA stores each channel in its own byte plane; pixels are
// discretized as they are set. Writes to disjoint pixels are safe from
// different goroutines.
type ImageSOA struct {
	width  int
	height int
	r      []uint8
	g      []uint8
	b      []uint8
}

// NewImageSOA creates an empty structure-of-arrays pixel buffer
func NewImageSOA(width, height int) *ImageSOA {
	total := width * height
	return &ImageSOA{
		width:  width,
		height: height,
		r:      make([]uint8, total),
		g:      make([]uint8, total),
		b:      make([]uint8, total),
	}
}

// Width returns the image width in pixels
func (img *ImageSOA) Width() int { return img.width }

// Height returns the image height in pixels
func (img *ImageSOA) Height() int { return img.height }

// SetPixel discretizes and stores the color for pixel (x, y)
func (img *ImageSOA) SetPixel(x, y int, color core.Color, gamma float64) {
	index := y*img.width + x
	img.r[index], img.g[index], img.b[index] = color.Discrete(gamma)
}

// Pixel returns the discrete channels stored for pixel (x, y)
func (img *ImageSOA) Pixel(x, y int) (r, g, b uint8) {
	index := y*img.width + x
	return img.r[index], img.g[index], img.b[index]
}

// WritePPM serializes the planes as a plain PPM (P3) image
func (img *ImageSOA) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}
	for i := range img.r {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", img.r[i], img.g[i], img.b[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

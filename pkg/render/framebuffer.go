// Package render implements the facet geometry pipeline, the plane clipper,
// the scanline rasterizer and the pixel surfaces they draw onto.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Framebuffer is an in-memory RGBA Surface.
// The terminal presenter shows two framebuffer rows per cell using half blocks.
type Framebuffer struct {
	w, h   int
	Pixels []Color // Row-major pixel data
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.w }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.h }

// Resize changes the dimensions, reusing the pixel slice when it is large enough.
// Contents are undefined afterwards; call Clear.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if cap(fb.Pixels) >= n {
		fb.Pixels = fb.Pixels[:n]
	} else {
		fb.Pixels = make([]Color, n)
	}
	fb.w, fb.h = width, height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// DrawPoint sets the pixel at (x, y). Out-of-bounds points are ignored.
func (fb *Framebuffer) DrawPoint(x, y int, c Color) {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return
	}
	fb.Pixels[y*fb.w+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return Color{}
	}
	return fb.Pixels[y*fb.w+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// Both endpoints are drawn.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	// Horizontal spans are the rasterizer's hot path
	if y0 == y1 {
		if y0 < 0 || y0 >= fb.h {
			return
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		x0, x1 = max(x0, 0), min(x1, fb.w-1)
		row := fb.Pixels[y0*fb.w : (y0+1)*fb.w]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.DrawPoint(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.w+x])
		}
	}
	return img
}

// Scaled returns the framebuffer image enlarged by factor with
// nearest-neighbour sampling, keeping pixel edges hard.
func (fb *Framebuffer) Scaled(factor int) *image.RGBA {
	src := fb.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.w*factor, fb.h*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return saveImage(path, fb.ToImage(), encodePNG)
}

// SaveWebP saves the framebuffer as a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	return saveImage(path, fb.ToImage(), encodeWebP)
}

// Save writes the framebuffer scaled by factor, choosing PNG or WebP from
// the file extension.
func (fb *Framebuffer) Save(path string, factor int) error {
	var enc encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = encodePNG
	case ".webp":
		enc = encodeWebP
	default:
		return fmt.Errorf("unsupported image format: %s (use .png or .webp)", filepath.Ext(path))
	}
	return saveImage(path, fb.Scaled(factor), enc)
}

type encoder func(f *os.File, img image.Image) error

func encodePNG(f *os.File, img image.Image) error {
	return png.Encode(f, img)
}

func encodeWebP(f *os.File, img image.Image) error {
	return nativewebp.Encode(f, img, nil)
}

func saveImage(path string, img image.Image, enc encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

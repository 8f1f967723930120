// Package raster implements a dense 2D pixel grid over the formats in
// package pixel, together with the composite and transform operations the
// map texture builder needs.
//
// Pixels are stored row-major; the pixel at (x, y) lives at x + y*width.
// Positional accessors do not bounds-check beyond what the slice does:
// callers validate extents through the dimension checks of the composite
// functions.
package raster

import (
	"image"
	"image/color"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
)

// Image is a width×height grid of pixels of type P. Its dimensions are fixed
// at construction and len(pixels) == width*height always holds.
type Image[P pixel.Pixel[P]] struct {
	pixels []P
	dims   Dimensions
}

// NewRaw wraps pixels as an image of the given dimensions. It takes
// ownership of the slice.
func NewRaw[P pixel.Pixel[P]](pixels []P, dims Dimensions) (*Image[P], error) {
	if dims.Negative() {
		return nil, errors.New(errors.ErrCodeDimensionMismatch, "negative image dimensions %v", dims)
	}
	if len(pixels) != dims.Area() {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"%d pixels do not fill %v (%d)", len(pixels), dims, dims.Area())
	}
	return &Image[P]{pixels: pixels, dims: dims}, nil
}

// NewUniform creates an image with every pixel set to fill. Negative axes
// are treated as zero.
func NewUniform[P pixel.Pixel[P]](fill P, dims Dimensions) *Image[P] {
	dims = Dimensions{max(dims.X, 0), max(dims.Y, 0)}
	pixels := make([]P, dims.Area())
	for i := range pixels {
		pixels[i] = fill
	}
	return &Image[P]{pixels: pixels, dims: dims}
}

// Dimensions returns the image size in pixels.
func (m *Image[P]) Dimensions() Dimensions {
	return m.dims
}

// Index returns the offset of pos in the pixel slice.
func (m *Image[P]) Index(pos Dimensions) int {
	return pos.X + pos.Y*m.dims.X
}

// Get returns the pixel at pos.
func (m *Image[P]) Get(pos Dimensions) P {
	return m.pixels[m.Index(pos)]
}

// Set replaces the pixel at pos.
func (m *Image[P]) Set(pos Dimensions, p P) {
	m.pixels[m.Index(pos)] = p
}

// Pixels exposes the backing slice, row-major.
func (m *Image[P]) Pixels() []P {
	return m.pixels
}

// Uniform reports whether every pixel shares the same value, and returns it.
// The scan short-circuits on the first mismatch.
func (m *Image[P]) Uniform() (P, bool) {
	var zero P
	if len(m.pixels) == 0 {
		return zero, false
	}
	first := m.pixels[0]
	for _, p := range m.pixels[1:] {
		if p != first {
			return zero, false
		}
	}
	return first, true
}

// RawBytes serializes all pixels row-major, each in channel order. The
// result is tightly packed: len == area * ByteLength.
func (m *Image[P]) RawBytes() []byte {
	var zero P
	buf := make([]byte, 0, len(m.pixels)*zero.ByteLength())
	for _, p := range m.pixels {
		buf = p.AppendBytes(buf)
	}
	return buf
}

// InvertX mirrors the image horizontally in place (each row reversed).
func (m *Image[P]) InvertX() {
	w := m.dims.X
	for y := 0; y < m.dims.Y; y++ {
		row := m.pixels[y*w : (y+1)*w]
		for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// InvertY mirrors the image vertically in place (row order reversed).
func (m *Image[P]) InvertY() {
	w := m.dims.X
	for top, bottom := 0, m.dims.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := m.pixels[top*w : (top+1)*w]
		b := m.pixels[bottom*w : (bottom+1)*w]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// FillNRGBA copies the image into dst, which must be at least as large.
// dst is typically taken from an encoder buffer pool.
func (m *Image[P]) FillNRGBA(dst *image.NRGBA) {
	for y := 0; y < m.dims.Y; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x, p := range m.pixels[y*m.dims.X : (y+1)*m.dims.X] {
			c := p.ToRGBA()
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// --- image.Image interface ---

func (m *Image[P]) ColorModel() color.Model {
	return pixel.Model[P]()
}

func (m *Image[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.dims.X, m.dims.Y)
}

func (m *Image[P]) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.dims.X || y >= m.dims.Y {
		var zero P
		return zero
	}
	return m.pixels[x+y*m.dims.X]
}

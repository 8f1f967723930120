// Package pixel defines the fixed-width pixel formats used by map textures
// and the overdraw (alpha-composite in place) rule between them.
//
// Every format implements color.Color with straight (non-premultiplied)
// alpha, so images built from these pixels can be handed to the standard
// image encoders without conversion.
package pixel

import (
	"image/color"
)

// Pixel is implemented by every pixel format. P is the implementing type
// itself, which lets generic containers construct and composite values of
// their own element type.
type Pixel[P any] interface {
	comparable
	color.Color

	// ByteLength is the serialized size of one pixel.
	ByteLength() int

	// AppendBytes appends the channels in declaration order.
	AppendBytes(b []byte) []byte

	// ToRGBA promotes the pixel to RGBA8. Formats without alpha are opaque.
	ToRGBA() RGBA8

	// FromRGBA converts c into P. The receiver is ignored.
	FromRGBA(c RGBA8) P

	// Overdrawn returns the receiver with src composited over it.
	Overdrawn(src RGBA8) P
}

// RGB8 is an opaque 24-bit pixel.
type RGB8 struct {
	R, G, B uint8
}

// RGBA8 is a 32-bit pixel with straight alpha.
type RGBA8 struct {
	R, G, B, A uint8
}

// Grey8 is an opaque 8-bit luminance pixel.
type Grey8 struct {
	Y uint8
}

// --- RGB8 ---

func (RGB8) ByteLength() int { return 3 }

func (p RGB8) AppendBytes(b []byte) []byte { return append(b, p.R, p.G, p.B) }

func (p RGB8) ToRGBA() RGBA8 { return RGBA8{p.R, p.G, p.B, 0xff} }

func (RGB8) FromRGBA(c RGBA8) RGB8 { return c.ToRGB() }

func (p RGB8) Overdrawn(src RGBA8) RGB8 {
	switch src.A {
	case 0xff:
		return RGB8{src.R, src.G, src.B}
	case 0:
		return p
	}
	return RGB8{
		R: blend(src.R, p.R, src.A),
		G: blend(src.G, p.G, src.A),
		B: blend(src.B, p.B, src.A),
	}
}

func (p RGB8) RGBA() (r, g, b, a uint32) {
	return uint32(p.R) * 0x101, uint32(p.G) * 0x101, uint32(p.B) * 0x101, 0xffff
}

// --- RGBA8 ---

func (RGBA8) ByteLength() int { return 4 }

func (p RGBA8) AppendBytes(b []byte) []byte { return append(b, p.R, p.G, p.B, p.A) }

func (p RGBA8) ToRGBA() RGBA8 { return p }

// ToRGB drops the alpha channel.
func (p RGBA8) ToRGB() RGB8 { return RGB8{p.R, p.G, p.B} }

func (RGBA8) FromRGBA(c RGBA8) RGBA8 { return c }

// Overdrawn blends the color channels by the source alpha. The resulting
// alpha is the source alpha doubled and saturated; the destination alpha
// does not take part.
func (p RGBA8) Overdrawn(src RGBA8) RGBA8 {
	return RGBA8{
		R: blend(src.R, p.R, src.A),
		G: blend(src.G, p.G, src.A),
		B: blend(src.B, p.B, src.A),
		A: saturatingAdd(src.A, src.A),
	}
}

func (p RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// --- Grey8 ---

func (Grey8) ByteLength() int { return 1 }

func (p Grey8) AppendBytes(b []byte) []byte { return append(b, p.Y) }

func (p Grey8) ToRGBA() RGBA8 { return RGBA8{p.Y, p.Y, p.Y, 0xff} }

func (Grey8) FromRGBA(c RGBA8) Grey8 { return Grey8{luma(c.R, c.G, c.B)} }

func (p Grey8) Overdrawn(src RGBA8) Grey8 {
	return Grey8{blend(luma(src.R, src.G, src.B), p.Y, src.A)}
}

func (p Grey8) RGBA() (r, g, b, a uint32) {
	y := uint32(p.Y) * 0x101
	return y, y, y, 0xffff
}

// Model returns a color.Model converting arbitrary colors into P.
func Model[P Pixel[P]]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if p, ok := c.(P); ok {
			return p
		}
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		var zero P
		return zero.FromRGBA(RGBA8{n.R, n.G, n.B, n.A})
	})
}

package encode

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// defaultPaletteColors is the palette size used when none is configured.
const defaultPaletteColors = 256

// palettedEncoder quantizes a texture to at most colors colors with a
// median-cut quantizer and writes an indexed PNG. Surface textures are built
// from a handful of hand-painted variants, so the palette loss is usually
// invisible while the file shrinks to roughly a third.
type palettedEncoder struct {
	colors int
}

func (e *palettedEncoder) Encode(w io.Writer, img image.Image) error {
	n := e.colors
	if n <= 0 || n > defaultPaletteColors {
		n = defaultPaletteColors
	}

	b := img.Bounds()
	pm, _ := img.(*image.Paletted)
	if pm == nil || len(pm.Palette) > n {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), img))
		draw.Draw(pm, b, img, b.Min, draw.Src)
	}

	enc := &png.Encoder{CompressionLevel: png.BestCompression, BufferPool: pngBuffers}
	return enc.Encode(w, pm)
}

func (e *palettedEncoder) Format() string    { return "png8" }
func (e *palettedEncoder) Extension() string { return ".png" }

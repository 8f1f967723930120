package encode

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// bmpEncoder writes uncompressed BMP, which some legacy map editors still
// expect.
type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }
func (bmpEncoder) Format() string                            { return "bmp" }
func (bmpEncoder) Extension() string                         { return ".bmp" }

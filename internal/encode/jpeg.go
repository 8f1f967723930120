package encode

import (
	"image"
	"image/jpeg"
	"io"
)

const defaultQuality = 85

// jpegEncoder discards alpha; composed textures are opaque anyway.
type jpegEncoder struct {
	quality int
}

func newJPEGEncoder(quality int) *jpegEncoder {
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}
	return &jpegEncoder{quality: quality}
}

func (e *jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality})
}

func (e *jpegEncoder) Format() string    { return "jpeg" }
func (e *jpegEncoder) Extension() string { return ".jpg" }

package encode

import (
	"image"
	"io"

	"github.com/gen2brain/webp"
)

// webpEncoder uses gen2brain/webp, which runs libwebp through purego when a
// system library is present and through WASM otherwise. A quality of 100
// selects lossless mode.
type webpEncoder struct {
	opts webp.Options
}

func newWebPEncoder(quality int) *webpEncoder {
	if quality <= 0 {
		quality = defaultQuality
	}
	quality = min(quality, 100)
	return &webpEncoder{opts: webp.Options{Quality: quality, Lossless: quality == 100}}
}

func (e *webpEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, e.opts)
}

func (e *webpEncoder) Format() string    { return "webp" }
func (e *webpEncoder) Extension() string { return ".webp" }

func decodeWebP(r io.Reader) (image.Image, error) {
	return webp.Decode(r)
}

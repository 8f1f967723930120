package encode

import (
	"image"
	"sync"
)

// nrgbaPoolKey identifies a pool by image dimensions.
type nrgbaPoolKey struct {
	w, h int
}

// nrgbaPools maps (width, height) → *sync.Pool of *image.NRGBA.
// A run exports one or two texture sizes, so the map stays tiny.
var nrgbaPools sync.Map

// GetNRGBA returns a zeroed *image.NRGBA from the pool, or allocates a new one.
// The returned image has Rect (0,0)-(w,h) with all pixels set to zero.
func GetNRGBA(w, h int) *image.NRGBA {
	key := nrgbaPoolKey{w, h}
	if p, ok := nrgbaPools.Load(key); ok {
		if v := p.(*sync.Pool).Get(); v != nil {
			img := v.(*image.NRGBA)
			clear(img.Pix)
			return img
		}
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// PutNRGBA returns an *image.NRGBA to the pool for reuse.
// Nil images are silently ignored.
func PutNRGBA(img *image.NRGBA) {
	if img == nil {
		return
	}
	key := nrgbaPoolKey{img.Rect.Dx(), img.Rect.Dy()}
	p, _ := nrgbaPools.LoadOrStore(key, &sync.Pool{})
	p.(*sync.Pool).Put(img)
}

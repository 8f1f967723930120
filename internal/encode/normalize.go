package encode

import (
	"encoding/binary"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
)

// Normalizer turns raw decoded samples of any supported bit depth into
// 16-bit samples and then into typed pixels.
type Normalizer struct {
	// ByteOrder combines the two bytes of a 16-bit sample. Nil means
	// little-endian, which swaps PNG's big-endian wire order.
	ByteOrder binary.ByteOrder
}

// ParseByteOrder maps "little"/"big" to a byte order.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch s {
	case "", "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown sample byte order %q (use little or big)", s)
	}
}

// Samples expands pix to one 16-bit value per sample. Sub-byte samples are
// read starting from the least significant bits of each byte and scaled so
// that the largest code maps to 0xffff.
func (n Normalizer) Samples(pix []byte, depth int) ([]uint16, error) {
	switch depth {
	case 1, 2, 4:
		mask := byte(1<<depth - 1)
		scale := uint16(0xffff / uint32(mask))
		perByte := 8 / depth
		values := make([]uint16, 0, len(pix)*perByte)
		for _, b := range pix {
			for k := 0; k < perByte; k++ {
				values = append(values, uint16(b&mask)*scale)
				b >>= depth
			}
		}
		return values, nil
	case 8:
		values := make([]uint16, len(pix))
		for i, b := range pix {
			values[i] = uint16(b) * 257
		}
		return values, nil
	case 16:
		order := n.ByteOrder
		if order == nil {
			order = binary.LittleEndian
		}
		values := make([]uint16, len(pix)/2)
		for i := range values {
			values[i] = order.Uint16(pix[i*2:])
		}
		return values, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "bit depth %d is not implemented", depth)
	}
}

// NormalizePixels converts a raw image into pixels of type P. Each pixel
// takes the high byte of its normalized samples; RGB input is opaque.
// Trailing samples that do not form a whole pixel are ignored.
func NormalizePixels[P pixel.Pixel[P]](n Normalizer, raw RawImage) ([]P, error) {
	channels := raw.ColorType.Channels()
	if channels == 0 {
		return nil, errors.New(errors.ErrCodeUnsupported, "color type %v is not implemented", raw.ColorType)
	}
	values, err := n.Samples(raw.Pix, raw.BitDepth)
	if err != nil {
		return nil, err
	}

	var zero P
	count := len(values) / channels
	pixels := make([]P, count)
	for i := range pixels {
		s := values[i*channels : (i+1)*channels]
		c := pixel.RGBA8{R: uint8(s[0] >> 8), G: uint8(s[1] >> 8), B: uint8(s[2] >> 8), A: 0xff}
		if channels == 4 {
			c.A = uint8(s[3] >> 8)
		}
		pixels[i] = zero.FromRGBA(c)
	}
	return pixels, nil
}

// NormalizeImage converts a raw image into a typed raster image of
// raw.Width × raw.Height. Sub-byte depths may carry padding samples past the
// last pixel; those are dropped. Too few samples is a DIMENSION_MISMATCH.
func NormalizeImage[P pixel.Pixel[P]](n Normalizer, raw RawImage) (*raster.Image[P], error) {
	pixels, err := NormalizePixels[P](n, raw)
	if err != nil {
		return nil, err
	}
	dims := raster.Dims(raw.Width, raw.Height)
	if len(pixels) > dims.Area() {
		pixels = pixels[:dims.Area()]
	}
	return raster.NewRaw(pixels, dims)
}

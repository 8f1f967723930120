package encode

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"

	"github.com/pspoerri/tilemap/internal/errors"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// DecodeRaw decodes an asset into its raw sample stream. For PNG the bit
// depth and color type come from the IHDR chunk and the samples keep the
// wire layout (16-bit samples big-endian). WebP always yields 8-bit RGBA.
//
// Color types other than RGB and RGBA fail with UNSUPPORTED before the
// image data is decoded.
func DecodeRaw(data []byte, format string) (RawImage, error) {
	switch format {
	case "png":
		return decodeRawPNG(data)
	case "webp":
		img, err := decodeWebP(bytes.NewReader(data))
		if err != nil {
			return RawImage{}, errors.Wrap(errors.ErrCodeDecode, err, "decoding webp")
		}
		b := img.Bounds()
		return RawImage{
			Width:     b.Dx(),
			Height:    b.Dy(),
			BitDepth:  8,
			ColorType: ColorRGBA,
			Pix:       samples(img, 4, 8),
		}, nil
	default:
		return RawImage{}, errors.New(errors.ErrCodeUnsupported, "unsupported asset format: %q", format)
	}
}

func decodeRawPNG(data []byte) (RawImage, error) {
	// Signature (8) + chunk length (4) + "IHDR" (4) + 13 bytes of header.
	if len(data) < 29 || string(data[:8]) != pngSignature || string(data[12:16]) != "IHDR" {
		return RawImage{}, errors.New(errors.ErrCodeDecode, "not a PNG stream")
	}
	raw := RawImage{
		Width:     int(binary.BigEndian.Uint32(data[16:20])),
		Height:    int(binary.BigEndian.Uint32(data[20:24])),
		BitDepth:  int(data[24]),
		ColorType: ColorType(data[25]),
	}
	if raw.ColorType.Channels() == 0 {
		return RawImage{}, errors.New(errors.ErrCodeUnsupported,
			"png color type %v is not implemented (only rgb and rgba)", raw.ColorType)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return RawImage{}, errors.Wrap(errors.ErrCodeDecode, err, "decoding png")
	}
	raw.Pix = samples(img, raw.ColorType.Channels(), raw.BitDepth)
	return raw, nil
}

// samples flattens img into a stream of channels samples per pixel at 8 or
// 16 bits (big-endian). The decoder's own buffers are copied directly where
// their layout allows it.
func samples(img image.Image, channels, depth int) []byte {
	b := img.Bounds()
	size := depth / 8
	out := make([]byte, 0, b.Dx()*b.Dy()*channels*size)

	copyRows := func(pix []byte, stride, pixelBytes int) []byte {
		n := channels * size
		for y := 0; y < b.Dy(); y++ {
			row := pix[y*stride : y*stride+b.Dx()*pixelBytes]
			for i := 0; i < len(row); i += pixelBytes {
				out = append(out, row[i:i+n]...)
			}
		}
		return out
	}

	switch m := img.(type) {
	case *image.NRGBA:
		if size == 1 {
			return copyRows(m.Pix, m.Stride, 4)
		}
	case *image.RGBA:
		// Only produced for opaque images, where premultiplied equals straight.
		if size == 1 {
			return copyRows(m.Pix, m.Stride, 4)
		}
	case *image.NRGBA64:
		if size == 2 {
			return copyRows(m.Pix, m.Stride, 8)
		}
	case *image.RGBA64:
		if size == 2 {
			return copyRows(m.Pix, m.Stride, 8)
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			vals := [4]uint16{c.R, c.G, c.B, c.A}
			for _, v := range vals[:channels] {
				if size == 2 {
					out = binary.BigEndian.AppendUint16(out, v)
				} else {
					out = append(out, uint8(v>>8))
				}
			}
		}
	}
	return out
}

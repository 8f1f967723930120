package encode

import "fmt"

// ColorType is the channel layout of decoded samples. Values match the PNG
// IHDR color type byte.
type ColorType uint8

const (
	ColorGrey      ColorType = 0
	ColorRGB       ColorType = 2
	ColorIndexed   ColorType = 3
	ColorGreyAlpha ColorType = 4
	ColorRGBA      ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case ColorGrey:
		return "grey"
	case ColorRGB:
		return "rgb"
	case ColorIndexed:
		return "indexed"
	case ColorGreyAlpha:
		return "grey+alpha"
	case ColorRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(c))
	}
}

// Channels returns the samples per pixel, or 0 for layouts the normalizer
// does not support.
func (c ColorType) Channels() int {
	switch c {
	case ColorRGB:
		return 3
	case ColorRGBA:
		return 4
	default:
		return 0
	}
}

// RawImage is a decoded image before normalization: a flat sample stream of
// BitDepth bits per sample in the given channel layout.
type RawImage struct {
	Width     int
	Height    int
	BitDepth  int
	ColorType ColorType
	Pix       []byte
}

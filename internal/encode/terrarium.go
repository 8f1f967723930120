package encode

import "image/color"

// Terrarium stores elevation as (R * 256 + G + B / 256) - 32768 metres.
const terrariumOffset = 32768

// ElevationToTerrarium converts a whole-metre elevation to Terrarium RGB.
// Tile elevations are integral, so B is always zero. Values outside
// [-32768, 32767] are clamped.
func ElevationToTerrarium(meters int32) color.RGBA {
	value := int64(meters) + terrariumOffset
	value = min(max(value, 0), 0xffff)
	return color.RGBA{R: uint8(value >> 8), G: uint8(value), B: 0, A: 255}
}

// TerrariumToElevation converts Terrarium RGB back to metres, truncating the
// sub-metre B channel. ok is false for transparent (nodata) pixels.
func TerrariumToElevation(c color.RGBA) (meters int32, ok bool) {
	if c.A == 0 {
		return 0, false
	}
	return int32(c.R)<<8 + int32(c.G) - terrariumOffset, true
}

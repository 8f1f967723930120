package raster

import "github.com/pspoerri/tilemap/internal/pixel"

// Halve returns a copy of img at half resolution using a 2x2 box filter.
// Odd trailing rows and columns are clamped to the last source pixel.
// Pixels with alpha 0 count towards the averaged alpha but are excluded from
// the color average, so transparent regions do not darken their neighbours.
func Halve[P pixel.Pixel[P]](img *Image[P]) *Image[P] {
	var zero P
	src := img.dims
	dims := Dimensions{(src.X + 1) / 2, (src.Y + 1) / 2}
	out := NewUniform(zero, dims)
	if src.X == 0 || src.Y == 0 {
		return out
	}

	for pos := range dims.All() {
		sx, sy := pos.X*2, pos.Y*2
		block := [4]pixel.RGBA8{
			img.Get(Dimensions{sx, sy}).ToRGBA(),
			img.Get(Dimensions{min(sx+1, src.X-1), sy}).ToRGBA(),
			img.Get(Dimensions{sx, min(sy+1, src.Y-1)}).ToRGBA(),
			img.Get(Dimensions{min(sx+1, src.X-1), min(sy+1, src.Y-1)}).ToRGBA(),
		}

		var aSum, rSum, gSum, bSum, count uint16
		for _, p := range block {
			aSum += uint16(p.A)
			if p.A == 0 {
				continue
			}
			rSum += uint16(p.R)
			gSum += uint16(p.G)
			bSum += uint16(p.B)
			count++
		}
		if count == 0 {
			continue
		}
		c := pixel.RGBA8{
			R: uint8((rSum + count/2) / count),
			G: uint8((gSum + count/2) / count),
			B: uint8((bSum + count/2) / count),
			A: uint8((aSum + 2) / 4),
		}
		out.Set(pos, zero.FromRGBA(c))
	}
	return out
}

// HalveN applies Halve n times. It stops early once the image is 1x1; an
// image with one axis already at 1 keeps halving along the other.
func HalveN[P pixel.Pixel[P]](img *Image[P], n int) *Image[P] {
	for range n {
		if img.dims.X <= 1 && img.dims.Y <= 1 {
			break
		}
		img = Halve(img)
	}
	return img
}

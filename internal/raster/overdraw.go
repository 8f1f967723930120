package raster

import (
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
)

// Overdraw composites every pixel of filler onto dst at offset.
//
// It fails with DIMENSION_MISMATCH, leaving dst untouched, when the filler
// placed at offset would extend past dst on either axis.
func Overdraw[D pixel.Pixel[D], S pixel.Pixel[S]](dst *Image[D], filler *Image[S], offset Dimensions) error {
	if err := checkPlacement(dst.dims, filler.dims, offset); err != nil {
		return err
	}

	w := filler.dims.X
	for y := 0; y < filler.dims.Y; y++ {
		src := filler.pixels[y*w : (y+1)*w]
		start := dst.Index(Dimensions{offset.X, offset.Y + y})
		row := dst.pixels[start : start+w]
		for x := range src {
			pixel.Overdraw(src[x], &row[x])
		}
	}
	return nil
}

// OverdrawShaped is Overdraw restricted to the positions where mask holds
// match. filler and mask must have identical dimensions.
func OverdrawShaped[D pixel.Pixel[D], S pixel.Pixel[S], M pixel.Pixel[M]](
	dst *Image[D], filler *Image[S], offset Dimensions, mask *Image[M], match M,
) error {
	if filler.dims != mask.dims {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"shape mask %v does not match filler %v", mask.dims, filler.dims)
	}
	if err := checkPlacement(dst.dims, filler.dims, offset); err != nil {
		return err
	}

	for pos := range filler.dims.All() {
		i := filler.Index(pos)
		if mask.pixels[i] != match {
			continue
		}
		pixel.Overdraw(filler.pixels[i], &dst.pixels[dst.Index(pos.Add(offset))])
	}
	return nil
}

// OverdrawRescaled fills the region [offset, maxPosition) of dst with a
// nearest-neighbour rescale of filler. Each destination position p (relative
// to offset) samples filler at p / (dst.dims / filler.dims); a zero scale
// axis is treated as 1 and samples are clamped to the filler's last row and
// column.
//
// This touches every destination pixel in the region through an
// index computation per pixel; keep it for small or infrequent draws.
func OverdrawRescaled[D pixel.Pixel[D], S pixel.Pixel[S]](
	dst *Image[D], filler *Image[S], offset, maxPosition Dimensions,
) error {
	if offset.Negative() || maxPosition.Gt(dst.dims) {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"rescale region %v..%v outside image %v", offset, maxPosition, dst.dims)
	}
	if filler.dims.X == 0 || filler.dims.Y == 0 {
		return errors.New(errors.ErrCodeDimensionMismatch, "empty filler image %v", filler.dims)
	}
	region := maxPosition.Sub(offset)
	if region.Negative() {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"rescale offset %v beyond max position %v", offset, maxPosition)
	}

	scale := dst.dims.Div(filler.dims)
	scale = Dimensions{max(scale.X, 1), max(scale.Y, 1)}
	last := filler.dims.Sub(Dimensions{1, 1})

	for pos := range region.All() {
		sample := pos.Div(scale)
		sample = Dimensions{min(sample.X, last.X), min(sample.Y, last.Y)}
		pixel.Overdraw(filler.Get(sample), &dst.pixels[dst.Index(pos.Add(offset))])
	}
	return nil
}

// Fill sets the rectangle [offset, offset+size) of dst to p without
// compositing.
func Fill[D pixel.Pixel[D]](dst *Image[D], p D, offset, size Dimensions) error {
	if err := checkPlacement(dst.dims, size, offset); err != nil {
		return err
	}
	for y := 0; y < size.Y; y++ {
		start := dst.Index(Dimensions{offset.X, offset.Y + y})
		row := dst.pixels[start : start+size.X]
		for x := range row {
			row[x] = p
		}
	}
	return nil
}

func checkPlacement(dst, filler, offset Dimensions) error {
	if offset.Negative() {
		return errors.New(errors.ErrCodeDimensionMismatch, "negative offset %v", offset)
	}
	if end := filler.Add(offset); end.Gt(dst) {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"%v at offset %v exceeds %v", filler, offset, dst)
	}
	return nil
}

package pixel

// Overdraw composites src onto *dst in place.
//
// Per color channel: dst = (src - dst) * src.alpha / 255 + dst, with integer
// division truncating toward zero. Sources without an alpha channel are
// opaque and therefore replace the destination outright. An RGBA destination
// receives alpha = min(2*src.alpha, 255).
func Overdraw[S Pixel[S], D Pixel[D]](src S, dst *D) {
	*dst = (*dst).Overdrawn(src.ToRGBA())
}

// blend applies the over formula to a single channel.
func blend(src, dst, alpha uint8) uint8 {
	s, d := int(src), int(dst)
	return uint8((s-d)*int(alpha)/0xff + d)
}

func saturatingAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xff {
		return uint8(s)
	}
	return 0xff
}

// luma uses the ITU-R 601 weights of color.GrayModel. Equal channels map to
// themselves exactly.
func luma(r, g, b uint8) uint8 {
	return uint8((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}

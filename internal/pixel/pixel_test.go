package pixel

import (
	"image/color"
	"testing"
)

func TestByteLength(t *testing.T) {
	if got := (RGB8{}).ByteLength(); got != 3 {
		t.Errorf("RGB8 ByteLength = %d, want 3", got)
	}
	if got := (RGBA8{}).ByteLength(); got != 4 {
		t.Errorf("RGBA8 ByteLength = %d, want 4", got)
	}
	if got := (Grey8{}).ByteLength(); got != 1 {
		t.Errorf("Grey8 ByteLength = %d, want 1", got)
	}
}

func TestAppendBytes_ChannelOrder(t *testing.T) {
	var b []byte
	b = RGB8{1, 2, 3}.AppendBytes(b)
	b = RGBA8{4, 5, 6, 7}.AppendBytes(b)
	b = Grey8{8}.AppendBytes(b)

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if string(b) != string(want) {
		t.Errorf("AppendBytes = %v, want %v", b, want)
	}
}

func TestConversions(t *testing.T) {
	if got := (RGB8{10, 20, 30}).ToRGBA(); got != (RGBA8{10, 20, 30, 255}) {
		t.Errorf("RGB8.ToRGBA = %v, want alpha 255", got)
	}
	if got := (RGBA8{10, 20, 30, 40}).ToRGB(); got != (RGB8{10, 20, 30}) {
		t.Errorf("RGBA8.ToRGB = %v, want alpha dropped", got)
	}
	if got := (RGB8{}).FromRGBA(RGBA8{1, 2, 3, 0}); got != (RGB8{1, 2, 3}) {
		t.Errorf("RGB8.FromRGBA = %v", got)
	}
	if got := (Grey8{77}).ToRGBA(); got != (RGBA8{77, 77, 77, 255}) {
		t.Errorf("Grey8.ToRGBA = %v", got)
	}
	for _, y := range []uint8{0, 1, 128, 254, 255} {
		if got := (Grey8{}).FromRGBA(RGBA8{y, y, y, 255}); got.Y != y {
			t.Errorf("Grey8.FromRGBA(%d grey) = %d", y, got.Y)
		}
	}
}

func TestOverdraw_OpaqueRGBReplaces(t *testing.T) {
	src := RGB8{200, 100, 50}

	rgb := RGB8{1, 2, 3}
	Overdraw(src, &rgb)
	if rgb != src {
		t.Errorf("RGB onto RGB = %v, want %v", rgb, src)
	}

	rgba := RGBA8{1, 2, 3, 4}
	Overdraw(src, &rgba)
	if rgba != (RGBA8{200, 100, 50, 255}) {
		t.Errorf("RGB onto RGBA = %v, want {200 100 50 255}", rgba)
	}
}

func TestOverdraw_AlphaExtremes(t *testing.T) {
	dst := RGBA8{10, 20, 30, 40}
	full := RGBA8{200, 150, 100, 255}
	Overdraw(full, &dst)
	if dst != full {
		t.Errorf("alpha=255 = %v, want %v", dst, full)
	}

	rgb := RGB8{10, 20, 30}
	Overdraw(RGBA8{200, 150, 100, 0}, &rgb)
	if rgb != (RGB8{10, 20, 30}) {
		t.Errorf("alpha=0 onto RGB = %v, want unchanged", rgb)
	}

	rgba := RGBA8{10, 20, 30, 90}
	Overdraw(RGBA8{200, 150, 100, 0}, &rgba)
	if rgba.R != 10 || rgba.G != 20 || rgba.B != 30 {
		t.Errorf("alpha=0 onto RGBA channels = %v, want unchanged", rgba)
	}
}

func TestOverdraw_BlendFormula(t *testing.T) {
	tests := []struct {
		name string
		src  RGBA8
		dst  RGBA8
		want RGBA8
	}{
		// (200-0)*128/255 + 0 = 100
		{"half over black", RGBA8{200, 200, 200, 128}, RGBA8{0, 0, 0, 255}, RGBA8{100, 100, 100, 255}},
		// (0-255)*100/255 + 255 = -100 + 255 = 155 (truncation toward zero)
		{"dark over white", RGBA8{0, 0, 0, 100}, RGBA8{255, 255, 255, 255}, RGBA8{155, 155, 155, 200}},
		// alpha doubled, saturated at 255
		{"alpha doubling", RGBA8{50, 60, 70, 127}, RGBA8{50, 60, 70, 0}, RGBA8{50, 60, 70, 254}},
		{"alpha saturation", RGBA8{50, 60, 70, 200}, RGBA8{50, 60, 70, 10}, RGBA8{50, 60, 70, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := tt.dst
			Overdraw(tt.src, &dst)
			if dst != tt.want {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestOverdraw_GreyReplaces(t *testing.T) {
	rgba := RGBA8{1, 2, 3, 4}
	Overdraw(Grey8{99}, &rgba)
	if rgba != (RGBA8{99, 99, 99, 255}) {
		t.Errorf("Grey onto RGBA = %v, want {99 99 99 255}", rgba)
	}

	rgb := RGB8{1, 2, 3}
	Overdraw(Grey8{42}, &rgb)
	if rgb != (RGB8{42, 42, 42}) {
		t.Errorf("Grey onto RGB = %v", rgb)
	}

	grey := Grey8{5}
	Overdraw(Grey8{250}, &grey)
	if grey.Y != 250 {
		t.Errorf("Grey onto Grey = %v", grey)
	}
}

func TestColorInterface(t *testing.T) {
	r, g, b, a := RGBA8{255, 0, 0, 128}.RGBA()
	wr, wg, wb, wa := color.NRGBA{255, 0, 0, 128}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA8.RGBA() = (%d,%d,%d,%d), want (%d,%d,%d,%d)", r, g, b, a, wr, wg, wb, wa)
	}

	m := Model[RGB8]()
	if got := m.Convert(color.NRGBA{9, 8, 7, 255}); got != (RGB8{9, 8, 7}) {
		t.Errorf("Model[RGB8].Convert = %v", got)
	}
	if got := m.Convert(RGB8{1, 1, 1}); got != (RGB8{1, 1, 1}) {
		t.Errorf("Model[RGB8].Convert(identity) = %v", got)
	}
}

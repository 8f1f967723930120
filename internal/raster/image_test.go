package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
)

// gradient creates an RGBA image whose pixel at (x, y) encodes its position.
func gradient(dims Dimensions, alpha uint8) *Image[pixel.RGBA8] {
	img := NewUniform(pixel.RGBA8{}, dims)
	for pos := range dims.All() {
		img.Set(pos, pixel.RGBA8{R: uint8(pos.X), G: uint8(pos.Y), B: uint8(pos.X + pos.Y), A: alpha})
	}
	return img
}

func TestDimensions_Arithmetic(t *testing.T) {
	a, b := Dims(6, 8), Dims(2, 4)
	if got := a.Add(b); got != Dims(8, 12) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Dims(4, 4) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != Dims(12, 32) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(b); got != Dims(3, 2) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Area(); got != 48 {
		t.Errorf("Area = %d", got)
	}
}

func TestDimensions_OrSemanticComparison(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"(1,5) < (2,1)", Dims(1, 5).Lt(Dims(2, 1)), true},
		{"(2,1) < (1,5)", Dims(2, 1).Lt(Dims(1, 5)), true},
		{"(3,3) < (3,3)", Dims(3, 3).Lt(Dims(3, 3)), false},
		{"(3,3) <= (3,3)", Dims(3, 3).Le(Dims(3, 3)), true},
		{"(5,1) > (4,4)", Dims(5, 1).Gt(Dims(4, 4)), true},
		{"(4,4) > (4,4)", Dims(4, 4).Gt(Dims(4, 4)), false},
		{"(4,0) >= (9,0)", Dims(4, 0).Ge(Dims(9, 0)), true},
		{"(5,1) fits (4,4)", Dims(5, 1).FitsWithin(Dims(4, 4)), false},
		{"(4,4) fits (4,4)", Dims(4, 4).FitsWithin(Dims(4, 4)), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDimensions_AllRowMajor(t *testing.T) {
	got := slices.Collect(Dims(3, 2).All())
	want := []Dimensions{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if n := len(slices.Collect(Dims(0, 5).All())); n != 0 {
		t.Errorf("empty extent yielded %d positions", n)
	}
}

func TestNewRaw_DimensionMismatch(t *testing.T) {
	_, err := NewRaw(make([]pixel.RGB8, 5), Dims(2, 3))
	if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Fatalf("NewRaw(5 pixels, 2x3) error = %v, want DIMENSION_MISMATCH", err)
	}

	img, err := NewRaw(make([]pixel.RGB8, 6), Dims(2, 3))
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if img.Dimensions() != Dims(2, 3) {
		t.Errorf("Dimensions = %v", img.Dimensions())
	}
}

func TestRawBytes_Length(t *testing.T) {
	for _, dims := range []Dimensions{{0, 0}, {1, 1}, {3, 7}, {64, 64}} {
		if got := len(NewUniform(pixel.RGB8{R: 1, G: 2, B: 3}, dims).RawBytes()); got != dims.Area()*3 {
			t.Errorf("RGB8 %v: len = %d, want %d", dims, got, dims.Area()*3)
		}
		if got := len(NewUniform(pixel.RGBA8{}, dims).RawBytes()); got != dims.Area()*4 {
			t.Errorf("RGBA8 %v: len = %d, want %d", dims, got, dims.Area()*4)
		}
		if got := len(NewUniform(pixel.Grey8{}, dims).RawBytes()); got != dims.Area() {
			t.Errorf("Grey8 %v: len = %d, want %d", dims, got, dims.Area())
		}
	}
}

func TestRawBytes_RowMajor(t *testing.T) {
	img, err := NewRaw([]pixel.RGB8{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}}, Dims(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if diff := cmp.Diff(want, img.RawBytes()); diff != "" {
		t.Errorf("RawBytes mismatch (-want +got):\n%s", diff)
	}
}

func TestInvert(t *testing.T) {
	pixels := []pixel.Grey8{{Y: 1}, {Y: 2}, {Y: 3}, {Y: 4}, {Y: 5}, {Y: 6}}
	img, err := NewRaw(slices.Clone(pixels), Dims(3, 2))
	if err != nil {
		t.Fatal(err)
	}

	img.InvertX()
	if diff := cmp.Diff([]pixel.Grey8{{Y: 3}, {Y: 2}, {Y: 1}, {Y: 6}, {Y: 5}, {Y: 4}}, img.Pixels()); diff != "" {
		t.Errorf("InvertX mismatch (-want +got):\n%s", diff)
	}
	img.InvertX()

	img.InvertY()
	if diff := cmp.Diff([]pixel.Grey8{{Y: 4}, {Y: 5}, {Y: 6}, {Y: 1}, {Y: 2}, {Y: 3}}, img.Pixels()); diff != "" {
		t.Errorf("InvertY mismatch (-want +got):\n%s", diff)
	}
	img.InvertY()

	if diff := cmp.Diff(pixels, img.Pixels()); diff != "" {
		t.Errorf("double inversion is not identity (-want +got):\n%s", diff)
	}
}

func TestUniform(t *testing.T) {
	img := NewUniform(pixel.RGB8{R: 7, G: 7, B: 7}, Dims(4, 4))
	if c, ok := img.Uniform(); !ok || c != (pixel.RGB8{R: 7, G: 7, B: 7}) {
		t.Errorf("Uniform() = %v, %v; want {7 7 7}, true", c, ok)
	}
	img.Set(Dims(3, 3), pixel.RGB8{})
	if _, ok := img.Uniform(); ok {
		t.Error("Uniform() = true after changing one pixel")
	}
	if _, ok := NewUniform(pixel.RGB8{}, Dims(0, 0)).Uniform(); ok {
		t.Error("Uniform() = true for empty image")
	}
}

func TestImageInterface(t *testing.T) {
	img := gradient(Dims(4, 3), 255)
	var _ image.Image = img

	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds = %v", got)
	}
	r, g, _, a := img.At(2, 1).RGBA()
	if r>>8 != 2 || g>>8 != 1 || a>>8 != 255 {
		t.Errorf("At(2,1) = (%d,%d,_,%d)", r>>8, g>>8, a>>8)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.FillNRGBA(dst)
	if got := dst.NRGBAAt(3, 2); got != (color.NRGBA{3, 2, 5, 255}) {
		t.Errorf("FillNRGBA (3,2) = %v", got)
	}
}

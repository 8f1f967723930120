package tile

import (
	"fmt"
	"math"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/raster"
)

// Shape is the size of the tile grid. Tiles are numbered row-major:
// index = y*Width + x.
type Shape struct {
	Width  int
	Height int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d tiles", s.Width, s.Height)
}

// TileCount returns Width*Height.
func (s Shape) TileCount() int {
	return s.Width * s.Height
}

// RawIndex returns the store index of tile (x, y).
func (s Shape) RawIndex(x, y int) int {
	return y*s.Width + x
}

// Coordinates is the inverse of RawIndex.
func (s Shape) Coordinates(i int) raster.Dimensions {
	return raster.Dims(i%s.Width, i/s.Width)
}

// Contains reports whether (x, y) lies on the grid.
func (s Shape) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// PixelDimensions returns the texture size for tiles of the given pixel size.
func (s Shape) PixelDimensions(tile raster.Dimensions) raster.Dimensions {
	return raster.Dims(s.Width, s.Height).Mul(tile)
}

// validate rejects empty grids and grids whose tile count overflows int.
func (s Shape) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid map shape %v", s)
	}
	if s.Width > math.MaxInt/s.Height {
		return errors.New(errors.ErrCodeInvalidInput, "map shape %v overflows the tile count", s)
	}
	return nil
}

// CheckTexture reports whether a texture of tiles sized tile can be
// addressed: the tile count and the RGBA byte size of the texture must fit
// in an int.
func (s Shape) CheckTexture(tile raster.Dimensions) error {
	if err := s.validate(); err != nil {
		return err
	}
	if tile.X <= 0 || tile.Y <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid tile size %v", tile)
	}
	if s.Width > math.MaxInt/tile.X || s.Height > math.MaxInt/tile.Y {
		return errors.New(errors.ErrCodeInvalidInput, "%v of %v pixels overflows the texture size", s, tile)
	}
	px := s.PixelDimensions(tile)
	if px.X > math.MaxInt/4/px.Y {
		return errors.New(errors.ErrCodeInvalidInput, "%v texture of %v overflows the pixel buffer", px, s)
	}
	return nil
}

// Map is a tile grid together with its record store.
type Map struct {
	Shape Shape
	Tiles *Store
}

// NewMap creates a map whose every tile starts as filler.
func NewMap(shape Shape, filler TileSnapshot) (*Map, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	store, err := New(filler, shape.TileCount())
	if err != nil {
		return nil, err
	}
	return &Map{Shape: shape, Tiles: store}, nil
}

// At returns a view of tile (x, y). ok is false off the grid.
func (m *Map) At(x, y int) (TileView, bool) {
	if !m.Shape.Contains(x, y) {
		return TileView{}, false
	}
	return m.Tiles.Get(m.Shape.RawIndex(x, y))
}

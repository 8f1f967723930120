package surface

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
	"github.com/pspoerri/tilemap/internal/tile"
)

// DefaultBackground shows through wherever no layer covers a pixel.
var DefaultBackground = pixel.RGB8{R: 255, G: 255, B: 255}

// BuildOptions configures BuildTexture.
type BuildOptions struct {
	// Background fills the texture before any tile is drawn. Nil means
	// DefaultBackground.
	Background *pixel.RGB8

	// MemoryLimitBytes caps the texture allocation. Zero derives a limit
	// from system RAM; a negative value disables the check.
	MemoryLimitBytes int64

	// Verbose draws a progress bar on stderr.
	Verbose bool

	Logger *log.Logger
}

func (o BuildOptions) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// variantDraw is a variant image prepared for drawing. Uniform variants are
// drawn as a rectangle fill (opaque) or skipped (fully transparent); both
// give the same result as compositing every pixel.
type variantDraw struct {
	img  *raster.Image[pixel.RGBA8]
	fill pixel.RGB8
	mode drawMode
}

type drawMode uint8

const (
	drawComposite drawMode = iota
	drawFill
	drawSkip
)

func prepare(img *raster.Image[pixel.RGBA8]) variantDraw {
	c, ok := img.Uniform()
	switch {
	case ok && c.A == 0xff:
		return variantDraw{img: img, fill: c.ToRGB(), mode: drawFill}
	case ok && c.A == 0:
		return variantDraw{img: img, mode: drawSkip}
	default:
		return variantDraw{img: img, mode: drawComposite}
	}
}

// BuildTexture composes the surface texture of m. The result is
// m.Shape.PixelDimensions(lib.TileDims) pixels; tile i is drawn at
// Coordinates(i) * TileDims, its layers bottom to top.
//
// A layer naming a type or variant missing from lib fails with NOT_FOUND; a
// variant whose size differs from the tile size fails with
// DIMENSION_MISMATCH.
func BuildTexture(m *tile.Map, lib *Library, opts BuildOptions) (*raster.Image[pixel.RGB8], error) {
	logger := opts.logger()
	dims := m.Shape.PixelDimensions(lib.TileDims)

	if err := checkTextureMemory(dims, opts.MemoryLimitBytes, logger); err != nil {
		return nil, err
	}

	bg := DefaultBackground
	if opts.Background != nil {
		bg = *opts.Background
	}
	out := raster.NewUniform(bg, dims)

	// Uniform detection is done once per variant, not once per tile.
	prepared := make(map[*raster.Image[pixel.RGBA8]]variantDraw)

	var pb *progressBar
	if opts.Verbose {
		pb = newProgressBar(os.Stderr, "Texture", int64(m.Tiles.Len()))
	}

	logger.Debug("building surface texture", "map", m.Shape, "texture", dims, "layers", m.Tiles.LayerCount())

	for i, v := range m.Tiles.All() {
		offset := m.Shape.Coordinates(i).Mul(lib.TileDims)
		for layer, sl := range v.Layers() {
			img, err := lib.Variant(sl.Type, sl.Variant)
			if err != nil {
				pb.finish()
				return nil, errors.Wrap(errors.ErrCodeNotFound, err, "tile %d layer %d", i, layer)
			}
			if img.Dimensions() != lib.TileDims {
				pb.finish()
				return nil, errors.New(errors.ErrCodeDimensionMismatch,
					"tile %d layer %d: variant is %v, tiles are %v", i, layer, img.Dimensions(), lib.TileDims)
			}

			d, ok := prepared[img]
			if !ok {
				d = prepare(img)
				prepared[img] = d
			}

			switch d.mode {
			case drawFill:
				err = raster.Fill(out, d.fill, offset, lib.TileDims)
			case drawComposite:
				err = raster.Overdraw(out, d.img, offset)
			}
			if err != nil {
				pb.finish()
				return nil, errors.Wrap(errors.ErrCodeDimensionMismatch, err, "tile %d layer %d", i, layer)
			}
		}
		pb.increment()
	}
	pb.finish()

	logger.Info("surface texture built", "size", dims, "tiles", m.Tiles.Len())
	return out, nil
}

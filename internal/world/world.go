// Package world builds a tile map from its configuration and derives the
// per-tile products that are not textures, such as the heightmap.
package world

import (
	"image"

	"github.com/pspoerri/tilemap/internal/config"
	"github.com/pspoerri/tilemap/internal/encode"
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/surface"
	"github.com/pspoerri/tilemap/internal/tile"
)

// TypeSpecs converts the configured asset types into library load specs.
func TypeSpecs(a config.Assets) []surface.TypeSpec {
	specs := make([]surface.TypeSpec, len(a.Types))
	for i, t := range a.Types {
		specs[i] = surface.TypeSpec{Name: t.Name, Variants: t.Variants}
	}
	return specs
}

func resolveLayers(layers []config.Layer, lib *surface.Library) ([]tile.SurfaceLayer, error) {
	out := make([]tile.SurfaceLayer, len(layers))
	for i, l := range layers {
		id, ok := lib.Lookup(l.Type)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "surface type %q is not loaded", l.Type)
		}
		if _, err := lib.Variant(id, l.Variant); err != nil {
			return nil, err
		}
		out[i] = tile.SurfaceLayer{Type: id, Variant: l.Variant}
	}
	return out, nil
}

// Build creates the map described by cfg. Every tile starts as the filler
// tile; placements are then applied in order, later ones winning.
func Build(cfg config.Map, lib *surface.Library) (*tile.Map, error) {
	layers, err := resolveLayers(cfg.Layers, lib)
	if err != nil {
		return nil, err
	}
	filler := tile.TileSnapshot{
		Header: tile.TileHeader{
			Elevation:       cfg.Elevation,
			HeightVariation: cfg.HeightVariation,
			Owner:           cfg.Owner,
		},
		Layers: layers,
	}

	m, err := tile.NewMap(tile.Shape{Width: cfg.Width, Height: cfg.Height}, filler)
	if err != nil {
		return nil, err
	}

	for i, p := range cfg.Placements {
		if err := Place(m, p, lib); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "placement %d", i)
		}
	}
	return m, nil
}

// Place applies one placement through a snapshot of the target tile.
func Place(m *tile.Map, p config.Placement, lib *surface.Library) error {
	v, ok := m.At(p.X, p.Y)
	if !ok {
		return errors.New(errors.ErrCodeOutOfRange, "tile (%d,%d) is outside the %v map", p.X, p.Y, m.Shape)
	}

	snap := v.Snapshot()
	if p.Elevation != nil {
		snap.Header.Elevation = *p.Elevation
	}
	if p.HeightVariation != nil {
		snap.Header.HeightVariation = *p.HeightVariation
	}
	if p.Owner != nil {
		snap.Header.Owner = *p.Owner
	}
	if p.Layers != nil {
		layers, err := resolveLayers(p.Layers, lib)
		if err != nil {
			return err
		}
		snap.Layers = layers
	}
	return m.Tiles.Put(m.Shape.RawIndex(p.X, p.Y), snap)
}

// Heightmap renders one Terrarium-encoded pixel per tile.
func Heightmap(m *tile.Map) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Shape.Width, m.Shape.Height))
	for i, v := range m.Tiles.All() {
		c := m.Shape.Coordinates(i)
		img.SetRGBA(c.X, c.Y, encode.ElevationToTerrarium(v.Header().Elevation))
	}
	return img
}

// Stats summarizes a map.
type Stats struct {
	Tiles        int
	MinElevation int32
	MaxElevation int32
	Owners       map[uint32]int // tiles per owner, unowned (0) included
	Layers       map[tile.SurfaceLayer]int
}

// Summarize walks every tile once.
func Summarize(m *tile.Map) Stats {
	s := Stats{
		Owners: make(map[uint32]int),
		Layers: make(map[tile.SurfaceLayer]int),
	}
	for i, v := range m.Tiles.All() {
		h := v.Header()
		if i == 0 || h.Elevation < s.MinElevation {
			s.MinElevation = h.Elevation
		}
		if i == 0 || h.Elevation > s.MaxElevation {
			s.MaxElevation = h.Elevation
		}
		s.Owners[h.Owner]++
		for _, l := range v.Layers() {
			s.Layers[l]++
		}
		s.Tiles++
	}
	return s
}

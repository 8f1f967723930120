// Package surface loads surface-type texture assets and composes the
// full-map surface texture from a tile store.
//
// A surface type is a directory named after the type whose files
// 0.png, 1.png, ... (or .webp) are its variants. Every variant must have the
// library's tile pixel dimensions.
package surface

import (
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
)

// Type is one surface type and its variant images.
type Type struct {
	Name     string
	Variants []*raster.Image[pixel.RGBA8]
}

// Library holds the surface types a map refers to by index. Type ids are
// assigned in the order types are added.
type Library struct {
	TileDims raster.Dimensions

	types  []Type
	byName map[string]uint32
}

// NewLibrary creates an empty library for tiles of tileDims pixels.
func NewLibrary(tileDims raster.Dimensions) *Library {
	return &Library{TileDims: tileDims, byName: make(map[string]uint32)}
}

// Add registers t and returns its type id.
func (l *Library) Add(t Type) (uint32, error) {
	if _, dup := l.byName[t.Name]; dup {
		return 0, errors.New(errors.ErrCodeInvalidInput, "surface type %q registered twice", t.Name)
	}
	if len(t.Variants) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "surface type %q has no variants", t.Name)
	}
	for i, v := range t.Variants {
		if v.Dimensions() != l.TileDims {
			return 0, errors.New(errors.ErrCodeDimensionMismatch,
				"surface type %q variant %d is %v, tiles are %v", t.Name, i, v.Dimensions(), l.TileDims)
		}
	}

	id := uint32(len(l.types))
	l.types = append(l.types, t)
	l.byName[t.Name] = id
	return id, nil
}

// Len returns the number of registered types.
func (l *Library) Len() int {
	return len(l.types)
}

// Types returns the registered types in id order.
func (l *Library) Types() []Type {
	return l.types
}

// Lookup returns the id of the named type.
func (l *Library) Lookup(name string) (uint32, bool) {
	id, ok := l.byName[name]
	return id, ok
}

// Variant returns the image for a (type, variant) pair.
func (l *Library) Variant(typeID, variant uint32) (*raster.Image[pixel.RGBA8], error) {
	if int(typeID) >= len(l.types) {
		return nil, errors.New(errors.ErrCodeNotFound, "surface type %d not in library (%d types)", typeID, len(l.types))
	}
	t := l.types[typeID]
	if int(variant) >= len(t.Variants) {
		return nil, errors.New(errors.ErrCodeNotFound,
			"surface type %q has no variant %d (%d variants)", t.Name, variant, len(t.Variants))
	}
	return t.Variants[variant], nil
}

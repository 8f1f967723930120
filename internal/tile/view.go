package tile

import "iter"

// TileView is a zero-copy window onto one record of a Store. Reads and writes
// go straight to the store's buffer.
//
// A view stays valid as long as its Store; the store never reallocates.
// Two views of the same slot alias each other.
type TileView struct {
	rec    []byte
	layers int
}

func newView(rec []byte, layers int) TileView {
	return TileView{rec: rec, layers: layers}
}

// Header reads the tile header.
func (v TileView) Header() TileHeader {
	return readHeader(v.rec)
}

// SetHeader overwrites the tile header in place.
func (v TileView) SetHeader(h TileHeader) {
	putHeader(v.rec, h)
}

// LayerCount is the store-wide number of surface layers.
func (v TileView) LayerCount() int {
	return v.layers
}

// Layer reads surface layer i. It panics if i is not in [0, LayerCount).
func (v TileView) Layer(i int) SurfaceLayer {
	return readLayer(v.layerBytes(i))
}

// SetLayer overwrites surface layer i in place.
func (v TileView) SetLayer(i int, l SurfaceLayer) {
	putLayer(v.layerBytes(i), l)
}

func (v TileView) layerBytes(i int) []byte {
	if i < 0 || i >= v.layers {
		panic("tile: surface layer index out of range")
	}
	off := HeaderSize + i*LayerSize
	return v.rec[off : off+LayerSize : off+LayerSize]
}

// Layers yields the surface layers bottom to top.
func (v TileView) Layers() iter.Seq2[int, SurfaceLayer] {
	return func(yield func(int, SurfaceLayer) bool) {
		for i := 0; i < v.layers; i++ {
			if !yield(i, v.Layer(i)) {
				return
			}
		}
	}
}

// Snapshot copies the record out of the store.
func (v TileView) Snapshot() TileSnapshot {
	s := TileSnapshot{Header: v.Header(), Layers: make([]SurfaceLayer, v.layers)}
	for i := range s.Layers {
		s.Layers[i] = v.Layer(i)
	}
	return s
}

package tile

import (
	"encoding/binary"
	"slices"
)

// On-buffer layout of one tile record, little-endian:
//
//	offset  size  field
//	0       4     Elevation (int32, metres)
//	4       4     HeightVariation (uint32, metres)
//	8       4     Owner (uint32)
//	12      8*N   N × SurfaceLayer{Type uint32, Variant uint32}
const (
	HeaderSize = 12
	LayerSize  = 8
)

// RecordSize returns the byte size of one tile record with layers surface
// layers.
func RecordSize(layers int) int {
	return HeaderSize + layers*LayerSize
}

// TileHeader is the fixed-size part of a tile.
type TileHeader struct {
	Elevation       int32  // metres above sea level
	HeightVariation uint32 // local relief in metres
	Owner           uint32 // owning faction; 0 is unowned
}

// SurfaceLayer selects one texture for a tile: a surface type and one of its
// variants.
type SurfaceLayer struct {
	Type    uint32
	Variant uint32
}

// TileSnapshot is an owned copy of a tile record. Mutating it does not touch
// the store until it is written back with Store.Put.
type TileSnapshot struct {
	Header TileHeader
	Layers []SurfaceLayer
}

// Clone returns a deep copy of s.
func (s TileSnapshot) Clone() TileSnapshot {
	return TileSnapshot{Header: s.Header, Layers: slices.Clone(s.Layers)}
}

// Equal reports whether s and o hold the same header and layers.
func (s TileSnapshot) Equal(o TileSnapshot) bool {
	return s.Header == o.Header && slices.Equal(s.Layers, o.Layers)
}

func putHeader(b []byte, h TileHeader) {
	binary.LittleEndian.PutUint32(b[0:4], uint32(h.Elevation))
	binary.LittleEndian.PutUint32(b[4:8], h.HeightVariation)
	binary.LittleEndian.PutUint32(b[8:12], h.Owner)
}

func readHeader(b []byte) TileHeader {
	return TileHeader{
		Elevation:       int32(binary.LittleEndian.Uint32(b[0:4])),
		HeightVariation: binary.LittleEndian.Uint32(b[4:8]),
		Owner:           binary.LittleEndian.Uint32(b[8:12]),
	}
}

func putLayer(b []byte, l SurfaceLayer) {
	binary.LittleEndian.PutUint32(b[0:4], l.Type)
	binary.LittleEndian.PutUint32(b[4:8], l.Variant)
}

func readLayer(b []byte) SurfaceLayer {
	return SurfaceLayer{
		Type:    binary.LittleEndian.Uint32(b[0:4]),
		Variant: binary.LittleEndian.Uint32(b[4:8]),
	}
}

// encodeRecord writes s into rec, which must be exactly RecordSize(len(s.Layers))
// bytes long.
func encodeRecord(rec []byte, s TileSnapshot) {
	putHeader(rec, s.Header)
	for i, l := range s.Layers {
		off := HeaderSize + i*LayerSize
		putLayer(rec[off:off+LayerSize], l)
	}
}

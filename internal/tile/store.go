// Package tile stores per-tile map data (elevation, ownership and stacked
// surface-layer selectors) in a single packed buffer, and maps tile indices
// to grid coordinates.
//
// Every tile has the same number of surface layers, so records have a fixed
// stride and a tile is found by index arithmetic alone: no per-tile
// allocation and a sequential scan order for the texture builder.
//
// A Store has a single writer. Concurrent readers are safe only while no
// Put or view mutation is in progress.
package tile

import (
	"iter"
	"math"

	"github.com/pspoerri/tilemap/internal/errors"
)

// Store is a fixed-size array of tile records backed by one byte slice.
// len(buf) == count * RecordSize(layers) always holds.
type Store struct {
	buf        []byte
	layers     int
	count      int
	recordSize int
}

// New creates a store of count tiles, each initialized to filler. The
// store's layer count is len(filler.Layers).
func New(filler TileSnapshot, count int) (*Store, error) {
	layers := len(filler.Layers)
	if layers == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "tile store needs at least one surface layer")
	}
	if count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative tile count %d", count)
	}
	if count > math.MaxInt/RecordSize(layers) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d tiles of %d bytes overflow the record buffer", count, RecordSize(layers))
	}

	s := &Store{
		buf:        make([]byte, count*RecordSize(layers)),
		layers:     layers,
		count:      count,
		recordSize: RecordSize(layers),
	}
	if count == 0 {
		return s, nil
	}

	// Encode the filler once, then replicate it.
	first := s.record(0)
	encodeRecord(first, filler)
	for i := 1; i < count; i++ {
		copy(s.record(i), first)
	}
	return s, nil
}

// fromBytes wraps an existing record buffer. It takes ownership of buf.
// The length must be a whole number of records.
func fromBytes(buf []byte, layers int) (*Store, error) {
	if layers <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid surface layer count %d", layers)
	}
	size := RecordSize(layers)
	if len(buf)%size != 0 {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"buffer of %d bytes is not a whole number of %d-byte records", len(buf), size)
	}
	return &Store{buf: buf, layers: layers, count: len(buf) / size, recordSize: size}, nil
}

// Len returns the number of tiles.
func (s *Store) Len() int {
	return s.count
}

// LayerCount returns the number of surface layers per tile.
func (s *Store) LayerCount() int {
	return s.layers
}

// RecordSize returns the byte stride between tiles.
func (s *Store) RecordSize() int {
	return s.recordSize
}

// Bytes exposes the packed buffer.
func (s *Store) Bytes() []byte {
	return s.buf
}

func (s *Store) record(i int) []byte {
	off := i * s.recordSize
	return s.buf[off : off+s.recordSize : off+s.recordSize]
}

// Get returns a view of tile i. ok is false when i is out of range.
func (s *Store) Get(i int) (v TileView, ok bool) {
	if i < 0 || i >= s.count {
		return TileView{}, false
	}
	return newView(s.record(i), s.layers), true
}

// MustGet is Get for indices the caller has already validated. It panics on
// an out-of-range index.
func (s *Store) MustGet(i int) TileView {
	v, ok := s.Get(i)
	if !ok {
		panic(errors.New(errors.ErrCodeInternal, "tile index %d out of range [0, %d)", i, s.count))
	}
	return v
}

// Put writes snap into slot i. Nothing is written on error.
func (s *Store) Put(i int, snap TileSnapshot) error {
	if i < 0 || i >= s.count {
		return errors.New(errors.ErrCodeOutOfRange, "tile index %d out of range [0, %d)", i, s.count)
	}
	if len(snap.Layers) != s.layers {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"snapshot has %d surface layers, store has %d", len(snap.Layers), s.layers)
	}
	encodeRecord(s.record(i), snap)
	return nil
}

// All yields every tile in index order. Each call returns a fresh iterator.
func (s *Store) All() iter.Seq2[int, TileView] {
	return func(yield func(int, TileView) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, newView(s.record(i), s.layers)) {
				return
			}
		}
	}
}

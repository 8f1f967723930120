package tile

import (
	"bytes"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pspoerri/tilemap/internal/errors"
)

func grass() TileSnapshot {
	return TileSnapshot{
		Header: TileHeader{Elevation: 120, HeightVariation: 4, Owner: 0},
		Layers: []SurfaceLayer{{Type: 0, Variant: 1}, {Type: 3, Variant: 0}},
	}
}

func TestNew_FillsEverySlot(t *testing.T) {
	filler := grass()
	s, err := New(filler, 9)
	require.NoError(t, err)

	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 2, s.LayerCount())
	assert.Equal(t, HeaderSize+2*LayerSize, s.RecordSize())
	assert.Len(t, s.Bytes(), 9*s.RecordSize())

	for i := 0; i < 9; i++ {
		v, ok := s.Get(i)
		require.True(t, ok, "slot %d", i)
		assert.True(t, v.Snapshot().Equal(filler), "slot %d = %+v", i, v.Snapshot())
	}
}

func TestNew_InvalidInput(t *testing.T) {
	_, err := New(TileSnapshot{}, 4)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "no layers: %v", err)

	_, err = New(grass(), -1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "negative count: %v", err)

	_, err = New(grass(), math.MaxInt/RecordSize(2)+1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "overflowing count: %v", err)

	s, err := New(grass(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(0)
	assert.False(t, ok)
}

func TestPut_OnlyTouchesOneSlot(t *testing.T) {
	s, err := New(grass(), 9)
	require.NoError(t, err)
	before := slices.Clone(s.Bytes())

	snap := TileSnapshot{
		Header: TileHeader{Elevation: -35, HeightVariation: 900, Owner: 7},
		Layers: []SurfaceLayer{{Type: 2, Variant: 5}, {Type: 1, Variant: 1}},
	}
	require.NoError(t, s.Put(5, snap))

	v, ok := s.Get(5)
	require.True(t, ok)
	assert.Equal(t, snap.Header, v.Header())
	assert.Equal(t, snap.Layers, v.Snapshot().Layers)

	rs := s.RecordSize()
	after := s.Bytes()
	assert.True(t, bytes.Equal(before[:5*rs], after[:5*rs]), "slots before 5 changed")
	assert.True(t, bytes.Equal(before[6*rs:], after[6*rs:]), "slots after 5 changed")
}

func TestPut_Failures(t *testing.T) {
	s, err := New(grass(), 3)
	require.NoError(t, err)
	before := slices.Clone(s.Bytes())

	err = s.Put(3, grass())
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange), "index 3: %v", err)

	err = s.Put(-1, grass())
	assert.True(t, errors.Is(err, errors.ErrCodeOutOfRange), "index -1: %v", err)

	short := TileSnapshot{Layers: []SurfaceLayer{{Type: 9}}}
	err = s.Put(1, short)
	assert.True(t, errors.Is(err, errors.ErrCodeDimensionMismatch), "layer count: %v", err)

	assert.Equal(t, before, s.Bytes(), "failed Put wrote to the buffer")
}

func TestGet_OnePastTheEnd(t *testing.T) {
	s, err := New(grass(), 4)
	require.NoError(t, err)

	_, ok := s.Get(4)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)

	assert.Panics(t, func() { s.MustGet(4) })
	assert.NotPanics(t, func() { s.MustGet(3) })
}

func TestTileView_WritesThrough(t *testing.T) {
	s, err := New(grass(), 2)
	require.NoError(t, err)

	v := s.MustGet(1)
	v.SetHeader(TileHeader{Elevation: 8848, Owner: 2})
	v.SetLayer(1, SurfaceLayer{Type: 4, Variant: 2})

	again := s.MustGet(1)
	assert.Equal(t, int32(8848), again.Header().Elevation)
	assert.Equal(t, SurfaceLayer{Type: 4, Variant: 2}, again.Layer(1))
	assert.Equal(t, grass().Layers[0], again.Layer(0))

	assert.True(t, s.MustGet(0).Snapshot().Equal(grass()), "neighbouring slot changed")
	assert.Panics(t, func() { v.Layer(2) })
}

func TestSnapshot_IsDetached(t *testing.T) {
	s, err := New(grass(), 1)
	require.NoError(t, err)

	snap := s.MustGet(0).Snapshot()
	snap.Header.Owner = 99
	snap.Layers[0].Variant = 42

	assert.True(t, s.MustGet(0).Snapshot().Equal(grass()))

	clone := snap.Clone()
	clone.Layers[0].Variant = 1
	assert.Equal(t, uint32(42), snap.Layers[0].Variant)
}

func TestAll_IndexOrderAndRestartable(t *testing.T) {
	s, err := New(grass(), 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		snap := grass()
		snap.Header.Owner = uint32(i)
		require.NoError(t, s.Put(i, snap))
	}

	for range 2 {
		var got []uint32
		for i, v := range s.All() {
			assert.Equal(t, uint32(i), v.Header().Owner)
			got = append(got, v.Header().Owner)
		}
		assert.Equal(t, []uint32{0, 1, 2, 3, 4}, got)
	}

	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestLayers_Iterator(t *testing.T) {
	s, err := New(grass(), 1)
	require.NoError(t, err)

	var got []SurfaceLayer
	for i, l := range s.MustGet(0).Layers() {
		assert.Equal(t, len(got), i)
		got = append(got, l)
	}
	assert.Equal(t, grass().Layers, got)
}

func TestFromBytes(t *testing.T) {
	s, err := New(grass(), 3)
	require.NoError(t, err)
	require.NoError(t, s.Put(2, TileSnapshot{
		Header: TileHeader{Elevation: -1},
		Layers: []SurfaceLayer{{1, 1}, {2, 2}},
	}))

	copied, err := fromBytes(slices.Clone(s.Bytes()), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, copied.Len())
	assert.Equal(t, int32(-1), copied.MustGet(2).Header().Elevation)

	_, err = fromBytes(make([]byte, 29), 2)
	assert.True(t, errors.Is(err, errors.ErrCodeDimensionMismatch), "ragged buffer: %v", err)

	_, err = fromBytes(nil, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "zero layers: %v", err)
}

func TestRecordLayout_LittleEndian(t *testing.T) {
	s, err := New(TileSnapshot{
		Header: TileHeader{Elevation: -2, HeightVariation: 0x0102, Owner: 3},
		Layers: []SurfaceLayer{{Type: 0x0a0b0c0d, Variant: 1}},
	}, 1)
	require.NoError(t, err)

	want := []byte{
		0xfe, 0xff, 0xff, 0xff, // elevation -2
		0x02, 0x01, 0x00, 0x00, // height variation
		0x03, 0x00, 0x00, 0x00, // owner
		0x0d, 0x0c, 0x0b, 0x0a, // layer type
		0x01, 0x00, 0x00, 0x00, // layer variant
	}
	assert.Equal(t, want, s.Bytes())
}

// Package config loads the TOML description of a map: its tile grid, the
// surface assets it draws from and how its texture is exported.
//
//	[map]
//	width = 10
//	height = 10
//
//	[[map.layers]]
//	type = "grass"
//
//	[[map.placements]]
//	x = 5
//	y = 2
//	elevation = 3000
//
//	[assets]
//	dir = "game sets/historical/surface"
//	tile_width = 64
//	tile_height = 64
//
//	[[assets.types]]
//	name = "grass"
//	variants = 4
package config

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pspoerri/tilemap/internal/encode"
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
	"github.com/pspoerri/tilemap/internal/tile"
)

// Config is the root of a map description file.
type Config struct {
	Map     Map     `toml:"map"`
	Assets  Assets  `toml:"assets"`
	Texture Texture `toml:"texture"`
}

// Layer names a surface type and variant by type name.
type Layer struct {
	Type    string `toml:"type"`
	Variant uint32 `toml:"variant"`
}

// Placement overrides individual fields of one tile. Nil fields keep the
// filler value; Layers, when set, must have one entry per map layer.
type Placement struct {
	X               int     `toml:"x"`
	Y               int     `toml:"y"`
	Elevation       *int32  `toml:"elevation"`
	HeightVariation *uint32 `toml:"height_variation"`
	Owner           *uint32 `toml:"owner"`
	Layers          []Layer `toml:"layers"`
}

// Map describes the tile grid and the filler every tile starts from.
type Map struct {
	Width           int         `toml:"width"`
	Height          int         `toml:"height"`
	Elevation       int32       `toml:"elevation"`
	HeightVariation uint32      `toml:"height_variation"`
	Owner           uint32      `toml:"owner"`
	Layers          []Layer     `toml:"layers"`
	Placements      []Placement `toml:"placements"`
}

// SurfaceType is one asset directory under Assets.Dir. Zero variants means
// count the variant files on disk.
type SurfaceType struct {
	Name     string `toml:"name"`
	Variants int    `toml:"variants"`
}

// Assets locates the surface textures.
type Assets struct {
	Dir             string        `toml:"dir"`
	TileWidth       int           `toml:"tile_width"`
	TileHeight      int           `toml:"tile_height"`
	SampleByteOrder string        `toml:"sample_byte_order"`
	Types           []SurfaceType `toml:"types"`
}

// Texture controls export of the composed texture.
type Texture struct {
	Background string `toml:"background"`
	MaxMB      int64  `toml:"max_mb"`
	Format     string `toml:"format"`
	Quality    int    `toml:"quality"`
	Output     string `toml:"output"`
}

// Default returns the built-in map: a 10×10 grass world with 64-pixel tiles.
func Default() Config {
	return Config{
		Map: Map{
			Width:  10,
			Height: 10,
			Layers: []Layer{{Type: "grass"}},
		},
		Assets: Assets{
			Dir:             "assets",
			TileWidth:       64,
			TileHeight:      64,
			SampleByteOrder: "little",
			Types:           []SurfaceType{{Name: "grass"}},
		},
		Texture: Texture{
			Background: "#ffffff",
			Format:     "png",
			Quality:    85,
			Output:     "surface.png",
		},
	}
}

// Load reads path over the defaults and validates the result. Keys the
// schema does not know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	// Lists given in the file replace the defaults instead of being decoded
	// into them.
	cfg.Map.Layers = nil
	cfg.Assets.Types = nil

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if len(cfg.Map.Layers) == 0 {
		cfg.Map.Layers = Default().Map.Layers
	}

	cfg.fillTypes()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fillTypes adds an auto-discovered asset type for every layer type name
// not listed under [[assets.types]].
func (c *Config) fillTypes() {
	add := func(name string) {
		if name == "" || c.Assets.HasType(name) {
			return
		}
		c.Assets.Types = append(c.Assets.Types, SurfaceType{Name: name})
	}
	for _, l := range c.Map.Layers {
		add(l.Type)
	}
	for _, p := range c.Map.Placements {
		for _, l := range p.Layers {
			add(l.Type)
		}
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	m := c.Map
	if m.Width <= 0 || m.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if len(m.Layers) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "map needs at least one surface layer")
	}
	if err := c.checkLayers("map.layers", m.Layers); err != nil {
		return err
	}

	for i, p := range m.Placements {
		if p.X < 0 || p.Y < 0 || p.X >= m.Width || p.Y >= m.Height {
			return errors.New(errors.ErrCodeInvalidConfig,
				"placement %d at (%d,%d) is outside the %dx%d map", i, p.X, p.Y, m.Width, m.Height)
		}
		if p.Layers == nil {
			continue
		}
		if len(p.Layers) != len(m.Layers) {
			return errors.New(errors.ErrCodeInvalidConfig,
				"placement %d has %d layers, map has %d", i, len(p.Layers), len(m.Layers))
		}
		if err := c.checkLayers("map.placements.layers", p.Layers); err != nil {
			return err
		}
	}

	a := c.Assets
	if a.TileWidth <= 0 || a.TileHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tile size must be positive, got %dx%d", a.TileWidth, a.TileHeight)
	}
	shape := tile.Shape{Width: m.Width, Height: m.Height}
	if err := shape.CheckTexture(a.TileDims()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "map size")
	}
	if _, err := encode.ParseByteOrder(a.SampleByteOrder); err != nil {
		return err
	}
	seen := make(map[string]bool, len(a.Types))
	for _, t := range a.Types {
		if err := errors.ValidateTypeName(t.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "assets.types")
		}
		if seen[t.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "surface type %q listed twice", t.Name)
		}
		seen[t.Name] = true
		if t.Variants < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "surface type %q: negative variant count", t.Name)
		}
	}

	t := c.Texture
	if _, err := t.BackgroundColor(); err != nil {
		return err
	}
	if _, err := encode.NewEncoder(t.Format, t.Quality); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "texture.format")
	}
	if t.Quality < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "texture quality must not be negative")
	}
	return nil
}

func (c *Config) checkLayers(where string, layers []Layer) error {
	for i, l := range layers {
		if l.Type == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s[%d]: missing surface type", where, i)
		}
		if !c.Assets.HasType(l.Type) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s[%d]: unknown surface type %q", where, i, l.Type)
		}
		if n := c.Assets.variants(l.Type); n > 0 && int(l.Variant) >= n {
			return errors.New(errors.ErrCodeInvalidConfig,
				"%s[%d]: surface type %q has %d variants, got variant %d", where, i, l.Type, n, l.Variant)
		}
	}
	return nil
}

// HasType reports whether name is listed under [[assets.types]].
func (a Assets) HasType(name string) bool {
	return slices.ContainsFunc(a.Types, func(t SurfaceType) bool { return t.Name == name })
}

func (a Assets) variants(name string) int {
	for _, t := range a.Types {
		if t.Name == name {
			return t.Variants
		}
	}
	return 0
}

// TileDims returns the tile size in pixels.
func (a Assets) TileDims() raster.Dimensions {
	return raster.Dims(a.TileWidth, a.TileHeight)
}

// Normalizer returns the sample normalizer for the configured byte order.
func (a Assets) Normalizer() (encode.Normalizer, error) {
	order, err := encode.ParseByteOrder(a.SampleByteOrder)
	if err != nil {
		return encode.Normalizer{}, err
	}
	return encode.Normalizer{ByteOrder: order}, nil
}

// BackgroundColor parses Background as "#rrggbb" (the "#" is optional).
func (t Texture) BackgroundColor() (pixel.RGB8, error) {
	s := strings.TrimPrefix(t.Background, "#")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 3 {
		return pixel.RGB8{}, errors.New(errors.ErrCodeInvalidConfig, "invalid background color %q (want #rrggbb)", t.Background)
	}
	return pixel.RGB8{R: b[0], G: b[1], B: b[2]}, nil
}

// MemoryLimitBytes converts MaxMB: positive values are megabytes, zero
// means automatic and negative disables the check.
func (t Texture) MemoryLimitBytes() int64 {
	if t.MaxMB <= 0 {
		return t.MaxMB
	}
	return t.MaxMB << 20
}

package cli

import (
	"context"
	"os"

	"github.com/pspoerri/tilemap/internal/config"
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/raster"
	"github.com/pspoerri/tilemap/internal/surface"
	"github.com/pspoerri/tilemap/internal/tile"
	"github.com/pspoerri/tilemap/internal/world"
)

// loadConfig reads the configured file, or the built-in map when none is
// given, and applies the global flag overrides.
func loadConfig(g *globalOpts) (config.Config, error) {
	var cfg config.Config
	if g.configPath == "" {
		cfg = config.Default()
	} else {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if g.assetsDir != "" {
		cfg.Assets.Dir = g.assetsDir
	}
	return cfg, cfg.Validate()
}

// loadWorld loads the surface library and builds the tile map.
func loadWorld(ctx context.Context, cfg config.Config) (*tile.Map, *surface.Library, error) {
	logger := loggerFromContext(ctx)

	n, err := cfg.Assets.Normalizer()
	if err != nil {
		return nil, nil, err
	}

	p := newProgress(logger)
	lib, err := surface.LoadLibrary(cfg.Assets.Dir, cfg.Assets.TileDims(), world.TypeSpecs(cfg.Assets),
		surface.LoadOptions{Normalizer: n, Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	p.done("Loaded surface library")

	m, err := world.Build(cfg.Map, lib)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("map built", "shape", m.Shape, "layers", m.Tiles.LayerCount(), "bytes", len(m.Tiles.Bytes()))
	return m, lib, nil
}

// composeTexture runs the full pipeline from config to texture.
func composeTexture(ctx context.Context, cfg config.Config, verbose bool) (*raster.Image[pixel.RGB8], error) {
	m, lib, err := loadWorld(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bg, err := cfg.Texture.BackgroundColor()
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	p := newProgress(logger)
	img, err := surface.BuildTexture(m, lib, surface.BuildOptions{
		Background:       &bg,
		MemoryLimitBytes: cfg.Texture.MemoryLimitBytes(),
		Verbose:          verbose,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}
	p.done("Composed surface texture")
	return img, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	return nil
}

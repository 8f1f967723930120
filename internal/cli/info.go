package cli

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pspoerri/tilemap/internal/pixel"
	"github.com/pspoerri/tilemap/internal/tile"
	"github.com/pspoerri/tilemap/internal/world"
)

func newInfoCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the map, its tile store and surface library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			m, lib, err := loadWorld(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			s := world.Summarize(m)
			tex := m.Shape.PixelDimensions(lib.TileDims)
			p := printer{w: cmd.OutOrStdout()}

			p.title("Map")
			p.keyValue("shape", m.Shape.String())
			p.keyValue("tiles", fmt.Sprint(s.Tiles))
			p.keyValue("layers", fmt.Sprint(m.Tiles.LayerCount()))
			p.keyValue("record", fmt.Sprintf("%d bytes", m.Tiles.RecordSize()))
			p.keyValue("store", formatBytes(int64(len(m.Tiles.Bytes()))))
			p.keyValue("elevation", fmt.Sprintf("%d m .. %d m", s.MinElevation, s.MaxElevation))
			p.keyValue("owners", fmt.Sprint(len(s.Owners)))

			p.title("Texture")
			p.keyValue("tile", lib.TileDims.String())
			p.keyValue("size", tex.String())
			p.keyValue("memory", formatBytes(int64(tex.Area()*pixel.RGB8{}.ByteLength())))

			p.title("Surface types")
			for id, t := range lib.Types() {
				p.keyValue(t.Name, fmt.Sprintf("id %d, %d variants", id, len(t.Variants)))
			}

			usage := slices.SortedFunc(maps.Keys(s.Layers), func(a, b tile.SurfaceLayer) int {
				return cmp.Or(cmp.Compare(a.Type, b.Type), cmp.Compare(a.Variant, b.Variant))
			})
			for _, l := range usage {
				name := lib.Types()[l.Type].Name
				p.detail("%s/%d on %d tiles", name, l.Variant, s.Layers[l])
			}
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pspoerri/tilemap/internal/encode"
	"github.com/pspoerri/tilemap/internal/world"
)

func newHeightmapCmd(g *globalOpts) *cobra.Command {
	output := "heightmap.png"

	cmd := &cobra.Command{
		Use:   "heightmap",
		Short: "Export tile elevations as a Terrarium-encoded PNG (one pixel per tile)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			m, _, err := loadWorld(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			enc, err := encode.NewEncoder("terrarium", 0)
			if err != nil {
				return err
			}
			n, err := encode.WriteFile(output, enc, world.Heightmap(m))
			if err != nil {
				return err
			}

			s := world.Summarize(m)
			p := printer{w: cmd.OutOrStdout()}
			p.success("Wrote %v heightmap (%s)", m.Shape, formatBytes(n))
			p.detail("elevation %d m .. %d m", s.MinElevation, s.MaxElevation)
			p.file(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output file")
	return cmd
}

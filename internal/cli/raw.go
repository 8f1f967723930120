package cli

import (
	"github.com/spf13/cobra"
)

type rawOpts struct {
	output string
	flipX  bool
	flipY  bool
}

func newRawCmd(g *globalOpts) *cobra.Command {
	opts := rawOpts{output: "surface.rgb"}

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Write the texture as packed row-major RGB bytes",
		Long: `Write the composed texture as tightly packed RGB bytes, row-major, three
bytes per pixel with no header. This is the layout a GPU texture upload
expects; use --flip-y for APIs whose texture origin is the bottom-left.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			img, err := composeTexture(cmd.Context(), cfg, g.verbose)
			if err != nil {
				return err
			}
			if opts.flipX {
				img.InvertX()
			}
			if opts.flipY {
				img.InvertY()
			}

			data := img.RawBytes()
			if err := writeOutput(opts.output, data); err != nil {
				return err
			}

			p := printer{w: cmd.OutOrStdout()}
			p.success("Wrote %v texture as raw RGB (%s)", img.Dimensions(), formatBytes(int64(len(data))))
			p.file(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().BoolVar(&opts.flipX, "flip-x", false, "mirror the texture horizontally")
	cmd.Flags().BoolVar(&opts.flipY, "flip-y", false, "mirror the texture vertically")

	return cmd
}

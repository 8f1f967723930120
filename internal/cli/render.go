package cli

import (
	"image"

	"github.com/spf13/cobra"

	"github.com/pspoerri/tilemap/internal/encode"
	"github.com/pspoerri/tilemap/internal/errors"
	"github.com/pspoerri/tilemap/internal/raster"
)

// renderOpts holds the render command flags. Zero values keep the
// configured [texture] settings.
type renderOpts struct {
	output     string
	format     string
	quality    int
	background string
	maxMB      int64
	downsample int
}

func newRenderCmd(g *globalOpts) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose the surface texture and write it as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default texture.output)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "png, png8, jpeg, webp or bmp (default texture.format)")
	cmd.Flags().IntVarP(&opts.quality, "quality", "q", 0, "jpeg/webp quality, png8 palette size")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color as #rrggbb")
	cmd.Flags().Int64Var(&opts.maxMB, "max-mb", 0, "texture memory limit in MB (-1 disables)")
	cmd.Flags().IntVar(&opts.downsample, "downsample", 0, "halve the texture resolution this many times before encoding")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalOpts, opts renderOpts) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	t := &cfg.Texture
	if opts.output != "" {
		t.Output = opts.output
	}
	if opts.format != "" {
		t.Format = opts.format
	}
	if opts.quality != 0 {
		t.Quality = opts.quality
	}
	if opts.background != "" {
		t.Background = opts.background
	}
	if opts.maxMB != 0 {
		t.MaxMB = opts.maxMB
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.downsample < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--downsample must not be negative, got %d", opts.downsample)
	}

	enc, err := encode.NewEncoder(t.Format, t.Quality)
	if err != nil {
		return err
	}

	img, err := composeTexture(cmd.Context(), cfg, g.verbose)
	if err != nil {
		return err
	}
	img = raster.HalveN(img, opts.downsample)

	dims := img.Dimensions()
	buf := encode.GetNRGBA(dims.X, dims.Y)
	defer encode.PutNRGBA(buf)
	img.FillNRGBA(buf)

	if t.Output == stdoutPath {
		return renderToStdout(cmd, enc, buf)
	}

	n, err := encode.WriteFile(t.Output, enc, buf)
	if err != nil {
		return err
	}

	p := printer{w: cmd.OutOrStdout()}
	p.success("Rendered %v %s texture (%s)", dims, enc.Format(), formatBytes(n))
	p.file(t.Output)
	return nil
}

// stdoutPath as the output sends the encoded texture to stdout so it can be
// piped; the summary then goes to stderr.
const stdoutPath = "-"

func renderToStdout(cmd *cobra.Command, enc encode.Encoder, img *image.NRGBA) error {
	data, err := encode.EncodeBytes(enc, img)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding %s texture", enc.Format())
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing texture to stdout")
	}
	b := img.Bounds()
	p := printer{w: cmd.ErrOrStderr()}
	p.success("Rendered %dx%d %s texture (%s)", b.Dx(), b.Dy(), enc.Format(), formatBytes(int64(len(data))))
	return nil
}

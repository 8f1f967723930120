// Package cli implements the tilemap command-line interface.
//
// # Commands
//
//   - render: compose the surface texture and encode it (png, png8, jpeg, webp, bmp)
//   - raw: dump the texture as tightly packed RGB bytes for GPU upload
//   - heightmap: export tile elevations as a Terrarium PNG
//   - info: summarize the map, its tile store and surface library
//
// Every command reads the map description from --config (TOML); without
// one the built-in 10×10 grass map is used. --verbose switches the logger
// to debug level and enables the texture progress bar.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pspoerri/tilemap/internal/errors"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// globalOpts are the persistent flags shared by every command.
type globalOpts struct {
	configPath string
	assetsDir  string
	verbose    bool
	profile    profiler
}

// Execute runs the tilemap CLI. Errors are reported on stderr before being
// returned.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		printer{w: os.Stderr}.failure("%s", errors.UserMessage(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	var g globalOpts

	root := &cobra.Command{
		Use:           "tilemap",
		Short:         "tilemap composes world-map textures from tile data and surface assets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return g.profile.start(logger)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return g.profile.stop(loggerFromContext(cmd.Context()))
		},
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "map description (TOML)")
	root.PersistentFlags().StringVar(&g.assetsDir, "assets", "", "surface asset directory (overrides assets.dir)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.profile.cpuPath, "cpuprofile", "", "write CPU profile to file")
	root.PersistentFlags().StringVar(&g.profile.memPath, "memprofile", "", "write memory profile to file")

	root.AddCommand(newRenderCmd(&g))
	root.AddCommand(newRawCmd(&g))
	root.AddCommand(newHeightmapCmd(&g))
	root.AddCommand(newInfoCmd(&g))

	return root
}

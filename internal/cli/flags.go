// Package cli holds the command line flags shared by the gofolio binaries.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/pkg/config"
)

// BindFlags registers the configuration override flags on cmd and all its subcommands
func BindFlags(cmd *cobra.Command, f *config.Flags) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.ConfigPath, "config", "", "config file (default "+config.DefaultFile+" when present)")
	fs.StringVar(&f.Content, "content", "", "content YAML file (default: built-in portfolio)")
	fs.StringVar(&f.Assets, "assets", "", "directory model references are resolved against")
	fs.Uint64Var(&f.Seed, "seed", 0, "background seed (0 picks a time based seed)")
	fs.BoolVar(&f.NoWatch, "no-watch", false, "disable content hot reload")
	fs.IntVar(&f.Width, "width", 0, "window width")
	fs.IntVar(&f.Height, "height", 0, "window height")
}

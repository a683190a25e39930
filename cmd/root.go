package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/app"
	"github.com/philipparndt/gofolio/internal/cli"
	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/version"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:     "gofolio-raylib",
	Short:   "Portfolio experience carousel in a 3D window",
	Long:    `gofolio-raylib shows the experience timeline as a rotating 3D carousel over the scrolling tech-word background.`,
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, c, err := scene.Load(flags)
		if err != nil {
			return err
		}
		app.Run(cfg, c)
		return nil
	},
}

func init() {
	cli.BindFlags(rootCmd, &flags)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

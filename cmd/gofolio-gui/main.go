package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/cli"
	"github.com/philipparndt/gofolio/internal/gui"
	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/version"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:     "gofolio-gui",
	Short:   "Portfolio desktop window",
	Long:    `gofolio-gui shows the home page, the experience carousel and the project gallery in a desktop window.`,
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, c, err := scene.Load(flags)
		if err != nil {
			return err
		}

		a := gui.New(app.NewWithID("io.github.philipparndt.gofolio"), cfg, c)
		if err := a.Watch(); err != nil {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		}
		a.ShowAndRun()
		return nil
	},
}

func init() {
	cli.BindFlags(rootCmd, &flags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

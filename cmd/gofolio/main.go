package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/cli"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/version"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "A portfolio that lives in the terminal",
	Long: `gofolio renders a personal portfolio: a typewriter home page, an experience
carousel and a project gallery over a scrolling background of tech words.
Content comes from a YAML file; the built-in portfolio is used when none is given.`,
	Version: version.GetFullVersion(),
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

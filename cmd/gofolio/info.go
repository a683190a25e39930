package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/asset"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the portfolio content",
	Long:  "Show the resolved configuration, the profile and every experience entry with statistics for its 3D model.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, c, err := scene.Load(flags)
	if err != nil {
		return err
	}
	printInfo(cmd.Context(), cmd.OutOrStdout(), cfg, c)
	return nil
}

func printInfo(ctx context.Context, w io.Writer, cfg config.Config, c *content.Content) {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(w, "Portfolio Information")
	fmt.Fprintln(w, "=====================")
	source := cfg.Content.Path
	if source == "" {
		source = "(built-in)"
	}
	fmt.Fprintf(w, "Content: %s\n", source)
	if cfg.Path != "" {
		fmt.Fprintf(w, "Config: %s\n", cfg.Path)
	}
	fmt.Fprintf(w, "Name: %s\n", c.Profile.Name)
	fmt.Fprintf(w, "Title: %s\n\n", c.Profile.Title)

	fmt.Fprintf(w, "Experience (%d):\n", len(c.Experience))
	loader := scene.Loader(cfg)
	for i, e := range c.Experience {
		fmt.Fprintf(w, "  %d. %s - %s (%s)\n", i+1, e.Title, e.Role, e.Date)
		if e.Model == "" {
			fmt.Fprintln(w, "     Model: placeholder")
			continue
		}
		m, err := loader.LoadModel(ctx, e.Model)
		if err != nil {
			fmt.Fprintf(w, "     Model: %s (failed: %v)\n", e.Model, err)
			continue
		}
		s := asset.Summarize(m, cfg.Carousel.TargetSize)
		fmt.Fprintf(w, "     Model: %s [%s]\n", e.Model, s.Format)
		fmt.Fprintf(w, "       Triangles: %d\n", s.Triangles)
		fmt.Fprintf(w, "       Min: %s\n", asset.FormatVector(s.Bounds.Min))
		fmt.Fprintf(w, "       Max: %s\n", asset.FormatVector(s.Bounds.Max))
		fmt.Fprintf(w, "       Dimensions: %s\n", asset.FormatVector(s.Dimensions))
		fmt.Fprintf(w, "       Fit scale: %.4f\n", s.FitScale)
		if m.Mesh != nil {
			fmt.Fprintf(w, "       Surface Area: %.6f square units\n", s.SurfaceArea)
			fmt.Fprintf(w, "       Edge Lengths: min %.6f, max %.6f, avg %.6f\n", s.MinEdgeLength, s.MaxEdgeLength, s.AvgEdgeLength)
		}
	}

	fmt.Fprintf(w, "\nProjects: %d\n", len(c.Projects))
	fmt.Fprintf(w, "Background words: %d\n", len(c.Words()))
}

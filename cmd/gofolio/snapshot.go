package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

var (
	snapshotAt       time.Duration
	snapshotCarousel bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <out.webp>",
	Short: "Render the background to a WebP image",
	Long:  "Render the marquee background as it looks after --at, optionally with the experience carousel on top, and save it as lossless WebP.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().DurationVar(&snapshotAt, "at", 0, "animation time of the snapshot")
	snapshotCmd.Flags().BoolVar(&snapshotCarousel, "carousel", false, "draw the experience carousel over the background")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, c, err := scene.Load(flags)
	if err != nil {
		return err
	}

	img := snapshot(cfg, c, snapshotAt, snapshotCarousel)
	if err := writeWebP(args[0], img); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", args[0], img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// snapshot renders one frame. The carousel is shown with its entrance finished and assets loaded.
func snapshot(cfg config.Config, c *content.Content, at time.Duration, withCarousel bool) image.Image {
	layer := scene.Background(cfg, c)
	w, h := cfg.Window.Width, cfg.Window.Height
	if !withCarousel {
		opts := pattern.DefaultImageOptions()
		opts.Width, opts.Height = w, h
		return pattern.RenderImage(layer, at, opts)
	}

	clock := carousel.NewFakeClock(time.Unix(0, 0))
	e := scene.Mount(cfg, c, carousel.Viewport{Width: float64(w), Height: float64(h)}, carousel.WithClock(clock))
	defer e.Close()
	<-e.AssetsSettled()

	ec := e.Config()
	clock.Advance(ec.Entrance + time.Duration(e.Len())*ec.Stagger)
	e.Tick()
	return scene.Compose(e, layer, at, w, h)
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/internal/tui"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
)

var mute bool

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Show the scrolling tech-word background",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(func(cfg config.Config, c *content.Content) tui.Page {
			return &tui.BackgroundPage{Layer: scene.Background(cfg, c)}
		})
	},
}

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Browse the experience carousel",
	Long:  "Browse the experience timeline as a rotating carousel. Drag with the mouse or use the arrow keys; q quits.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(func(cfg config.Config, c *content.Content) tui.Page {
			var sound tui.Sound = tui.Mute{}
			if !mute {
				sound = tui.NewSpeaker()
			}
			return tui.NewExperiencePage(cfg, c, sound)
		})
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(func(cfg config.Config, c *content.Content) tui.Page {
			return tui.NewHomePage(c, scene.Background(cfg, c))
		})
	},
}

func init() {
	experienceCmd.Flags().BoolVar(&mute, "mute", false, "disable the tick sound")
	rootCmd.AddCommand(backgroundCmd, experienceCmd, homeCmd)
}

// runPage loads the content, opens the terminal and runs the page until it quits
func runPage(build func(config.Config, *content.Content) tui.Page) error {
	cfg, c, err := scene.Load(flags)
	if err != nil {
		return err
	}

	reloader, err := scene.WatchContent(cfg, c)
	if err != nil {
		return fmt.Errorf("failed to watch content: %w", err)
	}
	defer reloader.Close()

	screen, err := tui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Fini()

	loop := tui.NewLoop(screen, build(cfg, c))
	loop.FPS = cfg.Window.FPS
	loop.Updates = reloader.Updates()
	loop.Run()
	return nil
}

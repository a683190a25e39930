// Package scene assembles the pieces every front end needs from the resolved
// configuration: the carousel engine, the marquee background and hot reload.
package scene

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/philipparndt/gofolio/pkg/asset"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

// Entries converts the experience list to carousel entries
func Entries(c *content.Content) []carousel.Entry {
	entries := make([]carousel.Entry, len(c.Experience))
	for i, e := range c.Experience {
		col, err := e.RGBA()
		if err != nil {
			col = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		}
		entries[i] = carousel.Entry{AssetRef: e.Model, Color: col}
	}
	return entries
}

// Loader returns the file loader for the configured asset directory
func Loader(cfg config.Config) *asset.FileLoader {
	return asset.NewFileLoader(cfg.Content.AssetDir)
}

// Mount creates the carousel engine for c. Extra options are applied last.
func Mount(cfg config.Config, c *content.Content, viewport carousel.Viewport, opts ...carousel.Option) *carousel.Engine {
	base := []carousel.Option{
		carousel.WithConfig(cfg.EngineConfig()),
		carousel.WithViewport(viewport),
		carousel.WithLoader(Loader(cfg)),
	}
	return carousel.New(Entries(c), append(base, opts...)...)
}

// Background generates the marquee layer for the configured seed
func Background(cfg config.Config, c *content.Content) pattern.Layer {
	b := cfg.Background
	g := pattern.NewGenerator(c.Words(), rand.New(rand.NewPCG(b.Seed, b.Seed^0x9E3779B97F4A7C15)))
	g.Length = b.Length
	g.MinGap = b.MinGap
	g.Attempts = b.Attempts
	lo, hi := b.Durations()
	return pattern.NewLayer(g, b.Rows, lo, hi)
}

// Load resolves the configuration and reads the content it names
func Load(flags config.Flags) (config.Config, *content.Content, error) {
	cfg, err := config.FromFlags(flags)
	if err != nil {
		return config.Config{}, nil, err
	}
	c, err := content.LoadOrDefault(cfg.Content.Path)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load content: %w", err)
	}
	return cfg, c, nil
}

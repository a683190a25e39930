// Package config loads the optional gofolio.toml file and merges it with command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/gofolio/pkg/carousel"
)

// DefaultFile is looked up in the working directory when no --config flag is given
const DefaultFile = "gofolio.toml"

// Config holds the window, carousel, background, content and watch settings
type Config struct {
	Window     Window     `toml:"window"`
	Carousel   Carousel   `toml:"carousel"`
	Background Background `toml:"background"`
	Content    Content    `toml:"content"`
	Watch      Watch      `toml:"watch"`

	// Path is the file the config was loaded from, empty for built-in defaults
	Path string `toml:"-"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
	Title  string `toml:"title"`
}

type Carousel struct {
	Smoothing       float64 `toml:"smoothing"`
	Breakpoint      float64 `toml:"breakpoint"`
	DragRegion      float64 `toml:"drag_region"`
	TouchBand       float64 `toml:"touch_band"`
	EntranceSeconds float64 `toml:"entrance_seconds"`
	StaggerSeconds  float64 `toml:"stagger_seconds"`
	TransitionMS    int     `toml:"transition_ms"`
	TargetSize      float64 `toml:"target_size"`
	LookDamping     float64 `toml:"look_damping"`
}

type Background struct {
	Rows        int     `toml:"rows"`
	Length      int     `toml:"length"`
	MinGap      int     `toml:"min_gap"`
	Attempts    int     `toml:"attempts"`
	MinDuration float64 `toml:"min_duration"` // seconds
	MaxDuration float64 `toml:"max_duration"` // seconds
	Seed        uint64  `toml:"seed"`         // 0 picks a time based seed
}

type Content struct {
	Path     string `toml:"path"`
	AssetDir string `toml:"asset_dir"`
}

type Watch struct {
	Enabled    *bool `toml:"enabled"`
	DebounceMS int   `toml:"debounce_ms"`
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	ConfigPath string
	Content    string
	Assets     string
	Seed       uint64
	NoWatch    bool
	Width      int
	Height     int
}

// Load reads a TOML config file. Keys the file sets that Config does not know are an error.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, nil
}

// FromFlags loads the file named by flags (or DefaultFile when present) and resolves it
func FromFlags(flags Flags) (Config, error) {
	path := flags.ConfigPath
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.Resolve(flags)
	return cfg, nil
}

// Resolve applies CLI overrides and fills every unset field with its default
func (c *Config) Resolve(flags Flags) {
	if flags.Content != "" {
		c.Content.Path = flags.Content
	}
	if flags.Assets != "" {
		c.Content.AssetDir = flags.Assets
	}
	if flags.Seed != 0 {
		c.Background.Seed = flags.Seed
	}
	if flags.Width > 0 {
		c.Window.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Window.Height = flags.Height
	}
	if flags.NoWatch {
		c.Watch.Enabled = boolPtr(false)
	}

	// Relative paths in a config file are relative to that file
	if c.Path != "" {
		base := filepath.Dir(c.Path)
		if c.Content.Path != "" && !filepath.IsAbs(c.Content.Path) && flags.Content == "" {
			c.Content.Path = filepath.Join(base, c.Content.Path)
		}
		if c.Content.AssetDir != "" && !filepath.IsAbs(c.Content.AssetDir) && flags.Assets == "" {
			c.Content.AssetDir = filepath.Join(base, c.Content.AssetDir)
		}
	}
	if c.Content.AssetDir == "" && c.Content.Path != "" {
		c.Content.AssetDir = filepath.Dir(c.Content.Path)
	}

	setInt(&c.Window.Width, 1400)
	setInt(&c.Window.Height, 900)
	setInt(&c.Window.FPS, 60)
	if c.Window.Title == "" {
		c.Window.Title = "gofolio"
	}

	def := carousel.DefaultConfig()
	setFloat(&c.Carousel.Smoothing, def.Smoothing)
	setFloat(&c.Carousel.Breakpoint, def.Breakpoint)
	setFloat(&c.Carousel.DragRegion, def.DragRegion)
	setFloat(&c.Carousel.TouchBand, def.TouchBand)
	setFloat(&c.Carousel.EntranceSeconds, def.Entrance.Seconds())
	setFloat(&c.Carousel.StaggerSeconds, def.Stagger.Seconds())
	setInt(&c.Carousel.TransitionMS, int(def.TransitionDelay.Milliseconds()))
	setFloat(&c.Carousel.TargetSize, def.TargetSize)
	setFloat(&c.Carousel.LookDamping, def.LookDamping)

	setInt(&c.Background.Rows, 40)
	setInt(&c.Background.Length, 60)
	setInt(&c.Background.MinGap, 3)
	setInt(&c.Background.Attempts, 20)
	setFloat(&c.Background.MinDuration, 35)
	setFloat(&c.Background.MaxDuration, 50)
	if c.Background.MaxDuration < c.Background.MinDuration {
		c.Background.MaxDuration = c.Background.MinDuration
	}
	if c.Background.Seed == 0 {
		c.Background.Seed = uint64(time.Now().UnixNano())
	}

	if c.Watch.Enabled == nil {
		c.Watch.Enabled = boolPtr(true)
	}
	setInt(&c.Watch.DebounceMS, 500)
}

// EngineConfig converts the carousel section to engine tuning
func (c Config) EngineConfig() carousel.Config {
	cfg := carousel.DefaultConfig()
	cfg.Smoothing = c.Carousel.Smoothing
	cfg.Breakpoint = c.Carousel.Breakpoint
	cfg.DragRegion = c.Carousel.DragRegion
	cfg.TouchBand = c.Carousel.TouchBand
	cfg.Entrance = seconds(c.Carousel.EntranceSeconds)
	cfg.Stagger = seconds(c.Carousel.StaggerSeconds)
	cfg.TransitionDelay = time.Duration(c.Carousel.TransitionMS) * time.Millisecond
	cfg.TargetSize = c.Carousel.TargetSize
	cfg.LookDamping = c.Carousel.LookDamping
	return cfg
}

// Durations returns the marquee duration range
func (b Background) Durations() (time.Duration, time.Duration) {
	return seconds(b.MinDuration), seconds(b.MaxDuration)
}

// WatchEnabled reports whether hot reload is on
func (c Config) WatchEnabled() bool {
	return c.Watch.Enabled == nil || *c.Watch.Enabled
}

// Debounce returns the watcher debounce period
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func setInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// Package content holds the portfolio data shown by the front ends: the profile,
// the experience entries behind the carousel and the project gallery.
package content

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Link is a labelled external URL
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the Home page content
type Profile struct {
	Name       string   `yaml:"name"`
	Title      string   `yaml:"title"`
	Bio        string   `yaml:"bio"`
	Highlights []string `yaml:"highlights"`
	Links      []Link   `yaml:"links"`
}

// Experience is one carousel entry
type Experience struct {
	Title       string `yaml:"title"`
	Role        string `yaml:"role"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
	URL         string `yaml:"url"`
	Model       string `yaml:"model"`
}

// RGBA parses the entry colour, falling back to white when it is empty
func (e Experience) RGBA() (color.RGBA, error) {
	return parseColor(e.Color)
}

// Project is one gallery card
type Project struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
	Color       string   `yaml:"color"`
}

// HasTag reports whether the project carries tag, ignoring case
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Projects is the gallery
type Projects []Project

// WithTag returns the projects carrying tag; an empty tag returns all of them
func (ps Projects) WithTag(tag string) Projects {
	if tag == "" {
		return ps
	}
	var out Projects
	for _, p := range ps {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Content is the whole portfolio
type Content struct {
	Profile    Profile      `yaml:"profile"`
	Experience []Experience `yaml:"experience"`
	Projects   Projects     `yaml:"projects"`
	TechWords  []string     `yaml:"tech_words"`
}

// Default returns the built-in portfolio
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads and validates a YAML content file
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path, or returns the built-in content when path is empty
func LoadOrDefault(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates YAML content
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the views rely on
func (c *Content) Validate() error {
	if len(c.Experience) == 0 {
		return fmt.Errorf("content has no experience entries")
	}
	for i, e := range c.Experience {
		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("experience %d has no title", i)
		}
		if _, err := e.RGBA(); err != nil {
			return fmt.Errorf("experience %q: %w", e.Title, err)
		}
	}
	for _, p := range c.Projects {
		if _, err := parseColor(p.Color); err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
	}
	return nil
}

// Words returns the upper-cased highlight vocabulary for the background
func (c *Content) Words() []string {
	words := make([]string, 0, len(c.TechWords))
	for _, w := range c.TechWords {
		if w = strings.ToUpper(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func parseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

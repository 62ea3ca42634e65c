// Package config loads the board's TOML settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config holds window, palette and export settings. Every key is optional
// in the file; missing keys keep their defaults.
type Config struct {
	Title        string   `toml:"title"`
	Width        float32  `toml:"width"`
	Height       float32  `toml:"height"`
	Background   string   `toml:"background"`
	Palette      []string `toml:"palette"`
	DefaultColor string   `toml:"default_color"`
	DefaultWidth float32  `toml:"default_width"`
	MinWidth     float32  `toml:"min_width"`
	MaxWidth     float32  `toml:"max_width"`
	ExportDir    string   `toml:"export_dir"`
}

func Default() Config {
	return Config{
		Title:        "Doodle",
		Width:        1024,
		Height:       768,
		Background:   "white",
		Palette:      []string{"black", "red", "green", "blue", "yellow"},
		DefaultColor: "black",
		DefaultWidth: 5,
		MinWidth:     1,
		MaxWidth:     50,
		ExportDir:    "~/Pictures/Doodles",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.MinWidth <= 0 || c.MaxWidth < c.MinWidth {
		return fmt.Errorf("invalid width range [%v, %v]", c.MinWidth, c.MaxWidth)
	}
	if c.DefaultWidth < c.MinWidth || c.DefaultWidth > c.MaxWidth {
		return fmt.Errorf("default_width %v outside [%v, %v]", c.DefaultWidth, c.MinWidth, c.MaxWidth)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	for _, s := range append([]string{c.Background, c.DefaultColor}, c.Palette...) {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// BackgroundColor returns the parsed canvas background. Call Validate first.
func (c Config) BackgroundColor() color.NRGBA {
	bg, _ := ParseColor(c.Background)
	return bg
}

func (c Config) PenColor() color.NRGBA {
	pc, _ := ParseColor(c.DefaultColor)
	return pc
}

func (c Config) PaletteColors() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		if pc, err := ParseColor(s); err == nil {
			out = append(out, pc)
		}
	}
	return out
}

// ExportPath returns ExportDir with a leading ~ expanded.
func (c Config) ExportPath() (string, error) {
	return homedir.Expand(c.ExportDir)
}

// ParseColor accepts an SVG color name ("red", "cornflowerblue") or a hex
// value of the form #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") || !isHex(s[1:]) {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	switch len(s) - 1 {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	h := gg.Hex(s)
	return color.NRGBA{R: to8(h.R), G: to8(h.G), B: to8(h.B), A: to8(h.A)}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return s != ""
}

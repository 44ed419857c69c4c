// Package config provides YAML-based configuration loading for termsnake.
package config

import (
	"fmt"

	"github.com/ayefimov/termsnake/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the playing field dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig defines the glyphs and colors used to draw the board.
// Glyphs are strings in YAML; only the first rune of each is used.
type ThemeConfig struct {
	Head      string `yaml:"head"`
	Body      string `yaml:"body"`
	Food      string `yaml:"food"`
	HeadColor string `yaml:"head_color"`
	BodyColor string `yaml:"body_color"`
	FoodColor string `yaml:"food_color"`
}

// Default returns the built-in configuration: a 48x48 board with the
// classic red head, green body and blue food.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  48,
			Height: 48,
		},
		Theme: ThemeConfig{
			Head:      "O",
			Body:      "o",
			Food:      "*",
			HeadColor: "bright_red",
			BodyColor: "green",
			FoodColor: "blue",
		},
	}
}

// Normalize fills unset fields with defaults. A zero dimension means
// "not configured", not a zero-sized board.
func (c *Config) Normalize() {
	def := Default()
	if c.Board.Width == 0 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height == 0 {
		c.Board.Height = def.Board.Height
	}
	if c.Theme.Head == "" {
		c.Theme.Head = def.Theme.Head
	}
	if c.Theme.Body == "" {
		c.Theme.Body = def.Theme.Body
	}
	if c.Theme.Food == "" {
		c.Theme.Food = def.Theme.Food
	}
	if c.Theme.HeadColor == "" {
		c.Theme.HeadColor = def.Theme.HeadColor
	}
	if c.Theme.BodyColor == "" {
		c.Theme.BodyColor = def.Theme.BodyColor
	}
	if c.Theme.FoodColor == "" {
		c.Theme.FoodColor = def.Theme.FoodColor
	}
}

// Validate checks the configuration constraints.
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("config: board dimensions must be at least 1x1, got %dx%d",
			c.Board.Width, c.Board.Height)
	}
	return nil
}

// Rune returns the first rune of s, or fallback if s is empty.
func Rune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// ParseColor maps a color name from the config file to a core color.
// Unknown names fall back to the terminal default.
func ParseColor(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "bright_red":
		return core.ColorBrightRed
	case "bright_green":
		return core.ColorBrightGreen
	case "bright_yellow":
		return core.ColorBrightYellow
	case "bright_blue":
		return core.ColorBrightBlue
	case "bright_white":
		return core.ColorBrightWhite
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

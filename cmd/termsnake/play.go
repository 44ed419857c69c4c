package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ayefimov/termsnake/internal/config"
	"github.com/ayefimov/termsnake/internal/core"
	"github.com/ayefimov/termsnake/internal/games/snake"
	"github.com/ayefimov/termsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Move (one cell per press)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  termsnake play
  termsnake play --width 20 --height 20
  termsnake play --config ./my-snake.yaml`,
	Run: runPlay,
}

// gameConfig resolves the effective game config from the config file and the
// dimension flags.
func gameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := gameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := snake.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size with a fallback when stdout is not a terminal
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	if err := tui.Run(game, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// termsnake is a snake game for the terminal.
//
// Usage:
//
//	termsnake play           - Play in the current terminal
//	termsnake serve          - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--width <cells>  - Board width (overrides config)
//	--height <cells> - Board height (overrides config)
//	--seed <value>   - Set RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagWidth  int
	flagHeight int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a terminal snake game. The snake moves one cell per key
press; eat the food to grow, avoid the walls and your own tail.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  termsnake play
  termsnake play --width 20 --height 20
  termsnake play --seed 42
  termsnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

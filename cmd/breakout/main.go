// breakout is a brick-breaker game for the terminal.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout levels          - List available levels
//	breakout render          - Run unattended and save a frame as PNG
//	breakout config          - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Game config YAML (default: search ~/.breakout, ./configs)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--levels-dir <path>  - Directory with extra .lvl files
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a brick-breaker game played in the terminal.

Available commands:
  play     - Play the game
  levels   - Show all available levels
  render   - Run the game unattended and save a frame as PNG
  config   - Print the default configuration

Examples:
  breakout play
  breakout play --difficulty hard --level three
  breakout render --frames 600 --out frame.png
  breakout config > ~/.breakout/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra .lvl files (overrides built-in levels)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// platformer is a terminal side-scrolling platformer: run, jump, collect
// gems, and reach the exit before the timer runs out.
//
// Usage:
//
//	platformer play            - Play starting from level 1
//	platformer menu            - Interactive level picker
//	platformer serve           - Start SSH server for remote play
//	platformer scores          - Show high scores
//	platformer levels          - Describe generated levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.platformer/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--theme <path>       - Use a custom glyph theme YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagTheme      string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Gem Runner - A terminal platformer",
	Long: `Gem Runner is a terminal-based side-scrolling platformer.
Run and jump across generated levels, collect gems, dodge hazards,
and reach the exit before the timer runs out.

Available commands:
  play     - Play directly, optionally from a chosen level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Describe generated levels

Examples:
  platformer play
  platformer play --level 3 --difficulty hard
  platformer menu
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom glyph theme YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/analytics"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLevel     int
	flagAnalytics bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start playing, optionally from a chosen level.

Controls:
  A/D, Left/Right - Move
  Space/W/Up      - Jump / double jump
  P               - Pause
  R               - Restart level (new run after game over)
  Enter           - Next level / take the second chance
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More lives and health, gentler hazard scaling
  normal - Default tuning
  hard   - Fewer lives, tighter timers, wider gaps
  fixed  - Every level plays at base difficulty

Examples:
  platformer play
  platformer play --level 5
  platformer play --difficulty hard --seed 42
  platformer play --config ./my-platformer.yaml --theme ./my-theme.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().BoolVar(&flagAnalytics, "analytics", false, "Log gameplay events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New()
	g.SetConfigPath(flagConfig)
	g.SetThemePath(flagTheme)
	g.SetDifficulty(config.ParsePreset(flagDifficulty))
	g.SetStartLevel(flagLevel)
	if flagAnalytics {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "analytics"})
		g.SetSink(analytics.NewLogSink(logger))
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if themeErr := g.ThemeError(); themeErr != nil {
		fmt.Fprintf(os.Stderr, "Note: theme fell back to placeholders: %v\n", themeErr)
	}
}

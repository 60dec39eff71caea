package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [level]",
	Short: "Describe generated levels",
	Long: `Print the difficulty tuning for every level, or the full layout
of one level when an index is given. Layouts depend on the seed, so the
same --seed always prints the same level.

Examples:
  platformer levels
  platformer levels 7
  platformer levels 7 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config, using defaults: %v\n", err)
		cfg = config.DefaultGameConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		describeLevel(cfg, n)
		return
	}

	fmt.Printf("  %-6s  %-6s  %-8s  %-8s  %-6s  %-6s\n",
		"Level", "Gap", "Movers", "Hazards", "Gems", "Time")
	for n := 1; n <= cfg.Levels.MaxLevel; n++ {
		d := game.DifficultyFor(cfg.Levels, n)
		fmt.Printf("  %-6d  %-6.1f  %-8.1f  %-8d  %-6d  %-6.0f\n",
			n, d.Gap, d.MoverSpeed, d.Hazards, d.Gems, d.TimeLimit)
	}
}

func describeLevel(cfg config.GameConfig, n int) {
	lvl, err := game.GenerateLevel(cfg, n, flagSeed)
	if err != nil {
		if errors.Is(err, game.ErrUnknownLevel) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Level %d (seed %d)\n", lvl.Index, flagSeed)
	fmt.Printf("  width: %.0f cells, time limit: %.0fs, gems: %d\n",
		lvl.Width, lvl.TimeLimit, lvl.TotalGems)
	fmt.Printf("  spawn: (%.1f, %.1f)\n", lvl.Spawn.X, lvl.Spawn.Y)

	var platforms, movers, hazards, gems int
	for _, e := range lvl.Entities {
		switch e.(type) {
		case *game.Platform:
			platforms++
		case *game.MovingPlatform:
			movers++
		case *game.Hazard:
			hazards++
		case *game.Gem:
			gems++
		}
	}
	fmt.Printf("  platforms: %d static, %d moving\n", platforms, movers)
	fmt.Printf("  hazards: %d, gems: %d\n", hazards, gems)
}

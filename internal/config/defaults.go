package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultGameYAML []byte

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultGameConfig returns the default platformer configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:        40.0,
			MoveSpeed:      14.0,
			JumpSpeed:      18.0,
			MaxFallSpeed:   24.0,
			KnockbackX:     8.0,
			InvulnDuration: 1.5,
			RespawnGrace:   1.0,
			CanDoubleJump:  true,
		},
		Player: PlayerConfig{
			Width:     2,
			Height:    2,
			MaxHealth: 3,
			MaxLives:  3,
		},
		Levels: LevelsConfig{
			MaxLevel:        20,
			WorldHeight:     20,
			PlatformLenMin:  6,
			PlatformLenMax:  14,
			PlatformCount:   10,
			GapBase:         3.0,
			GapStep:         0.5,
			GapMax:          9.0,
			MoverSpeedBase:  3.0,
			MoverSpeedStep:  0.4,
			HazardBase:      2,
			HazardStep:      1,
			GemBase:         6,
			GemStep:         2,
			TimeLimitBase:   90,
			TimeLimitStep:   2,
			TimeLimitMin:    40,
			RescueTimeBonus: 15,
		},
		Scoring: ScoringConfig{
			GemPoints:       10,
			CompletionBonus: 100,
			TimeBonusPerSec: 2,
			HazardDamage:    1,
			ContinuesPerRun: 1,
		},
	}
}

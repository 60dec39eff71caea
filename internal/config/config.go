// Package config provides YAML-based configuration loading and
// difficulty presets for the platformer.
package config

// GameConfig contains all tunable parameters for the platformer.
type GameConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Levels  LevelsConfig  `yaml:"levels"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// PhysicsConfig defines the kinematics parameters.
// Units are world cells and seconds; y grows downward.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration (cells/s^2)
	MoveSpeed      float64 `yaml:"move_speed"`      // Horizontal speed at full axis (cells/s)
	JumpSpeed      float64 `yaml:"jump_speed"`      // Upward launch speed (cells/s, applied as -vy)
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`  // Terminal velocity (cells/s)
	KnockbackX     float64 `yaml:"knockback_x"`     // Horizontal knockback speed on damage
	InvulnDuration float64 `yaml:"invuln_duration"` // Invulnerability window after damage (s)
	RespawnGrace   float64 `yaml:"respawn_grace"`   // Invulnerability after respawn (s)
	CanDoubleJump  bool    `yaml:"can_double_jump"` // Whether one extra airborne jump is allowed
}

// PlayerConfig defines the player entity parameters.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`      // Hitbox width in cells
	Height    float64 `yaml:"height"`     // Hitbox height in cells
	MaxHealth int     `yaml:"max_health"` // Hit points per life
	MaxLives  int     `yaml:"max_lives"`  // Lives per run
}

// LevelsConfig defines the level generator parameters.
// Per-level difficulty values are monotonic functions of the level index
// derived from the base/step pairs here.
type LevelsConfig struct {
	MaxLevel int `yaml:"max_level"` // Highest valid level index (1-based)

	WorldHeight     float64 `yaml:"world_height"`      // Vertical extent of a level in cells
	PlatformLenMin  float64 `yaml:"platform_len_min"`  // Shortest generated platform
	PlatformLenMax  float64 `yaml:"platform_len_max"`  // Longest generated platform
	PlatformCount   int     `yaml:"platform_count"`    // Platforms per level before scaling
	GapBase         float64 `yaml:"gap_base"`          // Gap between platforms at level 1
	GapStep         float64 `yaml:"gap_step"`          // Gap growth per level
	GapMax          float64 `yaml:"gap_max"`           // Hard cap on gap distance
	MoverSpeedBase  float64 `yaml:"mover_speed_base"`  // Moving platform speed at level 1
	MoverSpeedStep  float64 `yaml:"mover_speed_step"`  // Moving platform speed growth per level
	HazardBase      int     `yaml:"hazard_base"`       // Hazards at level 1
	HazardStep      int     `yaml:"hazard_step"`       // Extra hazards per level
	GemBase         int     `yaml:"gem_base"`          // Gems at level 1
	GemStep         int     `yaml:"gem_step"`          // Extra gems per level
	TimeLimitBase   float64 `yaml:"time_limit_base"`   // Level timer at level 1 (s)
	TimeLimitStep   float64 `yaml:"time_limit_step"`   // Timer reduction per level (s)
	TimeLimitMin    float64 `yaml:"time_limit_min"`    // Timer floor (s)
	RescueTimeBonus float64 `yaml:"rescue_time_bonus"` // Timer restored on respawn (s)
}

// ScoringConfig defines score values.
type ScoringConfig struct {
	GemPoints       int `yaml:"gem_points"`        // Score per collected gem
	CompletionBonus int `yaml:"completion_bonus"`  // Flat bonus on level complete
	TimeBonusPerSec int `yaml:"time_bonus_per_s"`  // Bonus per whole second remaining
	HazardDamage    int `yaml:"hazard_damage"`     // Default damage dealt by a hazard
	ContinuesPerRun int `yaml:"continues_per_run"` // Second chances offered at game over
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// ApplyPreset adjusts the config for a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxLives = 5
		cfg.Player.MaxHealth = 4
		cfg.Levels.TimeLimitBase += 30
		cfg.Levels.HazardStep = 0
	case DifficultyHard:
		cfg.Player.MaxLives = 2
		cfg.Player.MaxHealth = 2
		cfg.Levels.TimeLimitBase -= 20
		cfg.Levels.GapStep *= 1.5
		cfg.Levels.HazardBase += 2
	case DifficultyFixed:
		// Every level plays at base difficulty.
		cfg.Levels.GapStep = 0
		cfg.Levels.MoverSpeedStep = 0
		cfg.Levels.HazardStep = 0
		cfg.Levels.GemStep = 0
		cfg.Levels.TimeLimitStep = 0
	}
}

// IsFixedPreset returns true if the preset disables difficulty progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("Gravity should be positive (y grows downward)")
	}
	if cfg.Physics.JumpSpeed <= 0 || cfg.Physics.MaxFallSpeed <= 0 {
		t.Error("Jump and fall speeds should be positive")
	}
	if cfg.Player.MaxHealth <= 0 || cfg.Player.MaxLives <= 0 {
		t.Error("Player should start with health and lives")
	}
	if cfg.Levels.MaxLevel < 1 {
		t.Errorf("MaxLevel = %d, expected at least 1", cfg.Levels.MaxLevel)
	}
	if cfg.Levels.GapMax < cfg.Levels.GapBase {
		t.Error("Gap cap should not be below the base gap")
	}
	if cfg.Levels.TimeLimitMin > cfg.Levels.TimeLimitBase {
		t.Error("Timer floor should not exceed the base time limit")
	}
	if cfg.Scoring.GemPoints <= 0 {
		t.Error("Gems should be worth points")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no user config present, Load falls through
	// to the embedded YAML, which should match the hardcoded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	def := DefaultGameConfig()
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("embedded gravity = %v, expected %v", cfg.Physics.Gravity, def.Physics.Gravity)
	}
	if cfg.Levels.MaxLevel != def.Levels.MaxLevel {
		t.Errorf("embedded max_level = %d, expected %d", cfg.Levels.MaxLevel, def.Levels.MaxLevel)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
physics:
  gravity: 55.0
  jump_speed: 12.0
levels:
  max_level: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 55.0 {
		t.Errorf("gravity = %v, expected 55.0", cfg.Physics.Gravity)
	}
	if cfg.Levels.MaxLevel != 5 {
		t.Errorf("max_level = %d, expected 5", cfg.Levels.MaxLevel)
	}

	// Keys absent from the file keep their defaults, so a partial file
	// never zeroes generator parameters.
	def := DefaultGameConfig()
	if cfg.Physics.MoveSpeed != def.Physics.MoveSpeed {
		t.Errorf("move_speed = %v, expected default %v", cfg.Physics.MoveSpeed, def.Physics.MoveSpeed)
	}
	if cfg.Levels.PlatformCount != def.Levels.PlatformCount {
		t.Errorf("platform_count = %d, expected default %d", cfg.Levels.PlatformCount, def.Levels.PlatformCount)
	}
	if cfg.Scoring.GemPoints != def.Scoring.GemPoints {
		t.Errorf("gem_points = %d, expected default %d", cfg.Scoring.GemPoints, def.Scoring.GemPoints)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/platformer.yaml"); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"brutal", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultGameConfig()

	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.MaxLives <= base.Player.MaxLives {
		t.Error("easy preset should grant extra lives")
	}
	if easy.Levels.TimeLimitBase <= base.Levels.TimeLimitBase {
		t.Error("easy preset should extend the timer")
	}

	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.MaxLives >= base.Player.MaxLives {
		t.Error("hard preset should remove lives")
	}
	if hard.Levels.HazardBase <= base.Levels.HazardBase {
		t.Error("hard preset should add hazards")
	}

	fixed := DefaultGameConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Levels.GapStep != 0 || fixed.Levels.HazardStep != 0 || fixed.Levels.TimeLimitStep != 0 {
		t.Error("fixed preset should zero the difficulty steps")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset misclassified a preset")
	}

	normal := DefaultGameConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the config unchanged")
	}
}

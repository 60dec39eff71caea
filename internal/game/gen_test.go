package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func testGameConfig() config.GameConfig {
	return config.DefaultGameConfig()
}

func TestGenerateLevelDeterministic(t *testing.T) {
	cfg := testGameConfig()
	a, err := GenerateLevel(cfg, 3, 42)
	if err != nil {
		t.Fatalf("GenerateLevel: %v", err)
	}
	b, err := GenerateLevel(cfg, 3, 42)
	if err != nil {
		t.Fatalf("GenerateLevel: %v", err)
	}

	if len(a.Entities) != len(b.Entities) {
		t.Fatalf("entity count differs: %d vs %d", len(a.Entities), len(b.Entities))
	}
	for i := range a.Entities {
		if a.Entities[i].Bounds() != b.Entities[i].Bounds() {
			t.Errorf("entity %d bounds differ: %+v vs %+v",
				i, a.Entities[i].Bounds(), b.Entities[i].Bounds())
		}
	}
	if a.Spawn != b.Spawn || a.Width != b.Width || a.TimeLimit != b.TimeLimit {
		t.Error("level metadata differs between identical generations")
	}
}

func TestGenerateLevelSeedChangesLayout(t *testing.T) {
	cfg := testGameConfig()
	a, _ := GenerateLevel(cfg, 3, 42)
	b, _ := GenerateLevel(cfg, 3, 43)

	same := len(a.Entities) == len(b.Entities)
	if same {
		for i := range a.Entities {
			if a.Entities[i].Bounds() != b.Entities[i].Bounds() {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestGenerateLevelUnknownIndex(t *testing.T) {
	cfg := testGameConfig()
	for _, n := range []int{0, -1, cfg.Levels.MaxLevel + 1} {
		lvl, err := GenerateLevel(cfg, n, 42)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("level %d: err=%v want ErrUnknownLevel", n, err)
		}
		if lvl != nil {
			t.Errorf("level %d: got non-nil level alongside error", n)
		}
	}
}

func TestGenerateLevelBoundaries(t *testing.T) {
	cfg := testGameConfig()
	for _, n := range []int{1, cfg.Levels.MaxLevel} {
		if _, err := GenerateLevel(cfg, n, 42); err != nil {
			t.Errorf("level %d should be valid: %v", n, err)
		}
	}
}

func TestGenerateLevelDegenerateConfig(t *testing.T) {
	// With only the spawn platform there is nowhere to put gems or the
	// exit. Generation must fail with an error, not panic.
	cfg := testGameConfig()
	cfg.Levels.PlatformCount = 1
	lvl, err := GenerateLevel(cfg, 1, 42)
	if err == nil {
		t.Fatalf("generation with a single platform succeeded: %+v", lvl)
	}

	cfg.Levels.PlatformCount = 0
	if _, err := GenerateLevel(cfg, 1, 42); err == nil {
		t.Fatal("generation with zero platforms succeeded")
	}
}

func TestGenerateLevelHasRequiredEntities(t *testing.T) {
	cfg := testGameConfig()
	lvl, err := GenerateLevel(cfg, 5, 7)
	if err != nil {
		t.Fatalf("GenerateLevel: %v", err)
	}

	var platforms, gems, hazards, checkpoints, exits int
	for _, e := range lvl.Entities {
		switch e.(type) {
		case *Platform:
			platforms++
		case *Gem:
			gems++
		case *Hazard:
			hazards++
		case *Checkpoint:
			checkpoints++
		case *Exit:
			exits++
		}
	}
	if platforms == 0 {
		t.Error("no platforms generated")
	}
	if gems != lvl.TotalGems {
		t.Errorf("TotalGems=%d but %d gem entities", lvl.TotalGems, gems)
	}
	if gems == 0 {
		t.Error("no gems generated")
	}
	if hazards == 0 {
		t.Error("no hazards generated")
	}
	if checkpoints != 1 {
		t.Errorf("checkpoints=%d want 1", checkpoints)
	}
	if exits != 1 {
		t.Errorf("exits=%d want 1", exits)
	}
	if lvl.Spawn.X < 0 || lvl.Spawn.Y < 0 || lvl.Spawn.Y > lvl.Height {
		t.Errorf("spawn %+v outside the level", lvl.Spawn)
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := testGameConfig().Levels
	prev := DifficultyFor(cfg, 1)
	for n := 2; n <= cfg.MaxLevel; n++ {
		d := DifficultyFor(cfg, n)
		if d.Gap < prev.Gap {
			t.Errorf("level %d: gap %v shrank from %v", n, d.Gap, prev.Gap)
		}
		if d.MoverSpeed < prev.MoverSpeed {
			t.Errorf("level %d: mover speed %v shrank from %v", n, d.MoverSpeed, prev.MoverSpeed)
		}
		if d.Hazards < prev.Hazards {
			t.Errorf("level %d: hazards %d shrank from %d", n, d.Hazards, prev.Hazards)
		}
		if d.Gems < prev.Gems {
			t.Errorf("level %d: gems %d shrank from %d", n, d.Gems, prev.Gems)
		}
		if d.TimeLimit > prev.TimeLimit {
			t.Errorf("level %d: time limit %v grew from %v", n, d.TimeLimit, prev.TimeLimit)
		}
		prev = d
	}
}

func TestDifficultyRespectsCaps(t *testing.T) {
	cfg := testGameConfig().Levels
	last := DifficultyFor(cfg, cfg.MaxLevel)
	if last.Gap > cfg.GapMax {
		t.Errorf("gap %v exceeds cap %v", last.Gap, cfg.GapMax)
	}
	if last.TimeLimit < cfg.TimeLimitMin {
		t.Errorf("time limit %v below floor %v", last.TimeLimit, cfg.TimeLimitMin)
	}
}

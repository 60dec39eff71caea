package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrUnknownLevel is returned for level indices outside [1, MaxLevel].
var ErrUnknownLevel = errors.New("game: unknown level")

// Difficulty holds the per-level tuning derived from LevelsConfig.
// Every field is a monotonic function of the level index so that higher
// levels are never easier than lower ones.
type Difficulty struct {
	Gap        float64 // distance between platforms
	MoverSpeed float64 // moving platform patrol speed
	Hazards    int
	Gems       int
	TimeLimit  float64
	Platforms  int
}

// DifficultyFor computes the tuning for a 1-based level index.
func DifficultyFor(cfg config.LevelsConfig, level int) Difficulty {
	n := float64(level - 1)
	return Difficulty{
		Gap:        core.MinF(cfg.GapBase+cfg.GapStep*n, cfg.GapMax),
		MoverSpeed: cfg.MoverSpeedBase + cfg.MoverSpeedStep*n,
		Hazards:    cfg.HazardBase + cfg.HazardStep*(level-1),
		Gems:       cfg.GemBase + cfg.GemStep*(level-1),
		TimeLimit:  core.MaxF(cfg.TimeLimitBase-cfg.TimeLimitStep*n, cfg.TimeLimitMin),
		Platforms:  cfg.PlatformCount + (level-1)/2,
	}
}

// Level is a fully generated playable level.
type Level struct {
	Index     int
	Width     float64
	Height    float64
	Spawn     core.Vec2
	TimeLimit float64
	TotalGems int
	Entities  []Entity
}

// GenerateLevel builds the level with the given 1-based index. The layout
// is a pure function of (index, seed): the same pair always yields the same
// level, and changing either yields a different one.
func GenerateLevel(cfg config.GameConfig, level int, seed int64) (*Level, error) {
	if level < 1 || level > cfg.Levels.MaxLevel {
		return nil, fmt.Errorf("%w: %d (valid range 1..%d)", ErrUnknownLevel, level, cfg.Levels.MaxLevel)
	}

	lc := cfg.Levels
	diff := DifficultyFor(lc, level)
	rng := rand.New(rand.NewSource(seed + int64(level)*0x9E3779B9))

	lvl := &Level{
		Index:     level,
		Height:    lc.WorldHeight,
		TimeLimit: diff.TimeLimit,
	}
	groundY := lc.WorldHeight - 3

	// Platforms run left to right with difficulty-scaled gaps. The first one
	// is forced long and flat so the spawn is always safe.
	type surface struct {
		rect  core.RectF
		mover *MovingPlatform
	}
	var surfaces []surface
	x := 0.0
	y := groundY
	for i := 0; i < diff.Platforms; i++ {
		length := lc.PlatformLenMin + rng.Float64()*(lc.PlatformLenMax-lc.PlatformLenMin)
		if i == 0 {
			length = lc.PlatformLenMax
			y = groundY
		} else {
			gap := diff.Gap + rng.Float64()*2 - 1
			if gap < 1 {
				gap = 1
			}
			// Every third crossing is bridged by a moving platform and the
			// static gap widens to match.
			if i%3 == 0 && level > 1 {
				bridgeLen := 4.0
				gap += bridgeLen + 2
				mover := &MovingPlatform{
					Rect:     core.RectF{X: x + 1, Y: y, W: bridgeLen, H: 1},
					PathMinX: x + 1,
					PathMaxX: x + gap - 1,
					Speed:    diff.MoverSpeed,
				}
				surfaces = append(surfaces, surface{rect: mover.Rect, mover: mover})
				lvl.Entities = append(lvl.Entities, mover)
			}
			x += gap
			y = core.ClampF(y+float64(rng.Intn(7)-3), 4, groundY)
		}
		rect := core.RectF{X: x, Y: y, W: length, H: 1}
		plat := &Platform{Rect: rect}
		surfaces = append(surfaces, surface{rect: rect})
		lvl.Entities = append(lvl.Entities, plat)
		x += length
	}
	lvl.Width = x + 2

	// Static platforms excluding the spawn platform host gems and hazards;
	// the last one hosts the exit.
	var hosts []core.RectF
	for i, s := range surfaces {
		if i == 0 || s.mover != nil {
			continue
		}
		hosts = append(hosts, s.rect)
	}
	if len(hosts) == 0 {
		return nil, fmt.Errorf("game: level %d: platform count %d leaves no platform for gems and the exit",
			level, diff.Platforms)
	}

	for i := 0; i < diff.Gems; i++ {
		h := hosts[rng.Intn(len(hosts))]
		gx := h.X + rng.Float64()*core.MaxF(h.W-1, 1)
		gy := h.Y - 2 - rng.Float64()*2
		lvl.Entities = append(lvl.Entities, &Gem{
			Rect:  core.RectF{X: gx, Y: gy, W: 1, H: 1},
			Value: cfg.Scoring.GemPoints,
		})
		lvl.TotalGems++
	}

	// Hazards sit on platform tops, never on the first or last platform so
	// the spawn and the exit stay clear.
	for i := 0; i < diff.Hazards && len(hosts) > 2; i++ {
		h := hosts[1+rng.Intn(len(hosts)-2)]
		hx := h.X + 1 + rng.Float64()*core.MaxF(h.W-3, 1)
		lvl.Entities = append(lvl.Entities, &Hazard{
			Rect:   core.RectF{X: hx, Y: h.Y - 1, W: 1, H: 1},
			Damage: cfg.Scoring.HazardDamage,
		})
	}

	if len(hosts) > 2 {
		mid := hosts[len(hosts)/2]
		lvl.Entities = append(lvl.Entities, &Checkpoint{
			Rect: core.RectF{X: mid.X + mid.W/2, Y: mid.Y - 2, W: 1, H: 2},
		})
	}

	last := hosts[len(hosts)-1]
	lvl.Entities = append(lvl.Entities, &Exit{
		Rect: core.RectF{X: last.Right() - 2, Y: last.Y - 2, W: 1, H: 2},
	})

	first := surfaces[0].rect
	lvl.Spawn = core.Vec2{X: first.X + 1, Y: first.Y - cfg.Player.Height}
	return lvl, nil
}

package game

import (
	"math"
)

// Snapshot captures the observable simulation state at one tick. Two runs
// with the same seed and input script must produce identical snapshots.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Anim     AnimState
	PlayerX  float64
	PlayerY  float64
	VelX     float64
	VelY     float64
	Health   int
	Lives    int
	Score    int
	Gems     int
	TimeLeft float64
	Entities uint64 // collected/activated flags folded into a bitmask hash
}

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Phase:    s.phase,
		Anim:     s.anim,
		Health:   s.player.Health,
		Lives:    s.lives,
		Score:    s.score,
		Gems:     s.gems,
		TimeLeft: s.timeLeft,
	}
	snap.PlayerX = s.player.Pos.X
	snap.PlayerY = s.player.Pos.Y
	snap.VelX = s.player.Vel.X
	snap.VelY = s.player.Vel.Y

	if s.level != nil {
		var h uint64 = 17
		for _, e := range s.level.Entities {
			var bit uint64
			switch ent := e.(type) {
			case *Gem:
				if ent.Collected {
					bit = 1
				}
			case *Checkpoint:
				if ent.Activated {
					bit = 1
				}
			case *MovingPlatform:
				h = h*31 + math.Float64bits(ent.Rect.X)
			}
			h = h*31 + bit
		}
		snap.Entities = h
	}
	return snap
}

// Hash folds the snapshot into a single comparable value for determinism
// checks across runs.
func (sn Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + sn.Tick
	h = h*31 + uint64(sn.Phase)
	h = h*31 + uint64(sn.Anim)
	h = h*31 + math.Float64bits(sn.PlayerX)
	h = h*31 + math.Float64bits(sn.PlayerY)
	h = h*31 + math.Float64bits(sn.VelX)
	h = h*31 + math.Float64bits(sn.VelY)
	h = h*31 + uint64(sn.Health)
	h = h*31 + uint64(sn.Lives)
	h = h*31 + uint64(sn.Score)
	h = h*31 + uint64(sn.Gems)
	h = h*31 + math.Float64bits(sn.TimeLeft)
	h = h*31 + sn.Entities
	return h
}

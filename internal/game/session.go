package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-platformer/internal/analytics"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhasePaused
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause labels what killed the player, for analytics and the fail
// screen.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseHazard
	CauseFall
	CauseTimeUp
)

func (c DeathCause) String() string {
	switch c {
	case CauseHazard:
		return "hazard"
	case CauseFall:
		return "fall"
	case CauseTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// fallMargin is how far below the level bottom the player may travel before
// the fall counts as a death.
const fallMargin = 4.0

// Session drives one run: the current level, the player, score, lives, the
// level timer, and phase transitions. Ticks are ignored until a level is
// fully loaded and whenever the phase is not Playing, so a slow or failed
// load can never advance a half-initialized world.
type Session struct {
	cfg      config.GameConfig
	phys     Physics
	resolver *Resolver
	sink     analytics.Sink
	seed     int64

	phase Phase
	level *Level
	ready bool

	player Player
	anim   AnimState

	score        int
	scoreAtStart int // score snapshot at level load, restored on restart
	lives        int
	gems         int
	totalGems    int // gems collected across the whole run
	timeLeft     float64

	checkpoint    *core.Vec2
	lastCause     DeathCause
	continuesLeft int
	unlocked      int // highest unlocked level index
	completed     bool
	wonRun        bool
	tick          uint64
}

// NewSession creates a session for a fresh run. No level is loaded yet.
func NewSession(cfg config.GameConfig, seed int64, sink analytics.Sink) *Session {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	phys := NewPhysics(cfg.Physics)
	return &Session{
		cfg:           cfg,
		phys:          phys,
		resolver:      NewResolver(phys),
		sink:          sink,
		seed:          seed,
		phase:         PhaseLoading,
		lives:         cfg.Player.MaxLives,
		continuesLeft: cfg.Scoring.ContinuesPerRun,
		unlocked:      1,
	}
}

// LoadLevel generates and enters the given level. On error the session
// state is left untouched, including any level already in play.
func (s *Session) LoadLevel(n int) error {
	lvl, err := GenerateLevel(s.cfg, n, s.seed)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}

	s.ready = false
	s.level = lvl
	s.scoreAtStart = s.score
	s.gems = 0
	s.timeLeft = lvl.TimeLimit
	s.checkpoint = nil
	s.lastCause = CauseNone
	s.completed = false
	s.spawnPlayer(lvl.Spawn, false)
	s.phase = PhasePlaying
	s.ready = true

	s.sink.Emit(analytics.EventLevelStart, map[string]string{
		"level": strconv.Itoa(lvl.Index),
		"lives": strconv.Itoa(s.lives),
	})
	return nil
}

// RestartLevel reloads the current level and rolls the score back to what
// it was when the level first started, so retries cannot farm points.
func (s *Session) RestartLevel() error {
	if s.level == nil {
		return fmt.Errorf("restart: no level loaded")
	}
	s.score = s.scoreAtStart
	return s.LoadLevel(s.level.Index)
}

// NextLevel advances past a completed level. Completing the final level
// ends the run as a win.
func (s *Session) NextLevel() error {
	if s.phase != PhaseLevelComplete || s.level == nil {
		return fmt.Errorf("next level: not at level complete")
	}
	if s.level.Index >= s.cfg.Levels.MaxLevel {
		s.wonRun = true
		return nil
	}
	return s.LoadLevel(s.level.Index + 1)
}

// Tick advances the simulation by one frame. Frames are dropped until the
// level is ready and outside the Playing phase.
func (s *Session) Tick(dt float64, in core.InputFrame) {
	if !s.ready || s.phase != PhasePlaying {
		return
	}
	s.tick++

	if in.Has(core.ActionJump) {
		s.phys.Jump(&s.player)
	}
	s.phys.Integrate(&s.player, in.Axis, dt)
	s.carryOnMovers(dt)

	events := s.resolver.Resolve(&s.player, s.level.Entities)
	s.player.TickInvuln(dt)
	s.anim = AnimStateFor(s.player.Vel, s.player.OnGround, s.player.Hurt)

	// Drain every contact before handling a death: a gem grabbed on the
	// same frame as a lethal hit still counts. Completion from a gem or
	// the exit wins over a simultaneous lethal hit.
	lethal := false
	for _, ev := range events {
		if d, ok := ev.(Damaged); ok {
			if d.Lethal {
				lethal = true
			}
			continue
		}
		s.react(ev)
	}
	if lethal {
		s.die(CauseHazard)
	}
	if s.phase != PhasePlaying {
		return
	}

	if s.player.Pos.Y > s.level.Height+fallMargin {
		s.die(CauseFall)
		return
	}

	s.timeLeft -= dt
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.die(CauseTimeUp)
	}
}

// carryOnMovers advances moving platforms and drags along a player
// standing on one.
func (s *Session) carryOnMovers(dt float64) {
	const eps = 0.25
	b := s.player.Bounds()
	for _, e := range s.level.Entities {
		m, ok := e.(*MovingPlatform)
		if !ok {
			continue
		}
		riding := s.player.OnGround &&
			core.AbsF(s.player.Bottom()-m.Rect.Y) < eps &&
			b.Right() > m.Rect.X && b.X < m.Rect.Right()
		dx := m.Advance(dt)
		if riding {
			s.player.Pos.X += dx
		}
	}
}

func (s *Session) react(ev ContactEvent) {
	switch e := ev.(type) {
	case GemCollected:
		s.score += e.Value
		s.gems++
		s.totalGems++
		s.sink.Emit(analytics.EventGemCollected, map[string]string{
			"level": strconv.Itoa(s.level.Index),
			"count": strconv.Itoa(s.gems),
			"total": strconv.Itoa(s.level.TotalGems),
		})
		if s.gems >= s.level.TotalGems {
			s.completeLevel()
		}
	case CheckpointReached:
		pos := core.Vec2{X: e.X, Y: e.Y}
		s.checkpoint = &pos
	case ExitReached:
		s.completeLevel()
	}
}

// completeLevel finishes the current level exactly once: repeated exit
// overlaps or trailing gem events after the first completion are ignored.
func (s *Session) completeLevel() {
	if s.completed || s.phase != PhasePlaying {
		return
	}
	s.completed = true

	timeBonus := int(s.timeLeft) * s.cfg.Scoring.TimeBonusPerSec
	s.score += timeBonus + s.cfg.Scoring.CompletionBonus
	s.phase = PhaseLevelComplete

	s.sink.Emit(analytics.EventLevelComplete, map[string]string{
		"level":      strconv.Itoa(s.level.Index),
		"score":      strconv.Itoa(s.score),
		"gems":       strconv.Itoa(s.gems),
		"time_bonus": strconv.Itoa(timeBonus),
	})

	if next := s.level.Index + 1; next <= s.cfg.Levels.MaxLevel && next > s.unlocked {
		s.unlocked = next
		s.sink.Emit(analytics.EventLevelUnlocked, map[string]string{
			"level": strconv.Itoa(next),
		})
	}
}

// die handles one death. With lives remaining the player respawns at the
// last checkpoint (or the spawn) and part of the timer is restored, capped
// at the level limit. On the last life the run ends.
func (s *Session) die(cause DeathCause) {
	if s.phase != PhasePlaying {
		return
	}
	s.lastCause = cause
	s.lives--

	if s.lives > 0 {
		pos := s.level.Spawn
		if s.checkpoint != nil {
			pos = *s.checkpoint
		}
		s.spawnPlayer(pos, true)
		s.timeLeft = core.MinF(s.timeLeft+s.cfg.Levels.RescueTimeBonus, s.level.TimeLimit)
		return
	}

	s.phase = PhaseGameOver
	s.sink.Emit(analytics.EventLevelFail, map[string]string{
		"level": strconv.Itoa(s.level.Index),
		"cause": cause.String(),
		"score": strconv.Itoa(s.score),
	})
	if s.continuesLeft > 0 {
		s.sink.Emit(analytics.EventRewardedAdOffered, map[string]string{
			"level": strconv.Itoa(s.level.Index),
		})
	}
}

// UseContinue spends one second chance at game over: the player comes back
// at the last checkpoint with one life and the timer partly restored.
func (s *Session) UseContinue() bool {
	if s.phase != PhaseGameOver || s.continuesLeft <= 0 {
		return false
	}
	s.continuesLeft--
	s.lives = 1

	pos := s.level.Spawn
	if s.checkpoint != nil {
		pos = *s.checkpoint
	}
	s.spawnPlayer(pos, true)
	s.timeLeft = core.MinF(s.timeLeft+s.cfg.Levels.RescueTimeBonus, s.level.TimeLimit)
	s.phase = PhasePlaying

	s.sink.Emit(analytics.EventRewardedAdReward, map[string]string{
		"level": strconv.Itoa(s.level.Index),
	})
	return true
}

// spawnPlayer places the player with full health and zero velocity. grace
// opens a short invulnerability window so a respawn onto a hazard is not an
// instant second death.
func (s *Session) spawnPlayer(pos core.Vec2, grace bool) {
	s.player = Player{
		Pos:    pos,
		Size:   core.Vec2{X: s.cfg.Player.Width, Y: s.cfg.Player.Height},
		Health: s.cfg.Player.MaxHealth,
		Facing: 1,
	}
	if grace {
		s.player.StartInvuln(s.cfg.Physics.RespawnGrace, false)
	}
	s.anim = AnimIdle
}

// TogglePause flips between Playing and Paused. Other phases are
// unaffected.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhasePlaying
	}
}

// Progress is the persistent slice of a run, saved between plays.
type Progress struct {
	CurrentLevel int
	TotalGems    int
	Score        int
	Unlocked     int
}

// Progress snapshots the persistable run state.
func (s *Session) Progress() Progress {
	level := 1
	if s.level != nil {
		level = s.level.Index
	}
	return Progress{
		CurrentLevel: level,
		TotalGems:    s.totalGems,
		Score:        s.score,
		Unlocked:     s.unlocked,
	}
}

// RestoreProgress applies a previously saved unlock state.
func (s *Session) RestoreProgress(p Progress) {
	if p.Unlocked > s.unlocked {
		s.unlocked = core.Clamp(p.Unlocked, 1, s.cfg.Levels.MaxLevel)
	}
	s.totalGems = core.Max(s.totalGems, p.TotalGems)
}

// Accessors used by the render layer and tests.

func (s *Session) Phase() Phase            { return s.phase }
func (s *Session) Level() *Level           { return s.level }
func (s *Session) Player() *Player         { return &s.player }
func (s *Session) Anim() AnimState         { return s.anim }
func (s *Session) Score() int              { return s.score }
func (s *Session) Lives() int              { return s.lives }
func (s *Session) Gems() int               { return s.gems }
func (s *Session) TimeLeft() float64       { return s.timeLeft }
func (s *Session) Checkpoint() *core.Vec2  { return s.checkpoint }
func (s *Session) LastCause() DeathCause   { return s.lastCause }
func (s *Session) ContinuesLeft() int      { return s.continuesLeft }
func (s *Session) UnlockedThrough() int    { return s.unlocked }
func (s *Session) WonRun() bool            { return s.wonRun }
func (s *Session) TickCount() uint64       { return s.tick }
func (s *Session) Config() config.GameConfig { return s.cfg }

package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/analytics"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

const testDT = 1.0 / 60.0

// newStaticSession builds a session around a hand-made level so tests can
// place the player exactly where they need it.
func newStaticSession(sink analytics.Sink) *Session {
	s := NewSession(testGameConfig(), 1, sink)
	lvl := &Level{
		Index:     1,
		Width:     100,
		Height:    20,
		Spawn:     core.Vec2{X: 2, Y: 13},
		TimeLimit: 60,
		TotalGems: 2,
		Entities: []Entity{
			&Platform{Rect: core.NewRectF(0, 15, 60, 1)},
			&Gem{Rect: core.NewRectF(10, 13, 1, 1), Value: 10},
			&Gem{Rect: core.NewRectF(20, 13, 1, 1), Value: 10},
			&Checkpoint{Rect: core.NewRectF(30, 13, 1, 2)},
			&Hazard{Rect: core.NewRectF(40, 14, 1, 1), Damage: 1},
			&Exit{Rect: core.NewRectF(50, 13, 1, 2)},
		},
	}
	s.level = lvl
	s.timeLeft = lvl.TimeLimit
	s.scoreAtStart = s.score
	s.spawnPlayer(lvl.Spawn, false)
	s.phase = PhasePlaying
	s.ready = true
	return s
}

func emptyInput() core.InputFrame {
	return core.NewInputFrame()
}

func TestSessionLoadLevelEmitsStart(t *testing.T) {
	rec := &analytics.Recorder{}
	s := NewSession(testGameConfig(), 42, rec)
	if err := s.LoadLevel(1); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase=%v want playing", s.Phase())
	}
	ev := rec.Last(analytics.EventLevelStart)
	if ev == nil {
		t.Fatal("no level_start event")
	}
	if ev.Fields["level"] != "1" {
		t.Errorf("level_start level=%q want 1", ev.Fields["level"])
	}
}

func TestSessionUnknownLevelLeavesStateUntouched(t *testing.T) {
	s := NewSession(testGameConfig(), 42, nil)
	if err := s.LoadLevel(1); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	before := s.Snapshot()

	if err := s.LoadLevel(999); err == nil {
		t.Fatal("loading an unknown level succeeded")
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("failed load mutated session state")
	}
	if s.Level().Index != 1 {
		t.Errorf("current level changed to %d", s.Level().Index)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase changed to %v", s.Phase())
	}
}

func TestSessionTicksIgnoredBeforeLoad(t *testing.T) {
	s := NewSession(testGameConfig(), 42, nil)
	s.Tick(testDT, emptyInput())
	if s.TickCount() != 0 {
		t.Error("tick advanced without a loaded level")
	}
}

func TestSessionGemScoring(t *testing.T) {
	rec := &analytics.Recorder{}
	s := newStaticSession(rec)
	s.player.Pos = core.Vec2{X: 9.5, Y: 12.5}

	s.Tick(testDT, emptyInput())
	if s.Score() != 10 {
		t.Errorf("score=%d want 10", s.Score())
	}
	if s.Gems() != 1 {
		t.Errorf("gems=%d want 1", s.Gems())
	}
	if rec.Count(analytics.EventGemCollected) != 1 {
		t.Errorf("gem_collected count=%d want 1", rec.Count(analytics.EventGemCollected))
	}

	// Lingering in the same cell does not double count.
	s.Tick(testDT, emptyInput())
	if s.Score() != 10 {
		t.Errorf("score=%d after lingering, want 10", s.Score())
	}
}

func TestSessionLevelCompleteIdempotent(t *testing.T) {
	rec := &analytics.Recorder{}
	s := newStaticSession(rec)
	s.player.Pos = core.Vec2{X: 49.5, Y: 12.5}

	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("phase=%v want level_complete", s.Phase())
	}
	wantScore := int(60.0)*s.cfg.Scoring.TimeBonusPerSec + s.cfg.Scoring.CompletionBonus
	if s.Score() != wantScore {
		t.Errorf("score=%d want %d (time bonus + completion bonus)", s.Score(), wantScore)
	}
	if rec.Count(analytics.EventLevelComplete) != 1 {
		t.Fatalf("level_complete count=%d want 1", rec.Count(analytics.EventLevelComplete))
	}
	if s.UnlockedThrough() != 2 {
		t.Errorf("unlocked=%d want 2", s.UnlockedThrough())
	}
	if rec.Count(analytics.EventLevelUnlocked) != 1 {
		t.Errorf("level_unlocked count=%d want 1", rec.Count(analytics.EventLevelUnlocked))
	}

	// Further ticks in the complete phase change nothing.
	score := s.Score()
	for i := 0; i < 10; i++ {
		s.Tick(testDT, emptyInput())
	}
	if s.Score() != score {
		t.Error("score changed after level complete")
	}
	if rec.Count(analytics.EventLevelComplete) != 1 {
		t.Error("level_complete emitted more than once")
	}
}

func TestSessionAllGemsCompletesLevel(t *testing.T) {
	s := newStaticSession(nil)
	s.player.Pos = core.Vec2{X: 9.5, Y: 12.5}
	s.Tick(testDT, emptyInput())
	s.player.Pos = core.Vec2{X: 19.5, Y: 12.5}
	s.player.Vel = core.Vec2{}
	s.Tick(testDT, emptyInput())

	if s.Phase() != PhaseLevelComplete {
		t.Errorf("phase=%v want level_complete after collecting every gem", s.Phase())
	}
}

func TestSessionRestartRollsBackScore(t *testing.T) {
	s := newStaticSession(nil)
	s.player.Pos = core.Vec2{X: 49.5, Y: 12.5}
	s.Tick(testDT, emptyInput())
	if s.Score() == 0 {
		t.Fatal("completion scored nothing")
	}

	if err := s.RestartLevel(); err != nil {
		t.Fatalf("RestartLevel: %v", err)
	}
	if s.Score() != 0 {
		t.Errorf("score=%d after restart, want rollback to 0", s.Score())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase=%v want playing", s.Phase())
	}
}

func TestSessionDeathRespawnsAtCheckpoint(t *testing.T) {
	s := newStaticSession(nil)
	cp := core.Vec2{X: 30, Y: 13}
	s.checkpoint = &cp
	s.timeLeft = 20
	s.player.Health = 1
	s.player.Pos = core.Vec2{X: 40, Y: 13.5}

	s.Tick(testDT, emptyInput())
	if s.Lives() != 2 {
		t.Fatalf("lives=%d want 2", s.Lives())
	}
	if s.LastCause() != CauseHazard {
		t.Errorf("cause=%v want hazard", s.LastCause())
	}
	if s.player.Pos != cp {
		t.Errorf("respawn at %+v want checkpoint %+v", s.player.Pos, cp)
	}
	if !s.player.Invulnerable() {
		t.Error("no respawn grace")
	}
	if s.player.Health != s.cfg.Player.MaxHealth {
		t.Errorf("health=%d want full", s.player.Health)
	}
	want := 20 - testDT + s.cfg.Levels.RescueTimeBonus
	if core.AbsF(s.TimeLeft()-want) > 0.1 {
		t.Errorf("timeLeft=%v want about %v", s.TimeLeft(), want)
	}
}

func TestSessionRescueBonusClampedToLimit(t *testing.T) {
	s := newStaticSession(nil)
	s.timeLeft = 55
	s.player.Health = 1
	s.player.Pos = core.Vec2{X: 40, Y: 13.5}

	s.Tick(testDT, emptyInput())
	if s.TimeLeft() > s.level.TimeLimit {
		t.Errorf("timeLeft=%v exceeds level limit %v", s.TimeLeft(), s.level.TimeLimit)
	}
}

func TestSessionTimeUpDiesOnce(t *testing.T) {
	s := newStaticSession(nil)
	s.timeLeft = 0.001

	s.Tick(testDT, emptyInput())
	if s.Lives() != 2 {
		t.Fatalf("lives=%d want 2 after time up", s.Lives())
	}
	if s.LastCause() != CauseTimeUp {
		t.Errorf("cause=%v want time_up", s.LastCause())
	}
	if s.TimeLeft() <= 0 {
		t.Fatalf("timer not restored on respawn: %v", s.TimeLeft())
	}

	// The restored timer keeps the run alive; lives must not drain further.
	for i := 0; i < 60; i++ {
		s.Tick(testDT, emptyInput())
	}
	if s.Lives() != 2 {
		t.Errorf("lives=%d, time up death repeated", s.Lives())
	}
}

func TestSessionFallDeath(t *testing.T) {
	s := newStaticSession(nil)
	s.player.Pos = core.Vec2{X: 70, Y: 30}

	s.Tick(testDT, emptyInput())
	if s.Lives() != 2 {
		t.Fatalf("lives=%d want 2 after fall", s.Lives())
	}
	if s.LastCause() != CauseFall {
		t.Errorf("cause=%v want fall", s.LastCause())
	}
}

func TestSessionGameOverAndContinue(t *testing.T) {
	rec := &analytics.Recorder{}
	s := newStaticSession(rec)
	s.lives = 1
	s.player.Health = 1
	s.player.Pos = core.Vec2{X: 40, Y: 13.5}

	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase=%v want game_over", s.Phase())
	}
	fail := rec.Last(analytics.EventLevelFail)
	if fail == nil {
		t.Fatal("no level_fail event")
	}
	if fail.Fields["cause"] != "hazard" {
		t.Errorf("level_fail cause=%q want hazard", fail.Fields["cause"])
	}
	if rec.Count(analytics.EventRewardedAdOffered) != 1 {
		t.Errorf("rewarded_ad_offered count=%d want 1", rec.Count(analytics.EventRewardedAdOffered))
	}

	// Ticks in game over are dropped.
	tick := s.TickCount()
	s.Tick(testDT, emptyInput())
	if s.TickCount() != tick {
		t.Error("session ticked while game over")
	}

	if !s.UseContinue() {
		t.Fatal("continue refused")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase=%v want playing after continue", s.Phase())
	}
	if s.Lives() != 1 {
		t.Errorf("lives=%d want 1 after continue", s.Lives())
	}
	if rec.Count(analytics.EventRewardedAdReward) != 1 {
		t.Errorf("rewarded_ad_rewarded count=%d want 1", rec.Count(analytics.EventRewardedAdReward))
	}

	// Only one second chance per run.
	s.player.InvulnFor = 0
	s.player.Health = 1
	s.player.Pos = core.Vec2{X: 40, Y: 13.5}
	s.player.prevBottom = s.player.Bottom()
	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase=%v want game_over again", s.Phase())
	}
	if s.UseContinue() {
		t.Error("second continue allowed")
	}
	if rec.Count(analytics.EventRewardedAdOffered) != 1 {
		t.Error("rewarded_ad_offered emitted with no continue left")
	}
}

func TestSessionGemCountedOnLethalFrame(t *testing.T) {
	rec := &analytics.Recorder{}
	s := newStaticSession(rec)
	s.lives = 1
	s.player.Health = 1
	// A hazard shares the first gem's cell, so the gem and the lethal hit
	// resolve on the same frame.
	s.level.Entities = append(s.level.Entities, &Hazard{Rect: core.NewRectF(10, 13, 1, 1), Damage: 1})
	s.player.Pos = core.Vec2{X: 9.5, Y: 12.5}

	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase=%v want game_over", s.Phase())
	}
	if s.Gems() != 1 {
		t.Errorf("gems=%d want 1, gem dropped on the death frame", s.Gems())
	}
	if s.Score() != 10 {
		t.Errorf("score=%d want 10", s.Score())
	}
	if rec.Count(analytics.EventGemCollected) != 1 {
		t.Errorf("gem_collected count=%d want 1", rec.Count(analytics.EventGemCollected))
	}

	// The remaining gem still completes the level after a continue.
	if !s.UseContinue() {
		t.Fatal("continue refused")
	}
	s.player.Pos = core.Vec2{X: 19.5, Y: 12.5}
	s.player.Vel = core.Vec2{}
	s.player.prevBottom = s.player.Bottom()
	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseLevelComplete {
		t.Errorf("phase=%v want level_complete after collecting the last gem", s.Phase())
	}
}

func TestSessionCompletionWinsOverLethalSameFrame(t *testing.T) {
	s := newStaticSession(nil)
	s.lives = 1
	s.player.Health = 1
	// The last missing gem and a lethal hazard resolve on the same frame.
	gem := s.level.Entities[1].(*Gem)
	gem.Collected = true
	s.gems = 1
	s.level.Entities = append(s.level.Entities, &Hazard{Rect: core.NewRectF(20, 13, 1, 1), Damage: 1})
	s.player.Pos = core.Vec2{X: 19.5, Y: 12.5}

	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseLevelComplete {
		t.Errorf("phase=%v want level_complete, death overrode completion", s.Phase())
	}
	if s.Lives() != 1 {
		t.Errorf("lives=%d want 1", s.Lives())
	}
}

func TestSessionPauseGating(t *testing.T) {
	s := newStaticSession(nil)

	s.TogglePause()
	if s.Phase() != PhasePaused {
		t.Fatalf("phase=%v want paused", s.Phase())
	}
	pos := s.player.Pos
	s.Tick(testDT, emptyInput())
	if s.player.Pos != pos {
		t.Error("player moved while paused")
	}

	s.TogglePause()
	if s.Phase() != PhasePlaying {
		t.Errorf("phase=%v want playing after unpause", s.Phase())
	}

	// Pause only toggles from playing and paused.
	s.phase = PhaseGameOver
	s.TogglePause()
	if s.Phase() != PhaseGameOver {
		t.Error("pause toggled out of game over")
	}
}

func TestSessionNextLevelAdvances(t *testing.T) {
	s := newStaticSession(nil)
	s.player.Pos = core.Vec2{X: 49.5, Y: 12.5}
	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseLevelComplete {
		t.Fatal("level did not complete")
	}

	if err := s.NextLevel(); err != nil {
		t.Fatalf("NextLevel: %v", err)
	}
	if s.Level().Index != 2 {
		t.Errorf("level=%d want 2", s.Level().Index)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase=%v want playing", s.Phase())
	}
}

func TestSessionWinOnFinalLevel(t *testing.T) {
	s := newStaticSession(nil)
	s.level.Index = s.cfg.Levels.MaxLevel
	s.player.Pos = core.Vec2{X: 49.5, Y: 12.5}
	s.Tick(testDT, emptyInput())
	if s.Phase() != PhaseLevelComplete {
		t.Fatal("level did not complete")
	}

	if err := s.NextLevel(); err != nil {
		t.Fatalf("NextLevel: %v", err)
	}
	if !s.WonRun() {
		t.Error("finishing the last level did not win the run")
	}
}

func TestSessionMovingPlatformCarriesPlayer(t *testing.T) {
	s := newStaticSession(nil)
	mover := &MovingPlatform{
		Rect:     core.NewRectF(64, 15, 4, 1),
		PathMinX: 64,
		PathMaxX: 90,
		Speed:    10,
	}
	s.level.Entities = append(s.level.Entities, mover)
	s.player.Pos = core.Vec2{X: 65, Y: 13}
	s.player.OnGround = true

	before := s.player.Pos.X
	for i := 0; i < 30; i++ {
		s.Tick(testDT, emptyInput())
	}
	if s.player.Pos.X <= before {
		t.Errorf("player not carried: x=%v started at %v", s.player.Pos.X, before)
	}
}

func TestSessionProgressRoundTrip(t *testing.T) {
	s := newStaticSession(nil)
	s.player.Pos = core.Vec2{X: 49.5, Y: 12.5}
	s.Tick(testDT, emptyInput())

	p := s.Progress()
	if p.Unlocked != 2 || p.CurrentLevel != 1 {
		t.Errorf("progress %+v want unlocked=2 level=1", p)
	}

	fresh := NewSession(testGameConfig(), 1, nil)
	fresh.RestoreProgress(p)
	if fresh.UnlockedThrough() != 2 {
		t.Errorf("restored unlocked=%d want 2", fresh.UnlockedThrough())
	}
}

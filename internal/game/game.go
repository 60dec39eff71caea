package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/analytics"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Game wraps a Session into the renderable unit the platform layer drives.
// Configuration knobs must be set before Reset.
type Game struct {
	cfg     config.GameConfig
	theme   config.Theme
	runtime core.RuntimeConfig
	session *Session
	sink    analytics.Sink

	startLevel int
	configPath string
	themePath  string
	preset     config.DifficultyPreset

	themeErr error
	cameraX  float64
}

// New creates a game starting at level 1 with analytics discarded.
func New() *Game {
	return &Game{
		startLevel: 1,
		sink:       analytics.NopSink{},
	}
}

// ID returns the stable identifier used for score storage.
func (g *Game) ID() string { return "gemrunner" }

// Title returns the display name.
func (g *Game) Title() string { return "Gem Runner" }

// SetSink routes gameplay analytics to the given sink.
func (g *Game) SetSink(sink analytics.Sink) {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	g.sink = sink
}

// SetStartLevel selects the level the next Reset begins at.
func (g *Game) SetStartLevel(n int) { g.startLevel = n }

// SetConfigPath points Reset at a custom config file.
func (g *Game) SetConfigPath(path string) { g.configPath = path }

// SetThemePath points Reset at a custom glyph theme.
func (g *Game) SetThemePath(path string) { g.themePath = path }

// SetDifficulty applies a preset on the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) { g.preset = p }

// Session exposes the running session for the platform layer (progress
// save/restore) and tests.
func (g *Game) Session() *Session { return g.session }

// ThemeError reports a theme load failure, if any. The game still runs
// with placeholder glyphs.
func (g *Game) ThemeError() error { return g.themeErr }

// Reset starts a fresh run. A theme load failure degrades to placeholder
// glyphs; a config load failure falls back to defaults. Neither touches
// the simulation.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.Load(g.configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	config.ApplyPreset(&cfg, g.preset)
	g.cfg = cfg

	g.theme, g.themeErr = config.LoadTheme(g.themePath)

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session = NewSession(cfg, seed, g.sink)
	if err := g.session.LoadLevel(g.startLevel); err != nil {
		// Unknown start level leaves the session in Loading; fall back to
		// the first level rather than presenting a dead screen.
		g.startLevel = 1
		_ = g.session.LoadLevel(1)
	}
	g.cameraX = 0
}

// Step advances the game by one tick with the given input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	if s == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		switch s.Phase() {
		case PhasePlaying, PhasePaused, PhaseLevelComplete:
			_ = s.RestartLevel()
		case PhaseGameOver:
			g.Reset(g.runtime)
			return core.StepResult{State: g.State()}
		}
	}
	if in.Has(core.ActionConfirm) {
		switch s.Phase() {
		case PhaseLevelComplete:
			_ = s.NextLevel()
		case PhaseGameOver:
			s.UseContinue()
		}
	}

	s.Tick(g.runtime.DT(), in)
	return core.StepResult{State: g.State()}
}

// State reports the score, level, and terminal flags for the platform HUD.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	level := 1
	if s.Level() != nil {
		level = s.Level().Index
	}
	return core.GameState{
		Score:    s.Score(),
		Level:    level,
		GameOver: s.Phase() == PhaseGameOver || s.WonRun(),
		Paused:   s.Phase() == PhasePaused,
	}
}

// Render draws the level, player, HUD, and phase overlays. The camera
// follows the player horizontally and clamps to the level bounds.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	if s == nil || s.Level() == nil {
		dst.DrawTextCentered(dst.Height()/2, "LOADING...")
		return
	}
	lvl := s.Level()
	w := dst.Width()

	target := s.Player().Bounds().Center().X - float64(w)/2
	g.cameraX = core.ClampF(target, 0, core.MaxF(lvl.Width-float64(w), 0))

	for _, e := range lvl.Entities {
		g.drawEntity(dst, e)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)
	g.drawOverlay(dst)
}

// toScreen projects world coordinates into screen cells under the camera.
func (g *Game) toScreen(wx, wy float64) (int, int) {
	return int(wx - g.cameraX), int(wy) + hudRows
}

func (g *Game) drawEntity(dst *core.Screen, e Entity) {
	b := e.Bounds()
	x, y := g.toScreen(b.X, b.Y)
	wCells := core.Max(int(b.W+0.5), 1)
	if x+wCells < 0 || x >= dst.Width() {
		return
	}

	switch ent := e.(type) {
	case *Platform:
		r := config.Rune(g.theme.Platform, '=')
		for i := 0; i < wCells; i++ {
			dst.SetColored(x+i, y, r, core.ColorGreen)
		}
	case *MovingPlatform:
		r := config.Rune(g.theme.MovingPlatform, '-')
		for i := 0; i < wCells; i++ {
			dst.SetColored(x+i, y, r, core.ColorCyan)
		}
	case *Hazard:
		dst.SetColored(x, y, config.Rune(g.theme.Hazard, '^'), core.ColorBrightRed)
	case *Gem:
		if !ent.Collected {
			dst.SetColored(x, y, config.Rune(g.theme.Gem, '*'), core.ColorBrightYellow)
		}
	case *Checkpoint:
		glyph, color := g.theme.Checkpoint, core.ColorGray
		if ent.Activated {
			glyph, color = g.theme.CheckpointLit, core.ColorBrightGreen
		}
		r := config.Rune(glyph, 'F')
		dst.SetColored(x, y, r, color)
		dst.SetColored(x, y+1, '|', color)
	case *Exit:
		dst.SetColored(x, y, config.Rune(g.theme.Exit, 'D'), core.ColorBrightMagenta)
		dst.SetColored(x, y+1, config.Rune(g.theme.Exit, 'D'), core.ColorBrightMagenta)
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	s := g.session
	p := s.Player()

	// Invulnerability reads as flicker: the sprite is hidden every other
	// tick while the window is open.
	if p.Invulnerable() && s.TickCount()%2 == 0 {
		return
	}

	glyph := g.theme.Player
	color := core.ColorBrightCyan
	if s.Anim() == AnimHurt {
		glyph = g.theme.PlayerHurt
		color = core.ColorBrightRed
	}
	r := config.Rune(glyph, '@')

	b := p.Bounds()
	x, y := g.toScreen(b.X, b.Y)
	for dy := 0; dy < core.Max(int(b.H+0.5), 1); dy++ {
		for dx := 0; dx < core.Max(int(b.W+0.5), 1); dx++ {
			dst.SetColored(x+dx, y+dy, r, color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	lvl := s.Level()

	left := fmt.Sprintf(" L%d  SCORE %d  %s %d/%d",
		lvl.Index, s.Score(), g.theme.Gem, s.Gems(), lvl.TotalGems)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	hearts := ""
	for i := 0; i < s.Lives(); i++ {
		hearts += "♥"
	}
	right := fmt.Sprintf("%s  TIME %3d ", hearts, int(s.TimeLeft()))
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightRed)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	s := g.session
	mid := dst.Height() / 2

	switch {
	case s.WonRun():
		dst.DrawTextCentered(mid-1, "YOU WIN!")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("FINAL SCORE %d", s.Score()))
	case s.Phase() == PhasePaused:
		dst.DrawTextCentered(mid, "PAUSED  [P] RESUME")
	case s.Phase() == PhaseLevelComplete:
		dst.DrawTextCentered(mid-1, fmt.Sprintf("LEVEL %d COMPLETE", s.Level().Index))
		dst.DrawTextCentered(mid+1, "[ENTER] NEXT LEVEL  [R] REPLAY")
	case s.Phase() == PhaseGameOver:
		dst.DrawTextCentered(mid-1, fmt.Sprintf("GAME OVER (%s)", s.LastCause()))
		if s.ContinuesLeft() > 0 {
			dst.DrawTextCentered(mid+1, "[ENTER] SECOND CHANCE  [R] NEW RUN")
		} else {
			dst.DrawTextCentered(mid+1, "[R] NEW RUN  [Q] QUIT")
		}
	}
}

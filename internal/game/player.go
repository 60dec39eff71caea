package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// AnimState is the player animation state reported to the renderer.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
	AnimJumping
	AnimFalling
	AnimHurt
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRunning:
		return "running"
	case AnimJumping:
		return "jumping"
	case AnimFalling:
		return "falling"
	case AnimHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// AnimStateFor derives the animation state from the player's motion.
// Hurt wins over everything while the invulnerability window is open after
// damage; otherwise vertical motion wins over horizontal.
func AnimStateFor(vel core.Vec2, onGround, hurt bool) AnimState {
	if hurt {
		return AnimHurt
	}
	if !onGround {
		if vel.Y < 0 {
			return AnimJumping
		}
		return AnimFalling
	}
	if vel.X != 0 {
		return AnimRunning
	}
	return AnimIdle
}

// Player is the controllable character. Position is the top-left corner of
// the hitbox in world cells; y grows downward.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Size   core.Vec2
	Health int
	Facing int // +1 right, -1 left

	OnGround  bool
	InvulnFor float64 // seconds of invulnerability remaining
	Hurt      bool    // true while the invuln window came from damage

	jumpsUsed  int     // airborne jumps consumed since last grounding
	prevBottom float64 // hitbox bottom before the last integration
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// Bottom returns the y coordinate of the hitbox's lower edge.
func (p *Player) Bottom() float64 {
	return p.Pos.Y + p.Size.Y
}

// Invulnerable reports whether the player currently ignores hazard contact.
func (p *Player) Invulnerable() bool {
	return p.InvulnFor > 0
}

// StartInvuln opens an invulnerability window. hurt marks the window as
// damage-induced, which drives the Hurt animation state.
func (p *Player) StartInvuln(d float64, hurt bool) {
	if d > p.InvulnFor {
		p.InvulnFor = d
	}
	p.Hurt = hurt
}

// TickInvuln counts the invulnerability window down by one frame.
func (p *Player) TickInvuln(dt float64) {
	if p.InvulnFor <= 0 {
		return
	}
	p.InvulnFor -= dt
	if p.InvulnFor <= 0 {
		p.InvulnFor = 0
		p.Hurt = false
	}
}

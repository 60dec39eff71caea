package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Physics integrates player motion. All parameters come from PhysicsConfig;
// units are world cells and seconds, y grows downward.
type Physics struct {
	cfg config.PhysicsConfig
}

// NewPhysics creates an integrator with the given parameters.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{cfg: cfg}
}

// Integrate advances the player by one frame. axis is the horizontal input
// in [-1, 1]. Gravity applies only while airborne; vertical speed is clamped
// to [-JumpSpeed, MaxFallSpeed] so neither launch nor fall can run away.
func (ph Physics) Integrate(p *Player, axis, dt float64) {
	p.prevBottom = p.Bottom()

	// Knockback decays into direct control: input overrides the pushed
	// velocity as soon as the stick moves.
	if axis != 0 {
		p.Vel.X = axis * ph.cfg.MoveSpeed
		if axis > 0 {
			p.Facing = 1
		} else {
			p.Facing = -1
		}
	} else if p.OnGround {
		p.Vel.X = 0
	}

	if !p.OnGround {
		p.Vel.Y += ph.cfg.Gravity * dt
	}
	p.Vel.Y = core.ClampF(p.Vel.Y, -ph.cfg.JumpSpeed, ph.cfg.MaxFallSpeed)

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Jump launches the player if a jump is available: always from the ground,
// once more in the air when double jump is enabled. Returns false when the
// jump budget is spent.
func (ph Physics) Jump(p *Player) bool {
	if p.OnGround {
		p.Vel.Y = -ph.cfg.JumpSpeed
		p.OnGround = false
		p.jumpsUsed = 0
		return true
	}
	if ph.cfg.CanDoubleJump && p.jumpsUsed == 0 {
		p.Vel.Y = -ph.cfg.JumpSpeed
		p.jumpsUsed = 1
		return true
	}
	return false
}

// Knockback pushes the player away from a damage source at fromX. The push
// replaces the current velocity and does not restore the airborne jump, so
// a knocked player cannot double jump out of the hit if the charge is spent.
func (ph Physics) Knockback(p *Player, fromX float64) {
	dir := 1.0
	if p.Bounds().Center().X < fromX {
		dir = -1.0
	}
	p.Vel.X = dir * ph.cfg.KnockbackX
	p.Vel.Y = -ph.cfg.JumpSpeed / 2
	p.OnGround = false
}

// Grounded snaps the player onto a surface at top and restores the jump
// budget.
func (ph Physics) Grounded(p *Player, top float64) {
	p.Pos.Y = top - p.Size.Y
	p.Vel.Y = 0
	p.OnGround = true
	p.jumpsUsed = 0
}

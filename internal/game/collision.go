package game

// ContactEvent is the closed set of outcomes a collision pass can produce.
// The session reacts to events; the resolver only mutates player kinematics
// and per-entity flags.
type ContactEvent interface {
	contactEvent()
}

// Landed is emitted when the player snaps onto a platform top.
type Landed struct {
	Top float64
}

// Damaged is emitted when a hazard connects. Lethal means health reached
// zero and the session must run its death handling.
type Damaged struct {
	Amount int
	Lethal bool
}

// GemCollected is emitted once per gem.
type GemCollected struct {
	Value int
}

// CheckpointReached is emitted on the first touch of a checkpoint. It
// carries the player position at the moment of the touch, which becomes
// the respawn anchor.
type CheckpointReached struct {
	X, Y float64
}

// ExitReached is emitted while the player overlaps the level exit.
type ExitReached struct{}

func (Landed) contactEvent()            {}
func (Damaged) contactEvent()           {}
func (GemCollected) contactEvent()      {}
func (CheckpointReached) contactEvent() {}
func (ExitReached) contactEvent()       {}

// Resolver classifies player/entity contacts for one frame.
type Resolver struct {
	phys Physics
}

// NewResolver creates a resolver sharing the session's integrator, which it
// needs for ground snapping and damage knockback.
func NewResolver(phys Physics) *Resolver {
	return &Resolver{phys: phys}
}

// Resolve runs one collision pass. Platform resolution goes first because
// ground snapping moves the hitbox; hazard, gem, checkpoint and exit
// contacts then resolve independently against the settled position.
//
// A platform only catches the player from above: the player must be moving
// down and must have been at or above the platform top on the previous
// frame. Passing through from below or the side is allowed.
func (r *Resolver) Resolve(p *Player, ents []Entity) []ContactEvent {
	var events []ContactEvent

	p.OnGround = false
	for _, e := range ents {
		top, ok := platformTop(e)
		if !ok {
			continue
		}
		b := p.Bounds()
		pb := e.Bounds()
		if b.X >= pb.Right() || b.Right() <= pb.X {
			continue
		}
		const eps = 1e-6
		if p.Vel.Y >= 0 && p.prevBottom <= top+eps && b.Bottom() >= top && b.Y < pb.Bottom() {
			r.phys.Grounded(p, top)
			events = append(events, Landed{Top: top})
		}
	}

	b := p.Bounds()
	for _, e := range ents {
		if !b.Intersects(e.Bounds()) {
			continue
		}
		switch ent := e.(type) {
		case *Hazard:
			if p.Invulnerable() {
				continue
			}
			p.Health -= ent.Damage
			lethal := p.Health <= 0
			if lethal {
				p.Health = 0
			} else {
				r.phys.Knockback(p, ent.Bounds().Center().X)
				p.StartInvuln(r.phys.cfg.InvulnDuration, true)
			}
			events = append(events, Damaged{Amount: ent.Damage, Lethal: lethal})
		case *Gem:
			if ent.Collected {
				continue
			}
			ent.Collected = true
			events = append(events, GemCollected{Value: ent.Value})
		case *Checkpoint:
			if ent.Activated {
				continue
			}
			ent.Activated = true
			events = append(events, CheckpointReached{X: p.Pos.X, Y: p.Pos.Y})
		case *Exit:
			events = append(events, ExitReached{})
		}
	}
	return events
}

// platformTop returns the walkable surface height for platform-like
// entities.
func platformTop(e Entity) (float64, bool) {
	switch e.(type) {
	case *Platform, *MovingPlatform:
		return e.Bounds().Y, true
	default:
		return 0, false
	}
}

// Package game implements the Gem Runner platformer simulation.
// It contains pure logic with no external dependencies (especially no
// Bubble Tea); the platform layer handles input mapping, timing, and display.
package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Entity is the closed set of collidable level objects. The marker method
// keeps the set closed so the resolver can dispatch with a type switch
// instead of inspecting type names.
type Entity interface {
	Bounds() core.RectF
	entity()
}

// Platform is a static surface the player can land on.
type Platform struct {
	Rect core.RectF
}

func (p *Platform) Bounds() core.RectF { return p.Rect }
func (p *Platform) entity()            {}

// MovingPlatform is a platform that patrols horizontally between PathMinX
// and PathMaxX, reversing at the ends. A player standing on it is carried.
type MovingPlatform struct {
	Rect     core.RectF
	PathMinX float64
	PathMaxX float64
	Speed    float64 // cells/s, always positive
	dir      float64 // +1 right, -1 left
}

func (m *MovingPlatform) Bounds() core.RectF { return m.Rect }
func (m *MovingPlatform) entity()            {}

// Advance moves the platform by one frame and returns the applied delta,
// so the caller can carry a player standing on it.
func (m *MovingPlatform) Advance(dt float64) float64 {
	if m.dir == 0 {
		m.dir = 1
	}
	dx := m.dir * m.Speed * dt
	m.Rect.X += dx
	if m.Rect.X <= m.PathMinX {
		m.Rect.X = m.PathMinX
		m.dir = 1
	} else if m.Rect.X+m.Rect.W >= m.PathMaxX {
		m.Rect.X = m.PathMaxX - m.Rect.W
		m.dir = -1
	}
	return dx
}

// Hazard damages the player on contact unless the player is invulnerable.
type Hazard struct {
	Rect   core.RectF
	Damage int
}

func (h *Hazard) Bounds() core.RectF { return h.Rect }
func (h *Hazard) entity()            {}

// Gem is a collectible worth Value points. Collection is idempotent.
type Gem struct {
	Rect      core.RectF
	Value     int
	Collected bool
}

func (g *Gem) Bounds() core.RectF { return g.Rect }
func (g *Gem) entity()            {}

// Checkpoint records a respawn position when touched.
type Checkpoint struct {
	Rect      core.RectF
	Activated bool
}

func (c *Checkpoint) Bounds() core.RectF { return c.Rect }
func (c *Checkpoint) entity()            {}

// Exit completes the level on contact.
type Exit struct {
	Rect core.RectF
}

func (e *Exit) Bounds() core.RectF { return e.Rect }
func (e *Exit) entity()            {}

package sim

import (
	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// Projectile tuning.
const (
	ProjectileSpeed     = 300.0
	ProjectileLifespan  = 2.0
	ProjectileHitRadius = 16.0
	// ProjectileRange is how far a projectile can travel before expiring.
	ProjectileRange = ProjectileSpeed * ProjectileLifespan
)

// Projectile is a ranged spell in flight. It applies its spell to the first
// enemy it touches, never to its caster.
type Projectile struct {
	Position  geom.Vec2
	Velocity  geom.Vec2
	Remaining float64
	Spell     *character.Spell

	caster *character.Character
}

func newProjectile(caster *character.Character, spell *character.Spell, from, toward geom.Vec2) *Projectile {
	return &Projectile{
		Position:  from,
		Velocity:  toward.Sub(from).Normalize().Scale(ProjectileSpeed),
		Remaining: ProjectileLifespan,
		Spell:     spell,
		caster:    caster,
	}
}

// advance moves p by dt and resolves a hit. It reports whether p is still in flight.
func (p *Projectile) advance(dt float64, d *world.Dungeon) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Remaining -= dt
	if p.Remaining <= 0 {
		return false
	}
	if t, ok := d.Grid.TileAt(p.Position.X, p.Position.Y); !ok || t.Type == world.Wall {
		return false
	}
	if e, ok := d.EnemyAt(p.Position, ProjectileHitRadius, p.caster.ID()); ok {
		p.Spell.Cast(p.caster, e.Character)
		return false
	}
	return true
}

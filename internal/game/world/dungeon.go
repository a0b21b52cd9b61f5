package world

import (
	"math"

	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/npc"
)

// Dungeon owns the grid, the live enemies in spawn order, and the items lying
// on the floor. It refers to the player only by ID.
type Dungeon struct {
	Grid     *Grid
	Ground   *inventory.Ground
	PlayerID string

	enemies    []*npc.Enemy
	hadEnemies bool
}

// NewDungeon wraps grid with an empty enemy list and floor.
func NewDungeon(grid *Grid, playerID string) *Dungeon {
	return &Dungeon{
		Grid:     grid,
		Ground:   inventory.NewGround(),
		PlayerID: playerID,
	}
}

// AddEnemy appends e and points it at the player. A nil enemy is ignored.
func (d *Dungeon) AddEnemy(e *npc.Enemy) {
	if e == nil {
		return
	}
	e.TargetID = d.PlayerID
	d.enemies = append(d.enemies, e)
	d.hadEnemies = true
}

// Enemies returns the enemies in spawn order.
func (d *Dungeon) Enemies() []*npc.Enemy {
	out := make([]*npc.Enemy, len(d.enemies))
	copy(out, d.enemies)
	return out
}

func (d *Dungeon) EnemyCount() int { return len(d.enemies) }

// HadEnemies reports whether any enemy was ever added.
func (d *Dungeon) HadEnemies() bool { return d.hadEnemies }

// RemoveDefeated drops every inactive enemy, preserving the order of the
// rest, and returns the removed enemies in their former order.
func (d *Dungeon) RemoveDefeated() []*npc.Enemy {
	var removed []*npc.Enemy
	kept := d.enemies[:0]
	for _, e := range d.enemies {
		if e.IsActive() {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}
	clear(d.enemies[len(kept):])
	d.enemies = kept
	return removed
}

// NearestEnemy returns the closest active enemy within radius of pos. Ties go
// to the earlier-spawned enemy.
func (d *Dungeon) NearestEnemy(pos geom.Vec2, radius float64) (*npc.Enemy, bool) {
	var best *npc.Enemy
	bestDist := math.Inf(1)
	for _, e := range d.enemies {
		if !e.IsActive() {
			continue
		}
		if dist := e.Position.Dist(pos); dist <= radius && dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best, best != nil
}

// EnemyAt returns the first active enemy within radius of pos other than skip.
func (d *Dungeon) EnemyAt(pos geom.Vec2, radius float64, skip string) (*npc.Enemy, bool) {
	for _, e := range d.enemies {
		if e.IsActive() && e.ID() != skip && e.Position.Dist(pos) <= radius {
			return e, true
		}
	}
	return nil, false
}

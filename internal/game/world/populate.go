package world

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/npc"
)

// Item catalog IDs the populator places.
const (
	ItemHealingPotion = "healing_potion"
	ItemStarterWeapon = "bronze_sword"
	ItemStarterArmor  = "leather_armor"
)

// DefaultSpawnAttempts bounds rejection sampling for one spawn cell.
const DefaultSpawnAttempts = 1000

// Population counts what Populate placed.
type Population struct {
	Weak    int
	Medium  int
	Boss    int
	Potions int
	Starter int
	// Skipped counts spawns dropped because no walkable cell existed.
	Skipped int
}

// Enemies is the total number of enemies placed.
func (p Population) Enemies() int { return p.Weak + p.Medium + p.Boss }

// Populator places enemies and items into a freshly generated dungeon.
type Populator struct {
	Templates *npc.Manager
	Items     *inventory.Registry
	// Deps are handed to every spawned enemy; Deps.Roller also drives placement.
	Deps          character.Deps
	SpawnAttempts int
	Logger        *zap.Logger
}

// Populate fills d: ⌊WH/60⌋ weak and ⌊WH/80⌋ medium enemies in the interior,
// one boss in the far quadrant, ⌊WH/70⌋ healing potions, and the starter
// weapon and armor near the top-left corner.
//
// Precondition: Templates, Items, and Deps.Roller are non-nil.
// Postcondition: every placed entity stands on a walkable cell center.
func (p *Populator) Populate(d *Dungeon) Population {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := spawner{grid: d.Grid, deps: p.Deps, attempts: p.SpawnAttempts, logger: logger}
	if s.attempts < 1 {
		s.attempts = DefaultSpawnAttempts
	}

	w, h := d.Grid.Width(), d.Grid.Height()
	xlo, xhi := InteriorRange(w)
	ylo, yhi := InteriorRange(h)
	interior := cellRange{xlo, ylo, xhi, yhi}
	bx0, bx1 := bossRange(w)
	by0, by1 := bossRange(h)
	lair := cellRange{bx0, by0, bx1, by1}
	sx0, sx1 := starterRange(w)
	sy0, sy1 := starterRange(h)
	starter := cellRange{sx0, sy0, sx1, sy1}

	var pop Population
	pop.Weak = p.spawnEnemies(d, &s, npc.RoleWeak, w*h/60, interior, &pop.Skipped)
	pop.Medium = p.spawnEnemies(d, &s, npc.RoleMedium, w*h/80, interior, &pop.Skipped)
	pop.Boss = p.spawnEnemies(d, &s, npc.RoleBoss, 1, lair, &pop.Skipped)

	pop.Potions = p.placeItems(d, &s, ItemHealingPotion, w*h/70, interior, &pop.Skipped)
	pop.Starter += p.placeItems(d, &s, ItemStarterWeapon, 1, starter, &pop.Skipped)
	pop.Starter += p.placeItems(d, &s, ItemStarterArmor, 1, starter, &pop.Skipped)

	logger.Info("dungeon populated",
		zap.Int("weak", pop.Weak),
		zap.Int("medium", pop.Medium),
		zap.Int("boss", pop.Boss),
		zap.Int("potions", pop.Potions),
		zap.Int("starter_items", pop.Starter),
		zap.Int("skipped", pop.Skipped),
	)
	return pop
}

func (p *Populator) spawnEnemies(d *Dungeon, s *spawner, role npc.Role, n int, r cellRange, skipped *int) int {
	if n <= 0 {
		return 0
	}
	templates := p.Templates.ByRole(role)
	if len(templates) == 0 {
		s.logger.Warn("no enemy template for role", zap.String("role", string(role)), zap.Int("wanted", n))
		*skipped += n
		return 0
	}
	placed := 0
	for i := 0; i < n; i++ {
		pos, ok := s.cell(r)
		if !ok {
			*skipped++
			continue
		}
		tmpl := templates[p.Deps.Roller.Pick(len(templates))]
		e, err := p.Templates.Spawn(tmpl, pos, p.Deps)
		if err != nil {
			s.logger.Warn("enemy spawn failed", zap.String("template", tmpl.ID), zap.Error(err))
			*skipped++
			continue
		}
		d.AddEnemy(e)
		placed++
	}
	return placed
}

func (p *Populator) placeItems(d *Dungeon, s *spawner, itemID string, n int, r cellRange, skipped *int) int {
	placed := 0
	for i := 0; i < n; i++ {
		it, err := p.Items.Instantiate(itemID)
		if err != nil {
			s.logger.Warn("item placement skipped", zap.String("item", itemID), zap.Error(err))
			*skipped += n - i
			return placed
		}
		pos, ok := s.cell(r)
		if !ok {
			*skipped++
			continue
		}
		d.Ground.Drop(it, pos)
		placed++
	}
	return placed
}

// cellRange is an inclusive rectangle of cells.
type cellRange struct {
	x0, y0, x1, y1 int
}

// bossRange is [n/2, n-5] along one axis, kept inside the border.
func bossRange(n int) (lo, hi int) {
	lo, hi = n/2, max(n/2, n-5)
	return clampInterior(lo, n), clampInterior(hi, n)
}

// starterRange is [2, 5] along one axis, kept inside the border.
func starterRange(n int) (lo, hi int) {
	return clampInterior(2, n), clampInterior(5, n)
}

func clampInterior(v, n int) int {
	return min(max(v, 1), n-2)
}

// spawner chooses walkable cells: bounded rejection sampling inside a range,
// then the first walkable cell of the range in row-major order, then the
// first walkable cell of the whole grid.
type spawner struct {
	grid     *Grid
	deps     character.Deps
	attempts int
	logger   *zap.Logger
}

func (s *spawner) cell(r cellRange) (geom.Vec2, bool) {
	roller := s.deps.Roller
	for i := 0; i < s.attempts; i++ {
		x := roller.IntRange(r.x0, r.x1)
		y := roller.IntRange(r.y0, r.y1)
		if s.grid.CellWalkable(x, y) {
			return s.grid.CellCenter(x, y), true
		}
	}
	if x, y, ok := s.grid.FirstWalkableIn(r.x0, r.y0, r.x1, r.y1); ok {
		s.logger.Warn("spawn sampling exhausted; using first walkable cell in range",
			zap.Int("attempts", s.attempts), zap.Int("x", x), zap.Int("y", y))
		return s.grid.CellCenter(x, y), true
	}
	if x, y, ok := s.grid.FirstWalkable(); ok {
		s.logger.Warn("no walkable cell in spawn range; using first walkable cell in grid",
			zap.Int("x", x), zap.Int("y", y))
		return s.grid.CellCenter(x, y), true
	}
	s.logger.Warn("no walkable cell; spawn skipped")
	return geom.Vec2{}, false
}

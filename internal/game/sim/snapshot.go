package sim

import (
	"fmt"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// TileView is one visible grid cell.
type TileView struct {
	X, Y     int
	Type     world.TileType
	Explored bool
}

// EnemyView is an enemy as the draw sink sees it.
type EnemyView struct {
	ID          string
	Name        string
	Position    geom.Vec2
	HealthRatio float64
	State       string
	Boss        bool
}

// ItemView is an item lying on the floor.
type ItemView struct {
	Name     string
	Kind     inventory.Kind
	Position geom.Vec2
}

// PlayerView is the player's visible state.
type PlayerView struct {
	ID          string
	Name        string
	Position    geom.Vec2
	Level       int
	Experience  int
	Health      int
	MaxHealth   int
	Mana        int
	MaxMana     int
	HealthRatio float64
	ManaRatio   float64
	Gold        int
	ArmorClass  int
	Abilities   character.Abilities
	Weapon      string
	Armor       string
}

// Snapshot is a read-only copy of everything a renderer or intent source
// needs for one frame. It shares no mutable state with the simulation.
type Snapshot struct {
	Tick     uint64
	Elapsed  float64
	Status   Status
	View     geom.Rect
	TileSize float64
	GridW    int
	GridH    int

	Player PlayerView
	// Tiles covers the cells overlapping View in row-major order.
	Tiles       []TileView
	Enemies     []EnemyView
	Items       []ItemView
	Projectiles []geom.Vec2
	// Inventory and PackKinds are parallel, indexed by pack slot.
	Inventory  []string
	PackKinds  []inventory.Kind
	Spells     []string
	QuestFlags map[string]bool

	EnemiesRemaining int
	Kills            int
}

// Viewport returns the configured view rectangle centered on the player.
func (s *Simulation) Viewport() geom.Rect {
	return geom.CenteredRect(s.player.Position, s.view.W, s.view.H)
}

// Snapshot captures the state visible through view. Enemies, items, and
// projectiles outside view are omitted; counters cover the whole dungeon.
func (s *Simulation) Snapshot(view geom.Rect) *Snapshot {
	p := s.player
	grid := s.dungeon.Grid
	snap := &Snapshot{
		Tick:     s.ticks,
		Elapsed:  s.elapsed,
		Status:   s.status,
		View:     view,
		TileSize: grid.TileSize(),
		GridW:    grid.Width(),
		GridH:    grid.Height(),
		Player: PlayerView{
			ID:          p.ID(),
			Name:        p.Name,
			Position:    p.Position,
			Level:       p.Level(),
			Experience:  p.Experience(),
			Health:      p.Health(),
			MaxHealth:   p.MaxHealth(),
			Mana:        p.Mana(),
			MaxMana:     p.MaxMana(),
			HealthRatio: p.HealthRatio(),
			ManaRatio:   p.ManaRatio(),
			Gold:        p.Gold(),
			ArmorClass:  p.ArmorClass(),
			Abilities:   p.Abilities,
			Weapon:      itemName(p.Weapon()),
			Armor:       itemName(p.Armor()),
		},
		Inventory:        p.Pack().Listing(),
		QuestFlags:       p.QuestFlags(),
		EnemiesRemaining: s.dungeon.EnemyCount(),
		Kills:            s.kills,
	}

	grid.ForEachInView(view, func(cx, cy int, t *world.Tile) {
		snap.Tiles = append(snap.Tiles, TileView{X: cx, Y: cy, Type: t.Type, Explored: t.Explored})
	})
	for _, e := range s.dungeon.Enemies() {
		if !e.IsActive() || !view.Contains(e.Position) {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:          e.ID(),
			Name:        e.Name,
			Position:    e.Position,
			HealthRatio: e.HealthRatio(),
			State:       e.State().String(),
			Boss:        e.IsBoss(),
		})
	}
	for _, it := range s.dungeon.Ground.Items() {
		if view.Contains(it.Position) {
			snap.Items = append(snap.Items, ItemView{Name: it.Name, Kind: it.Kind, Position: it.Position})
		}
	}
	for _, pr := range s.projectiles {
		if view.Contains(pr.Position) {
			snap.Projectiles = append(snap.Projectiles, pr.Position)
		}
	}
	for _, it := range p.Pack().Items() {
		snap.PackKinds = append(snap.PackKinds, it.Kind)
	}
	for i, sp := range p.Spells() {
		snap.Spells = append(snap.Spells, fmt.Sprintf("%d. %s (%d mana)", i, sp.Name, sp.ManaCost))
	}
	return snap
}

// StatsLine is the one-line status bar.
func (v PlayerView) StatsLine() string {
	return fmt.Sprintf("%s  Lvl %d  HP %d/%d  MP %d/%d  XP %d/%d  AC %d  %s",
		v.Name, v.Level, v.Health, v.MaxHealth, v.Mana, v.MaxMana,
		v.Experience, v.Level*character.XPPerLevel, v.ArmorClass, inventory.FormatGold(v.Gold))
}

func itemName(it *inventory.Item) string {
	if it == nil {
		return "none"
	}
	return it.Summary()
}

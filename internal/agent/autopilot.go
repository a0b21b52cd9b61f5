// Package agent provides a headless player that drives the simulation from
// snapshots alone, for unattended runs and soak tests.
package agent

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// Mode is the autopilot's current priority.
type Mode int

// Modes in priority order.
const (
	ModeIdle Mode = iota
	ModeHeal
	ModeEquip
	ModeFight
	ModeLoot
	ModeExplore
)

func (m Mode) String() string {
	switch m {
	case ModeHeal:
		return "heal"
	case ModeEquip:
		return "equip"
	case ModeFight:
		return "fight"
	case ModeLoot:
		return "loot"
	case ModeExplore:
		return "explore"
	default:
		return "idle"
	}
}

// Defaults for Autopilot tuning.
const (
	DefaultHealBelow   = 0.35
	DefaultDetourTicks = 20
)

// Autopilot is a sim.IntentSource that plays greedily: drink a potion when
// hurt, equip gear into empty slots, fight the nearest visible enemy, pick up
// visible items, and otherwise walk toward unexplored floor. When a move makes
// no progress it detours along the next compass direction for a while,
// backing off the opposite way if the detour is blocked too.
//
// An Autopilot keeps per-run state and must not be shared between runs.
type Autopilot struct {
	// HealBelow is the health ratio under which a potion is used.
	HealBelow float64
	// DetourTicks is how long a detour lasts once movement is blocked.
	DetourTicks int

	logger *zap.Logger
	mode   Mode

	lastPos  geom.Vec2
	moved    bool
	detour   int
	turn     int
	heading  world.Direction
	reversed bool
}

// New creates an Autopilot with default tuning. A nil logger is replaced
// with a no-op logger.
func New(logger *zap.Logger) *Autopilot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Autopilot{
		HealBelow:   DefaultHealBelow,
		DetourTicks: DefaultDetourTicks,
		logger:      logger,
	}
}

// Mode returns the priority chosen on the last call to Next.
func (a *Autopilot) Mode() Mode { return a.mode }

// Next picks the intent for snap.
func (a *Autopilot) Next(snap *sim.Snapshot) sim.Intent {
	if snap == nil || snap.Status.Terminal() {
		a.setMode(ModeIdle, snap)
		return sim.Intent{}
	}
	p := snap.Player
	blocked := a.moved && p.Position == a.lastPos
	a.lastPos, a.moved = p.Position, false

	if p.HealthRatio < a.HealBelow {
		if i := packSlot(snap, inventory.KindPotion); i >= 0 {
			a.setMode(ModeHeal, snap)
			return sim.Intent{Action: sim.ActionUse, Index: i}
		}
	}
	if i := a.gearSlot(snap); i >= 0 {
		a.setMode(ModeEquip, snap)
		return sim.Intent{Action: sim.ActionUse, Index: i}
	}

	if e, ok := nearestEnemy(snap); ok {
		a.setMode(ModeFight, snap)
		if p.Position.Dist(e.Position) <= sim.MeleeRange {
			return sim.Intent{Action: sim.ActionAttack}
		}
		return sim.Intent{Move: a.steer(blocked, e.Position.Sub(p.Position))}
	}

	if it, ok := nearestItem(snap); ok {
		a.setMode(ModeLoot, snap)
		return sim.Intent{Move: a.steer(blocked, it.Position.Sub(p.Position))}
	}

	a.setMode(ModeExplore, snap)
	if target, ok := nearestUnexplored(snap); ok {
		return sim.Intent{Move: a.steer(blocked, target.Sub(p.Position))}
	}
	return sim.Intent{Move: a.steer(blocked, world.StandardDirections[a.turn%len(world.StandardDirections)].Vector())}
}

// steer returns desired, or the current detour. A blocked move starts a
// detour along the next compass direction; a detour that is itself blocked
// reverses once, then gives way to the next direction.
func (a *Autopilot) steer(blocked bool, desired geom.Vec2) geom.Vec2 {
	if blocked {
		if a.detour > 0 && !a.reversed {
			a.heading = a.heading.Opposite()
			a.reversed = true
		} else {
			a.turn++
			a.heading = world.StandardDirections[a.turn%len(world.StandardDirections)]
			a.reversed = false
		}
		a.detour = a.DetourTicks
		a.logger.Debug("autopilot blocked; detouring",
			zap.Float64("x", a.lastPos.X),
			zap.Float64("y", a.lastPos.Y),
			zap.String("heading", string(a.heading)),
		)
	}
	a.moved = true
	if a.detour > 0 {
		a.detour--
		return a.heading.Vector()
	}
	return desired.Normalize()
}

// gearSlot returns the pack slot of a weapon or armor that fits an empty
// slot, or -1.
func (a *Autopilot) gearSlot(snap *sim.Snapshot) int {
	if snap.Player.Weapon == "none" {
		if i := packSlot(snap, inventory.KindWeapon); i >= 0 {
			return i
		}
	}
	if snap.Player.Armor == "none" {
		return packSlot(snap, inventory.KindArmor)
	}
	return -1
}

func (a *Autopilot) setMode(m Mode, snap *sim.Snapshot) {
	if m == a.mode {
		return
	}
	fields := []zap.Field{zap.Stringer("from", a.mode), zap.Stringer("to", m)}
	if snap != nil {
		fields = append(fields, zap.Uint64("tick", snap.Tick))
	}
	a.logger.Debug("autopilot mode change", fields...)
	a.mode = m
}

func packSlot(snap *sim.Snapshot, kind inventory.Kind) int {
	for i, k := range snap.PackKinds {
		if k == kind {
			return i
		}
	}
	return -1
}

func nearestEnemy(snap *sim.Snapshot) (sim.EnemyView, bool) {
	var best sim.EnemyView
	found := false
	for _, e := range snap.Enemies {
		if !found || snap.Player.Position.Dist(e.Position) < snap.Player.Position.Dist(best.Position) {
			best, found = e, true
		}
	}
	return best, found
}

func nearestItem(snap *sim.Snapshot) (sim.ItemView, bool) {
	var best sim.ItemView
	found := false
	for _, it := range snap.Items {
		if !found || snap.Player.Position.Dist(it.Position) < snap.Player.Position.Dist(best.Position) {
			best, found = it, true
		}
	}
	return best, found
}

// nearestUnexplored returns the center of the closest walkable, unexplored
// tile in view.
func nearestUnexplored(snap *sim.Snapshot) (geom.Vec2, bool) {
	var best geom.Vec2
	found := false
	for _, t := range snap.Tiles {
		if t.Explored || !t.Type.Walkable() {
			continue
		}
		c := geom.V((float64(t.X)+0.5)*snap.TileSize, (float64(t.Y)+0.5)*snap.TileSize)
		if !found || snap.Player.Position.Dist(c) < snap.Player.Position.Dist(best) {
			best, found = c, true
		}
	}
	return best, found
}

var _ sim.IntentSource = (*Autopilot)(nil)

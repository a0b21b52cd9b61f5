package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/lance/internal/agent"
	"github.com/cory-johannsen/lance/internal/content"
	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/npc"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/game/world"
	"github.com/cory-johannsen/lance/internal/testutil"
)

func baseSnap() *sim.Snapshot {
	return &sim.Snapshot{
		Status:   sim.Running,
		TileSize: 32,
		Player: sim.PlayerView{
			Position:    geom.V(100, 100),
			HealthRatio: 1,
			Weapon:      "Bronze Sword (1-6 dmg, +0 atk)",
			Armor:       "Leather Armor (+2 def)",
		},
	}
}

func TestAutopilot_TerminalIsIdle(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Status = sim.GameOver
	snap.Enemies = []sim.EnemyView{{Position: geom.V(110, 100)}}

	assert.Equal(t, sim.Intent{}, a.Next(snap))
	assert.Equal(t, sim.Intent{}, a.Next(nil))
	assert.Equal(t, agent.ModeIdle, a.Mode())
}

func TestAutopilot_DrinksPotionWhenHurt(t *testing.T) {
	a := agent.New(zaptest.NewLogger(t))
	snap := baseSnap()
	snap.Player.HealthRatio = 0.2
	snap.PackKinds = []inventory.Kind{inventory.KindGeneric, inventory.KindPotion}
	snap.Enemies = []sim.EnemyView{{Position: geom.V(110, 100)}}

	in := a.Next(snap)
	assert.Equal(t, sim.ActionUse, in.Action)
	assert.Equal(t, 1, in.Index)
	assert.Equal(t, agent.ModeHeal, a.Mode())
}

func TestAutopilot_FightsWhenHurtWithoutPotion(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Player.HealthRatio = 0.2
	snap.Enemies = []sim.EnemyView{{Position: geom.V(110, 100)}}

	assert.Equal(t, sim.ActionAttack, a.Next(snap).Action)
}

func TestAutopilot_EquipsIntoEmptySlotsOnly(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.PackKinds = []inventory.Kind{inventory.KindArmor, inventory.KindWeapon}

	assert.Equal(t, sim.ActionNone, a.Next(snap).Action, "both slots filled")

	snap.Player.Weapon = "none"
	in := a.Next(snap)
	assert.Equal(t, sim.ActionUse, in.Action)
	assert.Equal(t, 1, in.Index)
	assert.Equal(t, agent.ModeEquip, a.Mode())

	snap.Player.Weapon = "Bronze Sword"
	snap.Player.Armor = "none"
	in = a.Next(snap)
	assert.Equal(t, sim.ActionUse, in.Action)
	assert.Equal(t, 0, in.Index)
}

func TestAutopilot_AttacksNearestEnemyInReach(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Enemies = []sim.EnemyView{
		{ID: "far", Position: geom.V(400, 100)},
		{ID: "near", Position: geom.V(100, 100+sim.MeleeRange)},
	}

	in := a.Next(snap)
	assert.Equal(t, sim.ActionAttack, in.Action)
	assert.True(t, in.Move.IsZero())
	assert.Equal(t, agent.ModeFight, a.Mode())
}

func TestAutopilot_ClosesOnDistantEnemy(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Enemies = []sim.EnemyView{{Position: geom.V(100, 300)}}
	snap.Items = []sim.ItemView{{Position: geom.V(120, 100)}}

	in := a.Next(snap)
	assert.Equal(t, sim.ActionNone, in.Action)
	assert.InDelta(t, 0, in.Move.X, 1e-9)
	assert.InDelta(t, 1, in.Move.Y, 1e-9)
}

func TestAutopilot_WalksToItems(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Items = []sim.ItemView{{Position: geom.V(300, 100)}, {Position: geom.V(40, 100)}}

	in := a.Next(snap)
	assert.Equal(t, agent.ModeLoot, a.Mode())
	assert.InDelta(t, -1, in.Move.X, 1e-9)
}

func TestAutopilot_ExploresUnexploredFloor(t *testing.T) {
	a := agent.New(nil)
	snap := baseSnap()
	snap.Tiles = []sim.TileView{
		{X: 3, Y: 3, Type: world.Floor, Explored: true},
		{X: 6, Y: 3, Type: world.Wall},
		{X: 3, Y: 8, Type: world.Lava},
		{X: 3, Y: 5, Type: world.Floor},
	}

	in := a.Next(snap)
	assert.Equal(t, agent.ModeExplore, a.Mode())
	// Cell (3, 5) is centered at (112, 176).
	want := geom.V(112, 176).Sub(snap.Player.Position).Normalize()
	assert.InDelta(t, want.X, in.Move.X, 1e-9)
	assert.InDelta(t, want.Y, in.Move.Y, 1e-9)
}

func TestAutopilot_DetoursWhenBlocked(t *testing.T) {
	a := agent.New(nil)
	a.DetourTicks = 3
	snap := baseSnap()
	snap.Items = []sim.ItemView{{Position: geom.V(300, 100)}}

	first := a.Next(snap)
	assert.Equal(t, geom.V(1, 0), first.Move)

	// The player did not move, so the next intent detours.
	second := a.Next(snap)
	assert.NotEqual(t, first.Move, second.Move)
	assert.InDelta(t, 1, second.Move.Len(), 1e-9)

	// The detour runs its course and then heads for the item again.
	snap.Player.Position = geom.V(110, 100)
	a.Next(snap)
	snap.Player.Position = geom.V(120, 100)
	a.Next(snap)
	snap.Player.Position = geom.V(130, 100)
	assert.Equal(t, geom.V(1, 0), a.Next(snap).Move)
}

func TestAutopilot_BlockedDetourBacksOff(t *testing.T) {
	a := agent.New(nil)
	a.DetourTicks = 5
	snap := baseSnap()
	snap.Items = []sim.ItemView{{Position: geom.V(300, 100)}}

	a.Next(snap)
	detour := a.Next(snap).Move
	assert.Equal(t, world.StandardDirections[1].Vector(), detour)

	// Still stuck: the detour heading reverses.
	back := a.Next(snap).Move
	assert.Equal(t, world.StandardDirections[1].Opposite().Vector(), back)

	// Stuck both ways: move on to the next compass direction.
	assert.Equal(t, world.StandardDirections[2].Vector(), a.Next(snap).Move)
}

func TestAutopilot_WinsMeleeFight(t *testing.T) {
	s, err := sim.New(sim.Options{
		Roller:         testutil.Roller(testutil.NewSequenceSource(99)),
		Grid:           openGrid(12, 12),
		SkipPopulation: true,
	})
	require.NoError(t, err)

	tmpl := &npc.Template{
		ID: "goblin", Name: "Goblin", Role: npc.RoleWeak, Level: 1,
		Abilities: character.DefaultAbilities(), XPReward: 50, GoldReward: 5,
		Loot: &npc.LootTable{},
	}
	m, err := npc.NewManager(tmpl)
	require.NoError(t, err)
	// Rolls of 1 never hit.
	e, err := m.Spawn(tmpl, s.Player().Position.Add(geom.V(30, 0)), character.Deps{
		Roller: testutil.Roller(testutil.NewSequenceSource(0)),
	})
	require.NoError(t, err)
	s.Dungeon().AddEnemy(e)

	a := agent.New(zaptest.NewLogger(t))
	status := sim.Running
	for i := 0; i < 2000 && !status.Terminal(); i++ {
		status = s.Tick(0.05, a.Next(s.Snapshot(s.Viewport())))
	}
	assert.Equal(t, sim.Victory, status)
	assert.Equal(t, 1, s.Kills())
}

func TestProperty_AutopilotKeepsSimulationValid(t *testing.T) {
	b, err := content.Load()
	require.NoError(t, err)
	rapid.Check(t, func(rt *rapid.T) {
		s, err := sim.New(sim.Options{
			Width:     rapid.IntRange(10, 25).Draw(rt, "w"),
			Height:    rapid.IntRange(10, 25).Draw(rt, "h"),
			Roller:    dice.NewLoggedRoller(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), nil),
			Templates: b.Templates,
			Items:     b.Items,
			Spells:    b.Spells,
		})
		require.NoError(rt, err)

		a := agent.New(nil)
		for i := 0; i < 300; i++ {
			in := a.Next(s.Snapshot(s.Viewport()))
			if in.Action == sim.ActionUse {
				require.Less(rt, in.Index, s.Player().Pack().Len())
			}
			s.Tick(0.05, in)
			p := s.Player()
			require.True(rt, s.Dungeon().Grid.IsWalkable(p.Position.X, p.Position.Y))
		}
	})
}

// openGrid is an open floor with a wall border.
func openGrid(w, h int) *world.Grid {
	g := world.NewGrid(w, h, 32)
	for x := 0; x < w; x++ {
		g.Set(x, 0, world.Wall)
		g.Set(x, h-1, world.Wall)
	}
	for y := 0; y < h; y++ {
		g.Set(0, y, world.Wall)
		g.Set(w-1, y, world.Wall)
	}
	return g
}

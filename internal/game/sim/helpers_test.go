package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/narrative"
	"github.com/cory-johannsen/lance/internal/game/npc"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/game/world"
	"github.com/cory-johannsen/lance/internal/testutil"
)

// walledGrid is an open floor with a wall border.
func walledGrid(w, h int) *world.Grid {
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

// emptySim builds a simulation on a 20×20 walled grid with no population.
// The player starts at the center of cell (1, 1), world position (48, 48).
func emptySim(t *testing.T, roller *dice.Roller, spells ...*character.Spell) (*sim.Simulation, *narrative.Recorder) {
	t.Helper()
	rec := &narrative.Recorder{}
	s, err := sim.New(sim.Options{
		Roller:         roller,
		Grid:           walledGrid(20, 20),
		SkipPopulation: true,
		Narrative:      rec,
		Spells:         spells,
	})
	require.NoError(t, err)
	return s, rec
}

func pinned(draws ...int) *dice.Roller {
	return testutil.Roller(testutil.NewSequenceSource(draws...))
}

var plain = character.Abilities{
	Strength: 10, Dexterity: 10, Constitution: 10,
	Intelligence: 10, Wisdom: 10, Charisma: 10,
}

// addEnemy spawns an enemy of the given template at pos and adds it to s.
func addEnemy(t *testing.T, s *sim.Simulation, tmpl *npc.Template, pos geom.Vec2, roller *dice.Roller) *npc.Enemy {
	t.Helper()
	m, err := npc.NewManager(tmpl)
	require.NoError(t, err)
	e, err := m.Spawn(tmpl, pos, character.Deps{Roller: roller})
	require.NoError(t, err)
	s.Dungeon().AddEnemy(e)
	return e
}

func goblin() *npc.Template {
	return &npc.Template{
		ID: "goblin", Name: "Goblin", Role: npc.RoleWeak, Level: 1,
		Abilities: plain, XPReward: 50, GoldReward: 5,
		Loot: &npc.LootTable{},
	}
}

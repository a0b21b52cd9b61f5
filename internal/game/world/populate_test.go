package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/npc"
)

func testTemplates(t *testing.T) *npc.Manager {
	t.Helper()
	m, err := npc.NewManager(
		&npc.Template{ID: "goblin", Name: "Goblin", Role: npc.RoleWeak, Level: 1, XPReward: 50, GoldReward: 5},
		&npc.Template{ID: "skeleton", Name: "Skeleton", Role: npc.RoleMedium, Level: 1, XPReward: 75, GoldReward: 10},
		&npc.Template{ID: "baaz", Name: "Baaz Draconian", Role: npc.RoleBoss, Level: 1, XPReward: 500, GoldReward: 100},
	)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T) *inventory.Registry {
	t.Helper()
	r := inventory.NewRegistry()
	for _, d := range []*inventory.ItemDef{
		{ID: ItemHealingPotion, Name: "Healing Potion", Kind: inventory.KindPotion, Value: 10, Potion: &inventory.PotionStats{Heal: 20}},
		{ID: ItemStarterWeapon, Name: "Bronze Sword", Kind: inventory.KindWeapon, Value: 15, Weapon: &inventory.WeaponStats{MinDamage: 2, MaxDamage: 5, AttackBonus: 1, Type: "Sword"}},
		{ID: ItemStarterArmor, Name: "Leather Armor", Kind: inventory.KindArmor, Value: 20, Armor: &inventory.ArmorStats{Defense: 2, Type: "Leather"}},
	} {
		require.NoError(t, r.RegisterItem(d))
	}
	return r
}

func cellOf(g *Grid, p geom.Vec2) (int, int) { return g.CellOf(p.X, p.Y) }

func TestPopulate_CountsAndPlacement(t *testing.T) {
	roller := seededRoller(42)
	g := Generate(50, 50, 32, roller)
	d := NewDungeon(g, "hero")
	p := &Populator{
		Templates: testTemplates(t),
		Items:     testItems(t),
		Deps:      character.Deps{Roller: roller},
	}
	pop := p.Populate(d)

	assert.Equal(t, 2500/60, pop.Weak)
	assert.Equal(t, 2500/80, pop.Medium)
	assert.Equal(t, 1, pop.Boss)
	assert.Equal(t, 2500/70, pop.Potions)
	assert.Equal(t, 2, pop.Starter)
	assert.Zero(t, pop.Skipped)
	assert.Equal(t, pop.Enemies(), d.EnemyCount())
	assert.True(t, d.HadEnemies())

	for _, e := range d.Enemies() {
		assert.True(t, g.IsWalkable(e.Position.X, e.Position.Y), e.ID())
		assert.Equal(t, "hero", e.TargetID)
		if e.IsBoss() {
			cx, cy := cellOf(g, e.Position)
			assert.GreaterOrEqual(t, cx, 25)
			assert.LessOrEqual(t, cx, 45)
			assert.GreaterOrEqual(t, cy, 25)
			assert.LessOrEqual(t, cy, 45)
		}
	}
	for _, it := range d.Ground.Items() {
		assert.True(t, it.OnGround)
		assert.True(t, g.IsWalkable(it.Position.X, it.Position.Y), it.Name)
		if it.DefID == ItemStarterWeapon || it.DefID == ItemStarterArmor {
			cx, cy := cellOf(g, it.Position)
			assert.True(t, cx >= 2 && cx <= 5 && cy >= 2 && cy <= 5, "%s at (%d,%d)", it.Name, cx, cy)
		}
	}
	assert.Equal(t, pop.Potions+pop.Starter, d.Ground.Len())
}

func TestPopulate_FallsBackToRowMajorScan(t *testing.T) {
	// Only one walkable cell, outside every sampling range.
	g := NewGrid(12, 12, 32)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			g.Set(x, y, Wall)
		}
	}
	g.Set(10, 1, Floor)

	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDungeon(g, "hero")
	p := &Populator{
		Templates:     testTemplates(t),
		Items:         testItems(t),
		Deps:          character.Deps{Roller: seededRoller(3)},
		SpawnAttempts: 5,
		Logger:        zap.New(core),
	}
	pop := p.Populate(d)

	assert.Equal(t, 144/60+144/80+1, pop.Enemies())
	assert.Zero(t, pop.Skipped)
	for _, e := range d.Enemies() {
		assert.Equal(t, g.CellCenter(10, 1), e.Position)
	}
	assert.NotZero(t, logs.FilterMessageSnippet("first walkable cell in grid").Len())
}

func TestPopulate_SkipsWhenNothingWalkable(t *testing.T) {
	g := NewGrid(10, 10, 32)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, Lava)
		}
	}
	d := NewDungeon(g, "hero")
	p := &Populator{
		Templates:     testTemplates(t),
		Items:         testItems(t),
		Deps:          character.Deps{Roller: seededRoller(9)},
		SpawnAttempts: 3,
	}
	pop := p.Populate(d)
	assert.Zero(t, pop.Enemies())
	assert.Zero(t, d.Ground.Len())
	assert.Equal(t, 100/60+100/80+1+100/70+2, pop.Skipped)
	assert.False(t, d.HadEnemies())
}

func TestPopulate_MissingRoleAndItem(t *testing.T) {
	m, err := npc.NewManager(&npc.Template{ID: "goblin", Name: "Goblin", Role: npc.RoleWeak, Level: 1})
	require.NoError(t, err)
	d := NewDungeon(NewGrid(20, 20, 32), "hero")
	p := &Populator{Templates: m, Items: inventory.NewRegistry(), Deps: character.Deps{Roller: seededRoller(1)}}
	pop := p.Populate(d)
	assert.Equal(t, 400/60, pop.Weak)
	assert.Zero(t, pop.Medium)
	assert.Zero(t, pop.Boss)
	assert.Equal(t, 400/80+1+400/70+2, pop.Skipped)
}

func TestBossRange_StaysInside(t *testing.T) {
	lo, hi := bossRange(50)
	assert.Equal(t, [2]int{25, 45}, [2]int{lo, hi})
	lo, hi = bossRange(5)
	assert.Equal(t, [2]int{2, 2}, [2]int{lo, hi})
}

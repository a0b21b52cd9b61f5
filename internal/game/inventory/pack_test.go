package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
)

func TestPack_AddGetRemove(t *testing.T) {
	p := inventory.NewPack()
	a := inventory.NewGeneric("a", "", 0)
	b := inventory.NewGeneric("b", "", 0)
	a.OnGround = true
	p.Add(a)
	p.Add(b)
	p.Add(a)
	p.Add(nil)

	assert.Equal(t, 3, p.Len(), "duplicates are allowed, nil is ignored")
	assert.False(t, a.OnGround)

	got, ok := p.Get(1)
	require.True(t, ok)
	assert.Same(t, b, got)

	removed, ok := p.Remove(0)
	require.True(t, ok)
	assert.Same(t, a, removed)
	assert.Equal(t, []string{"b", "a"}, p.Listing())
}

func TestPack_BadIndexIsNoop(t *testing.T) {
	p := inventory.NewPack()
	p.Add(inventory.NewGeneric("a", "", 0))
	for _, i := range []int{-1, 1, 100} {
		_, ok := p.Get(i)
		assert.False(t, ok)
		_, ok = p.Remove(i)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, p.Len())
}

func TestGround_PickupWithin_TransfersOwnership(t *testing.T) {
	g := inventory.NewGround()
	near := inventory.NewGeneric("near", "", 0)
	far := inventory.NewGeneric("far", "", 0)
	g.Drop(near, geom.V(10, 10))
	g.Drop(far, geom.V(200, 200))
	require.True(t, near.OnGround)
	assert.Equal(t, geom.V(10, 10), near.Position)

	taken := g.PickupWithin(geom.V(30, 10), 30)
	require.Len(t, taken, 1)
	assert.Same(t, near, taken[0])
	assert.False(t, near.OnGround)
	assert.Equal(t, 1, g.Len())
	assert.Same(t, far, g.Items()[0])
}

// TestGround_Property_NeverDoubleOwned verifies that every item is either on
// the ground or in the pack, never both.
func TestGround_Property_NeverDoubleOwned(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := inventory.NewGround()
		p := inventory.NewPack()
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			pos := geom.V(rapid.Float64Range(0, 100).Draw(rt, "x"), rapid.Float64Range(0, 100).Draw(rt, "y"))
			g.Drop(inventory.NewGeneric("x", "", 0), pos)
		}
		for _, it := range g.PickupWithin(geom.V(50, 50), rapid.Float64Range(0, 80).Draw(rt, "r")) {
			p.Add(it)
		}

		assert.Equal(rt, n, g.Len()+p.Len())
		for _, it := range g.Items() {
			assert.True(rt, it.OnGround)
		}
		for _, it := range p.Items() {
			assert.False(rt, it.OnGround)
		}
	})
}

func TestEquipment(t *testing.T) {
	var e inventory.Equipment
	assert.Zero(t, e.AttackBonus())
	assert.Zero(t, e.Defense())

	sword := inventory.NewWeapon("Sword", "", 0, inventory.WeaponStats{MinDamage: 1, MaxDamage: 3, AttackBonus: 2})
	axe := inventory.NewWeapon("Axe", "", 0, inventory.WeaponStats{MinDamage: 1, MaxDamage: 3, AttackBonus: 1})
	mail := inventory.NewArmor("Mail", "", 0, inventory.ArmorStats{Defense: 3})

	prev, ok := e.EquipWeapon(sword)
	require.True(t, ok)
	assert.Nil(t, prev)
	prev, ok = e.EquipWeapon(axe)
	require.True(t, ok)
	assert.Same(t, sword, prev)
	assert.Equal(t, 1, e.AttackBonus())

	_, ok = e.EquipWeapon(mail)
	assert.False(t, ok, "armor does not fit the weapon slot")
	assert.Same(t, axe, e.Weapon())

	_, ok = e.EquipArmor(mail)
	require.True(t, ok)
	assert.Equal(t, 3, e.Defense())
	assert.Same(t, mail, e.Armor())
}

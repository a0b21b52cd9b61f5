package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/testutil"
)

func deps() character.Deps {
	return character.Deps{Roller: testutil.Roller(testutil.NewSequenceSource())}
}

func TestBuildPlayer_Default(t *testing.T) {
	p, err := character.BuildPlayer("hero", "Hero", character.DefaultAbilities(), deps())
	require.NoError(t, err)
	assert.Equal(t, "Hero", p.Name)
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, character.PointBuyBudget, character.PointsSpent(character.DefaultAbilities()))
}

func TestBuildPlayer_Rejects(t *testing.T) {
	_, err := character.BuildPlayer("hero", "", character.DefaultAbilities(), deps())
	assert.Error(t, err, "empty name")

	over := character.DefaultAbilities()
	over.Wisdom = 12
	_, err = character.BuildPlayer("hero", "Hero", over, deps())
	assert.ErrorContains(t, err, "budget")

	low := character.DefaultAbilities()
	low.Charisma = 7
	_, err = character.BuildPlayer("hero", "Hero", low, deps())
	assert.ErrorContains(t, err, "CHA 7")
}

func TestValidatePointBuy_RefundsBelowBase(t *testing.T) {
	a := character.Abilities{Strength: 18, Dexterity: 14, Constitution: 10, Intelligence: 8, Wisdom: 8, Charisma: 10}
	assert.Equal(t, 8+4-2-2, character.PointsSpent(a))
	assert.NoError(t, character.ValidatePointBuy(a))
}

func TestValidatePointBuy_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gen := rapid.IntRange(5, 20)
		a := character.Abilities{
			Strength: gen.Draw(rt, "str"), Dexterity: gen.Draw(rt, "dex"), Constitution: gen.Draw(rt, "con"),
			Intelligence: gen.Draw(rt, "int"), Wisdom: gen.Draw(rt, "wis"), Charisma: gen.Draw(rt, "cha"),
		}
		inRange := true
		for _, s := range a.Scores() {
			if s < character.PointBuyMin || s > character.PointBuyMax {
				inRange = false
			}
		}
		want := inRange && character.PointsSpent(a) <= character.PointBuyBudget
		assert.Equal(rt, want, character.ValidatePointBuy(a) == nil)
	})
}

func TestAbilityName(t *testing.T) {
	assert.Equal(t, "STR", character.AbilityName(0))
	assert.Equal(t, "CHA", character.AbilityName(5))
	assert.Equal(t, "<9>", character.AbilityName(9))
}

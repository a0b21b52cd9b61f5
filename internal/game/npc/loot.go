package npc

import (
	"fmt"

	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/inventory"
)

// DefaultDropChance is the percent chance a defeated enemy drops anything.
const DefaultDropChance = 30

// LootWeights are the relative odds of each droppable kind.
type LootWeights struct {
	Weapon int `yaml:"weapon"`
	Armor  int `yaml:"armor"`
	Potion int `yaml:"potion"`
}

func (w LootWeights) total() int { return w.Weapon + w.Armor + w.Potion }

// LootTable decides what a defeated enemy leaves behind.
type LootTable struct {
	// Chance is the drop probability in percent, 0..100.
	Chance  int         `yaml:"chance"`
	Weights LootWeights `yaml:"weights"`
}

// DefaultLootTable is a 30% drop with weapon, armor, and potion equally likely.
func DefaultLootTable() LootTable {
	return LootTable{
		Chance:  DefaultDropChance,
		Weights: LootWeights{Weapon: 1, Armor: 1, Potion: 1},
	}
}

// Validate checks that the loot table satisfies its invariants.
//
// Precondition: lt must not be nil.
// Postcondition: Returns nil iff Chance is a percentage, no weight is negative,
// and a non-zero Chance has at least one positive weight.
func (lt *LootTable) Validate() error {
	if lt.Chance < 0 || lt.Chance > 100 {
		return fmt.Errorf("loot table: chance must be in [0, 100], got %d", lt.Chance)
	}
	w := lt.Weights
	if w.Weapon < 0 || w.Armor < 0 || w.Potion < 0 {
		return fmt.Errorf("loot table: weights must be >= 0, got %+v", w)
	}
	if lt.Chance > 0 && w.total() == 0 {
		return fmt.Errorf("loot table: chance %d needs at least one positive weight", lt.Chance)
	}
	return nil
}

// Roll decides whether anything drops and, if so, which kind.
//
// Precondition: roller is non-nil.
// Postcondition: dropped is false iff the chance roll failed or no weight is positive.
func (lt LootTable) Roll(roller *dice.Roller) (kind inventory.Kind, dropped bool) {
	total := lt.Weights.total()
	if total <= 0 || !roller.Percent(lt.Chance) {
		return "", false
	}
	pick := roller.IntRange(1, total)
	switch {
	case pick <= lt.Weights.Weapon:
		return inventory.KindWeapon, true
	case pick <= lt.Weights.Weapon+lt.Weights.Armor:
		return inventory.KindArmor, true
	default:
		return inventory.KindPotion, true
	}
}

// Drop rolls the table and generates the item scaled to level, or returns nil.
func (lt LootTable) Drop(level int, roller *dice.Roller) *inventory.Item {
	kind, ok := lt.Roll(roller)
	if !ok {
		return nil
	}
	return inventory.GenerateLoot(kind, level, roller)
}

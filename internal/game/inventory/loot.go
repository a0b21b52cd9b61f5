package inventory

import (
	"fmt"

	"github.com/cory-johannsen/lance/internal/game/dice"
)

var (
	lootWeaponTypes = []string{"Sword", "Axe", "Mace", "Staff"}
	lootArmorTypes  = []string{"Leather", "Chain", "Plate", "Shield"}
)

// GenerateLoot builds a random item of the given kind scaled to the player's level.
// The returned item has a fresh instance ID and is owned by nobody yet.
//
// Precondition: kind is KindWeapon, KindArmor, or KindPotion; roller is non-nil.
// Postcondition: returns nil for any other kind. Levels below 1 are treated as 1.
func GenerateLoot(kind Kind, level int, roller *dice.Roller) *Item {
	level = max(1, level)
	var it *Item
	switch kind {
	case KindWeapon:
		t := lootWeaponTypes[roller.Pick(len(lootWeaponTypes))]
		it = NewWeapon(
			t+" of Power",
			fmt.Sprintf("A well-made %s with a faint glow along its edge.", t),
			level*10,
			WeaponStats{MinDamage: 1 + level/2, MaxDamage: 3 + level, AttackBonus: 1, Type: t},
		)
	case KindArmor:
		t := lootArmorTypes[roller.Pick(len(lootArmorTypes))]
		it = NewArmor(
			t+" of Defense",
			fmt.Sprintf("Sturdy %s armor.", t),
			level*15,
			ArmorStats{Defense: 1 + level/2, Type: t},
		)
	case KindPotion:
		it = NewPotion(
			"Healing Potion",
			"A red draught that closes wounds.",
			level*5,
			PotionStats{Heal: 5 + level*3},
		)
	default:
		return nil
	}
	return Stamp(it)
}

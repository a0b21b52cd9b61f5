// Package combat implements the attack-roll versus armor-class resolution
// shared by players and enemies.
package combat

// Attacker is anything that can make an attack roll and a damage roll.
type Attacker interface {
	ID() string
	// RollAttack returns a full attack total: d20 plus every modifier.
	RollAttack() int
	// RollDamage returns the damage dealt on a hit.
	RollDamage() int
}

// Defender is anything that can be targeted by an attack.
type Defender interface {
	ID() string
	ArmorClass() int
	TakeDamage(amount int)
}

// AbilityMod computes the standard ability modifier using floor division: floor((score - 10) / 2).
// Postcondition: Returns floor((score - 10) / 2).
func AbilityMod(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// DamageBonus is the strength contribution to damage. Penalties never reduce damage.
//
// Postcondition: Returns max(0, AbilityMod(strength)).
func DamageBonus(strength int) int {
	return max(0, AbilityMod(strength))
}

// Hits reports whether an attack total meets or beats the armor class.
func Hits(total, armorClass int) bool {
	return total >= armorClass
}

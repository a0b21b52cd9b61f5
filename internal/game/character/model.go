// Package character defines the character domain model shared by players and
// enemies: attributes, derived stats, the attack path, and progression.
package character

import (
	"fmt"

	"github.com/cory-johannsen/lance/internal/game/combat"
	"github.com/cory-johannsen/lance/internal/game/cue"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
)

// Abilities holds the six ability scores. Scores are conventionally in [3, 18]
// but are not clamped.
type Abilities struct {
	Strength     int `yaml:"strength"`
	Dexterity    int `yaml:"dexterity"`
	Constitution int `yaml:"constitution"`
	Intelligence int `yaml:"intelligence"`
	Wisdom       int `yaml:"wisdom"`
	Charisma     int `yaml:"charisma"`
}

// abilityCount is the number of ability scores.
const abilityCount = 6

// ptr returns a pointer to the i-th score in declaration order.
func (a *Abilities) ptr(i int) *int {
	switch i {
	case 0:
		return &a.Strength
	case 1:
		return &a.Dexterity
	case 2:
		return &a.Constitution
	case 3:
		return &a.Intelligence
	case 4:
		return &a.Wisdom
	default:
		return &a.Charisma
	}
}

// Scores returns the six scores in declaration order.
func (a Abilities) Scores() [abilityCount]int {
	return [abilityCount]int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}

// String renders the scores as "STR 10 DEX 12 ...".
func (a Abilities) String() string {
	s := a.Scores()
	return fmt.Sprintf("STR %d DEX %d CON %d INT %d WIS %d CHA %d", s[0], s[1], s[2], s[3], s[4], s[5])
}

// Deps are the collaborators every character rolls and signals through.
type Deps struct {
	Roller *dice.Roller
	Cues   cue.Sink
}

// Character is the state shared by players and enemies.
//
// Invariant: 0 <= Health() <= MaxHealth(); 0 <= Mana() <= MaxMana(); Level() >= 1.
// Invariant: IsActive() is false iff health has reached zero.
type Character struct {
	id        string
	Name      string
	Abilities Abilities
	Position  geom.Vec2

	level     int
	health    int
	maxHealth int
	mana      int
	maxMana   int
	active    bool
	equipment inventory.Equipment

	roller *dice.Roller
	cues   cue.Sink
}

// New creates a character at full health and mana.
//
// maxHealth = 10 + constitution + 1d8; maxMana = 10 + intelligence.
//
// Precondition: deps.Roller is non-nil. A nil deps.Cues is replaced with cue.Nop.
// Postcondition: the character is active at level max(1, level).
func New(id, name string, abilities Abilities, level int, deps Deps) *Character {
	if deps.Roller == nil {
		panic("character: New requires a non-nil Roller")
	}
	c := &Character{
		id:        id,
		Name:      name,
		Abilities: abilities,
		level:     max(1, level),
		active:    true,
		roller:    deps.Roller,
		cues:      cue.OrNop(deps.Cues),
	}
	c.maxHealth = max(1, 10+abilities.Constitution+c.roller.D(8))
	c.maxMana = max(0, 10+abilities.Intelligence)
	c.health = c.maxHealth
	c.mana = c.maxMana
	return c
}

func (c *Character) ID() string           { return c.id }
func (c *Character) Level() int           { return c.level }
func (c *Character) Health() int          { return c.health }
func (c *Character) MaxHealth() int       { return c.maxHealth }
func (c *Character) Mana() int            { return c.mana }
func (c *Character) MaxMana() int         { return c.maxMana }
func (c *Character) IsActive() bool       { return c.active }
func (c *Character) Roller() *dice.Roller { return c.roller }

// HealthRatio returns health/maxHealth in [0, 1].
func (c *Character) HealthRatio() float64 {
	return float64(c.health) / float64(c.maxHealth)
}

// ManaRatio returns mana/maxMana in [0, 1]; zero when maxMana is zero.
func (c *Character) ManaRatio() float64 {
	if c.maxMana == 0 {
		return 0
	}
	return float64(c.mana) / float64(c.maxMana)
}

// ArmorClass = 10 + dexterity modifier + equipped armor defense.
func (c *Character) ArmorClass() int {
	return 10 + combat.AbilityMod(c.Abilities.Dexterity) + c.equipment.Defense()
}

// AttackBonus is the strength modifier.
func (c *Character) AttackBonus() int {
	return combat.AbilityMod(c.Abilities.Strength)
}

// RollAttack returns 1d20 + AttackBonus + the equipped weapon's attack bonus.
func (c *Character) RollAttack() int {
	return c.roller.D(20) + c.AttackBonus() + c.equipment.AttackBonus()
}

// RollDamage returns the weapon's damage roll, or 1d4 unarmed, plus the
// non-negative strength bonus.
func (c *Character) RollDamage() int {
	bonus := combat.DamageBonus(c.Abilities.Strength)
	if w, ok := c.equipment.Weapon().Weapon(); ok {
		return w.RollDamage(c.roller) + bonus
	}
	return c.roller.D(4) + bonus
}

// Attack resolves one attack against target and reports whether it hit.
// Misses have no side effect on the target.
//
// Precondition: target is non-nil.
func (c *Character) Attack(target combat.Defender) bool {
	c.cues.Trigger(cue.Attack, c.id)
	return combat.Resolve(c, target).Hit
}

// TakeDamage subtracts amount from health, flooring at zero. Non-positive
// amounts are ignored. Reaching zero marks the character inactive.
func (c *Character) TakeDamage(amount int) {
	if amount <= 0 || !c.active {
		return
	}
	c.health = max(0, c.health-amount)
	c.cues.Trigger(cue.Hurt, c.id)
	if c.health == 0 {
		c.active = false
		c.cues.Trigger(cue.Death, c.id)
	}
}

// Heal adds amount to health, capped at MaxHealth. Non-positive amounts and
// inactive characters are ignored.
func (c *Character) Heal(amount int) {
	if amount <= 0 || !c.active {
		return
	}
	c.health = min(c.maxHealth, c.health+amount)
}

// SpendMana deducts amount and reports success. Nothing is spent when the
// character cannot afford it or amount is negative.
func (c *Character) SpendMana(amount int) bool {
	if amount < 0 || amount > c.mana {
		return false
	}
	c.mana -= amount
	return true
}

// RestoreMana adds amount to mana, capped at MaxMana. Non-positive amounts are ignored.
func (c *Character) RestoreMana(amount int) {
	if amount <= 0 {
		return
	}
	c.mana = min(c.maxMana, c.mana+amount)
}

// EquipWeapon replaces the weapon slot and returns the previously equipped
// item, or nil. Non-weapons are rejected with ok false.
func (c *Character) EquipWeapon(it *inventory.Item) (previous *inventory.Item, ok bool) {
	return c.equipment.EquipWeapon(it)
}

// EquipArmor replaces the armor slot and returns the previously equipped
// item, or nil. Non-armor is rejected with ok false.
func (c *Character) EquipArmor(it *inventory.Item) (previous *inventory.Item, ok bool) {
	return c.equipment.EquipArmor(it)
}

// Weapon returns the equipped weapon, or nil.
func (c *Character) Weapon() *inventory.Item { return c.equipment.Weapon() }

// Armor returns the equipped armor, or nil.
func (c *Character) Armor() *inventory.Item { return c.equipment.Armor() }

var (
	_ combat.Attacker = (*Character)(nil)
	_ combat.Defender = (*Character)(nil)
)

package inventory

import (
	"errors"
	"fmt"
)

// WeaponStats is the payload of a weapon.
type WeaponStats struct {
	MinDamage   int    `yaml:"min_damage"`
	MaxDamage   int    `yaml:"max_damage"`
	AttackBonus int    `yaml:"attack_bonus"`
	Type        string `yaml:"type"` // Sword, Axe, Mace, Staff
}

// Validate checks the damage range.
func (w *WeaponStats) Validate() error {
	var errs []error
	if w.MinDamage < 0 {
		errs = append(errs, errors.New("weapon min_damage must be >= 0"))
	}
	if w.MaxDamage < w.MinDamage {
		errs = append(errs, fmt.Errorf("weapon max_damage %d must be >= min_damage %d", w.MaxDamage, w.MinDamage))
	}
	return errors.Join(errs...)
}

// IntRanger draws a uniform integer from an inclusive range. *dice.Roller
// satisfies it.
type IntRanger interface {
	IntRange(lo, hi int) int
}

// RollDamage returns a uniform integer in [MinDamage, MaxDamage].
func (w WeaponStats) RollDamage(r IntRanger) int {
	return r.IntRange(w.MinDamage, w.MaxDamage)
}

package character

import (
	"errors"
	"fmt"
)

// Point-buy rules for a new player: every score starts at PointBuyBase, the
// player may spend up to PointBuyBudget points raising scores, and lowering a
// score below the base refunds a point per step.
const (
	PointBuyBudget = 10
	PointBuyBase   = 10
	PointBuyMin    = 8
	PointBuyMax    = 18
)

// abilityLabels are the short display labels in declaration order.
var abilityLabels = [abilityCount]string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// PointsSpent returns the net points a score array costs against the base.
func PointsSpent(a Abilities) int {
	spent := 0
	for _, s := range a.Scores() {
		spent += s - PointBuyBase
	}
	return spent
}

// ValidatePointBuy checks every score bound and the overall budget.
//
// Postcondition: returns nil iff every score is in [PointBuyMin, PointBuyMax]
// and PointsSpent(a) <= PointBuyBudget.
func ValidatePointBuy(a Abilities) error {
	var errs []error
	for i, s := range a.Scores() {
		if s < PointBuyMin || s > PointBuyMax {
			errs = append(errs, fmt.Errorf("%s %d out of range [%d, %d]", abilityLabels[i], s, PointBuyMin, PointBuyMax))
		}
	}
	if spent := PointsSpent(a); spent > PointBuyBudget {
		errs = append(errs, fmt.Errorf("spent %d points, budget is %d", spent, PointBuyBudget))
	}
	return errors.Join(errs...)
}

// DefaultAbilities is a balanced allocation that spends the full budget.
func DefaultAbilities() Abilities {
	return Abilities{Strength: 14, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 10}
}

// BuildPlayer constructs a new level-1 Player from a point-buy allocation.
//
// Precondition: deps.Roller is non-nil.
// Postcondition: Returns a Player ready to place in a dungeon, or a non-nil error.
func BuildPlayer(id, name string, abilities Abilities, deps Deps) (*Player, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if err := ValidatePointBuy(abilities); err != nil {
		return nil, fmt.Errorf("invalid point-buy for %q: %w", name, err)
	}
	return NewPlayer(id, name, abilities, deps), nil
}

// AbilityName returns the short display label for an ability index in
// declaration order (0 = STR ... 5 = CHA).
func AbilityName(i int) string {
	if i < 0 || i >= abilityCount {
		return fmt.Sprintf("<%d>", i)
	}
	return abilityLabels[i]
}

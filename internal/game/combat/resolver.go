package combat

// AttackResult holds the outcome of a single attack action.
type AttackResult struct {
	// AttackerID is the attacking combatant's ID.
	AttackerID string
	// TargetID is the defending combatant's ID.
	TargetID string
	// AttackTotal is the full attack roll: d20 + modifiers.
	AttackTotal int
	// TargetAC is the defender's armor class at the moment of the roll.
	TargetAC int
	// Hit is true when AttackTotal >= TargetAC.
	Hit bool
	// Damage is the amount applied to the target; zero on a miss.
	Damage int
}

// Resolve performs one attack from a against d. On a hit the damage roll is
// applied to d through TakeDamage; on a miss nothing is rolled or applied.
//
// Precondition: a and d must be non-nil.
// Postcondition: result.Damage > 0 only if result.Hit.
func Resolve(a Attacker, d Defender) AttackResult {
	total := a.RollAttack()
	ac := d.ArmorClass()
	res := AttackResult{
		AttackerID:  a.ID(),
		TargetID:    d.ID(),
		AttackTotal: total,
		TargetAC:    ac,
		Hit:         Hits(total, ac),
	}
	if !res.Hit {
		return res
	}
	res.Damage = a.RollDamage()
	d.TakeDamage(res.Damage)
	return res
}

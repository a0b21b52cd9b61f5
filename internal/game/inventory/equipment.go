package inventory

// Equipment is the single-owner pair of equipped slots carried by a character:
// one weapon and one armor piece. Equipped items belong to the slot and to no
// other container.
type Equipment struct {
	weapon *Item
	armor  *Item
}

// EquipWeapon places it in the weapon slot and returns the item it displaced.
//
// Postcondition: ok is false and nothing changes when it is not a weapon.
func (e *Equipment) EquipWeapon(it *Item) (previous *Item, ok bool) {
	if _, isWeapon := it.Weapon(); !isWeapon {
		return nil, false
	}
	previous, e.weapon = e.weapon, it
	it.OnGround = false
	return previous, true
}

// EquipArmor places it in the armor slot and returns the item it displaced.
//
// Postcondition: ok is false and nothing changes when it is not armor.
func (e *Equipment) EquipArmor(it *Item) (previous *Item, ok bool) {
	if _, isArmor := it.Armor(); !isArmor {
		return nil, false
	}
	previous, e.armor = e.armor, it
	it.OnGround = false
	return previous, true
}

// Weapon returns the equipped weapon, or nil when unarmed.
func (e *Equipment) Weapon() *Item { return e.weapon }

// Armor returns the equipped armor, or nil.
func (e *Equipment) Armor() *Item { return e.armor }

// AttackBonus is the equipped weapon's flat attack bonus; zero when unarmed.
func (e *Equipment) AttackBonus() int {
	w, _ := e.weapon.Weapon()
	return w.AttackBonus
}

// Defense is the equipped armor's defense; zero when unarmored.
func (e *Equipment) Defense() int {
	a, _ := e.armor.Armor()
	return a.Defense
}

package character

import (
	"maps"

	"github.com/cory-johannsen/lance/internal/game/combat"
	"github.com/cory-johannsen/lance/internal/game/cue"
	"github.com/cory-johannsen/lance/internal/game/inventory"
)

// StartingGold is the purse every new player begins with.
const StartingGold = 50

// XPPerLevel is the experience threshold multiplier: a level-L player levels
// up when experience reaches L*XPPerLevel.
const XPPerLevel = 1000

// Player is the controlled character. It adds experience, gold, an ordered
// pack, learned spells, and quest flags to Character.
//
// Invariant: Experience() >= 0 and Experience() < Level()*XPPerLevel between calls.
// Invariant: Gold() >= 0.
type Player struct {
	*Character

	experience int
	gold       int
	pack       *inventory.Pack
	spells     []*Spell
	quests     map[string]bool
}

// NewPlayer creates a level-1 player with StartingGold and an empty pack.
//
// Precondition: deps.Roller is non-nil.
func NewPlayer(id, name string, abilities Abilities, deps Deps) *Player {
	return &Player{
		Character: New(id, name, abilities, 1, deps),
		gold:      StartingGold,
		pack:      inventory.NewPack(),
		quests:    make(map[string]bool),
	}
}

func (p *Player) Experience() int       { return p.experience }
func (p *Player) Gold() int             { return p.gold }
func (p *Player) Pack() *inventory.Pack { return p.pack }

// Spells returns the learned spells in learning order.
func (p *Player) Spells() []*Spell {
	out := make([]*Spell, len(p.spells))
	copy(out, p.spells)
	return out
}

// GainExperience adds amount and applies one level-up per threshold crossed.
// Non-positive amounts are ignored.
//
// Postcondition: Experience() < Level()*XPPerLevel.
func (p *Player) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.experience += amount
	for p.experience >= p.level*XPPerLevel {
		p.levelUp()
	}
}

// levelUp consumes the threshold just crossed and grows the character.
func (p *Player) levelUp() {
	p.experience -= p.level * XPPerLevel
	p.level++

	p.maxHealth += max(1, p.roller.D(8)+combat.AbilityMod(p.Abilities.Constitution))
	p.health = p.maxHealth
	p.maxMana += max(0, p.roller.D(4)+combat.AbilityMod(p.Abilities.Intelligence))
	p.mana = p.maxMana

	*p.Abilities.ptr(p.roller.Pick(abilityCount))++
	p.cues.Trigger(cue.LevelUp, p.id)
}

// AddGold adds amount to the purse. Non-positive amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	p.gold += amount
}

// AddItem moves it into the pack. A nil item is ignored.
func (p *Player) AddItem(it *inventory.Item) {
	if it == nil {
		return
	}
	p.pack.Add(it)
	p.cues.Trigger(cue.ItemPickup, p.id)
}

// RemoveItem removes and returns the pack item at index. An invalid index is a no-op.
func (p *Player) RemoveItem(index int) (*inventory.Item, bool) {
	return p.pack.Remove(index)
}

// UseItem applies the pack item at index and reports whether anything happened.
// Potions heal and are consumed. Weapons and armor are equipped, and the item
// they displace returns to the pack. Generic items and invalid indices do nothing.
func (p *Player) UseItem(index int) bool {
	it, ok := p.pack.Get(index)
	if !ok {
		return false
	}
	switch it.Kind {
	case inventory.KindPotion:
		ps, _ := it.Potion()
		p.pack.Remove(index)
		p.Heal(ps.Heal)
		return true
	case inventory.KindWeapon:
		p.pack.Remove(index)
		prev, _ := p.EquipWeapon(it)
		p.pack.Add(prev)
		return true
	case inventory.KindArmor:
		p.pack.Remove(index)
		prev, _ := p.EquipArmor(it)
		p.pack.Add(prev)
		return true
	default:
		return false
	}
}

// SetQuestFlag records a quest flag.
func (p *Player) SetQuestFlag(name string, done bool) {
	p.quests[name] = done
}

// HasQuestFlag reports whether the flag is set to true.
func (p *Player) HasQuestFlag(name string) bool {
	return p.quests[name]
}

// QuestFlags returns a copy of all quest flags.
func (p *Player) QuestFlags() map[string]bool {
	return maps.Clone(p.quests)
}

// LearnSpell appends s to the spell list. A nil spell is ignored.
func (p *Player) LearnSpell(s *Spell) {
	if s == nil {
		return
	}
	p.spells = append(p.spells, s)
}

// PrepareCast validates and pays for the spell at index without applying its
// effect. It fails on an invalid index, when the player is below the spell's
// minimum level, or when mana is insufficient; nothing is spent on failure.
func (p *Player) PrepareCast(index int) (*Spell, bool) {
	if index < 0 || index >= len(p.spells) {
		return nil, false
	}
	s := p.spells[index]
	if p.level < s.MinimumLevel {
		return nil, false
	}
	if !p.SpendMana(s.ManaCost) {
		return nil, false
	}
	return s, true
}

// CastSpell casts the spell at index on target and returns the effect's result.
func (p *Player) CastSpell(index int, target *Character) bool {
	s, ok := p.PrepareCast(index)
	if !ok {
		return false
	}
	return s.Cast(p.Character, target)
}

package character

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/lance/internal/game/dice"
)

// Effect applies a spell from caster to target and reports success.
type Effect func(caster, target *Character) bool

// Spell is an immutable spell definition shared by every caster that learns it.
type Spell struct {
	ID           string
	Name         string
	Description  string
	ManaCost     int
	MinimumLevel int
	// Ranged spells travel as a projectile and apply Effect on impact.
	Ranged bool
	// Offensive spells need an enemy target; the rest target their caster.
	Offensive bool
	Effect    Effect
}

// Cast applies the effect. A spell without an effect always fails.
func (s *Spell) Cast(caster, target *Character) bool {
	if s.Effect == nil {
		return false
	}
	return s.Effect(caster, target)
}

// Effect kinds understood by SpellDef.
const (
	EffectDamage = "damage"
	EffectHeal   = "heal"
)

// SpellDef is the YAML form of a spell.
type SpellDef struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ManaCost     int    `yaml:"mana_cost"`
	MinimumLevel int    `yaml:"minimum_level"`
	Ranged       bool   `yaml:"ranged"`
	Effect       string `yaml:"effect"`
	Dice         string `yaml:"dice"`
}

// Validate checks that the SpellDef satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (d *SpellDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.ManaCost < 0 {
		errs = append(errs, errors.New("mana_cost must be >= 0"))
	}
	if d.MinimumLevel < 1 {
		errs = append(errs, errors.New("minimum_level must be >= 1"))
	}
	if d.Effect != EffectDamage && d.Effect != EffectHeal {
		errs = append(errs, fmt.Errorf("effect must be one of damage, heal; got %q", d.Effect))
	}
	if _, err := dice.Parse(d.Dice); err != nil {
		errs = append(errs, fmt.Errorf("dice: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("spell %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}

// Build turns the definition into a Spell whose effect rolls through the
// caster's dice roller.
//
// Precondition: d passed Validate.
func (d *SpellDef) Build() *Spell {
	expr := dice.MustParse(d.Dice)
	s := &Spell{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		ManaCost:     d.ManaCost,
		MinimumLevel: d.MinimumLevel,
		Ranged:       d.Ranged,
	}
	switch d.Effect {
	case EffectDamage:
		s.Effect = DamageEffect(expr)
		s.Offensive = true
	case EffectHeal:
		s.Effect = HealEffect(expr)
	}
	return s
}

// DamageEffect rolls expr and applies it to a live target.
func DamageEffect(expr dice.Expression) Effect {
	return func(caster, target *Character) bool {
		if target == nil || !target.IsActive() || target == caster {
			return false
		}
		target.TakeDamage(max(1, caster.roller.Roll(expr).Total()))
		return true
	}
}

// HealEffect rolls expr and heals target, or the caster when target is nil.
func HealEffect(expr dice.Expression) Effect {
	return func(caster, target *Character) bool {
		if target == nil {
			target = caster
		}
		if !target.IsActive() {
			return false
		}
		target.Heal(max(1, caster.roller.Roll(expr).Total()))
		return true
	}
}

// LoadSpells parses a YAML list of SpellDefs from file within fsys, validates
// each, and returns the built spells in file order.
func LoadSpells(fsys fs.FS, file string) ([]*Spell, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("LoadSpells: cannot read file %q: %w", file, err)
	}
	var defs []SpellDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("LoadSpells: cannot parse file %q: %w", file, err)
	}
	spells := make([]*Spell, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, fmt.Errorf("LoadSpells: %w", err)
		}
		if seen[defs[i].ID] {
			return nil, fmt.Errorf("LoadSpells: duplicate spell id %q", defs[i].ID)
		}
		seen[defs[i].ID] = true
		spells = append(spells, defs[i].Build())
	}
	return spells, nil
}

// Package npc provides enemy template definitions, loot tables, and the live
// Enemy that couples a character with its AI machine.
package npc

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/lance/internal/game/ai"
	"github.com/cory-johannsen/lance/internal/game/character"
)

// Role is the population tier a template fills.
type Role string

// Role constants for Template.Role.
const (
	RoleWeak   Role = "weak"
	RoleMedium Role = "medium"
	RoleBoss   Role = "boss"
)

// Template defines a reusable enemy archetype loaded from YAML.
type Template struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Role        Role                `yaml:"role"`
	Level       int                 `yaml:"level"`
	Abilities   character.Abilities `yaml:"abilities"`
	XPReward    int                 `yaml:"xp_reward"`
	GoldReward  int                 `yaml:"gold_reward"`
	AI          ai.Params           `yaml:"ai"`
	Loot        *LootTable          `yaml:"loot"`
}

// Validate checks that the template satisfies basic invariants. Zero AI
// parameters are filled from ai.DefaultParams before they are checked.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff the template is usable; returns an error on
// the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	switch t.Role {
	case RoleWeak, RoleMedium, RoleBoss:
	default:
		return fmt.Errorf("npc template %q: role must be one of weak, medium, boss; got %q", t.ID, t.Role)
	}
	if t.Level < 1 {
		return fmt.Errorf("npc template %q: level must be >= 1", t.ID)
	}
	if t.XPReward < 0 {
		return fmt.Errorf("npc template %q: xp_reward must be >= 0", t.ID)
	}
	if t.GoldReward < 0 {
		return fmt.Errorf("npc template %q: gold_reward must be >= 0", t.ID)
	}
	if err := t.AI.WithDefaults().Validate(); err != nil {
		return fmt.Errorf("npc template %q: %w", t.ID, err)
	}
	if t.Loot != nil {
		if err := t.Loot.Validate(); err != nil {
			return fmt.Errorf("npc template %q: %w", t.ID, err)
		}
	}
	return nil
}

// Params returns the template's AI parameters with defaults applied.
func (t *Template) Params() ai.Params {
	return t.AI.WithDefaults()
}

// LootTable returns the template's loot table, or DefaultLootTable when none
// is configured.
func (t *Template) LootTable() LootTable {
	if t.Loot == nil {
		return DefaultLootTable()
	}
	return *t.Loot
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir within fsys and returns the
// parsed templates in directory order.
//
// Precondition: dir must be a readable directory in fsys.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(fsys fs.FS, dir string) ([]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

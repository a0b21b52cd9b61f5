// Package inventory models items as a closed tagged variant, the containers
// that own them (a character's pack, the dungeon floor, equipment slots), and
// the definitions and loot rules that create them.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Kind discriminates the item variant.
type Kind string

// Kind constants for Item.Kind and ItemDef.Kind.
const (
	KindGeneric Kind = "generic"
	KindWeapon  Kind = "weapon"
	KindArmor   Kind = "armor"
	KindPotion  Kind = "potion"
)

// validKinds is the set of valid item kinds.
var validKinds = map[Kind]bool{
	KindGeneric: true,
	KindWeapon:  true,
	KindArmor:   true,
	KindPotion:  true,
}

// PotionStats is the payload of a potion.
type PotionStats struct {
	Heal int `yaml:"heal"`
}

// Item is a concrete item instance. Exactly one payload matching Kind is set;
// generic items carry none. Payloads are reachable only through the typed
// accessors, so consumers switch on Kind instead of inspecting fields.
//
// An item is owned by exactly one container at a time: the dungeon floor
// (OnGround true) or a character's pack or equipment (OnGround false).
type Item struct {
	InstanceID  string
	DefID       string
	Name        string
	Kind        Kind
	Description string
	Value       int
	OnGround    bool
	Position    geom.Vec2

	weapon *WeaponStats
	armor  *ArmorStats
	potion *PotionStats
}

// NewGeneric creates a generic item with no payload.
func NewGeneric(name, description string, value int) *Item {
	return &Item{Name: name, Kind: KindGeneric, Description: description, Value: value}
}

// NewWeapon creates a weapon item.
func NewWeapon(name, description string, value int, stats WeaponStats) *Item {
	return &Item{Name: name, Kind: KindWeapon, Description: description, Value: value, weapon: &stats}
}

// NewArmor creates an armor item.
func NewArmor(name, description string, value int, stats ArmorStats) *Item {
	return &Item{Name: name, Kind: KindArmor, Description: description, Value: value, armor: &stats}
}

// NewPotion creates a potion item.
func NewPotion(name, description string, value int, stats PotionStats) *Item {
	return &Item{Name: name, Kind: KindPotion, Description: description, Value: value, potion: &stats}
}

// Weapon returns the weapon payload.
//
// Postcondition: ok is true iff Kind == KindWeapon.
func (it *Item) Weapon() (WeaponStats, bool) {
	if it == nil || it.weapon == nil {
		return WeaponStats{}, false
	}
	return *it.weapon, true
}

// Armor returns the armor payload.
//
// Postcondition: ok is true iff Kind == KindArmor.
func (it *Item) Armor() (ArmorStats, bool) {
	if it == nil || it.armor == nil {
		return ArmorStats{}, false
	}
	return *it.armor, true
}

// Potion returns the potion payload.
//
// Postcondition: ok is true iff Kind == KindPotion.
func (it *Item) Potion() (PotionStats, bool) {
	if it == nil || it.potion == nil {
		return PotionStats{}, false
	}
	return *it.potion, true
}

// Summary is the one-line inventory listing for the item.
func (it *Item) Summary() string {
	if w, ok := it.Weapon(); ok {
		return fmt.Sprintf("%s (%d-%d dmg, %+d atk)", it.Name, w.MinDamage, w.MaxDamage, w.AttackBonus)
	}
	if a, ok := it.Armor(); ok {
		return fmt.Sprintf("%s (+%d def)", it.Name, a.Defense)
	}
	if p, ok := it.Potion(); ok {
		return fmt.Sprintf("%s (heals %d)", it.Name, p.Heal)
	}
	return it.Name
}

// ItemDef defines the static properties of an item loaded from YAML.
type ItemDef struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Kind        Kind         `yaml:"kind"`
	Value       int          `yaml:"value"`
	Weapon      *WeaponStats `yaml:"weapon"`
	Armor       *ArmorStats  `yaml:"armor"`
	Potion      *PotionStats `yaml:"potion"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid and exactly the payload
// matching Kind is present.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of generic, weapon, armor, potion; got %q", d.Kind))
	}
	if d.Value < 0 {
		errs = append(errs, errors.New("Value must be >= 0"))
	}
	if (d.Weapon != nil) != (d.Kind == KindWeapon) {
		errs = append(errs, errors.New("weapon stats are required for, and only for, kind weapon"))
	}
	if (d.Armor != nil) != (d.Kind == KindArmor) {
		errs = append(errs, errors.New("armor stats are required for, and only for, kind armor"))
	}
	if (d.Potion != nil) != (d.Kind == KindPotion) {
		errs = append(errs, errors.New("potion stats are required for, and only for, kind potion"))
	}
	if d.Weapon != nil {
		if err := d.Weapon.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if d.Armor != nil && d.Armor.Defense < 0 {
		errs = append(errs, errors.New("armor defense must be >= 0"))
	}
	if d.Potion != nil && d.Potion.Heal <= 0 {
		errs = append(errs, errors.New("potion heal must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// New builds a fresh item instance from the definition. The caller assigns
// the instance ID.
//
// Precondition: d passed Validate.
func (d *ItemDef) New() *Item {
	var it *Item
	switch d.Kind {
	case KindWeapon:
		it = NewWeapon(d.Name, d.Description, d.Value, *d.Weapon)
	case KindArmor:
		it = NewArmor(d.Name, d.Description, d.Value, *d.Armor)
	case KindPotion:
		it = NewPotion(d.Name, d.Description, d.Value, *d.Potion)
	default:
		it = NewGeneric(d.Name, d.Description, d.Value)
	}
	it.DefID = d.ID
	return it
}

// LoadItems reads all *.yaml and *.yml files from dir within fsys, parses each
// as an ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory in fsys.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(fsys fs.FS, dir string) ([]*ItemDef, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", p, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", p, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", p, err)
		}
		items = append(items, &d)
	}
	return items, nil
}

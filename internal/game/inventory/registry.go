package inventory

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Registry holds all loaded item definitions indexed by ID.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*ItemDef),
	}
}

// RegisterItem adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Item returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// AllItems returns all registered ItemDefs sorted by ID.
//
// Postcondition: len(result) == number of registered items.
func (r *Registry) AllItems() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Instantiate creates a new item instance of the definition id, stamped with
// a fresh instance ID.
//
// Postcondition: on success the item's DefID == id and InstanceID is unique.
func (r *Registry) Instantiate(id string) (*Item, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("inventory: unknown item %q", id)
	}
	it := d.New()
	it.InstanceID = uuid.New().String()
	return it, nil
}

// Stamp assigns a fresh instance ID to an item built outside the registry
// (generated loot) and returns it.
func Stamp(it *Item) *Item {
	it.InstanceID = uuid.New().String()
	return it
}

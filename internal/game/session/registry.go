// Package session tracks the characters enemies may target and resolves the
// weak target IDs they hold.
package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cory-johannsen/lance/internal/game/character"
)

// Registry maps character IDs to live characters.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	chars map[string]*character.Character // id → character
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{chars: make(map[string]*character.Character)}
}

// Add registers c under its ID.
//
// Precondition: c must be non-nil with a non-empty ID.
// Postcondition: Returns an error if the ID is already registered.
func (r *Registry) Add(c *character.Character) error {
	if c == nil || c.ID() == "" {
		return fmt.Errorf("session.Registry.Add: character must be non-nil with an id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.chars[c.ID()]; exists {
		return fmt.Errorf("character %q already registered", c.ID())
	}
	r.chars[c.ID()] = c
	return nil
}

// Remove unregisters id.
//
// Postcondition: Returns an error if id is not registered.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.chars[id]; !exists {
		return fmt.Errorf("character %q not found", id)
	}
	delete(r.chars, id)
	return nil
}

// Resolve returns the character registered under id, dead or alive.
//
// Postcondition: Returns (character, true) if found, or (nil, false) otherwise.
func (r *Registry) Resolve(id string) (*character.Character, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chars[id]
	return c, ok
}

// ActiveIDs returns the IDs of registered characters that are still active,
// sorted.
func (r *Registry) ActiveIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.chars))
	for id, c := range r.chars {
		if c.IsActive() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered characters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chars)
}

package npc

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Manager holds enemy templates and spawns enemies from them.
// All methods are safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	templates map[string]*Template // templateID → Template
	counter   atomic.Uint64
}

// NewManager creates a Manager holding templates.
//
// Postcondition: Returns an error on a nil or duplicate template.
func NewManager(templates ...*Template) (*Manager, error) {
	m := &Manager{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		if err := m.Register(t); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register adds tmpl.
//
// Precondition: tmpl must be non-nil.
// Postcondition: Returns an error if a template with the same ID exists.
func (m *Manager) Register(tmpl *Template) error {
	if tmpl == nil {
		return fmt.Errorf("npc.Manager.Register: tmpl must not be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.templates[tmpl.ID]; exists {
		return fmt.Errorf("npc.Manager.Register: duplicate template %q", tmpl.ID)
	}
	m.templates[tmpl.ID] = tmpl
	return nil
}

// Template returns the template with id.
func (m *Manager) Template(id string) (*Template, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.templates[id]
	return t, ok
}

// ByRole returns the templates filling role, sorted by ID.
func (m *Manager) ByRole(role Role) []*Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Template
	for _, t := range m.templates {
		if t.Role == role {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered templates.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.templates)
}

// Spawn creates a new Enemy from tmpl at pos.
//
// Precondition: tmpl must be non-nil; deps.Roller must be non-nil.
// Postcondition: Returns a new Enemy with an ID unique within this Manager.
func (m *Manager) Spawn(tmpl *Template, pos geom.Vec2, deps character.Deps) (*Enemy, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("npc.Manager.Spawn: tmpl must not be nil")
	}
	n := m.counter.Add(1)
	id := fmt.Sprintf("%s-%d", tmpl.ID, n)
	return NewEnemy(id, tmpl, pos, deps), nil
}

package inventory

import (
	"sync"

	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Ground tracks item instances lying on the dungeon floor.
// It is thread-safe via sync.RWMutex.
type Ground struct {
	mu    sync.RWMutex
	items []*Item
}

// NewGround creates a Ground with no items.
//
// Postcondition: returned Ground is ready for use with zero items.
func NewGround() *Ground {
	return &Ground{}
}

// Drop places it on the floor at pos and takes ownership of it.
//
// Precondition: it is not owned by any other container.
// Postcondition: it.OnGround is true and it.Position == pos. A nil item is ignored.
func (g *Ground) Drop(it *Item, pos geom.Vec2) {
	if it == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	it.OnGround = true
	it.Position = pos
	g.items = append(g.items, it)
}

// PickupWithin removes and returns every item whose position is within radius
// of pos, in floor order. Ownership passes to the caller.
//
// Postcondition: every returned item has OnGround false and is no longer on the floor.
func (g *Ground) PickupWithin(pos geom.Vec2, radius float64) []*Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	var taken []*Item
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Position.Dist(pos) <= radius {
			it.OnGround = false
			taken = append(taken, it)
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(g.items); i++ {
		g.items[i] = nil
	}
	g.items = kept
	return taken
}

// Items returns a snapshot copy of all items on the floor.
//
// Postcondition: returned slice is a copy; mutations do not affect internal state.
func (g *Ground) Items() []*Item {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Item, len(g.items))
	copy(out, g.items)
	return out
}

// Len returns the number of items on the floor.
func (g *Ground) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}

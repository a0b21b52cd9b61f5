package inventory

// Pack is an ordered collection of items owned by a character. Duplicates are
// allowed; indices are positions in insertion order.
type Pack struct {
	items []*Item
}

// NewPack creates an empty Pack.
func NewPack() *Pack {
	return &Pack{}
}

// Add appends it to the pack and takes ownership of it.
//
// Postcondition: it.OnGround is false; Len() grows by one. A nil item is ignored.
func (p *Pack) Add(it *Item) {
	if it == nil {
		return
	}
	it.OnGround = false
	p.items = append(p.items, it)
}

// Get returns the item at index without removing it.
//
// Postcondition: ok is false for an out-of-range index.
func (p *Pack) Get(index int) (*Item, bool) {
	if index < 0 || index >= len(p.items) {
		return nil, false
	}
	return p.items[index], true
}

// Remove removes and returns the item at index, preserving the order of the rest.
//
// Postcondition: on an out-of-range index nothing changes and ok is false.
func (p *Pack) Remove(index int) (*Item, bool) {
	if index < 0 || index >= len(p.items) {
		return nil, false
	}
	it := p.items[index]
	p.items = append(p.items[:index], p.items[index+1:]...)
	return it, true
}

// Len returns the number of items in the pack.
func (p *Pack) Len() int { return len(p.items) }

// Items returns a snapshot copy of the pack's items.
//
// Postcondition: returned slice is a copy; mutations do not affect internal state.
func (p *Pack) Items() []*Item {
	out := make([]*Item, len(p.items))
	copy(out, p.items)
	return out
}

// Listing returns one summary line per item, in pack order.
func (p *Pack) Listing() []string {
	out := make([]string, len(p.items))
	for i, it := range p.items {
		out[i] = it.Summary()
	}
	return out
}

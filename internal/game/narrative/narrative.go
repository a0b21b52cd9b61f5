// Package narrative carries discrete story events (intro, victory, game over)
// out of the simulation. Publishing is fire-and-forget: the tick loop never
// waits for a reader to acknowledge an event.
package narrative

import (
	"sync"
)

// Kind identifies a narrative event.
type Kind string

const (
	KindIntro    Kind = "intro"
	KindVictory  Kind = "victory"
	KindGameOver Kind = "game_over"
)

// Event is a titled block of story text.
type Event struct {
	Kind  Kind
	Title string
	Body  string
}

// Sink receives narrative events.
//
// Implementations must not block the caller.
type Sink interface {
	Publish(e Event)
}

// Nop discards every event.
type Nop struct{}

// Publish implements Sink.
func (Nop) Publish(Event) {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// Channel is a Sink backed by a buffered channel. When the buffer is full the
// event is dropped and counted rather than blocking the publisher.
type Channel struct {
	ch      chan Event
	mu      sync.Mutex
	dropped int
}

// NewChannel creates a Channel with the given buffer size.
//
// Precondition: size >= 1.
func NewChannel(size int) *Channel {
	if size < 1 {
		panic("narrative: NewChannel requires size >= 1")
	}
	return &Channel{ch: make(chan Event, size)}
}

// Publish implements Sink.
func (c *Channel) Publish(e Event) {
	select {
	case c.ch <- e:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
	}
}

// Events returns the receive side of the channel.
func (c *Channel) Events() <-chan Event { return c.ch }

// Dropped reports how many events were discarded because the buffer was full.
func (c *Channel) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// Recorder remembers every published event in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Publish implements Sink.
func (r *Recorder) Publish(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns the number of recorded events of kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

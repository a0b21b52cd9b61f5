// Package cue defines the visual/audio cue boundary. The simulation fires
// named cues as side effects of state transitions; what a sink does with them
// never affects game state.
package cue

import (
	"sync"

	"go.uber.org/zap"
)

// Cue names a transient presentation effect.
type Cue string

const (
	Hurt       Cue = "hurt"
	Death      Cue = "death"
	Attack     Cue = "attack"
	ItemPickup Cue = "item-pickup"
	LevelUp    Cue = "level-up"
)

// Sink receives cue triggers.
//
// Implementations must return promptly; the tick loop calls Trigger inline.
type Sink interface {
	Trigger(c Cue, entityID string)
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Trigger implements Sink.
func (Nop) Trigger(Cue, string) {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// Fired is one recorded cue trigger.
type Fired struct {
	Cue      Cue
	EntityID string
}

// Recorder is an in-memory Sink that remembers every trigger in order.
type Recorder struct {
	mu    sync.Mutex
	fired []Fired
}

// Trigger implements Sink.
func (r *Recorder) Trigger(c Cue, entityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = append(r.fired, Fired{Cue: c, EntityID: entityID})
}

// All returns a copy of every recorded trigger.
func (r *Recorder) All() []Fired {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Fired, len(r.fired))
	copy(out, r.fired)
	return out
}

// Count returns how many times c was triggered for entityID.
// An empty entityID matches every entity.
func (r *Recorder) Count(c Cue, entityID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.fired {
		if f.Cue == c && (entityID == "" || f.EntityID == entityID) {
			n++
		}
	}
	return n
}

// Reset clears all recorded triggers.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = nil
}

// LogSink writes every cue to a zap logger at debug level.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink. A nil logger yields a no-op sink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Trigger implements Sink.
func (l *LogSink) Trigger(c Cue, entityID string) {
	l.logger.Debug("cue", zap.String("cue", string(c)), zap.String("entity", entityID))
}

package ai

import (
	"math"

	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Percept is what an enemy senses at the start of its update.
//
// TargetAlive is false when the tracked target no longer resolves or is
// inactive; Target is ignored in that case.
type Percept struct {
	Self        geom.Vec2
	Target      geom.Vec2
	TargetAlive bool
}

// Distance returns the distance to a live target, or +Inf when there is none.
func (p Percept) Distance() float64 {
	if !p.TargetAlive {
		return math.Inf(1)
	}
	return p.Self.Dist(p.Target)
}

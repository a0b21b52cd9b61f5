// Package ai implements the enemy behaviour finite-state machine.
//
// Transition is a pure function from sensed state to the next state; Machine
// owns per-enemy timers and turns each transition into a movement or attack
// decision for the caller to apply.
package ai

// State is an enemy behaviour state.
type State int

const (
	Idle State = iota
	Wander
	Chase
	Attack
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Wander:
		return "wander"
	case Chase:
		return "chase"
	case Attack:
		return "attack"
	default:
		return "unknown"
	}
}

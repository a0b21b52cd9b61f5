package sim

import "github.com/cory-johannsen/lance/internal/game/geom"

// Action is the discrete player action requested for one tick.
type Action int

// Actions.
const (
	ActionNone Action = iota
	ActionAttack
	ActionCast
	ActionUse
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionCast:
		return "cast"
	case ActionUse:
		return "use"
	default:
		return "none"
	}
}

// Intent is the player's input for one tick. Move is a direction; its length
// is ignored. Index selects the spell for ActionCast or the pack slot for
// ActionUse.
type Intent struct {
	Move   geom.Vec2
	Action Action
	Index  int
}

// IntentSource supplies the player's intent each tick.
type IntentSource interface {
	Next(snap *Snapshot) Intent
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func(snap *Snapshot) Intent

// Next calls f.
func (f IntentFunc) Next(snap *Snapshot) Intent { return f(snap) }

package npc

import (
	"github.com/cory-johannsen/lance/internal/game/ai"
	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/geom"
)

// TargetResolver re-resolves a target ID to a character each tick. The
// character may be dead; Update checks.
type TargetResolver interface {
	Resolve(id string) (*character.Character, bool)
}

// Enemy is a live hostile character driven by an AI machine.
//
// TargetID is a weak reference: the enemy never holds the target itself, and a
// target that no longer resolves, or resolves to an inactive character, is
// treated as absent.
type Enemy struct {
	*character.Character

	TemplateID string
	Role       Role
	XPReward   int
	GoldReward int
	TargetID   string
	Loot       LootTable

	machine *ai.Machine
}

// NewEnemy creates an enemy from tmpl at pos.
//
// Precondition: tmpl passed Validate; deps.Roller is non-nil.
func NewEnemy(id string, tmpl *Template, pos geom.Vec2, deps character.Deps) *Enemy {
	c := character.New(id, tmpl.Name, tmpl.Abilities, tmpl.Level, deps)
	c.Position = pos
	return &Enemy{
		Character:  c,
		TemplateID: tmpl.ID,
		Role:       tmpl.Role,
		XPReward:   tmpl.XPReward,
		GoldReward: tmpl.GoldReward,
		Loot:       tmpl.LootTable(),
		machine:    ai.NewMachine(tmpl.Params()),
	}
}

func (e *Enemy) State() ai.State         { return e.machine.State() }
func (e *Enemy) Aggravated() bool        { return e.machine.Aggravated() }
func (e *Enemy) DetectionRange() float64 { return e.machine.Params().DetectionRange }
func (e *Enemy) AttackRange() float64    { return e.machine.Params().AttackRange }
func (e *Enemy) IsBoss() bool            { return e.Role == RoleBoss }

// Update advances the enemy by dt seconds: it senses its target, steps the
// machine, moves, and attacks when the machine decides to. Inactive enemies
// do nothing.
//
// Precondition: resolver is non-nil.
func (e *Enemy) Update(dt float64, resolver TargetResolver) ai.Decision {
	if !e.IsActive() {
		return ai.Decision{State: e.State(), Position: e.Position}
	}
	target, ok := resolver.Resolve(e.TargetID)
	alive := ok && target != nil && target.IsActive()

	p := ai.Percept{Self: e.Position, TargetAlive: alive}
	if alive {
		p.Target = target.Position
	}
	d := e.machine.Step(p, dt, e.Roller())
	if d.Move {
		e.Position = d.Position
	}
	if d.Attack {
		e.Attack(target)
	}
	return d
}

package ai

import (
	"math"

	"github.com/cory-johannsen/lance/internal/game/combat"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Decision is what the machine wants its owner to do this tick.
type Decision struct {
	State State
	// Move is true when Position differs from the percept's Self.
	Move     bool
	Position geom.Vec2
	// Attack is true when the owner should attack its target now.
	Attack bool
}

// Machine is one enemy's behaviour state.
//
// Invariant: once Aggravated() is true it never becomes false.
type Machine struct {
	params       Params
	state        State
	aggravated   bool
	wanderTimer  float64
	wanderTarget geom.Vec2
	attackGate   combat.Cooldown
}

// NewMachine creates an idle, calm machine.
//
// Precondition: params.Validate() == nil.
func NewMachine(params Params) *Machine {
	return &Machine{
		params:     params,
		state:      Idle,
		attackGate: combat.NewCooldown(params.AttackInterval),
	}
}

func (m *Machine) State() State            { return m.state }
func (m *Machine) Aggravated() bool        { return m.aggravated }
func (m *Machine) Params() Params          { return m.params }
func (m *Machine) WanderTarget() geom.Vec2 { return m.wanderTarget }

// Step advances the machine by dt seconds: transition first, then the action
// of the resulting state.
//
// Precondition: roller is non-nil.
func (m *Machine) Step(p Percept, dt float64, roller *dice.Roller) Decision {
	m.attackGate.Advance(dt)

	out := Transition(Input{
		State:       m.state,
		Aggravated:  m.aggravated,
		Distance:    p.Distance(),
		WanderTimer: m.wanderTimer,
		DT:          dt,
		Params:      m.params,
	})
	m.state, m.aggravated, m.wanderTimer = out.State, out.Aggravated, out.WanderTimer
	if out.NewWanderTarget {
		angle := roller.FloatRange(0, 2*math.Pi)
		radius := roller.FloatRange(m.params.WanderMinRadius, m.params.WanderMaxRadius)
		m.wanderTarget = p.Self.Add(geom.FromAngle(angle, radius))
	}

	d := Decision{State: m.state, Position: p.Self}
	switch m.state {
	case Wander:
		d.Position = p.Self.MoveToward(m.wanderTarget, m.params.WanderSpeed*dt)
		d.Move = d.Position != p.Self
		if d.Position.Dist(m.wanderTarget) <= m.params.ArriveRadius {
			m.state = Idle
			d.State = Idle
		}
	case Chase:
		if !p.TargetAlive {
			break
		}
		d.Position = p.Self.MoveToward(p.Target, m.params.ChaseSpeed*dt)
		d.Move = d.Position != p.Self
	case Attack:
		d.Attack = p.TargetAlive && m.attackGate.TryFire()
	}
	return d
}

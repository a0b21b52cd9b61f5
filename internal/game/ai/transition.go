package ai

// Input is everything the transition rule reads.
type Input struct {
	State       State
	Aggravated  bool
	Distance    float64 // to the target; +Inf when there is no live target
	WanderTimer float64 // seconds accumulated toward the next wander
	DT          float64
	Params      Params
}

// Output is the next machine state.
type Output struct {
	State       State
	Aggravated  bool
	WanderTimer float64
	// NewWanderTarget asks the caller to pick a fresh wander destination.
	NewWanderTarget bool
}

// Transition applies the behaviour rule for one tick:
//
//  1. An aggravated enemy, or one whose target is closer than the detection
//     range, is (and stays) aggravated: Attack within attack range, else Chase.
//  2. Otherwise the wander timer accumulates; on reaching the wander interval
//     the timer resets and the enemy starts wandering toward a new target.
//  3. Otherwise the state is unchanged.
//
// Postcondition: in.Aggravated implies out.Aggravated.
func Transition(in Input) Output {
	p := in.Params
	if in.Aggravated || in.Distance < p.DetectionRange {
		out := Output{State: Chase, Aggravated: true, WanderTimer: in.WanderTimer}
		if in.Distance <= p.AttackRange {
			out.State = Attack
		}
		return out
	}

	timer := in.WanderTimer + max(0, in.DT)
	if timer >= p.WanderInterval {
		return Output{State: Wander, WanderTimer: 0, NewWanderTarget: true}
	}
	return Output{State: in.State, WanderTimer: timer}
}

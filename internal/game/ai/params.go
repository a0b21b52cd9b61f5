package ai

import (
	"errors"
	"fmt"
)

// Params tunes the state machine. Distances are in world units, speeds in
// world units per second, intervals in seconds.
type Params struct {
	DetectionRange  float64 `yaml:"detection_range"`
	AttackRange     float64 `yaml:"attack_range"`
	WanderInterval  float64 `yaml:"wander_interval"`
	WanderMinRadius float64 `yaml:"wander_min_radius"`
	WanderMaxRadius float64 `yaml:"wander_max_radius"`
	WanderSpeed     float64 `yaml:"wander_speed"`
	ChaseSpeed      float64 `yaml:"chase_speed"`
	ArriveRadius    float64 `yaml:"arrive_radius"`
	AttackInterval  float64 `yaml:"attack_interval"`
}

// DefaultParams returns the standard enemy tuning.
func DefaultParams() Params {
	return Params{
		DetectionRange:  200,
		AttackRange:     50,
		WanderInterval:  3,
		WanderMinRadius: 50,
		WanderMaxRadius: 150,
		WanderSpeed:     50,
		ChaseSpeed:      100,
		ArriveRadius:    10,
		AttackInterval:  1,
	}
}

// WithDefaults fills every zero field from DefaultParams.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&p.DetectionRange, d.DetectionRange)
	fill(&p.AttackRange, d.AttackRange)
	fill(&p.WanderInterval, d.WanderInterval)
	fill(&p.WanderMinRadius, d.WanderMinRadius)
	fill(&p.WanderMaxRadius, d.WanderMaxRadius)
	fill(&p.WanderSpeed, d.WanderSpeed)
	fill(&p.ChaseSpeed, d.ChaseSpeed)
	fill(&p.ArriveRadius, d.ArriveRadius)
	fill(&p.AttackInterval, d.AttackInterval)
	return p
}

// Validate checks that every parameter is usable.
//
// Postcondition: returns nil iff all ranges, speeds and intervals are positive
// and the wander radius bounds are ordered.
func (p Params) Validate() error {
	var errs []error
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"detection_range", p.DetectionRange},
		{"attack_range", p.AttackRange},
		{"wander_interval", p.WanderInterval},
		{"wander_speed", p.WanderSpeed},
		{"chase_speed", p.ChaseSpeed},
		{"arrive_radius", p.ArriveRadius},
		{"attack_interval", p.AttackInterval},
	} {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", f.name, f.v))
		}
	}
	if p.WanderMinRadius < 0 || p.WanderMaxRadius < p.WanderMinRadius {
		errs = append(errs, fmt.Errorf("wander radius must satisfy 0 <= min <= max, got [%v, %v]", p.WanderMinRadius, p.WanderMaxRadius))
	}
	if p.AttackRange > p.DetectionRange {
		errs = append(errs, errors.New("attack_range must not exceed detection_range"))
	}
	return errors.Join(errs...)
}

package combat

// Cooldown gates an action to at most once per Interval of simulated time.
// It is advanced explicitly by the tick loop rather than by wall-clock timers,
// so behaviour is reproducible under a fixed delta time.
//
// The zero value with a positive Interval starts ready.
type Cooldown struct {
	Interval float64 // seconds between actions
	elapsed  float64
	primed   bool
}

// NewCooldown returns a Cooldown that is ready immediately.
//
// Precondition: interval > 0.
func NewCooldown(interval float64) Cooldown {
	if interval <= 0 {
		panic("combat: NewCooldown requires interval > 0")
	}
	return Cooldown{Interval: interval}
}

// Advance adds dt seconds of simulated time. Negative dt is ignored.
func (c *Cooldown) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Ready reports whether the gated action may fire now.
func (c *Cooldown) Ready() bool {
	return !c.primed || c.elapsed >= c.Interval
}

// TryFire consumes readiness. It returns true and restarts the interval when
// the action may fire, false otherwise.
//
// Postcondition: two consecutive TryFire calls with no Advance between them
// never both return true.
func (c *Cooldown) TryFire() bool {
	if !c.Ready() {
		return false
	}
	c.primed = true
	c.elapsed = 0
	return true
}

package sim

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FrameSink receives a snapshot after a tick.
type FrameSink func(snap *Snapshot)

// Runner drives a Simulation in real time: one tick per interval, with dt
// measured from the wall clock.
//
// Invariant: the Runner's goroutine is the only caller of Simulation.Tick.
type Runner struct {
	sim        *Simulation
	source     IntentSource
	interval   time.Duration
	maxTicks   uint64
	frame      FrameSink
	frameEvery uint64
	logger     *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMaxTicks stops the runner after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) RunnerOption {
	return func(r *Runner) { r.maxTicks = n }
}

// WithFrameSink calls sink after every n-th tick and after the final tick.
// n below 1 is treated as 1.
func WithFrameSink(sink FrameSink, n int) RunnerOption {
	return func(r *Runner) {
		r.frame = sink
		r.frameEvery = uint64(max(1, n))
	}
}

// WithLogger sets the runner's logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner returns a runner ticking s every interval with input from source.
//
// Precondition: s and source are non-nil; interval must be > 0.
func NewRunner(s *Simulation, source IntentSource, interval time.Duration, opts ...RunnerOption) *Runner {
	if interval <= 0 {
		panic("sim.NewRunner: interval must be > 0")
	}
	r := &Runner{
		sim:      s,
		source:   source,
		interval: interval,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run ticks until the simulation is terminal, the tick limit is reached, or
// ctx is cancelled, and returns the simulation status at that point.
func (r *Runner) Run(ctx context.Context) Status {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("simulation started", zap.Duration("interval", r.interval), zap.Uint64("max_ticks", r.maxTicks))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopped", zap.String("reason", "context done"), zap.Uint64("ticks", r.sim.Ticks()))
			return r.sim.Status()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			in := r.source.Next(r.sim.Snapshot(r.sim.Viewport()))
			status := r.sim.Tick(dt, in)
			done := status.Terminal() || (r.maxTicks > 0 && r.sim.Ticks() >= r.maxTicks)

			if r.frame != nil && (done || r.sim.Ticks()%r.frameEvery == 0) {
				r.frame(r.sim.Snapshot(r.sim.Viewport()))
			}
			if done {
				r.logger.Info("simulation stopped",
					zap.Stringer("status", status),
					zap.Uint64("ticks", r.sim.Ticks()),
					zap.Float64("elapsed", r.sim.Elapsed()),
				)
				return status
			}
		}
	}
}

package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide logged dice rolling and the
// ranged primitives the rules are written against.
// All rolls are logged at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src must be non-nil. A nil logger disables logging.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller requires a non-nil Source")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the underlying randomness provider.
func (r *Roller) Source() Source { return r.src }

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	if ce := r.logger.Check(zap.DebugLevel, "dice roll"); ce != nil {
		ce.Write(
			zap.String("expression", result.Expression),
			zap.Ints("dice", result.Dice),
			zap.Int("modifier", result.Modifier),
			zap.Int("total", result.Total()),
		)
	}
	return result
}

// RollExpr parses expr and rolls it, logging the result.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}

// D rolls a single die with the given number of sides.
//
// Precondition: sides >= 1.
// Postcondition: Returns a value in [1, sides].
func (r *Roller) D(sides int) int {
	v := r.src.Intn(sides) + 1
	if ce := r.logger.Check(zap.DebugLevel, "dice roll"); ce != nil {
		ce.Write(
			zap.String("expression", fmt.Sprintf("1d%d", sides)),
			zap.Ints("dice", []int{v}),
			zap.Int("total", v),
		)
	}
	return v
}

// IntRange returns a uniformly distributed integer in [lo, hi].
// Reversed bounds are swapped.
func (r *Roller) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// FloatRange returns a uniformly distributed float in [lo, hi).
func (r *Roller) FloatRange(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// Percent reports whether a d100 roll lands at or under p.
//
// Postcondition: p <= 0 never succeeds; p >= 100 always succeeds.
func (r *Roller) Percent(p int) bool {
	return r.IntRange(1, 100) <= p
}

// Pick returns a uniformly chosen index in [0, n).
//
// Precondition: n > 0.
func (r *Roller) Pick(n int) int {
	return r.src.Intn(n)
}

package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

// TestRollResult_Total verifies the postcondition: Total() == sum(Dice) + Modifier.
func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total(), "Total() must equal sum(Dice)+Modifier")
}

// TestRollResult_String verifies the audit string contains expression, dice, and total.
func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	s := r.String()
	require.Contains(t, s, "2d6+3", "String() must contain the expression")
	require.Contains(t, s, "[4 5]", "String() must contain the dice results")
	require.Contains(t, s, "12", "String() must contain the total")
	assert.Equal(t, "2d6+3 \u2192 [4 5] +3 = 12", s, "String() must match exact format")
}

// TestRollResult_Total_Property uses property-based testing to verify the
// postcondition Total() == sum(Dice) + Modifier for arbitrary inputs.
func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dice_ := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.Int().Draw(rt, "modifier")

		r := dice.RollResult{
			Expression: "Nd6+M",
			Dice:       dice_,
			Modifier:   modifier,
		}

		expected := modifier
		for _, d := range dice_ {
			expected += d
		}

		assert.Equal(rt, expected, r.Total(),
			"Total() postcondition: must equal sum(Dice)+Modifier")
	})
}

// TestRollResult_String_Property verifies String() always contains the expression
// and the total for arbitrary RollResult values.
func TestRollResult_String_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.StringMatching(`[0-9]+d[0-9]+[+-][0-9]+`).Draw(rt, "expression")
		dice_ := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 10).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		r := dice.RollResult{
			Expression: expr,
			Dice:       dice_,
			Modifier:   modifier,
		}

		s := r.String()
		assert.True(rt, strings.Contains(s, expr),
			"String() must contain the expression %q", expr)
		assert.True(rt, strings.Contains(s, "\u2192"),
			"String() must contain the unicode arrow \u2192")
		assert.Contains(rt, s, fmt.Sprintf("%d", r.Total()),
			"String() must contain the computed total")
	})
}

// TestRollResult_String_PanicsOnEmptyExpression verifies that String() enforces
// its precondition and panics when Expression is empty.
func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}, Modifier: 0}
	assert.Panics(t, func() { _ = r.String() })
}

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

// TestCryptoSource_Float64_InRange verifies every Float64 draw is in [0, 1).
func TestCryptoSource_Float64_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

// TestSeededSource_Reproducible verifies two sources with the same seed
// produce identical sequences.
func TestSeededSource_Reproducible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		a := dice.NewSeededSource(seed)
		b := dice.NewSeededSource(seed)
		for i := 0; i < 32; i++ {
			require.Equal(rt, a.Intn(1000), b.Intn(1000))
			require.Equal(rt, a.Float64(), b.Float64())
		}
	})
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want dice.Expression
	}{
		{"d20", dice.Expression{Raw: "d20", Count: 1, Sides: 20}},
		{"1d8", dice.Expression{Raw: "1d8", Count: 1, Sides: 8}},
		{"1d4+1", dice.Expression{Raw: "1d4+1", Count: 1, Sides: 4, Modifier: 1}},
		{"3d6-2", dice.Expression{Raw: "3d6-2", Count: 3, Sides: 6, Modifier: -2}},
		{"4d6kh3", dice.Expression{Raw: "4d6kh3", Count: 4, Sides: 6, KeepHighest: 3}},
		{"2D10+5", dice.Expression{Raw: "2D10+5", Count: 2, Sides: 10, Modifier: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "20", "0d6", "1d1", "1d", "d+3", "xd6", "1d6+x", "3d6kh3", "3d6kh0"} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}

// TestRoll_Property verifies every die lands in [1, Sides] and the kept count
// matches the expression.
func TestRoll_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")
		mod := rapid.IntRange(-20, 20).Draw(rt, "mod")
		expr := dice.Expression{Raw: "xdy", Count: count, Sides: sides, Modifier: mod}

		res := dice.Roll(expr, dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")))
		require.Len(rt, res.Dice, count)
		for _, d := range res.Dice {
			assert.GreaterOrEqual(rt, d, 1)
			assert.LessOrEqual(rt, d, sides)
		}
		assert.GreaterOrEqual(rt, res.Total(), count+mod)
		assert.LessOrEqual(rt, res.Total(), count*sides+mod)
	})
}

func TestRoll_KeepHighest(t *testing.T) {
	src := testutil.NewSequenceSource(0, 5, 2, 3)
	res := dice.Roll(dice.MustParse("4d6kh3"), src)
	assert.Equal(t, []int{6, 4, 3}, res.Dice)
	assert.Equal(t, 13, res.Total())
}

func TestRoller_IntRange_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-1000, 1000).Draw(rt, "lo")
		hi := rapid.IntRange(-1000, 1000).Draw(rt, "hi")
		r := dice.NewLoggedRoller(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), nil)

		v := r.IntRange(lo, hi)
		assert.GreaterOrEqual(rt, v, min(lo, hi))
		assert.LessOrEqual(rt, v, max(lo, hi))
	})
}

func TestRoller_FloatRange(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewSequenceSource().WithFloats(0.5), nil)
	assert.InDelta(t, 100.0, r.FloatRange(50, 150), 1e-9)
}

func TestRoller_Percent(t *testing.T) {
	low := dice.NewLoggedRoller(testutil.NewSequenceSource(0), nil)
	high := dice.NewLoggedRoller(testutil.NewSequenceSource(99), nil)

	assert.True(t, low.Percent(1), "a roll of 1 succeeds at 1%")
	assert.False(t, low.Percent(0), "0% never succeeds")
	assert.True(t, high.Percent(100), "100% always succeeds")
	assert.False(t, high.Percent(99))
}

func TestRoller_D_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(testutil.NewSequenceSource(19), zap.New(core))

	assert.Equal(t, 20, r.D(20))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "dice roll", logs.All()[0].Message)
	assert.EqualValues(t, 20, logs.All()[0].ContextMap()["total"])
}

func TestNewLoggedRoller_PanicsOnNilSource(t *testing.T) {
	assert.Panics(t, func() { dice.NewLoggedRoller(nil, nil) })
}

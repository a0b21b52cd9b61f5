package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDirection_IsStandard(t *testing.T) {
	for _, d := range StandardDirections {
		assert.True(t, d.IsStandard(), "expected %q to be standard", d)
	}
	assert.False(t, Direction("up").IsStandard())
	assert.False(t, Direction("portal").IsStandard())
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"n":         North,
		"SW":        Southwest,
		" east ":    East,
		"northwest": Northwest,
	}
	for in, want := range cases {
		got, ok := ParseDirection(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseDirection("up")
	assert.False(t, ok)
}

func TestPropertyOppositeIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, len(StandardDirections)-1).Draw(t, "dir_idx")
		d := StandardDirections[idx]
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite should be an involution for %q", d)
	})
}

func TestDirection_VectorIsUnitAndOpposed(t *testing.T) {
	for _, d := range StandardDirections {
		v := d.Vector()
		assert.InDelta(t, 1, v.Len(), 1e-9, d)
		o := d.Opposite().Vector()
		assert.InDelta(t, 0, v.Add(o).Len(), 1e-9, d)
	}
	assert.True(t, Direction("portal").Vector().IsZero())
}

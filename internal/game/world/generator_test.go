package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestInteriorRange(t *testing.T) {
	lo, hi := InteriorRange(50)
	assert.Equal(t, [2]int{2, 47}, [2]int{lo, hi})
	lo, hi = InteriorRange(5)
	assert.Equal(t, [2]int{2, 2}, [2]int{lo, hi})
	lo, hi = InteriorRange(4)
	assert.Equal(t, [2]int{1, 2}, [2]int{lo, hi})
}

func TestGenerate_PanicsBelowMinimum(t *testing.T) {
	assert.Panics(t, func() { Generate(4, 10, 32, seededRoller(1)) })
}

func TestProperty_Generate_BorderIsWall(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(MinDimension, 60).Draw(rt, "w")
		h := rapid.IntRange(MinDimension, 60).Draw(rt, "h")
		g := Generate(w, h, 32, seededRoller(rapid.Uint64().Draw(rt, "seed")))
		for x := 0; x < w; x++ {
			for _, y := range []int{0, h - 1} {
				c, _ := g.Cell(x, y)
				if c.Type != Wall {
					rt.Fatalf("border cell (%d,%d) is %s", x, y, c.Type)
				}
			}
		}
		for y := 0; y < h; y++ {
			for _, x := range []int{0, w - 1} {
				c, _ := g.Cell(x, y)
				if c.Type != Wall {
					rt.Fatalf("border cell (%d,%d) is %s", x, y, c.Type)
				}
			}
		}
	})
}

func TestProperty_Generate_SameSeedSameGrid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(MinDimension, 60).Draw(rt, "w")
		h := rapid.IntRange(MinDimension, 60).Draw(rt, "h")
		seed := rapid.Uint64().Draw(rt, "seed")
		a := Generate(w, h, 32, seededRoller(seed))
		b := Generate(w, h, 32, seededRoller(seed))
		assert.True(rt, a.Equal(b))
	})
}

func TestGenerate_ScatterStaysInsideMargin(t *testing.T) {
	g := Generate(50, 50, 32, seededRoller(7))
	for y := 1; y < 49; y++ {
		for x := 1; x < 49; x++ {
			if x >= 2 && x <= 47 && y >= 2 && y <= 47 {
				continue
			}
			c, _ := g.Cell(x, y)
			assert.Equal(t, Floor, c.Type, "cell (%d,%d) is in the untouched margin", x, y)
		}
	}
	assert.Positive(t, g.Count(Wall)-4*49, "interior walls were scattered")
}

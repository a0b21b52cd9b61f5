package world

import (
	"fmt"

	"github.com/cory-johannsen/lance/internal/game/dice"
)

// MinDimension is the smallest grid width or height Generate accepts.
const MinDimension = 5

// scatter is one terrain pass: count = width*height / divisor tiles of Type.
type scatter struct {
	Type    TileType
	Divisor int
}

// scatterPasses run in order; later passes overwrite earlier ones.
var scatterPasses = []scatter{
	{Wall, 20},
	{Water, 40},
	{Lava, 50},
	{Chest, 100},
	{Door, 80},
}

// InteriorRange returns the inclusive cell range scatter and spawn coordinates
// are drawn from along an axis of length n: [2, n-3], or [1, n-2] when the
// axis is too short for a two-cell margin.
func InteriorRange(n int) (lo, hi int) {
	if n-3 >= 2 {
		return 2, n - 3
	}
	return 1, n - 2
}

// Generate builds a width×height dungeon: all floor, a wall border, then the
// scatter passes at independently drawn interior coordinates. The same
// roller state always yields the same grid.
//
// Precondition: width, height >= MinDimension; tileSize > 0; roller is non-nil.
// Postcondition: every border cell is Wall.
func Generate(width, height int, tileSize float64, roller *dice.Roller) *Grid {
	if width < MinDimension || height < MinDimension {
		panic(fmt.Sprintf("world: Generate requires at least %dx%d, got %dx%d", MinDimension, MinDimension, width, height))
	}
	g := NewGrid(width, height, tileSize)
	for x := 0; x < width; x++ {
		g.Set(x, 0, Wall)
		g.Set(x, height-1, Wall)
	}
	for y := 0; y < height; y++ {
		g.Set(0, y, Wall)
		g.Set(width-1, y, Wall)
	}

	xlo, xhi := InteriorRange(width)
	ylo, yhi := InteriorRange(height)
	for _, pass := range scatterPasses {
		for i := 0; i < width*height/pass.Divisor; i++ {
			x := roller.IntRange(xlo, xhi)
			y := roller.IntRange(ylo, yhi)
			g.Set(x, y, pass.Type)
		}
	}
	return g
}

// Package world provides the dungeon model: compass directions, the tile
// grid and its generator, and the Dungeon that owns enemies and floor items.
package world

import (
	"math"
	"strings"

	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Direction represents one of the eight compass directions.
type Direction string

// Compass directions. North is toward smaller Y.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
)

// StandardDirections contains all eight compass directions.
var StandardDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
}

var directionAliases = map[string]Direction{
	"n":  North,
	"s":  South,
	"e":  East,
	"w":  West,
	"ne": Northeast,
	"nw": Northwest,
	"se": Southeast,
	"sw": Southwest,
}

// ParseDirection accepts a full direction name or its abbreviation, case-insensitively.
//
// Postcondition: Returns (direction, true) on a match, or ("", false) otherwise.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionAliases[s]; ok {
		return d, true
	}
	d := Direction(s)
	return d, d.IsStandard()
}

// IsStandard reports whether d is one of the eight compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Opposite returns the opposite direction, or "" for a non-standard d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Northwest:
		return Southeast
	case Southeast:
		return Northwest
	default:
		return ""
	}
}

// Vector returns the unit movement vector for d, or the zero vector for a
// non-standard d.
func (d Direction) Vector() geom.Vec2 {
	const diag = math.Sqrt2 / 2
	switch d {
	case North:
		return geom.V(0, -1)
	case South:
		return geom.V(0, 1)
	case East:
		return geom.V(1, 0)
	case West:
		return geom.V(-1, 0)
	case Northeast:
		return geom.V(diag, -diag)
	case Northwest:
		return geom.V(-diag, -diag)
	case Southeast:
		return geom.V(diag, diag)
	case Southwest:
		return geom.V(-diag, diag)
	default:
		return geom.Vec2{}
	}
}

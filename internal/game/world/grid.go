package world

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/lance/internal/game/geom"
)

// Grid is a rectangular tile map addressed by cell (cx, cy) or by world
// coordinates, where cell (cx, cy) covers
// [cx*tileSize, (cx+1)*tileSize) × [cy*tileSize, (cy+1)*tileSize).
//
// Invariant: len(tiles) == width*height; width, height, tileSize > 0.
type Grid struct {
	width    int
	height   int
	tileSize float64
	tiles    []Tile // row-major
}

// NewGrid returns a width×height grid of floor tiles.
//
// Precondition: width > 0, height > 0, tileSize > 0.
func NewGrid(width, height int, tileSize float64) *Grid {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		panic(fmt.Sprintf("world: NewGrid requires positive dimensions, got %dx%d tile %v", width, height, tileSize))
	}
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Tile, width*height),
	}
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) TileSize() float64 { return g.tileSize }

// Bounds returns the grid's extent in world units.
func (g *Grid) Bounds() geom.Rect {
	return geom.Rect{W: float64(g.width) * g.tileSize, H: float64(g.height) * g.tileSize}
}

// InBounds reports whether cell (cx, cy) lies inside the grid.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
}

// Cell returns the tile at cell (cx, cy).
//
// Postcondition: Returns (nil, false) when the cell is out of bounds.
func (g *Grid) Cell(cx, cy int) (*Tile, bool) {
	if !g.InBounds(cx, cy) {
		return nil, false
	}
	return &g.tiles[cy*g.width+cx], true
}

// Set overwrites the type of cell (cx, cy). Out-of-bounds cells are ignored.
func (g *Grid) Set(cx, cy int, t TileType) {
	if c, ok := g.Cell(cx, cy); ok {
		c.Type = t
	}
}

// CellOf converts world coordinates to a cell by floor division, so negative
// coordinates map to negative (out-of-bounds) cells.
func (g *Grid) CellOf(x, y float64) (cx, cy int) {
	return int(math.Floor(x / g.tileSize)), int(math.Floor(y / g.tileSize))
}

// CellCenter returns the world position of the center of cell (cx, cy).
func (g *Grid) CellCenter(cx, cy int) geom.Vec2 {
	return geom.V((float64(cx)+0.5)*g.tileSize, (float64(cy)+0.5)*g.tileSize)
}

// TileAt returns the tile containing world point (x, y).
//
// Postcondition: Returns (nil, false) when the point is outside the grid.
func (g *Grid) TileAt(x, y float64) (*Tile, bool) {
	return g.Cell(g.CellOf(x, y))
}

// IsWalkable reports whether world point (x, y) lies on a walkable tile.
// Points outside the grid are never walkable.
func (g *Grid) IsWalkable(x, y float64) bool {
	t, ok := g.TileAt(x, y)
	return ok && t.Walkable()
}

// CellWalkable reports whether cell (cx, cy) is in bounds and walkable.
func (g *Grid) CellWalkable(cx, cy int) bool {
	t, ok := g.Cell(cx, cy)
	return ok && t.Walkable()
}

// ForEachInView calls fn for every in-bounds cell overlapping view, in
// row-major order.
func (g *Grid) ForEachInView(view geom.Rect, fn func(cx, cy int, t *Tile)) {
	x0, y0 := g.CellOf(view.X, view.Y)
	x1 := int(math.Ceil((view.X + view.W) / g.tileSize))
	y1 := int(math.Ceil((view.Y + view.H) / g.tileSize))
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(g.width, x1), min(g.height, y1)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			fn(cx, cy, &g.tiles[cy*g.width+cx])
		}
	}
}

// Explore marks every cell whose center lies within radius of pos as explored
// and returns how many cells were newly explored.
func (g *Grid) Explore(pos geom.Vec2, radius float64) int {
	if radius < 0 {
		return 0
	}
	view := geom.CenteredRect(pos, 2*radius, 2*radius)
	n := 0
	g.ForEachInView(view, func(cx, cy int, t *Tile) {
		if t.Explored || g.CellCenter(cx, cy).Dist(pos) > radius {
			return
		}
		t.Explored = true
		n++
	})
	return n
}

// FirstWalkable scans cells in row-major order and returns the first walkable one.
//
// Postcondition: ok is false when no cell is walkable.
func (g *Grid) FirstWalkable() (cx, cy int, ok bool) {
	return g.FirstWalkableIn(0, 0, g.width-1, g.height-1)
}

// FirstWalkableIn is FirstWalkable restricted to the inclusive cell rectangle
// [x0, x1] × [y0, y1], clipped to the grid.
func (g *Grid) FirstWalkableIn(x0, y0, x1, y1 int) (cx, cy int, ok bool) {
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(g.width-1, x1), min(g.height-1, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.tiles[y*g.width+x].Walkable() {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Count returns how many cells have type t.
func (g *Grid) Count(t TileType) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Type == t {
			n++
		}
	}
	return n
}

// Equal reports whether g and o have the same dimensions and tile types.
// Exploration state is ignored.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height || g.tileSize != o.tileSize {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i].Type != o.tiles[i].Type {
			return false
		}
	}
	return true
}

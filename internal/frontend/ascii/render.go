// Package ascii draws simulation snapshots as colored terminal text.
package ascii

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/narrative"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// Glyphs used on the map.
const (
	GlyphPlayer     = '@'
	GlyphProjectile = '*'
	GlyphUnexplored = ' '
)

// tileGlyphs maps tile types to their glyph and color.
var tileGlyphs = map[world.TileType]struct {
	glyph rune
	color string
}{
	world.Floor: {'.', BrightBlack},
	world.Wall:  {'#', White},
	world.Door:  {'+', Yellow},
	world.Chest: {'=', BrightYellow},
	world.Water: {'~', Blue},
	world.Lava:  {'^', Red},
}

// itemGlyphs maps item kinds to their glyph.
var itemGlyphs = map[inventory.Kind]rune{
	inventory.KindPotion:  '!',
	inventory.KindWeapon:  ')',
	inventory.KindArmor:   '[',
	inventory.KindGeneric: '?',
}

// Renderer turns snapshots into text. The zero value renders without color.
type Renderer struct {
	// Color enables ANSI styling.
	Color bool
	// Clear prefixes each frame with a clear-screen sequence.
	Clear bool
}

type cell struct {
	glyph rune
	color string
}

// Render draws the viewport, the status bar, and the pack and spell listings.
// Unexplored tiles are blank. Enemies are drawn with the first letter of
// their name, upper-cased for bosses.
func (r Renderer) Render(snap *sim.Snapshot) string {
	if snap == nil {
		return ""
	}
	var b strings.Builder
	if r.Clear {
		b.WriteString(ClearScreen)
	}

	b.WriteString(r.paint(Bold+BrightWhite, snap.Player.StatsLine()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Weapon: %s  Armor: %s\n", snap.Player.Weapon, snap.Player.Armor)
	b.WriteString(r.bar("HP", snap.Player.HealthRatio, Red))
	b.WriteString("  ")
	b.WriteString(r.bar("MP", snap.Player.ManaRatio, Blue))
	b.WriteString("\n")

	b.WriteString(r.drawMap(snap))

	fmt.Fprintf(&b, "Enemies remaining: %d  Kills: %d  Time: %.1fs\n", snap.EnemiesRemaining, snap.Kills, snap.Elapsed)
	if len(snap.Inventory) > 0 {
		b.WriteString("Pack:")
		for i, s := range snap.Inventory {
			fmt.Fprintf(&b, " [%d] %s", i, s)
		}
		b.WriteString("\n")
	}
	if len(snap.Spells) > 0 {
		b.WriteString("Spells: " + strings.Join(snap.Spells, ", ") + "\n")
	}
	if flags := setFlags(snap.QuestFlags); len(flags) > 0 {
		b.WriteString(r.paint(Cyan, "Quests: "+strings.Join(flags, ", ")))
		b.WriteString("\n")
	}

	switch snap.Status {
	case sim.Victory:
		b.WriteString(r.paint(Bold+BrightGreen, "*** VICTORY ***"))
		b.WriteString("\n")
	case sim.GameOver:
		b.WriteString(r.paint(Bold+BrightRed, "*** GAME OVER ***"))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderEvent formats a narrative event as a titled block.
func (r Renderer) RenderEvent(e narrative.Event) string {
	color := BrightYellow
	switch e.Kind {
	case narrative.KindVictory:
		color = BrightGreen
	case narrative.KindGameOver:
		color = BrightRed
	}
	return r.paint(Bold+color, e.Title) + "\n" + e.Body + "\n"
}

func (r Renderer) drawMap(snap *sim.Snapshot) string {
	if len(snap.Tiles) == 0 || snap.TileSize <= 0 {
		return ""
	}
	minX, minY := snap.Tiles[0].X, snap.Tiles[0].Y
	maxX, maxY := minX, minY
	for _, t := range snap.Tiles {
		minX, maxX = min(minX, t.X), max(maxX, t.X)
		minY, maxY = min(minY, t.Y), max(maxY, t.Y)
	}
	w, h := maxX-minX+1, maxY-minY+1
	cells := make([]cell, w*h)
	for i := range cells {
		cells[i] = cell{glyph: GlyphUnexplored}
	}
	explored := make([]bool, w*h)

	at := func(wx, wy float64) (int, bool) {
		cx := int(math.Floor(wx/snap.TileSize)) - minX
		cy := int(math.Floor(wy/snap.TileSize)) - minY
		if cx < 0 || cy < 0 || cx >= w || cy >= h {
			return 0, false
		}
		return cy*w + cx, true
	}

	for _, t := range snap.Tiles {
		i := (t.Y-minY)*w + (t.X - minX)
		if !t.Explored {
			continue
		}
		explored[i] = true
		g := tileGlyphs[t.Type]
		cells[i] = cell{glyph: g.glyph, color: g.color}
	}
	for _, it := range snap.Items {
		if i, ok := at(it.Position.X, it.Position.Y); ok && explored[i] {
			cells[i] = cell{glyph: itemGlyphs[it.Kind], color: BrightYellow}
		}
	}
	for _, p := range snap.Projectiles {
		if i, ok := at(p.X, p.Y); ok {
			cells[i] = cell{glyph: GlyphProjectile, color: BrightRed}
		}
	}
	for _, e := range snap.Enemies {
		if i, ok := at(e.Position.X, e.Position.Y); ok && explored[i] {
			cells[i] = enemyCell(e)
		}
	}
	if i, ok := at(snap.Player.Position.X, snap.Player.Position.Y); ok {
		cells[i] = cell{glyph: GlyphPlayer, color: Bold + BrightWhite}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if c.color == "" || !r.Color {
				b.WriteRune(c.glyph)
				continue
			}
			b.WriteString(Colorize(c.color, string(c.glyph)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func enemyCell(e sim.EnemyView) cell {
	glyph := 'e'
	if r, _ := utf8.DecodeRuneInString(e.Name); r != utf8.RuneError {
		glyph = unicode.ToLower(r)
	}
	color := Green
	switch {
	case e.Boss:
		glyph = unicode.ToUpper(glyph)
		color = Bold + BrightRed
	case e.State == "attack":
		color = Red
	case e.State == "chase":
		color = Yellow
	}
	return cell{glyph: glyph, color: color}
}

// bar draws a ten-segment gauge such as "HP [######----]".
func (r Renderer) bar(label string, ratio float64, color string) string {
	const width = 10
	filled := int(math.Round(math.Max(0, math.Min(1, ratio)) * width))
	gauge := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return label + " [" + r.paint(color, gauge) + "]"
}

func (r Renderer) paint(color, text string) string {
	if !r.Color {
		return text
	}
	return Colorize(color, text)
}

func setFlags(flags map[string]bool) []string {
	var out []string
	for k, v := range flags {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

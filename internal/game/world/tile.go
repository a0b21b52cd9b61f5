package world

// TileType is the terrain of one grid cell.
type TileType int

// Tile types.
const (
	Floor TileType = iota
	Wall
	Door
	Chest
	Water
	Lava
)

func (t TileType) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Door:
		return "door"
	case Chest:
		return "chest"
	case Water:
		return "water"
	case Lava:
		return "lava"
	default:
		return "unknown"
	}
}

// Walkable reports whether characters may stand on t. Only floors and doors are walkable.
func (t TileType) Walkable() bool {
	return t == Floor || t == Door
}

// Tile is one grid cell. Explored is set once the cell has been within the
// player's sight radius.
type Tile struct {
	Type     TileType
	Explored bool
}

// Walkable reports whether the tile's type is walkable.
func (t Tile) Walkable() bool { return t.Type.Walkable() }

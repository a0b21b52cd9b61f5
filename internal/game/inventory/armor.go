package inventory

// ArmorStats is the payload of an armor piece.
type ArmorStats struct {
	Defense int    `yaml:"defense"`
	Type    string `yaml:"type"` // Leather, Chain, Plate, Shield
}

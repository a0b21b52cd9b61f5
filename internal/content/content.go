// Package content embeds the built-in enemy templates, item catalog, and
// spell book, and loads them into the registries the simulation consumes.
package content

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/npc"
)

//go:embed data
var embedded embed.FS

// Layout of a content tree.
const (
	NPCDir    = "npcs"
	ItemDir   = "items"
	SpellFile = "spells.yaml"
)

// FS returns the embedded content tree rooted at its data directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("content: embedded data missing: %v", err))
	}
	return sub
}

// Bundle is the loaded content.
type Bundle struct {
	Templates *npc.Manager
	Items     *inventory.Registry
	Spells    []*character.Spell
}

// Load loads the embedded content.
func Load() (*Bundle, error) {
	return LoadFS(FS())
}

// LoadFS loads NPCDir, ItemDir, and SpellFile from fsys.
//
// Postcondition: Returns a fully populated Bundle, or the first error.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	templates, err := npc.LoadTemplates(fsys, NPCDir)
	if err != nil {
		return nil, fmt.Errorf("loading enemy templates: %w", err)
	}
	mgr, err := npc.NewManager(templates...)
	if err != nil {
		return nil, fmt.Errorf("registering enemy templates: %w", err)
	}

	defs, err := inventory.LoadItems(fsys, ItemDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	items := inventory.NewRegistry()
	for _, d := range defs {
		if err := items.RegisterItem(d); err != nil {
			return nil, fmt.Errorf("registering items: %w", err)
		}
	}

	spells, err := character.LoadSpells(fsys, SpellFile)
	if err != nil {
		return nil, fmt.Errorf("loading spells: %w", err)
	}
	return &Bundle{Templates: mgr, Items: items, Spells: spells}, nil
}

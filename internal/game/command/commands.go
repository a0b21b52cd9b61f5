// Package command provides the command registry, parser, and built-in command
// definitions, and the Controller that turns typed lines into player intents.
package command

import "github.com/cory-johannsen/lance/internal/game/world"

// Categories for organizing commands.
const (
	CategoryMovement  = "movement"
	CategoryCombat    = "combat"
	CategoryCharacter = "character"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to Controller actions.
const (
	HandlerMove      = "move"
	HandlerStop      = "stop"
	HandlerAttack    = "attack"
	HandlerCast      = "cast"
	HandlerUse       = "use"
	HandlerInventory = "inventory"
	HandlerSpells    = "spells"
	HandlerStatus    = "status"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument form, e.g. "cast <n>". Empty means Name alone.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, combat, character, system).
	Category string
	// Handler selects the Controller action.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Walk north until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Walk south until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Walk east until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Walk west until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "northeast", Aliases: []string{"ne"}, Help: "Walk northeast until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "northwest", Aliases: []string{"nw"}, Help: "Walk northwest until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "southeast", Aliases: []string{"se"}, Help: "Walk southeast until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "southwest", Aliases: []string{"sw"}, Help: "Walk southwest until told otherwise", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "stop", Aliases: []string{"halt", "x"}, Help: "Stop walking", Category: CategoryMovement, Handler: HandlerStop},

		// Combat commands
		{Name: "attack", Aliases: []string{"att", "a", "kill"}, Help: "Strike the nearest enemy in reach", Category: CategoryCombat, Handler: HandlerAttack},
		{Name: "cast", Aliases: []string{"c"}, Usage: "cast <n>", Help: "Cast spell number n", Category: CategoryCombat, Handler: HandlerCast},

		// Character commands
		{Name: "use", Aliases: []string{"u", "quaff", "equip"}, Usage: "use <n>", Help: "Drink or equip pack item number n", Category: CategoryCharacter, Handler: HandlerUse},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "List the items in your pack", Category: CategoryCharacter, Handler: HandlerInventory},
		{Name: "spells", Aliases: []string{"sp"}, Help: "List the spells you know", Category: CategoryCharacter, Handler: HandlerSpells},
		{Name: "status", Aliases: []string{"st", "score"}, Help: "Show your vital statistics", Category: CategoryCharacter, Handler: HandlerStatus},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"q", "exit"}, Help: "Leave the dungeon", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsMovementCommand reports whether the command name is a compass direction.
func IsMovementCommand(name string) bool {
	d, ok := world.ParseDirection(name)
	return ok && string(d) == name
}

package command

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// DefaultLineBuffer is the number of submitted lines a Controller holds
// between ticks before Submit starts refusing input.
const DefaultLineBuffer = 32

// Controller turns typed command lines into player intents. Lines may be
// submitted from any goroutine; they are applied in order on the next call
// to Next, which must come from a single goroutine.
//
// Movement commands set a heading that persists until another movement
// command or stop. Attack, cast, and use are one-shot: the last one submitted
// before a tick wins and is cleared once returned.
type Controller struct {
	registry *Registry
	lines    chan string
	out      func(string)
	quit     chan struct{}
	quitOnce sync.Once

	heading geom.Vec2
}

// NewController creates a Controller resolving lines through reg.
// Informational replies and errors are written to out.
//
// Precondition: buffer > 0. A nil reg is replaced with DefaultRegistry and a
// nil out discards replies.
func NewController(reg *Registry, buffer int, out func(string)) *Controller {
	if buffer <= 0 {
		panic("command.NewController: buffer must be > 0")
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	if out == nil {
		out = func(string) {}
	}
	return &Controller{
		registry: reg,
		lines:    make(chan string, buffer),
		out:      out,
		quit:     make(chan struct{}),
	}
}

// Submit queues line for the next tick and reports whether it was accepted.
// It never blocks; a full buffer drops the line.
func (c *Controller) Submit(line string) bool {
	select {
	case c.lines <- line:
		return true
	default:
		return false
	}
}

// Done is closed once a quit command has been applied.
func (c *Controller) Done() <-chan struct{} { return c.quit }

// Heading returns the current movement direction; zero when standing still.
func (c *Controller) Heading() geom.Vec2 { return c.heading }

// Next applies every queued line and returns the resulting intent.
func (c *Controller) Next(snap *sim.Snapshot) sim.Intent {
	var in sim.Intent
	for {
		select {
		case line := <-c.lines:
			if err := c.apply(line, snap, &in); err != nil {
				c.out(err.Error())
			}
		default:
			in.Move = c.heading
			return in
		}
	}
}

func (c *Controller) apply(line string, snap *sim.Snapshot, in *sim.Intent) error {
	res := Parse(line)
	if res.Command == "" {
		return nil
	}
	cmd, ok := c.registry.Resolve(res.Command)
	if !ok {
		return fmt.Errorf("unknown command %q; type help for a list", res.Command)
	}

	switch cmd.Handler {
	case HandlerMove:
		d, ok := world.ParseDirection(cmd.Name)
		if !ok {
			return fmt.Errorf("%s: not a direction", cmd.Name)
		}
		c.heading = d.Vector()
	case HandlerStop:
		c.heading = geom.Vec2{}
	case HandlerAttack:
		in.Action, in.Index = sim.ActionAttack, 0
	case HandlerCast, HandlerUse:
		idx, err := res.IntArg(0)
		if err != nil {
			return fmt.Errorf("usage: %s: %w", cmd.Usage, err)
		}
		in.Action, in.Index = sim.ActionCast, idx
		if cmd.Handler == HandlerUse {
			in.Action = sim.ActionUse
		}
	case HandlerInventory:
		if snap != nil {
			c.out(numbered("Pack", snap.Inventory))
		}
	case HandlerSpells:
		if snap != nil {
			c.out(numbered("Spells", snap.Spells))
		}
	case HandlerStatus:
		if snap != nil {
			c.out(snap.Player.StatsLine())
		}
	case HandlerHelp:
		c.out(c.registry.HelpText())
	case HandlerQuit:
		c.quitOnce.Do(func() { close(c.quit) })
	default:
		return fmt.Errorf("%s: no handler for %q", cmd.Name, cmd.Handler)
	}
	return nil
}

// numbered renders lines as "title:\n  0. first\n  1. second". Spell lines
// already carry their number.
func numbered(title string, lines []string) string {
	if len(lines) == 0 {
		return title + ": (empty)"
	}
	var b strings.Builder
	b.WriteString(title + ":")
	for i, l := range lines {
		if strings.HasPrefix(l, fmt.Sprintf("%d. ", i)) {
			fmt.Fprintf(&b, "\n  %s", l)
			continue
		}
		fmt.Fprintf(&b, "\n  %d. %s", i, l)
	}
	return b.String()
}

var _ sim.IntentSource = (*Controller)(nil)

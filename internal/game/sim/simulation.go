// Package sim is the tick orchestrator: it owns the player, the dungeon, and
// the projectiles in flight, and advances them in a fixed order each tick.
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/lance/internal/game/character"
	"github.com/cory-johannsen/lance/internal/game/cue"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/geom"
	"github.com/cory-johannsen/lance/internal/game/inventory"
	"github.com/cory-johannsen/lance/internal/game/narrative"
	"github.com/cory-johannsen/lance/internal/game/npc"
	"github.com/cory-johannsen/lance/internal/game/session"
	"github.com/cory-johannsen/lance/internal/game/world"
)

// Player tuning, in world units and seconds.
const (
	PlayerSpeed      = 150.0
	PlayerHalfExtent = 12.0
	MeleeRange       = 50.0
	PickupRadius     = 30.0
	SightRadius      = 160.0
)

// Quest flags set on the player.
const (
	QuestBossSlain = "baaz_slain"
	QuestDragonOrb = "dragon_orb"
)

var _ npc.TargetResolver = (*session.Registry)(nil)

// Options configures a new Simulation.
type Options struct {
	Width         int
	Height        int
	TileSize      float64
	SpawnAttempts int
	ViewWidth     float64
	ViewHeight    float64

	PlayerName string
	// Abilities is the point-buy allocation; the zero value selects
	// character.DefaultAbilities.
	Abilities character.Abilities

	Roller    *dice.Roller
	Templates *npc.Manager
	Items     *inventory.Registry
	Spells    []*character.Spell

	Cues      cue.Sink
	Narrative narrative.Sink
	Logger    *zap.Logger

	// Grid replaces generation when non-nil.
	Grid *world.Grid
	// SkipPopulation leaves the dungeon empty of enemies and items.
	SkipPopulation bool
}

// Simulation is the single-threaded game state. Only the goroutine calling
// Tick may touch it.
type Simulation struct {
	roller    *dice.Roller
	cues      cue.Sink
	narrative narrative.Sink
	logger    *zap.Logger
	view      geom.Rect

	player      *character.Player
	dungeon     *world.Dungeon
	registry    *session.Registry
	projectiles []*Projectile

	status  Status
	ticks   uint64
	elapsed float64
	kills   int
}

// New builds the player, generates and populates the dungeon, places the
// player at the center of the first walkable cell in row-major order, and
// publishes the intro event.
//
// Precondition: Roller, Templates, and Items are non-nil unless
// SkipPopulation is set, in which case only Roller is required.
// Postcondition: Returns an error for a generated grid smaller than
// world.MinDimension, an invalid player build, or a grid with no walkable cell.
func New(opts Options) (*Simulation, error) {
	if opts.Roller == nil {
		return nil, fmt.Errorf("sim.New: Roller must not be nil")
	}
	if !opts.SkipPopulation && (opts.Templates == nil || opts.Items == nil) {
		return nil, fmt.Errorf("sim.New: Templates and Items are required to populate")
	}
	if opts.Grid == nil && (opts.Width < world.MinDimension || opts.Height < world.MinDimension) {
		return nil, fmt.Errorf("sim.New: width and height must be >= %d, got %dx%d", world.MinDimension, opts.Width, opts.Height)
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 32
	}
	if opts.ViewWidth <= 0 || opts.ViewHeight <= 0 {
		opts.ViewWidth, opts.ViewHeight = 800, 600
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Hero"
	}
	if opts.Abilities == (character.Abilities{}) {
		opts.Abilities = character.DefaultAbilities()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Simulation{
		roller:    opts.Roller,
		cues:      cue.OrNop(opts.Cues),
		narrative: narrative.OrNop(opts.Narrative),
		logger:    logger,
		view:      geom.Rect{W: opts.ViewWidth, H: opts.ViewHeight},
		registry:  session.NewRegistry(),
	}
	deps := character.Deps{Roller: s.roller, Cues: s.cues}

	player, err := character.BuildPlayer(uuid.NewString(), opts.PlayerName, opts.Abilities, deps)
	if err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}
	for _, sp := range opts.Spells {
		player.LearnSpell(sp)
	}
	s.player = player
	if err := s.registry.Add(player.Character); err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}

	grid := opts.Grid
	if grid == nil {
		grid = world.Generate(opts.Width, opts.Height, opts.TileSize, s.roller)
	}
	s.dungeon = world.NewDungeon(grid, player.ID())
	logger.Info("dungeon generated",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("walls", grid.Count(world.Wall)),
	)

	if !opts.SkipPopulation {
		pop := &world.Populator{
			Templates:     opts.Templates,
			Items:         opts.Items,
			Deps:          deps,
			SpawnAttempts: opts.SpawnAttempts,
			Logger:        logger,
		}
		pop.Populate(s.dungeon)
	}

	cx, cy, ok := grid.FirstWalkable()
	if !ok {
		return nil, fmt.Errorf("sim.New: grid has no walkable cell for the player")
	}
	player.Position = grid.CellCenter(cx, cy)
	grid.Explore(player.Position, SightRadius)

	s.narrative.Publish(narrative.Intro())
	return s, nil
}

func (s *Simulation) Player() *character.Player   { return s.player }
func (s *Simulation) Dungeon() *world.Dungeon     { return s.dungeon }
func (s *Simulation) Registry() *session.Registry { return s.registry }
func (s *Simulation) Status() Status              { return s.status }
func (s *Simulation) Ticks() uint64               { return s.ticks }
func (s *Simulation) Elapsed() float64            { return s.elapsed }
func (s *Simulation) Kills() int                  { return s.kills }

// Projectiles returns the projectiles in flight.
func (s *Simulation) Projectiles() []*Projectile {
	out := make([]*Projectile, len(s.projectiles))
	copy(out, s.projectiles)
	return out
}

// Tick advances the simulation by dt seconds: player movement and action,
// enemies and projectiles, defeated-enemy loot and rewards, pickups, and the
// terminal check. Once terminal, Tick does nothing. Negative dt is treated as zero.
func (s *Simulation) Tick(dt float64, in Intent) Status {
	if s.status.Terminal() {
		return s.status
	}
	dt = max(0, dt)
	s.ticks++
	s.elapsed += dt

	if s.player.IsActive() {
		s.movePlayer(in.Move, dt)
		s.act(in)
	}
	for _, e := range s.dungeon.Enemies() {
		if e.IsActive() {
			e.Update(dt, s.registry)
		}
	}
	s.advanceProjectiles(dt)
	s.dungeon.Grid.Explore(s.player.Position, SightRadius)

	s.collectDefeated()
	s.pickup()
	s.checkTerminal()
	return s.status
}

// movePlayer moves along dir at PlayerSpeed and reverts the whole step when
// any corner of the player's box would leave walkable ground.
func (s *Simulation) movePlayer(dir geom.Vec2, dt float64) {
	if dir.IsZero() || dt == 0 {
		return
	}
	next := s.player.Position.Add(dir.Normalize().Scale(PlayerSpeed * dt))
	for _, c := range geom.Corners(next, PlayerHalfExtent) {
		if !s.dungeon.Grid.IsWalkable(c.X, c.Y) {
			return
		}
	}
	s.player.Position = next
}

func (s *Simulation) act(in Intent) {
	switch in.Action {
	case ActionAttack:
		target, ok := s.dungeon.NearestEnemy(s.player.Position, MeleeRange)
		if !ok {
			return
		}
		hit := s.player.Attack(target.Character)
		s.logger.Debug("player attacked",
			zap.String("target", target.ID()),
			zap.Bool("hit", hit),
			zap.Int("target_health", target.Health()),
		)
	case ActionCast:
		s.cast(in.Index)
	case ActionUse:
		if s.player.UseItem(in.Index) {
			s.logger.Debug("item used", zap.Int("index", in.Index))
		}
	}
}

// cast resolves a spell. Offensive spells need an enemy in reach: melee range
// for touch spells, projectile range for ranged ones. Nothing is spent when
// there is no target.
func (s *Simulation) cast(index int) {
	spells := s.player.Spells()
	if index < 0 || index >= len(spells) {
		return
	}
	sp := spells[index]
	if !sp.Offensive {
		ok := s.player.CastSpell(index, nil)
		s.logger.Debug("spell cast", zap.String("spell", sp.ID), zap.Bool("ok", ok))
		return
	}

	reach := MeleeRange
	if sp.Ranged {
		reach = ProjectileRange
	}
	target, found := s.dungeon.NearestEnemy(s.player.Position, reach)
	if !found {
		return
	}
	if !sp.Ranged {
		ok := s.player.CastSpell(index, target.Character)
		s.logger.Debug("spell cast", zap.String("spell", sp.ID), zap.String("target", target.ID()), zap.Bool("ok", ok))
		return
	}
	if _, ok := s.player.PrepareCast(index); !ok {
		return
	}
	s.projectiles = append(s.projectiles, newProjectile(s.player.Character, sp, s.player.Position, target.Position))
	s.logger.Debug("projectile launched", zap.String("spell", sp.ID), zap.String("toward", target.ID()))
}

func (s *Simulation) advanceProjectiles(dt float64) {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.advance(dt, s.dungeon) {
			kept = append(kept, p)
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

// collectDefeated removes inactive enemies, rolls their loot at their last
// position, and pays their rewards to the player.
func (s *Simulation) collectDefeated() {
	for _, e := range s.dungeon.RemoveDefeated() {
		s.kills++
		s.player.GainExperience(e.XPReward)
		s.player.AddGold(e.GoldReward)
		if e.IsBoss() {
			s.player.SetQuestFlag(QuestBossSlain, true)
		}
		s.logger.Debug("enemy defeated",
			zap.String("enemy", e.ID()),
			zap.Int("xp", e.XPReward),
			zap.Int("gold", e.GoldReward),
			zap.Int("player_level", s.player.Level()),
		)
		if it := e.Loot.Drop(s.player.Level(), s.roller); it != nil {
			s.dungeon.Ground.Drop(it, e.Position)
			s.logger.Debug("loot dropped", zap.String("item", it.Name), zap.String("by", e.ID()))
		}
	}
}

func (s *Simulation) pickup() {
	if !s.player.IsActive() {
		return
	}
	for _, it := range s.dungeon.Ground.PickupWithin(s.player.Position, PickupRadius) {
		s.player.AddItem(it)
		s.logger.Debug("item picked up", zap.String("item", it.Name))
	}
}

// checkTerminal ends the run. A dead player loses even if the last enemy fell
// on the same tick.
func (s *Simulation) checkTerminal() {
	switch {
	case s.player.Health() <= 0:
		s.status = GameOver
		s.logger.Info("game over", zap.Uint64("tick", s.ticks), zap.Int("kills", s.kills))
		s.narrative.Publish(narrative.GameOver())
	case s.dungeon.HadEnemies() && s.dungeon.EnemyCount() == 0:
		s.status = Victory
		s.player.SetQuestFlag(QuestDragonOrb, true)
		s.logger.Info("victory", zap.Uint64("tick", s.ticks), zap.Int("kills", s.kills))
		s.narrative.Publish(narrative.Victory())
	}
}

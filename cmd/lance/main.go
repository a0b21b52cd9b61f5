// Package main runs the dungeon simulation in a terminal, driven either by
// the autopilot or by typed commands.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/lance/internal/agent"
	"github.com/cory-johannsen/lance/internal/config"
	"github.com/cory-johannsen/lance/internal/content"
	"github.com/cory-johannsen/lance/internal/frontend/ascii"
	"github.com/cory-johannsen/lance/internal/game/command"
	"github.com/cory-johannsen/lance/internal/game/cue"
	"github.com/cory-johannsen/lance/internal/game/dice"
	"github.com/cory-johannsen/lance/internal/game/narrative"
	"github.com/cory-johannsen/lance/internal/game/sim"
	"github.com/cory-johannsen/lance/internal/observability"
	"github.com/cory-johannsen/lance/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	seed := flag.Uint64("seed", 0, "dice seed; 0 keeps the configured value")
	width := flag.Int("width", 0, "grid width in cells; 0 keeps the configured value")
	height := flag.Int("height", 0, "grid height in cells; 0 keeps the configured value")
	ticks := flag.Uint64("ticks", 0, "stop after this many ticks; 0 keeps the configured value")
	renderEvery := flag.Int("render-every", 30, "draw a frame every n ticks; 0 disables drawing")
	interactive := flag.Bool("interactive", false, "read commands from stdin instead of using the autopilot")
	color := flag.Bool("color", true, "use ANSI colors")
	flag.Parse()

	overrides := map[string]any{}
	if *seed != 0 {
		overrides["simulation.seed"] = *seed
	}
	if *width != 0 {
		overrides["simulation.width"] = *width
	}
	if *height != 0 {
		overrides["simulation.height"] = *height
	}
	if *ticks != 0 {
		overrides["simulation.max_ticks"] = *ticks
	}

	// Load configuration
	cfg, err := config.LoadWith(*configPath, overrides)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting Lance",
		zap.Int("width", cfg.Simulation.Width),
		zap.Int("height", cfg.Simulation.Height),
		zap.Uint64("seed", cfg.Simulation.Seed),
		zap.Int("tick_rate", cfg.Simulation.TickRate),
		zap.Bool("interactive", *interactive),
	)

	// Load content
	bundle, err := content.Load()
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("templates", bundle.Templates.Len()),
		zap.Int("items", len(bundle.Items.AllItems())),
		zap.Int("spells", len(bundle.Spells)),
	)

	src := dice.NewCryptoSource()
	if cfg.Simulation.Seed != 0 {
		src = dice.NewSeededSource(cfg.Simulation.Seed)
	}
	narr := narrative.NewChannel(16)

	s, err := sim.New(sim.Options{
		Width:         cfg.Simulation.Width,
		Height:        cfg.Simulation.Height,
		TileSize:      cfg.Simulation.TileSize,
		SpawnAttempts: cfg.Simulation.SpawnAttempts,
		ViewWidth:     cfg.Simulation.ViewportW,
		ViewHeight:    cfg.Simulation.ViewportH,
		PlayerName:    cfg.Simulation.PlayerName,
		Abilities:     cfg.Simulation.Abilities.Abilities(),
		Roller:        dice.NewLoggedRoller(src, logger.Named("dice")),
		Templates:     bundle.Templates,
		Items:         bundle.Items,
		Spells:        bundle.Spells,
		Cues:          cue.NewLogSink(logger.Named("cue")),
		Narrative:     narr,
		Logger:        logger.Named("sim"),
	})
	if err != nil {
		logger.Fatal("creating simulation", zap.Error(err))
	}

	renderer := ascii.Renderer{Color: *color, Clear: *interactive}
	// Frames, replies, and narrative arrive from different goroutines.
	var outMu sync.Mutex
	out := bufio.NewWriter(os.Stdout)
	show := func(text string) {
		outMu.Lock()
		defer outMu.Unlock()
		_, _ = io.WriteString(out, text)
		_ = out.Flush()
	}

	lc := server.NewLifecycle(logger)

	var intents sim.IntentSource
	if *interactive {
		ctrl := command.NewController(nil, command.DefaultLineBuffer, func(msg string) { show(msg + "\n") })
		intents = ctrl
		// The stdin reader cannot be interrupted, so it lives outside the lifecycle.
		go readCommands(os.Stdin, ctrl, logger)
		lc.Add("controller", server.ServiceFunc(func(ctx context.Context) error {
			select {
			case <-ctrl.Done():
				logger.Info("player quit")
			case <-ctx.Done():
			}
			return nil
		}))
	} else {
		intents = agent.New(logger.Named("autopilot"))
	}

	opts := []sim.RunnerOption{
		sim.WithMaxTicks(cfg.Simulation.MaxTicks),
		sim.WithLogger(logger.Named("runner")),
	}
	if *renderEvery > 0 {
		opts = append(opts, sim.WithFrameSink(func(snap *sim.Snapshot) { show(renderer.Render(snap)) }, *renderEvery))
	}
	runner := sim.NewRunner(s, intents, cfg.Simulation.TickInterval(), opts...)

	lc.Add("simulation", server.ServiceFunc(func(ctx context.Context) error {
		status := runner.Run(ctx)
		logger.Info("simulation finished",
			zap.Stringer("status", status),
			zap.Uint64("ticks", s.Ticks()),
			zap.Float64("elapsed", s.Elapsed()),
			zap.Int("kills", s.Kills()),
			zap.Int("level", s.Player().Level()),
		)
		return nil
	}))
	lc.Add("narrative", server.ServiceFunc(func(ctx context.Context) error {
		return pumpNarrative(ctx, narr, func(e narrative.Event) { show(renderer.RenderEvent(e)) })
	}))

	logger.Info("startup complete", zap.Duration("elapsed", time.Since(start)))
	if err := lc.Run(context.Background()); err != nil {
		logger.Error("lifecycle error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	if dropped := narr.Dropped(); dropped > 0 {
		logger.Warn("narrative events dropped", zap.Int("count", dropped))
	}
}

// pumpNarrative forwards events to show until ctx is done, then drains
// whatever is still buffered so the final event of a run is not lost.
func pumpNarrative(ctx context.Context, ch *narrative.Channel, show func(narrative.Event)) error {
	for {
		select {
		case e := <-ch.Events():
			show(e)
		case <-ctx.Done():
			for {
				select {
				case e := <-ch.Events():
					show(e)
				default:
					return nil
				}
			}
		}
	}
}

// readCommands submits each stdin line to ctrl until EOF.
func readCommands(r io.Reader, ctrl *command.Controller, logger *zap.Logger) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !ctrl.Submit(sc.Text()) {
			logger.Warn("command dropped; input buffer full", zap.String("line", sc.Text()))
		}
	}
	if err := sc.Err(); err != nil {
		logger.Warn("reading commands", zap.Error(err))
	}
}

// Command tileterm runs a tile world in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"time"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/audio"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/input"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/automoto/tilewalk/terminal"
	"github.com/automoto/tilewalk/world"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	levelFlag = flag.String("level", "", "level YAML (embedded path or file on disk)")
	tpsFlag   = flag.Int("tps", 0, "world ticks per second (default from config)")
	logFlag   = flag.String("log", "", "write logs to this file")
	muteFlag  = flag.Bool("mute", false, "start without sound")
	verbose   = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tileterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *tpsFlag > 0 {
		config.World.TickRate = *tpsFlag
	}

	logger := zap.NewNop()
	if *logFlag != "" {
		l, err := logging.New(logging.Options{Verbose: *verbose, Path: *logFlag, JSON: true})
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync()

	fsys, levelPath, err := assets.LevelSource(*levelFlag)
	if err != nil {
		return err
	}
	// Only image sizes matter here; the pixels are never drawn.
	images := assets.NewImageLoader(fsys, assets.DecodeConfig, logger)
	w, lvl, err := factory.LoadWorld(fsys, levelPath, images, factory.WorldOptions{
		TickRate: config.World.TickRate,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	preloadCtx, cancelPreload := context.WithTimeout(context.Background(), config.Assets.PreloadTimeout)
	err = images.Preload(preloadCtx)
	cancelPreload()
	if err != nil {
		logger.Warn("some images did not load", zap.Error(err))
	}

	sound := audio.NewPlayer(config.Audio)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Restore the terminal even if a tick panics outside the world's
	// own recovery.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "tileterm crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	g := &game{
		world:    w,
		level:    lvl,
		screen:   screen,
		renderer: terminal.NewRenderer(screen, config.Terminal),
		sound:    sound,
		muted:    *muteFlag,
		status:   true,
		log:      logger,
	}
	return g.run(terminal.NewController(input.NewAdapter(w, logger)))
}

type game struct {
	world    *world.World
	level    *config.LevelConfig
	screen   tcell.Screen
	renderer *terminal.Renderer
	sound    *audio.Player
	log      *zap.Logger

	mu     sync.Mutex
	muted  bool
	status bool
}

func (g *game) run(ctl *terminal.Controller) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := world.NewLoop(g.world, g.onTick)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return loop.Run(ctx)
	})
	eg.Go(func() error {
		<-ctx.Done()
		// Wake PollEvent so the event loop sees the cancellation.
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	g.draw(world.Report{})
	g.events(ctx, cancel, ctl)
	loop.Stop()

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (g *game) events(ctx context.Context, cancel context.CancelFunc, ctl *terminal.Controller) {
	for {
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ctl.Handle(ev) {
			case terminal.CommandQuit:
				cancel()
				return
			case terminal.CommandToggleStatus:
				g.mu.Lock()
				g.status = !g.status
				g.mu.Unlock()
			case terminal.CommandToggleMute:
				g.mu.Lock()
				g.muted = !g.muted
				g.mu.Unlock()
			}
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return
			}
		}
	}
}

func (g *game) onTick(r world.Report) {
	g.mu.Lock()
	muted := g.muted
	g.mu.Unlock()

	if p := g.world.Player(); p != nil && r.CollidedWith(p.Name()) && !muted {
		g.sound.Bump(time.Now())
	}
	for _, f := range r.Failures {
		g.log.Error("actor failed", zap.String("actor", f.Name), zap.Error(f.Err))
	}
	g.draw(r)
}

func (g *game) draw(r world.Report) {
	g.mu.Lock()
	showStatus, muted := g.status, g.muted
	g.mu.Unlock()

	collided := make(map[string]bool, len(r.Collisions))
	for _, c := range r.Collisions {
		collided[c.Mover] = true
	}

	var lines []string
	if showStatus {
		sound := "on"
		if muted {
			sound = "off"
		}
		lines = append(lines,
			fmt.Sprintf("%s  tick %d  checksum %016x  sound %s", g.level.Name, r.Seq, r.Checksum, sound),
			"arrows/wasd walk  space stop  m mute  F1 status  q quit",
		)
		if len(r.Collisions) > 0 {
			lines[1] = r.Collisions[0].String()
		}
	}
	g.renderer.Draw(g.world, lines, collided)
}

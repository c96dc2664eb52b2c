package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/render"
	"github.com/automoto/tilewalk/scenes"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	levelFlag   = flag.String("level", "", "level YAML (embedded path or file on disk)")
	tpsFlag     = flag.Int("tps", 0, "world ticks per second (default from config)")
	debugFlag   = flag.Bool("debug", false, "start with the debug overlay on")
	verboseFlag = flag.Bool("v", false, "debug logging")
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(interface{ Quit() bool }); ok && q.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.Parse()
	config.Debug.Overlay = *debugFlag
	config.Debug.Verbose = *verboseFlag
	if *tpsFlag > 0 {
		config.World.TickRate = *tpsFlag
	}

	logger, err := logging.New(logging.Options{Verbose: config.Debug.Verbose})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := fonts.LoadDefaults(config.UI.DebugFontSize); err != nil {
		logger.Fatal("fonts", zap.Error(err))
	}

	fsys, levelPath, err := assets.LevelSource(*levelFlag)
	if err != nil {
		logger.Fatal("level", zap.Error(err))
	}
	images := assets.NewImageLoader(fsys, render.Decode, logger)
	w, lvl, err := factory.LoadWorld(fsys, levelPath, images, factory.WorldOptions{
		TickRate: config.World.TickRate,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	// Images resolve in the background; actors draw once theirs arrive.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.Assets.PreloadTimeout)
		defer cancel()
		if err := images.Preload(ctx); err != nil {
			logger.Warn("some images did not load", zap.Error(err))
		}
	}()

	ebiten.SetTPS(w.TickRate())
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(
		int(float64(config.C.Width)*config.C.WindowScale),
		int(float64(config.C.Height)*config.C.WindowScale),
	)

	g := &Game{}
	g.ChangeScene(scenes.NewWorldScene(w, lvl, logger))
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game", zap.Error(err))
	}
}

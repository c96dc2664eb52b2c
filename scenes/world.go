package scenes

import (
	"sync"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/systems"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/automoto/tilewalk/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene runs one tile world, one tick per game update.
type WorldScene struct {
	ecs   *ecs.ECS
	world *world.World
	level *cfg.LevelConfig
	log   *zap.Logger
	once  sync.Once
}

func NewWorldScene(w *world.World, level *cfg.LevelConfig, log *zap.Logger) *WorldScene {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorldScene{world: w, level: level, log: log}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	ws.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave.
func (ws *WorldScene) Quit() bool {
	if ws.ecs == nil {
		return false
	}
	entry, ok := components.Settings.First(ws.ecs.World)
	return ok && components.Settings.Get(entry).Quit
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateWorld)
	ecs.AddSystem(systems.UpdateHighlights)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHighlights)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ws.ecs = ecs
	factory.CreateWorld(ws.ecs, ws.world, ws.level, ws.log)

	ws.log.Info("scene configured",
		zap.Int("tickRate", ws.world.TickRate()),
		zap.Int("actors", len(ws.world.Actors())),
	)
}

package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/input"
	"github.com/automoto/tilewalk/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateWorld spawns the singleton entity carrying the running world, its
// input adapter and the runtime toggles.
func CreateWorld(ecs *ecs.ECS, w *world.World, lvl *config.LevelConfig, log *zap.Logger) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)

	components.World.SetValue(entry, components.WorldData{
		World: w,
		Level: lvl,
		Input: input.NewAdapter(w, log),
	})
	components.Settings.SetValue(entry, components.SettingsData{
		Debug: config.Debug.Overlay,
	})

	return entry
}

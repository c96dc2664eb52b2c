package components

import (
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/input"
	"github.com/automoto/tilewalk/world"
	"github.com/yohamta/donburi"
)

// WorldData holds the running tile world and its player input adapter
// (singleton component).
type WorldData struct {
	World *world.World
	Level *config.LevelConfig
	Input *input.Adapter
	// Last is the report of the most recent tick.
	Last  world.Report
	Ticks uint64
}

var World = donburi.NewComponentType[WorldData]()

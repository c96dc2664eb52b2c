package systems

import (
	"fmt"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/render"
	"github.com/automoto/tilewalk/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every sprite's collision box, labels it, and prints
// the tick counters when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.World.First(ecs.World)
	if !ok || !entry.HasComponent(components.Settings) {
		return
	}
	if !components.Settings.Get(entry).Debug {
		return
	}
	data := components.World.Get(entry)
	if data.World == nil {
		return
	}

	small := fonts.Small.Get()
	states := data.World.Snapshot()
	for _, s := range states {
		render.Outline(screen, s.Box, 1, cfg.UI.DebugOutlineColor)
		text.Draw(screen, s.Name, small, int(s.Box.X), int(s.Box.Y)-4, cfg.UI.DebugTextColor)
	}

	lines := StatusLines(data, states)
	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(lineHeight*len(lines)+8), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 8, lineHeight*(i+1), cfg.UI.DebugTextColor)
	}
}

// StatusLines summarises the last tick for the debug overlay.
func StatusLines(data *components.WorldData, states []world.SpriteState) []string {
	name := ""
	if data.Level != nil {
		name = data.Level.Name
	}
	lines := []string{
		fmt.Sprintf("%s  tick %d  sprites %d  checksum %016x", name, data.Last.Seq, len(states), data.Last.Checksum),
	}
	for _, s := range states {
		if !s.Player {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  pos (%.1f, %.1f)  vel (%.1f, %.1f)  %s",
			s.Name, s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.Sequence))
	}
	for _, c := range data.Last.Collisions {
		lines = append(lines, c.String())
	}
	for _, f := range data.Last.Failures {
		lines = append(lines, fmt.Sprintf("%s failed: %v", f.Name, f.Err))
	}
	return lines
}

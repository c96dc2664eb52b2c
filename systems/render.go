package systems

import (
	"image/color"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld clears the screen and draws every actor in tick order.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	w := components.World.Get(entry).World
	if w == nil {
		return
	}
	w.Draw(render.NewSink(screen, 1, cfg.UI.BBoxColor))
}

// DrawHighlights outlines recent collisions, fading with their tween.
func DrawHighlights(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		if h.Alpha <= 0 {
			return
		}
		render.Outline(screen, h.Box, 1, fade(cfg.UI.HighlightColor, h.Alpha))
	})
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

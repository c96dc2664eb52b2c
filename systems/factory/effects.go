package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnHighlight marks a collision with an outline around box that fades
// out over the configured duration.
func SpawnHighlight(ecs *ecs.ECS, name string, box gamemath.Rect) *donburi.Entry {
	entry := archetypes.Highlight.Spawn(ecs)
	components.Highlight.SetValue(entry, components.HighlightData{
		Name:  name,
		Box:   box,
		Tween: gween.New(1, 0, cfg.UI.HighlightDuration, ease.OutQuad),
		Alpha: 1,
	})
	return entry
}

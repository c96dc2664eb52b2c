package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHighlights fades collision highlights and removes finished ones.
func UpdateHighlights(ecs *ecs.ECS) {
	dt := TickSeconds(ecs)
	var toDestroy []*donburi.Entry

	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		if h.Tween == nil {
			toDestroy = append(toDestroy, e)
			return
		}
		h.Alpha, h.Done = h.Tween.Update(dt)
		if h.Done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

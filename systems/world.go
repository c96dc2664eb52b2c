package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/automoto/tilewalk/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWorld runs one world tick per frame; the game's TPS is set to the
// world's tick rate. Collisions become highlights, and a player collision
// queues a bump sound.
func UpdateWorld(ecs *ecs.ECS) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	data := components.World.Get(entry)
	if data.World == nil {
		return
	}

	report := data.World.Tick()
	data.Last = report
	data.Ticks++

	if len(report.Collisions) == 0 {
		return
	}
	highlightCollisions(ecs, data.World, report)

	player := data.World.Player()
	if player != nil && report.CollidedWith(player.Name()) && entry.HasComponent(components.Audio) {
		components.Audio.Get(entry).PendingBumps++
	}
}

func highlightCollisions(ecs *ecs.ECS, w *world.World, report world.Report) {
	boxes := make(map[string]gamemath.Rect)
	for _, s := range w.Snapshot() {
		boxes[s.ID] = s.Box
	}

	active := make(map[string]*components.HighlightData)
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		active[h.Name] = h
	})

	for _, c := range report.Collisions {
		box, ok := boxes[c.MoverID]
		if !ok {
			continue
		}
		// A sprite pressing against a wall collides every tick; keep one
		// highlight alive instead of stacking them.
		if h, ok := active[c.Mover]; ok {
			h.Box = box
			h.Tween.Reset()
			h.Alpha = 1
			h.Done = false
			continue
		}
		entry := factory.SpawnHighlight(ecs, c.Mover, box)
		active[c.Mover] = components.Highlight.Get(entry)
	}
}

// TickSeconds is the duration of one world tick, or of one frame at
// 60 TPS when no world is running.
func TickSeconds(ecs *ecs.ECS) float32 {
	if entry, ok := components.World.First(ecs.World); ok {
		if w := components.World.Get(entry).World; w != nil {
			return 1 / float32(w.TickRate())
		}
	}
	return 1.0 / 60
}

// Package input turns direction key events into player velocity and
// animation changes.
package input

import (
	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/automoto/tilewalk/world"
	"go.uber.org/zap"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String is the directional sequence name.
func (d Direction) String() string {
	switch d {
	case Up:
		return actors.SequenceUp
	case Down:
		return actors.SequenceDown
	case Left:
		return actors.SequenceLeft
	case Right:
		return actors.SequenceRight
	}
	return "unknown"
}

func (d Direction) unit() gamemath.Vec {
	switch d {
	case Up:
		return gamemath.V(0, -1)
	case Down:
		return gamemath.V(0, 1)
	case Left:
		return gamemath.V(-1, 0)
	case Right:
		return gamemath.V(1, 0)
	}
	return gamemath.Vec{}
}

// Adapter drives a world's player from key events. All changes happen
// between ticks under the world lock.
type Adapter struct {
	world    *world.World
	speed    float64
	fallback float64
	log      *zap.Logger
}

func NewAdapter(w *world.World, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		world:    w,
		speed:    config.World.SpeedMultiplier,
		fallback: config.World.FallbackTileWidth,
		log:      log,
	}
}

// tileWidth is one tile of the world's map, or the configured fallback
// before the tileset loads.
func (a *Adapter) tileWidth() float64 {
	if m := a.world.Map(); m != nil {
		if size, ok := m.TileSize(); ok {
			return size.X
		}
	}
	return a.fallback
}

// KeyDown starts walking in dir at speed tiles per second, replacing any
// previous motion. Auto-repeat events are ignored. It reports whether
// the player changed.
func (a *Adapter) KeyDown(dir Direction, repeat bool) bool {
	p := a.world.Player()
	if repeat || p == nil {
		return false
	}

	v := dir.unit().Scale(a.tileWidth() * a.speed)
	a.world.Update(func() {
		p.Velocity = v
		p.ChangeSequence(dir.String())
	})
	a.log.Debug("key down", zap.Stringer("dir", dir), zap.Float64("vx", v.X), zap.Float64("vy", v.Y))
	return true
}

// KeyUp stops the player and shows the idle pose for dir.
func (a *Adapter) KeyUp(dir Direction, repeat bool) bool {
	p := a.world.Player()
	if repeat || p == nil {
		return false
	}

	a.world.Update(func() {
		p.Velocity = gamemath.Vec{}
		p.ChangeSequence(dir.String() + actors.IdleSuffix)
	})
	a.log.Debug("key up", zap.Stringer("dir", dir))
	return true
}

// Stop halts the player without a direction, idling whatever it was
// playing. Frontends without key-up events use it.
func (a *Adapter) Stop() bool {
	p := a.world.Player()
	if p == nil {
		return false
	}

	a.world.Update(func() {
		p.Velocity = gamemath.Vec{}
		if name := p.SequenceName(); !actors.IsIdle(name) {
			p.ChangeSequence(name + actors.IdleSuffix)
		}
	})
	a.log.Debug("stop")
	return true
}

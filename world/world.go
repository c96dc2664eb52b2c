// Package world owns the actor list and runs the fixed-rate tick.
package world

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrTickRate = errors.New("tick rate must be positive")

const (
	defaultSpaceSize = 2048
	defaultCellSize  = 64
)

type Option func(*World)

func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithPlayer marks the sprite the input adapter drives.
func WithPlayer(p *actors.Sprite) Option {
	return func(w *World) {
		w.player = p
	}
}

// WithSpace sizes the broad-phase grid, which always starts at the world
// origin. By default it covers the map when the tileset is already loaded,
// or a square of defaultSpaceSize otherwise.
func WithSpace(width, height float64, cell int) Option {
	return func(w *World) {
		w.spaceW, w.spaceH = width, height
		w.cellSize = cell
	}
}

// World is the ordered set of actors advanced each tick. Every access to
// actor state from outside a tick goes through its mutex.
type World struct {
	mu   sync.Mutex
	gate singleflight.Group
	log  *zap.Logger

	tickRate int
	actors   []actors.Actor
	tilemap  *actors.TileMap
	player   *actors.Sprite
	space    *space
	seq      uint64

	spaceW   float64
	spaceH   float64
	cellSize int
}

// New builds a world ticking at tickRate. Actors run in the order given;
// the first tile map among them is the world's map.
func New(tickRate int, list []actors.Actor, opts ...Option) (*World, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrTickRate, tickRate)
	}

	w := &World{
		log:      zap.NewNop(),
		tickRate: tickRate,
		actors:   append([]actors.Actor(nil), list...),
		cellSize: defaultCellSize,
	}
	for _, a := range w.actors {
		if m, ok := a.(*actors.TileMap); ok {
			w.tilemap = m
			break
		}
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.spaceW <= 0 || w.spaceH <= 0 {
		w.spaceW, w.spaceH = defaultSpaceSize, defaultSpaceSize
		if w.tilemap != nil {
			if b, ok := w.tilemap.Bounds(); ok && b.Right() > 0 && b.Bottom() > 0 {
				w.spaceW, w.spaceH = b.Right(), b.Bottom()
			}
		}
	}
	if w.cellSize <= 0 {
		w.cellSize = defaultCellSize
	}
	w.space = newSpace(w.spaceW, w.spaceH, w.cellSize)
	for _, a := range w.actors {
		w.space.track(a)
	}

	w.log.Info("world created",
		zap.Int("tickRate", tickRate),
		zap.Int("actors", len(w.actors)),
		zap.Float64("spaceWidth", w.spaceW),
		zap.Float64("spaceHeight", w.spaceH),
	)
	return w, nil
}

func (w *World) TickRate() int {
	return w.tickRate
}

// Map returns the world's tile map, or nil when there is none.
func (w *World) Map() *actors.TileMap {
	return w.tilemap
}

// Player returns the input-driven sprite, or nil.
func (w *World) Player() *actors.Sprite {
	return w.player
}

// Actors returns the actors in tick order. Callers must not touch their
// mutable state outside Update.
func (w *World) Actors() []actors.Actor {
	return append([]actors.Actor(nil), w.actors...)
}

// Update runs fn with the world locked, between ticks.
func (w *World) Update(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// Draw renders every actor in tick order.
func (w *World) Draw(sink actors.RenderSink) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, a := range w.actors {
		a.Draw(sink)
	}
}

// Checksum fingerprints the current sprite state.
func (w *World) Checksum() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return checksum(w.actors)
}

// Tick advances the world by one step. Ticks never overlap: a caller that
// arrives while a tick is running waits for it and gets its report.
func (w *World) Tick() Report {
	v, _, _ := w.gate.Do("tick", func() (interface{}, error) {
		return w.tick(), nil
	})
	return v.(Report)
}

func (w *World) tick() Report {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	sc := &scene{world: w, report: Report{Seq: w.seq}}

	// Positions may have been edited through Update since the last tick.
	w.space.syncAll()

	for _, a := range w.actors {
		w.step(sc, a)
	}

	sc.report.Checksum = checksum(w.actors)
	w.log.Debug("tick",
		zap.Uint64("seq", sc.report.Seq),
		zap.Int("collisions", len(sc.report.Collisions)),
		zap.Uint64("checksum", sc.report.Checksum),
	)
	return sc.report
}

// step advances one actor and runs its behavior. A panic is contained to
// the actor that raised it.
func (w *World) step(sc *scene, a actors.Actor) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := fmt.Errorf("actor %q panicked: %v", a.Name(), r)
		sc.report.Failures = append(sc.report.Failures, Failure{
			ActorID: a.ID(),
			Name:    a.Name(),
			Err:     err,
		})
		w.log.Error("behavior failed",
			zap.String("actor", a.Name()),
			zap.String("id", a.ID()),
			zap.Error(err),
			zap.Stack("stack"),
		)
		w.space.sync(a)
	}()

	a.Advance()
	if b, ok := a.(actors.Behaver); ok {
		b.Behave(sc)
	}
	w.space.sync(a)
}

// colliding returns, in tick order, every actor other than self whose
// state intersects box. Indexed actors are filtered through the broad
// phase first; everything else is always tested.
func (w *World) colliding(self actors.Actor, box gamemath.Rect) []actors.Actor {
	cands, ok := w.space.candidates(box)
	if !ok {
		return actors.Colliding(self, box, w.actors)
	}

	others := make([]actors.Actor, 0, len(cands)+1)
	for _, a := range w.actors {
		if !w.space.indexed(a) {
			others = append(others, a)
			continue
		}
		if _, hit := cands[a]; hit {
			others = append(others, a)
		}
	}
	return actors.Colliding(self, box, others)
}

// scene is the read-only view behaviors get during a tick.
type scene struct {
	world  *World
	report Report
}

var _ actors.Scene = (*scene)(nil)

func (s *scene) TickRate() int {
	return s.world.tickRate
}

func (s *scene) Actors() []actors.Actor {
	return s.world.Actors()
}

func (s *scene) Colliding(self actors.Actor, box gamemath.Rect) []actors.Actor {
	return s.world.colliding(self, box)
}

func (s *scene) ReportCollision(self actors.Actor, others []actors.Actor) {
	c := Collision{
		MoverID:    self.ID(),
		Mover:      self.Name(),
		OtherIDs:   make([]string, 0, len(others)),
		OtherNames: make([]string, 0, len(others)),
	}
	for _, o := range others {
		c.OtherIDs = append(c.OtherIDs, o.ID())
		c.OtherNames = append(c.OtherNames, o.Name())
	}
	s.report.Collisions = append(s.report.Collisions, c)

	s.world.log.Debug(c.String(),
		zap.String("id", c.MoverID),
		zap.String("others", strings.Join(c.OtherIDs, ",")),
	)
}

package world

import (
	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
)

// SpriteState is a copy of one sprite's mutable state.
type SpriteState struct {
	ID       string
	Name     string
	Position gamemath.Vec
	Velocity gamemath.Vec
	Box      gamemath.Rect
	Sequence string
	Clock    float64
	Frame    actors.Frame
	Player   bool
}

// Snapshot copies the state of every sprite in tick order.
func (w *World) Snapshot() []SpriteState {
	w.mu.Lock()
	defer w.mu.Unlock()

	states := make([]SpriteState, 0, len(w.actors))
	for _, a := range w.actors {
		s, ok := a.(*actors.Sprite)
		if !ok {
			continue
		}
		states = append(states, SpriteState{
			ID:       s.ID(),
			Name:     s.Name(),
			Position: s.Position,
			Velocity: s.Velocity,
			Box:      s.Box(),
			Sequence: s.SequenceName(),
			Clock:    s.Clock(),
			Frame:    s.Frame(),
			Player:   s == w.player,
		})
	}
	return states
}

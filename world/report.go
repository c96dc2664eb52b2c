package world

import (
	"strings"
)

// Collision records one mover hitting one or more actors during a tick.
type Collision struct {
	MoverID    string
	Mover      string
	OtherIDs   []string
	OtherNames []string
}

// String renders the collision the way it is logged.
func (c Collision) String() string {
	return c.Mover + " collided with " + strings.Join(c.OtherNames, ", ")
}

// Failure is an actor whose tick panicked. The actor is skipped for the
// rest of that tick only. Nothing is rolled back: if the panic came from
// another party's collision reaction, parties told before it keep their
// changes.
type Failure struct {
	ActorID string
	Name    string
	Err     error
}

// Report summarises one tick.
type Report struct {
	Seq        uint64
	Collisions []Collision
	Failures   []Failure
	Checksum   uint64
}

// CollidedWith reports whether the named actor caused a collision this tick.
func (r Report) CollidedWith(name string) bool {
	for _, c := range r.Collisions {
		if c.Mover == name {
			return true
		}
	}
	return false
}

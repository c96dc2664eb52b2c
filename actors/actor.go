package actors

import "github.com/automoto/tilewalk/gamemath"

// Actor is anything the world advances and draws each tick. The tile map is
// an Actor too, so sprites collide with it through the same CollideBox call
// they use against each other.
type Actor interface {
	ID() string
	Name() string
	// Advance moves the animation clock forward one tick.
	Advance()
	Draw(sink RenderSink)
	// CollideBox reports whether box intersects this actor's current state.
	CollideBox(box gamemath.Rect) bool
	// OnCollide is invoked for both parties of a collision; caused is true
	// for the actor whose prospective move triggered it.
	OnCollide(other Actor, caused bool)
}

// Behaver is implemented by actors that run a strategy every tick.
type Behaver interface {
	Behave(scene Scene)
}

// RenderSink receives draw primitives. Implementations own the pixel buffers.
type RenderSink interface {
	DrawImage(img *Image, src, dst gamemath.Rect)
	FillRect(dst gamemath.Rect)
}

// Scene is the view of the world handed to behaviors during a tick. Other
// actors must be treated as read-only apart from invoking their OnCollide.
type Scene interface {
	TickRate() int
	// Actors returns the actors in tick order.
	Actors() []Actor
	// Colliding returns, in tick order, every actor other than self whose
	// current state intersects box.
	Colliding(self Actor, box gamemath.Rect) []Actor
	ReportCollision(self Actor, others []Actor)
}

// Behavior is a per-tick strategy bound to a sprite.
type Behavior func(self *Sprite, scene Scene)

// Reaction is invoked on a sprite when it takes part in a collision.
type Reaction func(self *Sprite, other Actor, caused bool)

// Colliding is the linear narrow phase: every actor in others except self
// whose CollideBox accepts box, preserving order.
func Colliding(self Actor, box gamemath.Rect, others []Actor) []Actor {
	var hits []Actor
	for _, a := range others {
		if a == self {
			continue
		}
		if a.CollideBox(box) {
			hits = append(hits, a)
		}
	}
	return hits
}

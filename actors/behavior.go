package actors

// Walk is the standard movement strategy. The sprite moves by one tick of
// its velocity unless the prospective collision box hits another actor
// (the map included). On a hit both parties' reactions run, the mover's
// with caused set, and the sprite stays where it is. The mover reacts to
// every hit before anyone else is told, so a mover whose own reaction
// fails has not touched any other actor yet. Either way the
// sequence is then derived from the velocity as it stands after the
// reactions.
func Walk(self *Sprite, scene Scene) {
	rate := scene.TickRate()
	hits := scene.Colliding(self, self.ProspectiveBox(rate))

	if len(hits) > 0 {
		for _, other := range hits {
			self.OnCollide(other, true)
		}
		for _, other := range hits {
			other.OnCollide(self, false)
		}
		scene.ReportCollision(self, hits)
	} else {
		self.Position = self.Position.Add(self.Step(rate))
	}

	self.DeriveSequence()
}

// Bounce reverses the sprite when it caused the collision. The party that
// was run into is left alone.
func Bounce(self *Sprite, _ Actor, caused bool) {
	if caused {
		self.Velocity = self.Velocity.Neg()
	}
}

// Block leaves the sprite untouched: it keeps pressing against whatever
// it hit and keeps its walking animation.
func Block(*Sprite, Actor, bool) {}

// Halt stops the sprite when it caused the collision.
func Halt(self *Sprite, _ Actor, caused bool) {
	if caused {
		self.Velocity.X, self.Velocity.Y = 0, 0
	}
}

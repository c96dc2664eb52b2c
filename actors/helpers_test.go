package actors

import (
	"github.com/automoto/tilewalk/gamemath"
)

type fakeScene struct {
	rate    int
	actors  []Actor
	reports []collisionReport
}

type collisionReport struct {
	self   Actor
	others []Actor
}

func (f *fakeScene) TickRate() int {
	return f.rate
}

func (f *fakeScene) Actors() []Actor {
	return f.actors
}

func (f *fakeScene) Colliding(self Actor, box gamemath.Rect) []Actor {
	return Colliding(self, box, f.actors)
}

func (f *fakeScene) ReportCollision(self Actor, others []Actor) {
	f.reports = append(f.reports, collisionReport{self: self, others: others})
}

type drawCall struct {
	img      *Image
	src, dst gamemath.Rect
}

type fakeSink struct {
	draws []drawCall
	fills []gamemath.Rect
}

func (f *fakeSink) DrawImage(img *Image, src, dst gamemath.Rect) {
	f.draws = append(f.draws, drawCall{img: img, src: src, dst: dst})
}

func (f *fakeSink) FillRect(dst gamemath.Rect) {
	f.fills = append(f.fills, dst)
}

func loadedImage(path string, w, h int) *Image {
	img := NewImage(path)
	img.Resolve(w, h, nil)
	return img
}

func row(r, from, to int) []Frame {
	frames := make([]Frame, 0, to-from+1)
	for c := from; c <= to; c++ {
		frames = append(frames, Frame{Col: c, Row: r})
	}
	return frames
}

// walkerSequences is the nine-entry table used by the bundled characters.
func walkerSequences() Sequences {
	return Sequences{
		"default":    {Interval: 0.05, Frames: []Frame{{0, 3}}},
		"up":         {Interval: 0.5, Frames: row(0, 1, 8)},
		"left":       {Interval: 0.25, Frames: row(1, 1, 8)},
		"down":       {Interval: 0.5, Frames: row(2, 1, 8)},
		"right":      {Interval: 0.25, Frames: row(3, 1, 8)},
		"up_idle":    {Interval: 0.05, Frames: []Frame{{0, 0}}},
		"left_idle":  {Interval: 0.05, Frames: []Frame{{0, 1}}},
		"down_idle":  {Interval: 0.05, Frames: []Frame{{0, 2}}},
		"right_idle": {Interval: 0.05, Frames: []Frame{{0, 3}}},
	}
}

func newWalker(name string, pos, vel gamemath.Vec, reaction Reaction) *Sprite {
	s, err := NewSprite(SpriteConfig{
		Name:           name,
		Image:          loadedImage("sprites.png", 576, 256),
		TilesPerRow:    9,
		TilesPerColumn: 4,
		Position:       pos,
		Velocity:       vel,
		BBox:           gamemath.R(22, 15, 20, 48),
		Sequences:      walkerSequences(),
		Behavior:       Walk,
		OnCollide:      reaction,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// openMap is a 32x32 grid of 32px floor tiles (id 8) fenced by nothing.
func openMap() *TileMap {
	grid := make([]int, 32*32)
	for i := range grid {
		grid[i] = 8
	}
	m, err := NewTileMap(TileMapConfig{
		Name:           "open",
		Image:          loadedImage("walls.png", 256, 512),
		TilesPerRow:    8,
		TilesPerColumn: 16,
		Width:          32,
		Grid:           grid,
		Collidable:     []int{2, 7, 12, 17},
	})
	if err != nil {
		panic(err)
	}
	return m
}

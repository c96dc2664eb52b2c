package world

import (
	"testing"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/stretchr/testify/require"
)

func loaded(path string, w, h int) *actors.Image {
	img := actors.NewImage(path)
	img.Resolve(w, h, nil)
	return img
}

func walkerSequences() actors.Sequences {
	frames := func(r int) []actors.Frame {
		out := make([]actors.Frame, 0, 8)
		for c := 1; c <= 8; c++ {
			out = append(out, actors.Frame{Col: c, Row: r})
		}
		return out
	}
	return actors.Sequences{
		"default":    {Interval: 0.05, Frames: []actors.Frame{{Col: 0, Row: 3}}},
		"up":         {Interval: 0.5, Frames: frames(0)},
		"left":       {Interval: 0.25, Frames: frames(1)},
		"down":       {Interval: 0.5, Frames: frames(2)},
		"right":      {Interval: 0.25, Frames: frames(3)},
		"up_idle":    {Interval: 0.05, Frames: []actors.Frame{{Col: 0, Row: 0}}},
		"left_idle":  {Interval: 0.05, Frames: []actors.Frame{{Col: 0, Row: 1}}},
		"down_idle":  {Interval: 0.05, Frames: []actors.Frame{{Col: 0, Row: 2}}},
		"right_idle": {Interval: 0.05, Frames: []actors.Frame{{Col: 0, Row: 3}}},
	}
}

func sprite(t testing.TB, name string, pos, vel gamemath.Vec, behavior actors.Behavior, reaction actors.Reaction) *actors.Sprite {
	t.Helper()
	s, err := actors.NewSprite(actors.SpriteConfig{
		Name:           name,
		Image:          loaded("sprites.png", 576, 256),
		TilesPerRow:    9,
		TilesPerColumn: 4,
		Position:       pos,
		Velocity:       vel,
		BBox:           gamemath.R(22, 15, 20, 48),
		Sequences:      walkerSequences(),
		Behavior:       behavior,
		OnCollide:      reaction,
	})
	require.NoError(t, err)
	return s
}

// arena is a 32x32 map of 32px floor tiles walled in on every side.
func arena(t testing.TB) *actors.TileMap {
	t.Helper()
	const n = 32
	grid := make([]int, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			id := 8
			if row == 0 || col == 0 || row == n-1 || col == n-1 {
				id = 2
			}
			grid[col+row*n] = id
		}
	}
	m, err := actors.NewTileMap(actors.TileMapConfig{
		Name:           "arena",
		Image:          loaded("walls.png", 256, 512),
		TilesPerRow:    8,
		TilesPerColumn: 16,
		Width:          n,
		Grid:           grid,
		Collidable:     []int{2, 7, 12, 17},
	})
	require.NoError(t, err)
	return m
}

type nullSink struct {
	draws int
	fills int
}

func (n *nullSink) DrawImage(*actors.Image, gamemath.Rect, gamemath.Rect) {
	n.draws++
}

func (n *nullSink) FillRect(gamemath.Rect) {
	n.fills++
}

package actors

import (
	"testing"

	"github.com/automoto/tilewalk/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkMovesExactlyOneStep(t *testing.T) {
	m := openMap()
	p := newWalker("Player Character", gamemath.V(400, 40), gamemath.V(96, 0), nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p}}

	p.Behave(scene)

	assert.InDelta(t, 403.2, p.Position.X, 1e-9)
	assert.InDelta(t, 40, p.Position.Y, 1e-9)
	assert.Equal(t, SequenceRight, p.SequenceName())
	assert.Empty(t, scene.reports)
}

func TestWalkBlockedByActor(t *testing.T) {
	m := openMap()
	p := newWalker("Player Character", gamemath.V(400, 40), gamemath.V(96, 0), nil)
	e := newWalker("Enemy", gamemath.V(420, 40), gamemath.V(0, 32), nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p, e}}

	p.Behave(scene)

	assert.Equal(t, gamemath.V(400, 40), p.Position, "no partial move on collision")
	assert.Equal(t, gamemath.V(-96, 0), p.Velocity, "mover bounces")
	assert.Equal(t, gamemath.V(0, 32), e.Velocity, "the actor run into keeps its velocity")
	assert.Equal(t, SequenceLeft, p.SequenceName(), "sequence follows the post-reaction velocity")

	require.Len(t, scene.reports, 1)
	assert.Same(t, p, scene.reports[0].self)
	assert.Equal(t, []Actor{e}, scene.reports[0].others)
}

func TestWalkBlockedByMap(t *testing.T) {
	grid := make([]int, 32*32)
	for i := range grid {
		grid[i] = 8
	}
	grid[14+2*32] = 2
	m, err := NewTileMap(TileMapConfig{
		Image:          loadedImage("walls.png", 256, 512),
		TilesPerRow:    8,
		TilesPerColumn: 16,
		Width:          32,
		Grid:           grid,
		Collidable:     []int{2, 7, 12, 17},
	})
	require.NoError(t, err)

	// Box spans x 425..445 (column 13); one step right reaches column 14.
	p := newWalker("p", gamemath.V(403, 40), gamemath.V(96, 0), nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p}}

	p.Behave(scene)

	assert.Equal(t, gamemath.V(403, 40), p.Position)
	assert.Equal(t, gamemath.V(-96, 0), p.Velocity)
	require.Len(t, scene.reports, 1)
	assert.Equal(t, []Actor{m}, scene.reports[0].others)

	p.Behave(scene)
	assert.InDelta(t, 399.8, p.Position.X, 1e-9, "walks away next tick")
}

func TestWalkBlockReactionKeepsPressing(t *testing.T) {
	m := openMap()
	p := newWalker("p", gamemath.V(400, 40), gamemath.V(96, 0), Block)
	e := newWalker("e", gamemath.V(420, 40), gamemath.Vec{}, nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p, e}}

	for i := 0; i < 3; i++ {
		p.Behave(scene)
	}

	assert.Equal(t, gamemath.V(400, 40), p.Position)
	assert.Equal(t, gamemath.V(96, 0), p.Velocity)
	assert.Equal(t, SequenceRight, p.SequenceName())
	assert.Len(t, scene.reports, 3)
}

func TestWalkHaltReactionIdles(t *testing.T) {
	m := openMap()
	p := newWalker("p", gamemath.V(400, 40), gamemath.V(0, -96), Halt)
	p.DeriveSequence()
	e := newWalker("e", gamemath.V(400, -5), gamemath.Vec{}, nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p, e}}

	p.Behave(scene)

	assert.True(t, p.Velocity.IsZero())
	assert.Equal(t, "up_idle", p.SequenceName())
}

func TestWalkTwoHitsNegateTwice(t *testing.T) {
	m := openMap()
	p := newWalker("p", gamemath.V(400, 40), gamemath.V(96, 0), nil)
	a := newWalker("a", gamemath.V(420, 40), gamemath.Vec{}, nil)
	b := newWalker("b", gamemath.V(420, 50), gamemath.Vec{}, nil)
	scene := &fakeScene{rate: 30, actors: []Actor{m, p, a, b}}

	p.Behave(scene)

	assert.Equal(t, gamemath.V(96, 0), p.Velocity, "one Bounce per hit")
	assert.Equal(t, gamemath.V(400, 40), p.Position)
	require.Len(t, scene.reports, 1)
	assert.Equal(t, []Actor{a, b}, scene.reports[0].others)
}

type recordingActor struct {
	*TileMap
	calls []bool
}

func (r *recordingActor) OnCollide(_ Actor, caused bool) {
	r.calls = append(r.calls, caused)
}

func TestWalkNotifiesBothParties(t *testing.T) {
	grid := make([]int, 32*32)
	for i := range grid {
		grid[i] = 2
	}
	walls, err := NewTileMap(TileMapConfig{
		Image:          loadedImage("walls.png", 256, 512),
		TilesPerRow:    8,
		TilesPerColumn: 16,
		Width:          32,
		Grid:           grid,
		Collidable:     []int{2},
	})
	require.NoError(t, err)
	rec := &recordingActor{TileMap: walls}

	var reactions []bool
	p := newWalker("p", gamemath.V(400, 40), gamemath.V(32, 0), func(_ *Sprite, other Actor, caused bool) {
		assert.Same(t, rec, other)
		reactions = append(reactions, caused)
	})
	scene := &fakeScene{rate: 30, actors: []Actor{rec, p}}

	p.Behave(scene)

	assert.Equal(t, []bool{true}, reactions)
	assert.Equal(t, []bool{false}, rec.calls)
}

func TestSpriteWithoutBehaviorIgnoresBehave(t *testing.T) {
	s, err := NewSprite(SpriteConfig{
		Image:          NewImage("a.png"),
		TilesPerRow:    1,
		TilesPerColumn: 1,
		Velocity:       gamemath.V(10, 10),
		Sequences:      walkerSequences(),
	})
	require.NoError(t, err)

	s.Behave(&fakeScene{rate: 30})
	assert.Equal(t, gamemath.Vec{}, s.Position)
	assert.False(t, s.HasBehavior())
}

func TestCollidingSkipsSelfAndKeepsOrder(t *testing.T) {
	a := newWalker("a", gamemath.V(0, 0), gamemath.Vec{}, nil)
	b := newWalker("b", gamemath.V(5, 0), gamemath.Vec{}, nil)
	c := newWalker("c", gamemath.V(500, 0), gamemath.Vec{}, nil)
	d := newWalker("d", gamemath.V(10, 0), gamemath.Vec{}, nil)

	hits := Colliding(a, a.Box(), []Actor{d, a, c, b})
	assert.Equal(t, []Actor{d, b}, hits)
}

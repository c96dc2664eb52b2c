package actors

import (
	"testing"

	"github.com/automoto/tilewalk/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripMap is 6 tiles wide and 3 tall, 32px tiles, with one collidable tile
// at column 4, row 1.
func stripMap(t *testing.T, img *Image) *TileMap {
	t.Helper()
	grid := make([]int, 18)
	grid[4+1*6] = 1
	m, err := NewTileMap(TileMapConfig{
		Name:           "strip",
		Image:          img,
		TilesPerRow:    2,
		TilesPerColumn: 2,
		Width:          6,
		Grid:           grid,
		Collidable:     []int{1},
	})
	require.NoError(t, err)
	return m
}

func TestNewTileMapRejectsBadShape(t *testing.T) {
	img := loadedImage("t.png", 64, 64)

	_, err := NewTileMap(TileMapConfig{Image: img, TilesPerRow: 2, TilesPerColumn: 2, Width: 4, Grid: make([]int, 6)})
	assert.ErrorIs(t, err, ErrGridShape)

	_, err = NewTileMap(TileMapConfig{Image: img, TilesPerRow: 2, TilesPerColumn: 2, Width: 0, Grid: make([]int, 6)})
	assert.ErrorIs(t, err, ErrGridShape)

	_, err = NewTileMap(TileMapConfig{Image: img, Width: 3, Grid: make([]int, 6)})
	assert.ErrorIs(t, err, ErrTileset)

	_, err = NewTileMap(TileMapConfig{TilesPerRow: 2, TilesPerColumn: 2, Width: 3, Grid: make([]int, 6)})
	assert.Error(t, err)
}

func TestTileMapValidate(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))
	assert.NoError(t, m.Validate())

	bad, err := NewTileMap(TileMapConfig{
		Image:          NewImage("t.png"),
		TilesPerRow:    2,
		TilesPerColumn: 2,
		Width:          2,
		Grid:           []int{0, EmptyTile, 3, 4},
	})
	require.NoError(t, err)
	assert.ErrorIs(t, bad.Validate(), ErrTileID)
}

func TestTileMapGeometry(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	assert.Equal(t, 6, m.Width())
	assert.Equal(t, 3, m.Rows())

	size, ok := m.TileSize()
	require.True(t, ok)
	assert.Equal(t, gamemath.V(32, 32), size)

	bounds, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, gamemath.R(0, 0, 192, 96), bounds)

	id, ok := m.TileAt(4, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	_, ok = m.TileAt(6, 0)
	assert.False(t, ok)
}

func TestQueryBoxPartialOverlap(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	// Spans columns 2..4 of row 1; only column 4 is collidable.
	assert.True(t, m.QueryBox(70, 40, 70, 10))
	// Spans columns 0..1 of row 1.
	assert.False(t, m.QueryBox(5, 40, 40, 10))
	// Row 1 through row 2 but left of the wall.
	assert.False(t, m.QueryBox(5, 40, 100, 40))
}

func TestQueryBoxInclusiveEdge(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	// Right edge exactly at x=128, the wall's left boundary.
	assert.True(t, m.QueryBox(100, 40, 28, 10))
	assert.False(t, m.QueryBox(100, 40, 27.9, 10))
}

func TestQueryOutsideGridFailsClosed(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	assert.True(t, m.QueryPoint(-1, 10))
	assert.True(t, m.QueryPoint(10, 96))
	assert.True(t, m.QueryBox(170, 10, 30, 10), "box poking past the right edge")
	assert.True(t, m.QueryBox(-5, 10, 10, 10))
}

func TestQueryPointMatchesZeroBox(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	for y := 0.0; y < 96; y += 3.5 {
		for x := 0.0; x < 192; x += 3.5 {
			assert.Equal(t, m.QueryBox(x, y, 0, 0), m.QueryPoint(x, y), "(%v,%v)", x, y)
		}
	}
	assert.True(t, m.QueryPoint(128, 32))
	assert.True(t, m.QueryPoint(159.9, 63.9))
	assert.False(t, m.QueryPoint(160, 32))
	assert.False(t, m.QueryPoint(127.9, 32))
}

func TestQueryBeforeLoad(t *testing.T) {
	m := stripMap(t, NewImage("t.png"))

	assert.False(t, m.QueryPoint(130, 40))
	assert.False(t, m.QueryBox(70, 40, 70, 10))
	assert.False(t, m.QueryPoint(-100, -100))
	_, ok := m.Bounds()
	assert.False(t, ok)
}

func TestTileMapOrigin(t *testing.T) {
	grid := make([]int, 18)
	grid[4+1*6] = 1
	m, err := NewTileMap(TileMapConfig{
		Image:          loadedImage("t.png", 64, 64),
		TilesPerRow:    2,
		TilesPerColumn: 2,
		Width:          6,
		Grid:           grid,
		Collidable:     []int{1},
		Origin:         gamemath.V(100, 50),
	})
	require.NoError(t, err)

	assert.True(t, m.QueryPoint(100+128+1, 50+32+1))
	assert.False(t, m.QueryPoint(128+1, 32+1))
	col, row, ok := m.CellOf(gamemath.V(101, 51))
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestTileMapCollideBoxAndHooks(t *testing.T) {
	m := stripMap(t, loadedImage("t.png", 64, 64))

	assert.True(t, m.CollideBox(gamemath.R(70, 40, 70, 10)))
	assert.False(t, m.CollideBox(gamemath.R(5, 40, 40, 10)))

	assert.NotPanics(t, func() {
		m.Advance()
		m.OnCollide(nil, true)
	})
}

func TestTileMapDraw(t *testing.T) {
	img := loadedImage("walls.png", 256, 512)
	m, err := NewTileMap(TileMapConfig{
		Image:          img,
		TilesPerRow:    8,
		TilesPerColumn: 16,
		Width:          2,
		Grid:           []int{EmptyTile, 9},
	})
	require.NoError(t, err)

	sink := &fakeSink{}
	m.Draw(sink)
	require.Len(t, sink.draws, 1)
	assert.Same(t, img, sink.draws[0].img)
	assert.Equal(t, gamemath.R(32, 32, 32, 32), sink.draws[0].src)
	assert.Equal(t, gamemath.R(32, 0, 32, 32), sink.draws[0].dst)

	pending := stripMap(t, NewImage("t.png"))
	sink = &fakeSink{}
	pending.Draw(sink)
	assert.Empty(t, sink.draws)
}

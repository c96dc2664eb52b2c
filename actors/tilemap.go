package actors

import (
	"fmt"

	"github.com/automoto/tilewalk/gamemath"
	"github.com/google/uuid"
)

// EmptyTile marks a grid cell with no tile. It is never drawn and never
// collidable.
const EmptyTile = -1

// TileMapConfig describes a tile map at construction time.
type TileMapConfig struct {
	Name  string
	Image *Image
	// Tile counts of the tileset image.
	TilesPerRow    int
	TilesPerColumn int
	// Width is the map width in tiles, the stride of Grid.
	Width      int
	Grid       []int
	Collidable []int
	// Origin is the world-space offset of the grid's top-left corner.
	Origin gamemath.Vec
}

// TileMap is a static grid of tileset indexes. It is immutable once built.
type TileMap struct {
	id         string
	name       string
	img        *Image
	tilesX     int
	tilesY     int
	width      int
	rows       int
	grid       []int
	collidable map[int]struct{}
	origin     gamemath.Vec
}

var _ Actor = (*TileMap)(nil)

func NewTileMap(cfg TileMapConfig) (*TileMap, error) {
	if cfg.Width <= 0 || len(cfg.Grid) == 0 || len(cfg.Grid)%cfg.Width != 0 {
		return nil, fmt.Errorf("%w: %d cells, width %d", ErrGridShape, len(cfg.Grid), cfg.Width)
	}
	if cfg.TilesPerRow <= 0 || cfg.TilesPerColumn <= 0 {
		return nil, ErrTileset
	}
	if cfg.Image == nil {
		return nil, fmt.Errorf("tile map %q has no image", cfg.Name)
	}

	collidable := make(map[int]struct{}, len(cfg.Collidable))
	for _, id := range cfg.Collidable {
		collidable[id] = struct{}{}
	}

	grid := make([]int, len(cfg.Grid))
	copy(grid, cfg.Grid)

	return &TileMap{
		id:         uuid.NewString(),
		name:       cfg.Name,
		img:        cfg.Image,
		tilesX:     cfg.TilesPerRow,
		tilesY:     cfg.TilesPerColumn,
		width:      cfg.Width,
		rows:       len(cfg.Grid) / cfg.Width,
		grid:       grid,
		collidable: collidable,
		origin:     cfg.Origin,
	}, nil
}

func (m *TileMap) ID() string {
	return m.id
}

func (m *TileMap) Name() string {
	return m.name
}

// Width and Rows are the grid dimensions in tiles.
func (m *TileMap) Width() int {
	return m.width
}

func (m *TileMap) Rows() int {
	return m.rows
}

func (m *TileMap) Origin() gamemath.Vec {
	return m.origin
}

func (m *TileMap) Image() *Image {
	return m.img
}

// Validate reports grid entries that do not index a tile of the tileset.
func (m *TileMap) Validate() error {
	limit := m.tilesX * m.tilesY
	for i, id := range m.grid {
		if id == EmptyTile {
			continue
		}
		if id < 0 || id >= limit {
			return fmt.Errorf("%w: cell %d (col %d, row %d) holds %d, tileset has %d tiles",
				ErrTileID, i, i%m.width, i/m.width, id, limit)
		}
	}
	return nil
}

// TileSize returns the size of one tile; ok is false until the tileset
// image is loaded.
func (m *TileMap) TileSize() (size gamemath.Vec, ok bool) {
	w, h, ok := m.img.Size()
	if !ok {
		return gamemath.Vec{}, false
	}
	return gamemath.V(float64(w)/float64(m.tilesX), float64(h)/float64(m.tilesY)), true
}

// Bounds returns the world-space rectangle the grid covers.
func (m *TileMap) Bounds() (gamemath.Rect, bool) {
	size, ok := m.TileSize()
	if !ok {
		return gamemath.Rect{}, false
	}
	return gamemath.R(m.origin.X, m.origin.Y, size.X*float64(m.width), size.Y*float64(m.rows)), true
}

// TileAt returns the tile id at a grid cell; ok is false outside the grid.
func (m *TileMap) TileAt(col, row int) (id int, ok bool) {
	if col < 0 || col >= m.width || row < 0 || row >= m.rows {
		return 0, false
	}
	return m.grid[col+row*m.width], true
}

// IsCollidable reports whether a tile id blocks movement.
func (m *TileMap) IsCollidable(id int) bool {
	_, ok := m.collidable[id]
	return ok
}

// blocked fails closed: cells outside the grid block movement.
func (m *TileMap) blocked(col, row int) bool {
	id, ok := m.TileAt(col, row)
	if !ok {
		return true
	}
	return m.IsCollidable(id)
}

// CellOf converts a world point to grid coordinates.
func (m *TileMap) CellOf(p gamemath.Vec) (col, row int, ok bool) {
	size, ok := m.TileSize()
	if !ok {
		return 0, 0, false
	}
	col, row = p.Sub(m.origin).Div(size).Cell()
	return col, row, true
}

// QueryPoint reports whether the world point lies on a collidable tile.
// Before the tileset loads nothing collides.
func (m *TileMap) QueryPoint(x, y float64) bool {
	col, row, ok := m.CellOf(gamemath.V(x, y))
	if !ok {
		return false
	}
	return m.blocked(col, row)
}

// QueryBox reports whether any tile touched by the rectangle
// [x,y]-[x+w,y+h] is collidable. The footprint is inclusive on both
// corners, so a box whose edge sits exactly on a tile boundary also tests
// the tile beyond it.
func (m *TileMap) QueryBox(x, y, w, h float64) bool {
	minCol, minRow, ok := m.CellOf(gamemath.V(x, y))
	if !ok {
		return false
	}
	maxCol, maxRow, _ := m.CellOf(gamemath.V(x+w, y+h))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if m.blocked(col, row) {
				return true
			}
		}
	}
	return false
}

// CollideBox makes the map answer pairwise collision queries.
func (m *TileMap) CollideBox(box gamemath.Rect) bool {
	return m.QueryBox(box.X, box.Y, box.W, box.H)
}

// Advance is a no-op; the map has no animation.
func (m *TileMap) Advance() {}

// OnCollide is a no-op; the map never reacts.
func (m *TileMap) OnCollide(Actor, bool) {}

// Draw emits one DrawImage per non-empty cell once the tileset has loaded.
func (m *TileMap) Draw(sink RenderSink) {
	size, ok := m.TileSize()
	if !ok {
		return
	}
	limit := m.tilesX * m.tilesY
	for i, id := range m.grid {
		if id < 0 || id >= limit {
			continue
		}
		col, row := i%m.width, i/m.width
		tx, ty := id%m.tilesX, id/m.tilesX
		src := gamemath.R(float64(tx)*size.X, float64(ty)*size.Y, size.X, size.Y)
		dst := gamemath.R(m.origin.X+float64(col)*size.X, m.origin.Y+float64(row)*size.Y, size.X, size.Y)
		sink.DrawImage(m.img, src, dst)
	}
}

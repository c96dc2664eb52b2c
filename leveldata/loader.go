package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/lafriks/go-tiled"
)

const (
	// CollidableProperty is the boolean tileset tile property marking walls.
	CollidableProperty = "collidable"
	// SpawnGroup is the object group holding named start positions.
	SpawnGroup = "Spawns"
)

var (
	ErrNoTileLayer = errors.New("map has no tile layer")
	ErrTilesets    = errors.New("map must use exactly one tileset with an image")
)

// LoadTileMap parses a TMX file into tile map data. The first tile layer
// becomes the grid. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTileMap(fsys fs.FS, tmxPath string) (*TileMapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if len(levelMap.Tilesets) != 1 || levelMap.Tilesets[0].Image == nil || levelMap.Tilesets[0].Columns <= 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrTilesets)
	}
	ts := levelMap.Tilesets[0]
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTileLayer)
	}
	layer := levelMap.Layers[0]

	data := &TileMapData{
		Name:           strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Image:          path.Join(path.Dir(tmxPath), ts.Image.Source),
		TilesPerRow:    ts.Columns,
		TilesPerColumn: (ts.TileCount + ts.Columns - 1) / ts.Columns,
		TileWidth:      levelMap.TileWidth,
		TileHeight:     levelMap.TileHeight,
		Width:          levelMap.Width,
		Grid:           make([]int, levelMap.Width*levelMap.Height),
		Spawns:         make(map[string]gamemath.Vec),
	}
	if layer.Name != "" {
		data.Name = layer.Name
	}

	for i := range data.Grid {
		data.Grid[i] = actors.EmptyTile
		if i >= len(layer.Tiles) {
			continue
		}
		tile := layer.Tiles[i]
		if tile.IsNil() {
			continue
		}
		data.Grid[i] = int(tile.ID)
	}

	for _, t := range ts.Tiles {
		if t.Properties.GetBool(CollidableProperty) {
			data.Collidable = append(data.Collidable, int(t.ID))
		}
	}
	sort.Ints(data.Collidable)

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "" {
				continue
			}
			data.Spawns[o.Name] = gamemath.V(o.X, o.Y)
		}
	}

	return data, nil
}

// Package leveldata imports Tiled TMX maps as tile map configurations.
package leveldata

import (
	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
)

// TileMapData holds everything a tile map needs, parsed from a TMX file.
type TileMapData struct {
	Name string
	// Image is the tileset image path inside the level file system.
	Image          string
	TilesPerRow    int
	TilesPerColumn int
	TileWidth      int
	TileHeight     int
	// Width is the map width in tiles, the stride of Grid.
	Width      int
	Grid       []int
	Collidable []int
	// Spawns maps object names from the "Spawns" object group to their
	// positions; sprites with a matching name start there.
	Spawns map[string]gamemath.Vec
}

// Config turns the parsed data into a tile map configuration drawing from img.
func (d *TileMapData) Config(img *actors.Image) actors.TileMapConfig {
	return actors.TileMapConfig{
		Name:           d.Name,
		Image:          img,
		TilesPerRow:    d.TilesPerRow,
		TilesPerColumn: d.TilesPerColumn,
		Width:          d.Width,
		Grid:           append([]int(nil), d.Grid...),
		Collidable:     append([]int(nil), d.Collidable...),
	}
}

package actors

import "errors"

var (
	ErrMissingDefault = errors.New("sequence table has no \"default\" entry")
	ErrEmptySequence  = errors.New("sequence has no frames")
	ErrBadInterval    = errors.New("sequence interval must be a finite non-negative number")
	ErrGridShape      = errors.New("grid length is not a positive multiple of the map width")
	ErrTileset        = errors.New("tileset must have at least one tile per row and column")
	ErrTileID         = errors.New("grid references a tile id outside the tileset")
)

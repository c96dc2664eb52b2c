package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoMap     = errors.New("level has no map")
	ErrNoPlayer  = errors.New("level player not found among sprites")
	ErrBadFrame  = errors.New("frame must be a [col, row] pair")
	ErrNoSprites = errors.New("level has no sprites")
)

// LevelConfig is the YAML description of a level: one map and the sprites
// that walk on it, in tick order.
type LevelConfig struct {
	Name string `yaml:"name"`
	// Tick rate the sequence intervals were authored for. Zero means the
	// running rate.
	AnimationTickRate int            `yaml:"animationTickRate"`
	Map               *MapConfig     `yaml:"map"`
	Sprites           []SpriteConfig `yaml:"sprites"`
	// Player names the sprite driven by input.
	Player string `yaml:"player"`
}

// MapConfig describes the tile map either inline or through a TMX file.
type MapConfig struct {
	Name           string `yaml:"name"`
	Image          string `yaml:"image"`
	TMX            string `yaml:"tmx"`
	TilesPerRow    int    `yaml:"tilesPerRow"`
	TilesPerColumn int    `yaml:"tilesPerColumn"`
	Width          int    `yaml:"width"`
	Grid           []int  `yaml:"grid"`
	Collidable     []int  `yaml:"collidable"`
	Origin         Point  `yaml:"origin"`
}

// SpriteConfig describes one sprite.
type SpriteConfig struct {
	Name           string                    `yaml:"name"`
	Image          string                    `yaml:"image"`
	TilesPerRow    int                       `yaml:"tilesPerRow"`
	TilesPerColumn int                       `yaml:"tilesPerColumn"`
	Position       Point                     `yaml:"position"`
	Velocity       Point                     `yaml:"velocity"`
	BBox           Box                       `yaml:"bbox"`
	Sequences      map[string]SequenceConfig `yaml:"sequences"`
	Behavior       string                    `yaml:"behavior"`
	Reaction       string                    `yaml:"reaction"`
	ShowBBox       bool                      `yaml:"showBBox"`
}

// SequenceConfig is one animation: frames are [col, row] pairs.
type SequenceConfig struct {
	Interval float64 `yaml:"interval"`
	Frames   [][]int `yaml:"frames"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LoadLevel decodes and validates a YAML level.
func LoadLevel(r io.Reader) (*LevelConfig, error) {
	var lvl LevelConfig
	if err := yaml.NewDecoder(r).Decode(&lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadLevelFile reads a YAML level from fsys.
func LoadLevelFile(fsys fs.FS, path string) (*LevelConfig, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := LoadLevel(f)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Validate checks the structure the decoder cannot. Sequence tables and
// grid shapes are checked again when the actors are built.
func (l *LevelConfig) Validate() error {
	if l.Map == nil {
		return ErrNoMap
	}
	if l.Map.TMX == "" && (l.Map.Image == "" || len(l.Map.Grid) == 0) {
		return fmt.Errorf("%w: inline maps need an image and a grid", ErrNoMap)
	}
	if len(l.Sprites) == 0 {
		return ErrNoSprites
	}

	found := l.Player == ""
	for _, s := range l.Sprites {
		if s.Name == l.Player {
			found = true
		}
		for name, seq := range s.Sequences {
			for _, f := range seq.Frames {
				if len(f) != 2 {
					return fmt.Errorf("%w: sprite %q sequence %q has %v", ErrBadFrame, s.Name, name, f)
				}
			}
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrNoPlayer, l.Player)
	}
	return nil
}

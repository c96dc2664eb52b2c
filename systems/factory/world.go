package factory

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/automoto/tilewalk/leveldata"
	"github.com/automoto/tilewalk/world"
	"go.uber.org/zap"
)

var (
	ErrUnknownBehavior = errors.New("unknown behavior")
	ErrUnknownReaction = errors.New("unknown reaction")
)

// Named strategies a level may reference. An empty behavior leaves the
// sprite static; an empty reaction means the sprite's default, bounce.
var (
	behaviors = map[string]actors.Behavior{
		"":     nil,
		"walk": actors.Walk,
	}
	reactions = map[string]actors.Reaction{
		"":       nil,
		"bounce": actors.Bounce,
		"block":  actors.Block,
		"halt":   actors.Halt,
	}
)

// BehaviorNames lists the behaviors a level may name.
func BehaviorNames() []string {
	return sortedKeys(behaviors)
}

// ReactionNames lists the reactions a level may name.
func ReactionNames() []string {
	return sortedKeys(reactions)
}

func sortedKeys[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// WorldOptions tune the world built from a level.
type WorldOptions struct {
	TickRate int
	CellSize int
	Logger   *zap.Logger
}

// LoadWorld reads a YAML level from fsys and builds its world. Every path
// inside the level is relative to the level file.
func LoadWorld(fsys fs.FS, levelPath string, images *assets.ImageLoader, opts WorldOptions) (*world.World, *config.LevelConfig, error) {
	lvl, err := config.LoadLevelFile(fsys, levelPath)
	if err != nil {
		return nil, nil, err
	}
	w, err := BuildWorld(lvl, fsys, path.Dir(levelPath), images, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", levelPath, err)
	}
	return w, lvl, nil
}

// BuildWorld creates the tile map and sprites a level describes, in order,
// and wraps them in a world. Images are requested from the loader but not
// loaded; the actors draw nothing until the loader resolves them.
func BuildWorld(lvl *config.LevelConfig, fsys fs.FS, dir string, images *assets.ImageLoader, opts WorldOptions) (*world.World, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = config.World.TickRate
	}
	if opts.CellSize <= 0 {
		opts.CellSize = config.World.SpaceCellSize
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	m, spawns, extent, err := buildMap(lvl.Map, fsys, dir, images)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		// Cells with bad ids are skipped when drawing; the level still runs.
		log.Warn("tile map has invalid tiles", zap.String("map", m.Name()), zap.Error(err))
	}

	scale := 1.0
	if lvl.AnimationTickRate > 0 && lvl.AnimationTickRate != opts.TickRate {
		scale = float64(lvl.AnimationTickRate) / float64(opts.TickRate)
		log.Info("rescaling animation intervals",
			zap.Int("authoredTickRate", lvl.AnimationTickRate),
			zap.Int("tickRate", opts.TickRate),
			zap.Float64("factor", scale),
		)
	}

	list := []actors.Actor{m}
	var player *actors.Sprite
	for _, sc := range lvl.Sprites {
		s, err := buildSprite(sc, dir, images, spawns, scale)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", sc.Name, err)
		}
		if sc.Name == lvl.Player && player == nil {
			player = s
		}
		list = append(list, s)
	}

	wopts := []world.Option{world.WithLogger(log)}
	if player != nil {
		wopts = append(wopts, world.WithPlayer(player))
	}
	if extent.X > 0 && extent.Y > 0 {
		wopts = append(wopts, world.WithSpace(extent.X, extent.Y, opts.CellSize))
	}

	w, err := world.New(opts.TickRate, list, wopts...)
	if err != nil {
		return nil, err
	}
	log.Info("level built",
		zap.String("level", lvl.Name),
		zap.String("map", m.Name()),
		zap.Int("sprites", len(lvl.Sprites)),
	)
	return w, nil
}

// buildMap returns the map, any named spawn points, and the map's pixel
// extent when it is known before the tileset loads.
func buildMap(mc *config.MapConfig, fsys fs.FS, dir string, images *assets.ImageLoader) (*actors.TileMap, map[string]gamemath.Vec, gamemath.Vec, error) {
	if mc.TMX != "" {
		data, err := leveldata.LoadTileMap(fsys, path.Join(dir, mc.TMX))
		if err != nil {
			return nil, nil, gamemath.Vec{}, err
		}
		cfg := data.Config(images.Image(data.Image))
		cfg.Origin = gamemath.V(mc.Origin.X, mc.Origin.Y)
		if mc.Name != "" {
			cfg.Name = mc.Name
		}
		m, err := actors.NewTileMap(cfg)
		if err != nil {
			return nil, nil, gamemath.Vec{}, err
		}
		rows := len(data.Grid) / data.Width
		extent := gamemath.V(
			mc.Origin.X+float64(data.Width*data.TileWidth),
			mc.Origin.Y+float64(rows*data.TileHeight),
		)
		return m, data.Spawns, extent, nil
	}

	m, err := actors.NewTileMap(actors.TileMapConfig{
		Name:           mc.Name,
		Image:          images.Image(path.Join(dir, mc.Image)),
		TilesPerRow:    mc.TilesPerRow,
		TilesPerColumn: mc.TilesPerColumn,
		Width:          mc.Width,
		Grid:           mc.Grid,
		Collidable:     mc.Collidable,
		Origin:         gamemath.V(mc.Origin.X, mc.Origin.Y),
	})
	return m, nil, gamemath.Vec{}, err
}

func buildSprite(sc config.SpriteConfig, dir string, images *assets.ImageLoader, spawns map[string]gamemath.Vec, scale float64) (*actors.Sprite, error) {
	behavior, ok := behaviors[sc.Behavior]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, sc.Behavior)
	}
	reaction, ok := reactions[sc.Reaction]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReaction, sc.Reaction)
	}

	seqs := make(actors.Sequences, len(sc.Sequences))
	for name, seq := range sc.Sequences {
		frames := make([]actors.Frame, 0, len(seq.Frames))
		for _, f := range seq.Frames {
			frames = append(frames, actors.Frame{Col: f[0], Row: f[1]})
		}
		seqs[name] = &actors.Sequence{Interval: seq.Interval, Frames: frames}
	}
	if scale != 1 {
		seqs = seqs.Rescale(scale)
	}

	pos := gamemath.V(sc.Position.X, sc.Position.Y)
	if at, ok := spawns[sc.Name]; ok {
		pos = at
	}

	return actors.NewSprite(actors.SpriteConfig{
		Name:           sc.Name,
		Image:          images.Image(path.Join(dir, sc.Image)),
		TilesPerRow:    sc.TilesPerRow,
		TilesPerColumn: sc.TilesPerColumn,
		Position:       pos,
		Velocity:       gamemath.V(sc.Velocity.X, sc.Velocity.Y),
		BBox:           gamemath.R(sc.BBox.X, sc.BBox.Y, sc.BBox.W, sc.BBox.H),
		Sequences:      seqs,
		Behavior:       behavior,
		OnCollide:      reaction,
		ShowBBox:       sc.ShowBBox,
	})
}

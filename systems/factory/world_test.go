package factory

import (
	"testing"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap/zaptest"
)

func loader(t *testing.T) *assets.ImageLoader {
	t.Helper()
	return assets.NewImageLoader(assets.FS(), assets.DecodeConfig, zaptest.NewLogger(t))
}

func sprites(list []actors.Actor) map[string]*actors.Sprite {
	out := make(map[string]*actors.Sprite)
	for _, a := range list {
		if s, ok := a.(*actors.Sprite); ok {
			out[s.Name()] = s
		}
	}
	return out
}

func TestLoadWorldInlineMap(t *testing.T) {
	images := loader(t)
	w, lvl, err := LoadWorld(assets.FS(), "levels/level1.yaml", images, WorldOptions{TickRate: 30, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	assert.Equal(t, "Level 1", lvl.Name)
	assert.Equal(t, 30, w.TickRate())
	require.NotNil(t, w.Map())
	assert.Equal(t, 32, w.Map().Width())
	assert.Equal(t, 32, w.Map().Rows())

	list := w.Actors()
	require.Len(t, list, 1+len(lvl.Sprites))
	assert.Same(t, w.Map(), list[0], "the map comes first")

	byName := sprites(list)
	player := byName["Player Character"]
	require.NotNil(t, player)
	assert.Same(t, player, w.Player())
	assert.Equal(t, gamemath.V(400, 40), player.Position)

	enemy := byName["Enemy"]
	require.NotNil(t, enemy)
	assert.Equal(t, gamemath.V(-32, 32), enemy.Velocity)
	assert.Equal(t, 0.5, enemy.Sequences()["up"].Interval)

	// Images are requested, not loaded.
	assert.ElementsMatch(t, []string{"images/sprites.png", "images/walls.png"}, images.Paths())
	assert.False(t, player.Image().Loaded())
}

func TestLoadWorldRescalesAnimation(t *testing.T) {
	w, _, err := LoadWorld(assets.FS(), "levels/level1.yaml", loader(t), WorldOptions{TickRate: 60})
	require.NoError(t, err)

	enemy := sprites(w.Actors())["Enemy"]
	require.NotNil(t, enemy)
	assert.InDelta(t, 0.25, enemy.Sequences()["up"].Interval, 1e-12)
	assert.InDelta(t, 0.125, enemy.Sequences()["left"].Interval, 1e-12)
}

func TestLoadWorldTMXSpawns(t *testing.T) {
	w, lvl, err := LoadWorld(assets.FS(), config.Assets.ArenaLevel, loader(t), WorldOptions{TickRate: 30})
	require.NoError(t, err)

	assert.Equal(t, "Arena", lvl.Name)
	assert.Equal(t, 24, w.Map().Width())
	assert.Equal(t, 20, w.Map().Rows())

	byName := sprites(w.Actors())
	require.Len(t, byName, 3)
	assert.Equal(t, gamemath.V(64, 64), byName["Player Character"].Position)
	assert.Equal(t, gamemath.V(384, 320), byName["Enemy"].Position)
	assert.Equal(t, gamemath.V(448, 96), byName["Wanderer"].Position)
	assert.True(t, byName["Wanderer"].ShowBBox)
}

func TestBuildWorldRejectsUnknownStrategies(t *testing.T) {
	base := func() *config.LevelConfig {
		return &config.LevelConfig{
			Map: &config.MapConfig{
				Image:          "walls.png",
				TilesPerRow:    8,
				TilesPerColumn: 16,
				Width:          2,
				Grid:           []int{8, 8, 8, 8},
			},
			Sprites: []config.SpriteConfig{{
				Name:           "s",
				Image:          "sprites.png",
				TilesPerRow:    9,
				TilesPerColumn: 4,
				Sequences: map[string]config.SequenceConfig{
					actors.DefaultSequence: {Interval: 0.05, Frames: [][]int{{0, 0}}},
				},
			}},
		}
	}

	lvl := base()
	_, err := BuildWorld(lvl, assets.FS(), ".", loader(t), WorldOptions{})
	require.NoError(t, err)

	lvl = base()
	lvl.Sprites[0].Behavior = "teleport"
	_, err = BuildWorld(lvl, assets.FS(), ".", loader(t), WorldOptions{})
	assert.ErrorIs(t, err, ErrUnknownBehavior)

	lvl = base()
	lvl.Sprites[0].Reaction = "explode"
	_, err = BuildWorld(lvl, assets.FS(), ".", loader(t), WorldOptions{})
	assert.ErrorIs(t, err, ErrUnknownReaction)

	lvl = base()
	lvl.Sprites[0].Sequences = map[string]config.SequenceConfig{
		"up": {Interval: 0.05, Frames: [][]int{{0, 0}}},
	}
	_, err = BuildWorld(lvl, assets.FS(), ".", loader(t), WorldOptions{})
	assert.ErrorIs(t, err, actors.ErrMissingDefault)
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, []string{"walk"}, BehaviorNames())
	assert.Equal(t, []string{"block", "bounce", "halt"}, ReactionNames())
}

func TestCreateWorldEntity(t *testing.T) {
	w, lvl, err := LoadWorld(assets.FS(), "levels/level1.yaml", loader(t), WorldOptions{TickRate: 30})
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	CreateWorld(e, w, lvl, zaptest.NewLogger(t))

	entry, ok := components.World.First(e.World)
	require.True(t, ok)
	data := components.World.Get(entry)
	assert.Same(t, w, data.World)
	assert.Same(t, lvl, data.Level)
	require.NotNil(t, data.Input)
	assert.True(t, entry.HasComponent(components.Settings))
	assert.True(t, entry.HasComponent(components.Input))
	assert.True(t, entry.HasComponent(components.Audio))
}

func TestSpawnHighlight(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := SpawnHighlight(e, "Enemy", gamemath.R(1, 2, 3, 4))

	h := components.Highlight.Get(entry)
	assert.Equal(t, "Enemy", h.Name)
	assert.Equal(t, gamemath.R(1, 2, 3, 4), h.Box)
	assert.Equal(t, float32(1), h.Alpha)
	require.NotNil(t, h.Tween)

	alpha, done := h.Tween.Update(config.UI.HighlightDuration)
	assert.True(t, done)
	assert.InDelta(t, 0, alpha, 1e-6)
}

package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	WindowScale float64
	Title       string
}

// WorldConfig contains simulation configuration values
type WorldConfig struct {
	// Ticks per second. Animation intervals are authored against this rate.
	TickRate int

	// Player walking speed in tiles per second.
	SpeedMultiplier float64

	// Tile size assumed by the input adapter until the tileset has loaded.
	FallbackTileWidth  float64
	FallbackTileHeight float64

	// Broad-phase grid cell size in pixels
	SpaceCellSize int
}

// AssetsConfig names the embedded level files.
type AssetsConfig struct {
	DefaultLevel string
	ArenaLevel   string
	// How long the frontends wait for images before starting anyway.
	PreloadTimeout time.Duration
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	BBoxColor       color.RGBA // per-sprite showBBox fill

	// Debug overlay
	DebugOutlineColor color.RGBA
	DebugTextColor    color.RGBA
	DebugFontSize     float64

	// Collision flash
	HighlightColor    color.RGBA
	HighlightDuration float32 // seconds
}

// TerminalConfig contains the tileterm frontend's glyphs and styling
type TerminalConfig struct {
	WallGlyph  rune
	FloorGlyph rune
	EmptyGlyph rune

	// Pixels per terminal cell. The map is sampled at cell centres.
	CellWidth  float64
	CellHeight float64

	StatusLines int
}

// AudioConfig contains the bump sound settings
type AudioConfig struct {
	SampleRate    int
	BumpFrequency int // Hz
	BumpDuration  time.Duration
	// Minimum gap between two bumps so a sprite pressing a wall
	// does not buzz every tick.
	BumpCooldown time.Duration
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay bool // start with the overlay shown
	Verbose bool // development logger at debug level
}

// Global configuration instances
var C *Config
var World WorldConfig
var Assets AssetsConfig
var UI UIConfig
var Terminal TerminalConfig
var Audio AudioConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow         = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red            = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green          = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta        = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGrey       = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	TranslucentRed = color.RGBA{R: 255, G: 0, B: 0, A: 96}
)

func init() {
	C = &Config{
		Width:       1024,
		Height:      1024,
		WindowScale: 0.75,
		Title:       "tilewalk",
	}

	World = WorldConfig{
		TickRate:           30,
		SpeedMultiplier:    3,
		FallbackTileWidth:  32,
		FallbackTileHeight: 32,
		SpaceCellSize:      64,
	}

	Assets = AssetsConfig{
		DefaultLevel:   "levels/level1.yaml",
		ArenaLevel:     "levels/arena.yaml",
		PreloadTimeout: 5 * time.Second,
	}

	UI = UIConfig{
		BackgroundColor:   DarkGrey,
		BBoxColor:         TranslucentRed,
		DebugOutlineColor: Green,
		DebugTextColor:    White,
		DebugFontSize:     12,
		HighlightColor:    Yellow,
		HighlightDuration: 0.4,
	}

	Terminal = TerminalConfig{
		WallGlyph:   '#',
		FloorGlyph:  '.',
		EmptyGlyph:  ' ',
		CellWidth:   16,
		CellHeight:  32,
		StatusLines: 2,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		BumpFrequency: 220,
		BumpDuration:  60 * time.Millisecond,
		BumpCooldown:  250 * time.Millisecond,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
		Verbose: false,
	}
}

package actors

import (
	"errors"
	"math"

	"github.com/automoto/tilewalk/gamemath"
	"github.com/google/uuid"
)

// Directional sequence names derived from velocity.
const (
	SequenceUp    = "up"
	SequenceDown  = "down"
	SequenceLeft  = "left"
	SequenceRight = "right"
)

// SpriteConfig describes a sprite at construction time.
type SpriteConfig struct {
	Name  string
	Image *Image
	// Tile counts of the sprite sheet; frame size is image size / counts.
	TilesPerRow    int
	TilesPerColumn int

	Position gamemath.Vec
	Velocity gamemath.Vec // world units per second
	// BBox is the collision rectangle, offset from Position.
	BBox      gamemath.Rect
	Sequences Sequences

	Behavior  Behavior
	OnCollide Reaction
	ShowBBox  bool
}

// Sprite is an animated actor with a position, a velocity and an
// axis-aligned bounding box.
type Sprite struct {
	Position gamemath.Vec
	Velocity gamemath.Vec
	ShowBBox bool

	id     string
	name   string
	img    *Image
	tilesX int
	tilesY int
	bbox   gamemath.Rect

	sequences Sequences
	seqName   string
	seq       *Sequence
	clock     float64
	frame     Frame

	behavior Behavior
	reaction Reaction
}

var _ Actor = (*Sprite)(nil)
var _ Behaver = (*Sprite)(nil)

// NewSprite validates the configuration and returns a sprite playing its
// default sequence.
func NewSprite(cfg SpriteConfig) (*Sprite, error) {
	if err := cfg.Sequences.Validate(); err != nil {
		return nil, err
	}
	if cfg.TilesPerRow <= 0 || cfg.TilesPerColumn <= 0 {
		return nil, ErrTileset
	}
	if cfg.Image == nil {
		return nil, errors.New("sprite has no image")
	}

	seq := cfg.Sequences[DefaultSequence]
	return &Sprite{
		Position:  cfg.Position,
		Velocity:  cfg.Velocity,
		ShowBBox:  cfg.ShowBBox,
		id:        uuid.NewString(),
		name:      cfg.Name,
		img:       cfg.Image,
		tilesX:    cfg.TilesPerRow,
		tilesY:    cfg.TilesPerColumn,
		bbox:      cfg.BBox,
		sequences: cfg.Sequences,
		seqName:   DefaultSequence,
		seq:       seq,
		frame:     seq.Frames[0],
		behavior:  cfg.Behavior,
		reaction:  cfg.OnCollide,
	}, nil
}

func (s *Sprite) ID() string {
	return s.id
}

func (s *Sprite) Name() string {
	return s.name
}

// BBoxOffset returns the collision rectangle relative to Position.
func (s *Sprite) BBoxOffset() gamemath.Rect {
	return s.bbox
}

// Box returns the collision rectangle in world space.
func (s *Sprite) Box() gamemath.Rect {
	return s.bbox.Offset(s.Position)
}

// Step is the displacement one tick of the current velocity produces.
func (s *Sprite) Step(tickRate int) gamemath.Vec {
	rate := float64(tickRate)
	return gamemath.Vec{X: s.Velocity.X / rate, Y: s.Velocity.Y / rate}
}

// ProspectiveBox is where the collision rectangle would be after one step.
func (s *Sprite) ProspectiveBox(tickRate int) gamemath.Rect {
	return s.bbox.Offset(s.Position.Add(s.Step(tickRate)))
}

// CollideBox tests box against the sprite's current collision rectangle.
func (s *Sprite) CollideBox(box gamemath.Rect) bool {
	return s.Box().Overlaps(box)
}

// OnCollide runs the configured reaction, or Bounce when none was given.
func (s *Sprite) OnCollide(other Actor, caused bool) {
	if s.reaction == nil {
		Bounce(s, other, caused)
		return
	}
	s.reaction(s, other, caused)
}

func (s *Sprite) SequenceName() string {
	return s.seqName
}

func (s *Sprite) Sequence() *Sequence {
	return s.seq
}

func (s *Sprite) Sequences() Sequences {
	return s.sequences
}

func (s *Sprite) Clock() float64 {
	return s.clock
}

func (s *Sprite) Frame() Frame {
	return s.frame
}

func (s *Sprite) Image() *Image {
	return s.img
}

func (s *Sprite) HasBehavior() bool {
	return s.behavior != nil
}

// Advance selects the frame under the clock for rendering, then moves the
// clock forward by the sequence interval, wrapping at the frame count.
func (s *Sprite) Advance() {
	n := len(s.seq.Frames)
	idx := int(math.Floor(s.clock))
	if idx >= n {
		idx = n - 1
	}
	s.frame = s.seq.Frames[idx]
	s.clock = math.Mod(s.clock+s.seq.Interval, float64(n))
}

// ChangeSequence switches to the named sequence, falling back to the
// default one for unknown names. Switching to the sequence already playing
// is a no-op; otherwise the clock restarts. It reports whether a switch
// happened.
func (s *Sprite) ChangeSequence(name string) bool {
	resolved, seq := s.sequences.Resolve(name)
	if seq == s.seq {
		return false
	}
	s.seq = seq
	s.seqName = resolved
	s.clock = 0
	return true
}

// DeriveSequence picks the sequence implied by the current velocity.
// Horizontal motion wins over vertical; a resting sprite switches to the
// idle variant of whatever it was playing.
func (s *Sprite) DeriveSequence() {
	switch {
	case s.Velocity.X > 0:
		s.ChangeSequence(SequenceRight)
	case s.Velocity.X < 0:
		s.ChangeSequence(SequenceLeft)
	case s.Velocity.Y > 0:
		s.ChangeSequence(SequenceDown)
	case s.Velocity.Y < 0:
		s.ChangeSequence(SequenceUp)
	case !IsIdle(s.seqName):
		s.ChangeSequence(s.seqName + IdleSuffix)
	}
}

// Behave runs the sprite's strategy, if it has one.
func (s *Sprite) Behave(scene Scene) {
	if s.behavior == nil {
		return
	}
	s.behavior(s, scene)
}

// FrameSize returns the size of one sprite sheet cell; ok is false until
// the sheet is loaded.
func (s *Sprite) FrameSize() (w, h float64, ok bool) {
	iw, ih, ok := s.img.Size()
	if !ok {
		return 0, 0, false
	}
	return float64(iw) / float64(s.tilesX), float64(ih) / float64(s.tilesY), true
}

// Draw emits the debug box when enabled, then the frame chosen by the last
// Advance. Nothing but the debug box is drawn before the sheet loads.
func (s *Sprite) Draw(sink RenderSink) {
	if s.ShowBBox {
		sink.FillRect(s.Box())
	}
	fw, fh, ok := s.FrameSize()
	if !ok {
		return
	}
	src := gamemath.R(float64(s.frame.Col)*fw, float64(s.frame.Row)*fh, fw, fh)
	dst := gamemath.R(s.Position.X, s.Position.Y, fw, fh)
	sink.DrawImage(s.img, src, dst)
}

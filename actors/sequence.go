package actors

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	DefaultSequence = "default"
	IdleSuffix      = "_idle"
)

// Frame addresses one cell of a sprite sheet.
type Frame struct {
	Col, Row int
}

// Sequence is a named animation: the frames to cycle through and how far
// the animation clock moves per tick.
//
// Interval is in frame units per tick, not seconds. Perceived animation
// speed therefore scales with the tick rate; use Sequences.Rescale when
// moving a table authored for one tick rate to another.
type Sequence struct {
	Interval float64
	Frames   []Frame
}

// Sequences is the animation table of a sprite, keyed by sequence name.
type Sequences map[string]*Sequence

// Validate checks what every sprite relies on: a default entry,
// and frames plus a usable interval on every entry.
func (s Sequences) Validate() error {
	if s[DefaultSequence] == nil {
		return ErrMissingDefault
	}
	for _, name := range s.Names() {
		seq := s[name]
		if seq == nil || len(seq.Frames) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptySequence, name)
		}
		if seq.Interval < 0 || math.IsNaN(seq.Interval) || math.IsInf(seq.Interval, 0) {
			return fmt.Errorf("%w: %q has %v", ErrBadInterval, name, seq.Interval)
		}
	}
	return nil
}

// Resolve looks a sequence up by name, falling back to the default entry
// when name is unknown. The returned name is the key actually used.
func (s Sequences) Resolve(name string) (string, *Sequence) {
	if seq, ok := s[name]; ok && seq != nil {
		return name, seq
	}
	return DefaultSequence, s[DefaultSequence]
}

// Names returns the sequence names in sorted order.
func (s Sequences) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rescale returns a copy with every interval multiplied by factor.
// Frames are shared with the receiver.
func (s Sequences) Rescale(factor float64) Sequences {
	out := make(Sequences, len(s))
	for name, seq := range s {
		if seq == nil {
			continue
		}
		out[name] = &Sequence{Interval: seq.Interval * factor, Frames: seq.Frames}
	}
	return out
}

// IsIdle reports whether name is a resting sequence: the default entry or
// any "<name>_idle" variant.
func IsIdle(name string) bool {
	return name == DefaultSequence || strings.HasSuffix(name, IdleSuffix)
}

package audio

import (
	"sync"
	"time"

	"github.com/automoto/tilewalk/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays bumps through the speaker. It stays silent until
// Initialize succeeds, so a machine without audio still runs the game.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	last        time.Time
}

func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. The speaker is process-wide; call this once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Bump plays one bump unless another started within the cooldown. It
// reports whether a bump was queued.
func (p *Player) Bump(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready(now) {
		return false
	}
	p.last = now
	if p.initialized {
		speaker.Lock()
		p.mixer.Add(NewBump(p.sr, p.cfg.BumpFrequency, p.cfg.BumpDuration))
		speaker.Unlock()
	}
	return true
}

func (p *Player) ready(now time.Time) bool {
	return p.last.IsZero() || now.Sub(p.last) >= p.cfg.BumpCooldown
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

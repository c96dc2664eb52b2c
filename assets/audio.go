package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// BumpSound is the collision bump registered by the audio system.
const BumpSound = "bump"

// AudioLoader caches decoded PCM by sound name and hands out a fresh
// player per playback.
type AudioLoader struct {
	mu       sync.Mutex
	sfxCache map[string][]byte // 16-bit stereo PCM at the context's rate
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// RegisterSFX stores already decoded PCM under name.
func (l *AudioLoader) RegisterSFX(name string, pcm []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sfxCache[name] = pcm
}

// LoadSFX returns a new player for a registered sound.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	l.mu.Lock()
	pcm, ok := l.sfxCache[name]
	l.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("sound %q not registered", name)
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

package systems

import (
	"sync"
	"time"

	"github.com/automoto/tilewalk/assets"
	sfx "github.com/automoto/tilewalk/audio"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	lastBump           time.Time
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and synthesises the bump.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)

		sr := beep.SampleRate(cfg.Audio.SampleRate)
		bump := sfx.NewBump(sr, cfg.Audio.BumpFrequency, cfg.Audio.BumpDuration)
		globalAudioLoader.RegisterSFX(assets.BumpSound, sfx.EncodePCM16(bump))
	})
}

// UpdateAudio plays queued bumps, at most one per cooldown.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if data.PendingBumps == 0 {
		return
	}
	data.PendingBumps = 0
	if data.Muted {
		return
	}

	now := time.Now()
	if !lastBump.IsZero() && now.Sub(lastBump) < cfg.Audio.BumpCooldown {
		return
	}
	lastBump = now

	initGlobalAudio()
	player, err := globalAudioLoader.LoadSFX(assets.BumpSound)
	if err != nil {
		return
	}
	player.Play()
}

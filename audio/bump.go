// Package audio synthesises the collision bump and plays it through the
// system speaker for the terminal frontend.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// BumpGenerator is a sine tone with an exponential decay.
type BumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBumpGenerator(sr beep.SampleRate, freq float64) *BumpGenerator {
	return &BumpGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*40)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BumpGenerator) Err() error {
	return nil
}

// NewBump returns a finite bump streamer lasting dur, at half volume.
func NewBump(sr beep.SampleRate, freq int, dur time.Duration) beep.Streamer {
	return beep.Take(sr.N(dur), &effects.Volume{
		Streamer: NewBumpGenerator(sr, float64(freq)),
		Base:     2,
		Volume:   -1,
	})
}

// EncodePCM16 drains s into interleaved little-endian signed 16-bit
// stereo, the format ebiten's audio players take.
func EncodePCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

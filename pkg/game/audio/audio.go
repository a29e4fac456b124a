// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"phantomslayer/pkg/engine/logger"
)

const sampleRate = beep.SampleRate(44100)

// Voice names one of the game's sounds.
type Voice int

const (
	VoiceBeep Voice = iota
	VoiceCount
	VoiceZap
	VoiceHit
	VoiceRoar
)

func (v Voice) String() string {
	switch v {
	case VoiceBeep:
		return "beep"
	case VoiceCount:
		return "count"
	case VoiceZap:
		return "zap"
	case VoiceHit:
		return "hit"
	case VoiceRoar:
		return "roar"
	default:
		return "unknown"
	}
}

// Player mixes voices onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. volume is in halvings: 0 is full scale, -1 half.
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Without it every voice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play queues a voice. It never blocks on playback.
func (p *Player) Play(v Voice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s, err := Build(v, sampleRate)
	if err != nil {
		logger.Log.WithError(err).WithField("voice", v.String()).Warn("sound unavailable")
		return
	}
	s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Beep()  { p.Play(VoiceBeep) }
func (p *Player) Count() { p.Play(VoiceCount) }
func (p *Player) Zap()   { p.Play(VoiceZap) }
func (p *Player) Hit()   { p.Play(VoiceHit) }
func (p *Player) Roar()  { p.Play(VoiceRoar) }

// Build returns a finite streamer for a voice.
func Build(v Voice, sr beep.SampleRate) (beep.Streamer, error) {
	switch v {
	case VoiceBeep:
		return tone(sr, 880, 60*time.Millisecond)
	case VoiceCount:
		return tone(sr, 440, 120*time.Millisecond)
	case VoiceZap:
		return beep.Take(sr.N(200*time.Millisecond), sweep(sr, 1200, 400, 200*time.Millisecond)), nil
	case VoiceHit:
		hi, err := tone(sr, 1200, 100*time.Millisecond)
		if err != nil {
			return nil, err
		}
		lo, err := tone(sr, 600, 100*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return beep.Seq(hi, lo), nil
	case VoiceRoar:
		var parts []beep.Streamer
		for i := 0; i < 4; i++ {
			parts = append(parts,
				beep.Take(sr.N(500*time.Millisecond), growl(sr, 150)),
				beep.Silence(sr.N(250*time.Millisecond)))
		}
		return beep.Seq(parts...), nil
	}
	return nil, fmt.Errorf("unknown voice %d", v)
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	s, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), s), nil
}

// sweep is a square wave gliding linearly from one frequency to another.
func sweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	total := float64(sr.N(d))
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			frac := math.Min(float64(pos)/total, 1)
			freq := from + (to-from)*frac
			phase += freq / float64(sr)
			v := 0.4
			if math.Mod(phase, 1) >= 0.5 {
				v = -0.4
			}
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// growl is a low square wave with a wobble, endless until taken.
func growl(sr beep.SampleRate, freq float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			f := freq + 20*math.Sin(2*math.Pi*6*t)
			v := 0.5 * math.Copysign(1, math.Sin(2*math.Pi*f*t))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

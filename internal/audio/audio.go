// Package audio plays the short tones that accompany eating and losing.
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

	"github.com/vovakirdan/tui-snake/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Tone lengths.
const (
	EatDuration  = 50 * time.Millisecond
	LoseDuration = 400 * time.Millisecond
	fadeDuration = 10 * time.Millisecond
)

// Effect names a sound.
type Effect int

const (
	EffectEat Effect = iota
	EffectLose
)

// Player plays effects. Implementations never block the caller.
type Player interface {
	Play(e Effect)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Effect) {}
func (Nop) Close()      {}

// Speaker plays effects on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	mixer  *beep.Mixer
	closed bool
}

// New returns a Speaker when audio is enabled and the device can be opened,
// Nop when audio is disabled. The error reports a device that failed to open;
// the returned Player is then Nop so callers can carry on.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return Nop{}, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	s := &Speaker{cfg: cfg, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues an effect on the mixer.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st, err := Build(e, s.cfg, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Build returns the finite streamer for an effect.
func Build(e Effect, cfg config.AudioConfig, rate beep.SampleRate) (beep.Streamer, error) {
	switch e {
	case EffectEat:
		return Tone(cfg.EatToneHz, EatDuration, 0.5, rate)
	case EffectLose:
		// Two falling notes.
		first, err := Tone(cfg.LoseToneHz*1.5, LoseDuration/2, 0.6, rate)
		if err != nil {
			return nil, err
		}
		second, err := Tone(cfg.LoseToneHz, LoseDuration/2, 0.6, rate)
		if err != nil {
			return nil, err
		}
		return beep.Seq(first, second), nil
	default:
		return nil, fmt.Errorf("audio: unknown effect %d", e)
	}
}

// Tone is a sine wave of freq Hz lasting d, faded in and out, at volume vol
// in (0, 1].
func Tone(freq float64, d time.Duration, vol float64, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0f Hz: %w", freq, err)
	}
	total := rate.N(d)
	shaped := &fade{
		streamer: beep.Take(total, sine),
		total:    total,
		ramp:     min(rate.N(fadeDuration), total/2),
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: shaped, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(vol)}, nil
}

// fade ramps the first and last samples to avoid clicks.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			switch {
			case f.pos < f.ramp:
				gain = float64(f.pos) / float64(f.ramp)
			case f.pos >= f.total-f.ramp:
				gain = float64(f.total-f.pos) / float64(f.ramp)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType identifies a game sound effect.
type SoundType int

const (
	SoundBuild SoundType = iota
	SoundKill
	SoundLeak
	SoundWave
	SoundGameOver
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a single enveloped tone.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Sound returns a fresh streamer for the effect, scaled by volume.
func Sound(t SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch t {
	case SoundBuild:
		s = beep.Seq(
			note(392.00, 60*time.Millisecond, WaveSquare, rate),
			note(523.25, 90*time.Millisecond, WaveSquare, rate),
		)
	case SoundKill:
		// Монетка: две ноты (B5, E6)
		s = beep.Seq(
			note(987.77, 50*time.Millisecond, WaveSquare, rate),
			note(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case SoundLeak:
		s = note(110, 200*time.Millisecond, WaveSaw, rate)
	case SoundWave:
		s = beep.Mix(
			newVolume(note(440, 300*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(note(880, 300*time.Millisecond, WaveSine, rate), 0.3),
		)
	case SoundGameOver:
		s = beep.Seq(
			note(392.00, 200*time.Millisecond, WaveSaw, rate),
			note(311.13, 200*time.Millisecond, WaveSaw, rate),
			note(261.63, 400*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}

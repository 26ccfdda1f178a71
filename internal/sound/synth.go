// Package sound synthesises the blob's sound cues.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type Cue int

const (
	CueJump Cue = iota
	CueSplat
	CueSquish
	CuePoke
	CueLand
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueSplat:
		return "splat"
	case CueSquish:
		return "squish"
	case CuePoke:
		return "poke"
	case CueLand:
		return "land"
	}
	return "unknown"
}

// oscillator sweeps linearly from one frequency to another over its
// duration.
type oscillator struct {
	from, to float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(d),
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Log2 of zero is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type voice struct {
	from, to float64
	wave     Wave
	weight   float64
}

type cueSpec struct {
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	voices   []voice
}

var cues = map[Cue]cueSpec{
	CueJump: {
		duration: 160 * time.Millisecond, attack: 5 * time.Millisecond, release: 90 * time.Millisecond,
		voices: []voice{{from: 320, to: 760, wave: WaveSine, weight: 1}},
	},
	CueSplat: {
		duration: 140 * time.Millisecond, attack: 2 * time.Millisecond, release: 110 * time.Millisecond,
		voices: []voice{
			{wave: WaveNoise, weight: 0.5},
			{from: 110, to: 70, wave: WaveSquare, weight: 0.3},
		},
	},
	CueSquish: {
		duration: 220 * time.Millisecond, attack: 20 * time.Millisecond, release: 120 * time.Millisecond,
		voices: []voice{{from: 420, to: 180, wave: WaveSaw, weight: 0.6}},
	},
	CuePoke: {
		duration: 70 * time.Millisecond, attack: 2 * time.Millisecond, release: 50 * time.Millisecond,
		voices: []voice{{from: 880, to: 990, wave: WaveSine, weight: 0.8}},
	},
	CueLand: {
		duration: 130 * time.Millisecond, attack: 2 * time.Millisecond, release: 100 * time.Millisecond,
		voices: []voice{
			{from: 120, to: 55, wave: WaveSine, weight: 0.7},
			{wave: WaveNoise, weight: 0.2},
		},
	},
}

// Duration is how long cue plays.
func Duration(c Cue) time.Duration {
	return cues[c].duration
}

// Synth builds a finite stream for cue at the given volume in [0, 1].
func Synth(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	cs, ok := cues[c]
	if !ok {
		return beep.Silence(0)
	}

	parts := make([]beep.Streamer, 0, len(cs.voices))
	for _, v := range cs.voices {
		tone := NewTone(v.from, v.to, cs.duration, v.wave, rate)
		shaped := NewEnvelope(tone, cs.duration, cs.attack, cs.release, rate)
		parts = append(parts, newVolume(shaped, v.weight))
	}

	mixed := beep.Take(rate.N(cs.duration), beep.Mix(parts...))
	return newVolume(mixed, math.Min(math.Max(volume, 0), 1))
}

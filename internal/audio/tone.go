package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator streams a fixed-length tone whose frequency slides linearly
// from freq to end.
type oscillator struct {
	freq, end float64
	phase     float64
	length    int
	position  int
	wave      Wave
	rate      beep.SampleRate
	noise     *rand.Rand
}

// Tone returns a constant-pitch tone.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Sweep(freq, freq, d, wave, rate)
}

// Sweep returns a tone gliding from one frequency to another.
func Sweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   from,
		end:    to,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(from*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.length)
		freq := o.freq + (o.end-o.freq)*progress
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

// Shape wraps s in a linear attack/release envelope of total length d.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = float64(left) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone with a short attack and a release over its last third.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// Sound builds the streamer for a cue at the given volume in [0, 1].
// It returns nil for CueNone.
func Sound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		d := 90 * time.Millisecond
		s = Shape(Sweep(1400, 500, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate)
		volume *= 0.35
	case CueAlienShot:
		d := 110 * time.Millisecond
		s = Shape(Sweep(300, 180, d, WaveSaw, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
		volume *= 0.25
	case CueExplosion:
		d := 220 * time.Millisecond
		s = Shape(Tone(0, d, WaveNoise, rate), d, 2*time.Millisecond, 180*time.Millisecond, rate)
		volume *= 0.5
	case CueBonus:
		s = beep.Seq(
			note(660, 80*time.Millisecond, WaveSine, rate),
			note(990, 80*time.Millisecond, WaveSine, rate),
		)
		volume *= 0.4
	case CueBonusHit:
		d := 300 * time.Millisecond
		s = beep.Mix(
			withVolume(Shape(Tone(0, d, WaveNoise, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate), 0.6),
			withVolume(Shape(Sweep(1200, 2400, d, WaveSine, rate), d, 5*time.Millisecond, 100*time.Millisecond, rate), 0.4),
		)
		volume *= 0.6
	case CueLifeLost:
		s = beep.Seq(
			note(440, 120*time.Millisecond, WaveSquare, rate),
			note(330, 120*time.Millisecond, WaveSquare, rate),
			note(220, 240*time.Millisecond, WaveSquare, rate),
		)
		volume *= 0.35
	case CueRoundWon:
		s = beep.Seq(
			note(523.25, 120*time.Millisecond, WaveSine, rate),
			note(659.25, 120*time.Millisecond, WaveSine, rate),
			note(783.99, 120*time.Millisecond, WaveSine, rate),
			note(1046.50, 300*time.Millisecond, WaveSine, rate),
		)
		volume *= 0.5
	case CueRoundOver:
		d := 700 * time.Millisecond
		s = Shape(Sweep(400, 80, d, WaveSaw, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate)
		volume *= 0.4
	default:
		return nil
	}
	return withVolume(s, volume)
}

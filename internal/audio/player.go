package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-station/internal/games/invaders"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player plays the cues for a tick's events.
type Player interface {
	Handle(events []invaders.Event)
	Close()
}

// Nop is the silent player used when audio is off or unavailable.
type Nop struct{}

// Handle implements Player.
func (Nop) Handle([]invaders.Event) {}

// Close implements Player.
func (Nop) Close() {}

// Synth synthesizes cues and mixes them onto one output.
type Synth struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	sink   func(beep.Streamer)
	played [cueCount]int
}

// newSynth creates a synth that hands each cue streamer to sink.
func newSynth(rate beep.SampleRate, volume float64, sink func(beep.Streamer)) *Synth {
	return &Synth{
		rate:   rate,
		volume: min(max(volume, 0), 1),
		sink:   sink,
	}
}

// Play starts one cue.
func (s *Synth) Play(c Cue) {
	st := Sound(c, s.rate, s.volume)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink == nil {
		return
	}
	s.played[c]++
	s.sink(st)
}

// Handle implements Player.
func (s *Synth) Handle(events []invaders.Event) {
	for _, c := range CuesFor(events) {
		s.Play(c)
	}
}

// Played returns how many times a cue has been started.
func (s *Synth) Played(c Cue) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played[c]
}

// Close detaches the synth from its output. Later cues are dropped.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = nil
}

// speakerOnce guards speaker.Init, which may only run once per process.
var speakerOnce struct {
	sync.Once
	mixer *beep.Mixer
	err   error
}

func initSpeaker() (*beep.Mixer, error) {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
			speakerOnce.err = fmt.Errorf("init speaker: %w", err)
			return
		}
		speakerOnce.mixer = &beep.Mixer{}
		speaker.Play(speakerOnce.mixer)
	})
	return speakerOnce.mixer, speakerOnce.err
}

// Open returns a speaker-backed synth. When audio is disabled it returns
// Nop; when the device cannot be opened it logs a warning and returns Nop.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Nop{}
	}

	mixer, err := initSpeaker()
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Nop{}
	}

	synth := newSynth(SampleRate, volume, func(st beep.Streamer) {
		speaker.Lock()
		mixer.Add(st)
		speaker.Unlock()
	})
	if logger != nil {
		logger.Debug("audio ready", "rate", int(SampleRate), "volume", synth.volume)
	}
	return &speakerPlayer{Synth: synth, mixer: mixer}
}

// speakerPlayer clears the shared mixer on close.
type speakerPlayer struct {
	*Synth
	mixer *beep.Mixer
}

func (p *speakerPlayer) Close() {
	p.Synth.Close()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

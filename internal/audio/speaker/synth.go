// Package speaker plays audio cues through the system sound device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Synth plays cues through the system speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New creates a synth. Call Init before Play.
func New() *Synth {
	return &Synth{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. Callers fall back to Nop on error.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker: cannot open device: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the cue on the mixer and returns immediately.
func (s *Synth) Play(c audio.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := audio.Effect(c, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything queued.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Package audio plays short cues for plane takeoff and landing.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and a mixer that cues are added to
// Every method is safe before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         zerolog.Logger
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker
// Failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted drops cues while set
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether cues would be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlayTakeoff plays the rising sweep
func (sm *SoundManager) PlayTakeoff() {
	sm.play("takeoff", CreateTakeoffSound)
}

// PlayLanding plays the two-note chime
func (sm *SoundManager) PlayLanding() {
	sm.play("landing", CreateLandingSound)
}

func (sm *SoundManager) play(name string, create func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(create(sampleRate))
	speaker.Unlock()
	sm.log.Debug().Str("cue", name).Msg("play")
}

package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the linear gain applied to every cue
	AudioVolume = 0.3
)

// Takeoff Sound, rising sine sweep
const (
	TakeoffSoundDuration = 250 * time.Millisecond
	TakeoffSoundAttack   = 10 * time.Millisecond
	TakeoffSoundRelease  = 80 * time.Millisecond
	TakeoffStartFreq     = 220.0 // Hz
	TakeoffEndFreq       = 660.0 // Hz
)

// Landing Sound, two-note chime
const (
	LandingNoteDuration = 120 * time.Millisecond
	LandingNoteAttack   = 5 * time.Millisecond
	LandingNoteRelease  = 60 * time.Millisecond
	LandingHighFreq     = 880.0 // Hz
	LandingLowFreq      = 660.0 // Hz
)

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/contrail/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
)

// sweep is an oscillator gliding linearly from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a finite oscillator gliding from one frequency to another
// from == to gives a steady tone
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration samples
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
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
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; zero or less is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateTakeoffSound is a short rising sweep
func CreateTakeoffSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.TakeoffStartFreq, parameter.TakeoffEndFreq,
		parameter.TakeoffSoundDuration, WaveSine, rate)
	env := NewEnvelope(osc, parameter.TakeoffSoundDuration,
		parameter.TakeoffSoundAttack, parameter.TakeoffSoundRelease, rate)
	return newVolume(env, parameter.AudioVolume)
}

// CreateLandingSound is a descending two-note chime
func CreateLandingSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewSweep(freq, freq, parameter.LandingNoteDuration, WaveTriangle, rate)
		return NewEnvelope(osc, parameter.LandingNoteDuration,
			parameter.LandingNoteAttack, parameter.LandingNoteRelease, rate)
	}
	return newVolume(beep.Seq(note(parameter.LandingHighFreq), note(parameter.LandingLowFreq)), parameter.AudioVolume)
}

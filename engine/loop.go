// Package engine runs the cooperative frame loop: terminal events and frame
// ticks are serialized onto one goroutine.
package engine

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/status"
)

// EventSource is the blocking event half of tcell.Screen
// PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Loop owns the frame goroutine
// OnEvent and OnFrame never run concurrently
type Loop struct {
	Events    EventSource
	Scheduler Scheduler
	Clock     Clock

	// OnEvent returns false to stop the loop
	OnEvent func(ev tcell.Event) bool
	// OnFrame errors stop the loop
	OnFrame func(now time.Time) error

	Metrics *status.Registry
	Log     zerolog.Logger
}

// Run blocks until ctx is done, OnEvent declines, OnFrame fails or the event source closes
// A nil error means a clean stop
func (l *Loop) Run(ctx context.Context) error {
	if l.Scheduler == nil || l.Events == nil {
		return errors.New("loop requires an event source and a scheduler")
	}
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	defer l.Scheduler.Stop()

	var (
		frames      = new(atomic.Int64)
		fps         = new(status.AtomicFloat)
		frameMillis = new(status.AtomicFloat)
	)
	if l.Metrics != nil {
		frames = l.Metrics.Ints.Get(status.KeyFrames)
		fps = l.Metrics.Floats.Get(status.KeyFPS)
		frameMillis = l.Metrics.Floats.Get(status.KeyFrameMillis)
	}

	done := make(chan struct{})
	defer close(done)
	events, crashed := l.poll(done)

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				select {
				case err := <-crashed:
					l.Log.Error().Err(err).Msg("event poller crashed")
					return err
				default:
				}
				l.Log.Debug().Msg("event source closed")
				return nil
			}
			if l.OnEvent != nil && !l.OnEvent(ev) {
				return nil
			}

		case now := <-l.Scheduler.C():
			if !last.IsZero() {
				if dt := now.Sub(last); dt > 0 {
					fps.Smooth(float64(time.Second)/float64(dt), parameter.FPSSmoothing)
				}
			}
			last = now

			began := clock.Now()
			if l.OnFrame != nil {
				if err := l.OnFrame(now); err != nil {
					return errors.Wrapf(err, "frame %d", frames.Load())
				}
			}
			frameMillis.Set(float64(clock.Now().Sub(began)) / float64(time.Millisecond))
			frames.Add(1)
		}
	}
}

// poll forwards source events until the source closes or done is closed
// A panic in PollEvent is delivered on the second channel before events closes,
// so the loop goroutine can unwind and restore the terminal
func (l *Loop) poll(done <-chan struct{}) (<-chan tcell.Event, <-chan error) {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	crashed := make(chan error, 1)
	go func() {
		defer close(events)
		defer func() {
			if r := recover(); r != nil {
				crashed <- errors.Errorf("event poller panic: %v\n%s", r, debug.Stack())
			}
		}()
		for {
			ev := l.Events.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events, crashed
}

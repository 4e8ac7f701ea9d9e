package main

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/audio"
	"github.com/lixenwraith/contrail/canvas"
	"github.com/lixenwraith/contrail/config"
	"github.com/lixenwraith/contrail/flight"
	"github.com/lixenwraith/contrail/input"
	"github.com/lixenwraith/contrail/render"
	"github.com/lixenwraith/contrail/session"
	"github.com/lixenwraith/contrail/status"
)

// app wires the session to the terminal, the raster and the speaker
// Both callbacks run on the loop goroutine
type app struct {
	screen    tcell.Screen
	machine   *input.Machine
	sess      *session.Session
	raster    *canvas.Raster
	presenter *render.Presenter
	sound     *audio.SoundManager
	metrics   *status.Registry
	muted     *atomic.Bool
	log       zerolog.Logger
}

func newApp(screen tcell.Screen, cfg config.Config, sound *audio.SoundManager, log zerolog.Logger) (*app, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, errors.Wrap(err, "key bindings")
	}
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}

	metrics := status.NewRegistry()
	opts.Metrics = metrics
	opts.Hooks = session.Hooks{
		OnTakeoff: func(*flight.Plane) { sound.PlayTakeoff() },
		OnLanding: func(*flight.Plane) { sound.PlayLanding() },
	}

	presenter := render.NewPresenter(screen)
	w, h := presenter.SurfaceSize()
	a := &app{
		screen:    screen,
		machine:   input.NewMachine(keys),
		sess:      session.New(opts, log),
		raster:    canvas.NewRaster(w, h, cfg.Canvas.Scale, palette.Background),
		presenter: presenter,
		sound:     sound,
		metrics:   metrics,
		muted:     metrics.Bools.Get(status.KeyMuted),
		log:       log,
	}
	a.muted.Store(!sound.Enabled())
	return a, nil
}

// handleEvent applies one terminal event, returning false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent.IsPointer() {
		a.pointer(intent)
		return true
	}
	switch intent.Type {
	case input.IntentQuit:
		a.log.Info().Msg("quit")
		return false
	case input.IntentClear:
		a.sess.Clear()
	case input.IntentPause:
		paused := a.sess.TogglePause()
		a.log.Debug().Bool("paused", paused).Msg("pause toggled")
	case input.IntentToggleMute:
		a.sound.ToggleMute()
		a.muted.Store(!a.sound.Enabled())
	case input.IntentResize:
		w, h := a.presenter.SurfaceSize()
		a.raster.Resize(w, h)
		a.screen.Sync()
		a.log.Debug().Int("width", intent.Width).Int("height", intent.Height).Msg("resize")
	}
	return true
}

// pointer feeds one stroke edge to the session
func (a *app) pointer(intent input.Intent) {
	switch intent.Type {
	case input.IntentPointerDown:
		a.sess.PointerDown(intent.At)
	case input.IntentPointerMove:
		a.sess.PointerMove(intent.At)
	case input.IntentPointerUp:
		a.sess.PointerUp(intent.At)
	}
}

// frame draws the session into the raster and presents it
func (a *app) frame(time.Time) error {
	if err := a.sess.Frame(a.raster); err != nil {
		return err
	}
	a.presenter.Present(a.raster.Image(), a.metrics.Snapshot())
	return nil
}

func (a *app) close() {
	if err := a.raster.Close(); err != nil {
		a.log.Warn().Err(err).Msg("raster close")
	}
}

// Package session holds the drawing state driven by the frame loop:
// the stroke being captured, the finished paths and the planes flying them.
package session

import (
	"image/color"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/canvas"
	"github.com/lixenwraith/contrail/capture"
	"github.com/lixenwraith/contrail/flight"
	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/status"
	"github.com/lixenwraith/contrail/trail"
)

// Hooks are notified on the loop goroutine
type Hooks struct {
	OnTakeoff func(p *flight.Plane)
	OnLanding func(p *flight.Plane)
}

// Options configures a Session
type Options struct {
	Params       trail.Params
	Style        flight.Style
	CaptureColor color.Color
	TraceColor   color.Color
	LineWidth    float64
	// MaxFlights caps the number of paths kept, 0 is unlimited
	MaxFlights int
	Hooks      Hooks
	// Metrics is optional
	Metrics *status.Registry
}

// DefaultOptions returns the parameter package defaults
func DefaultOptions() Options {
	return Options{
		Params:       trail.DefaultParams(),
		Style:        flight.DefaultStyle(),
		CaptureColor: colorful.MustParseHex(parameter.CaptureColor),
		TraceColor:   colorful.MustParseHex(parameter.TraceColor),
		LineWidth:    parameter.LineWidth,
		MaxFlights:   parameter.MaxFlights,
	}
}

// Stats counts session contents
type Stats struct {
	Paths         int
	Planes        int
	Airborne      int
	CapturePoints int
}

// Session is the render-loop state
// Not safe for concurrent use; only the loop goroutine calls into it
type Session struct {
	opts    Options
	log     zerolog.Logger
	capture *capture.Capture
	paths   []trail.ProcessedPath
	planes  []*flight.Plane
	paused  bool

	metrics *sessionMetrics
}

type sessionMetrics struct {
	paths, planes, airborne, capturePoints *atomic.Int64
	paused                                 *atomic.Bool
}

// New creates an empty session
func New(opts Options, log zerolog.Logger) *Session {
	s := &Session{
		opts:    opts,
		log:     log.With().Str("component", "session").Logger(),
		capture: capture.New(),
	}
	if r := opts.Metrics; r != nil {
		s.metrics = &sessionMetrics{
			paths:         r.Ints.Get(status.KeyPaths),
			planes:        r.Ints.Get(status.KeyPlanes),
			airborne:      r.Ints.Get(status.KeyAirborne),
			capturePoints: r.Ints.Get(status.KeyCapturePoints),
			paused:        r.Bools.Get(status.KeyPaused),
		}
	}
	return s
}

// PointerDown starts a stroke
func (s *Session) PointerDown(pt trail.Point) {
	s.capture.Begin(pt)
}

// PointerMove extends the active stroke
func (s *Session) PointerMove(pt trail.Point) {
	s.capture.Extend(pt)
}

// PointerUp finishes the stroke and launches a plane along it
// The release coordinate itself is not part of the stroke
// A stroke that simplifies to one point parks an Arrived plane at its start
// Returns the new plane, or nil when no stroke was finished
func (s *Session) PointerUp(trail.Point) *flight.Plane {
	raw, ok := s.capture.End()
	if !ok {
		return nil
	}

	path := trail.Process(raw, s.opts.Params)

	plane := flight.New(raw[0], s.opts.Style)
	plane.AssignPath(path)
	s.paths = append(s.paths, path)
	s.planes = append(s.planes, plane)
	s.evict()

	s.log.Debug().
		Str("plane", plane.ID.String()).
		Stringer("state", plane.State()).
		Int("raw", len(raw)).
		Int("points", path.Len()).
		Float64("length", path.Length()).
		Msg("takeoff")
	if s.opts.Hooks.OnTakeoff != nil {
		s.opts.Hooks.OnTakeoff(plane)
	}
	return plane
}

// evict drops the oldest flights beyond MaxFlights
func (s *Session) evict() {
	limit := s.opts.MaxFlights
	if limit <= 0 || len(s.planes) <= limit {
		return
	}
	n := len(s.planes) - limit
	for _, p := range s.planes[:n] {
		s.log.Debug().Str("plane", p.ID.String()).Float64("progress", p.Progress()).Msg("evicted")
	}
	s.paths = slices.Delete(s.paths, 0, n)
	s.planes = slices.Delete(s.planes, 0, n)
}

// Frame draws one frame: clear, live stroke, finished paths, planes
// Planes advance one point per frame unless paused
func (s *Session) Frame(surf canvas.Surface) error {
	w, h := surf.Size()
	surf.ClearRect(0, 0, w, h)
	surf.SetLineWidth(s.opts.LineWidth)

	if err := trace(surf, slices.All(s.capture.Points()), s.opts.CaptureColor); err != nil {
		return errors.Wrap(err, "capture stroke")
	}
	for i, path := range s.paths {
		if err := trace(surf, path.All(), s.opts.TraceColor); err != nil {
			return errors.Wrapf(err, "path %d", i)
		}
	}

	var landed []*flight.Plane
	for _, p := range s.planes {
		if !s.paused {
			before := p.State()
			if p.Advance() && p.State() == flight.Arrived && before == flight.Traveling {
				landed = append(landed, p)
			}
		}
		if err := p.Draw(surf); err != nil {
			return err
		}
	}

	for _, p := range landed {
		s.log.Debug().Str("plane", p.ID.String()).Int("laps", p.Laps()).Msg("landing")
		if s.opts.Hooks.OnLanding != nil {
			s.opts.Hooks.OnLanding(p)
		}
	}
	s.publish()
	return nil
}

// trace strokes a polyline; fewer than two points draw nothing
func trace(surf canvas.Surface, pts iter.Seq2[int, trail.Point], c color.Color) error {
	n := 0
	surf.BeginPath()
	for i, pt := range pts {
		if i == 0 {
			surf.MoveTo(pt.X, pt.Y)
		} else {
			surf.LineTo(pt.X, pt.Y)
		}
		n++
	}
	if n < 2 {
		return nil
	}
	surf.SetStrokeColor(c)
	return surf.Stroke()
}

// Clear drops every path, plane and the stroke in progress
func (s *Session) Clear() {
	s.capture.Cancel()
	s.paths = nil
	s.planes = nil
	s.log.Debug().Msg("cleared")
	s.publish()
}

// TogglePause flips the pause flag and returns the new value
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	s.publish()
	return s.paused
}

// Paused reports whether planes are frozen
func (s *Session) Paused() bool {
	return s.paused
}

// Capturing reports whether a stroke is in progress
func (s *Session) Capturing() bool {
	return s.capture.Active()
}

// Planes returns the planes in launch order
func (s *Session) Planes() []*flight.Plane {
	return slices.Clone(s.planes)
}

// Paths returns the finished paths in launch order
func (s *Session) Paths() []trail.ProcessedPath {
	return slices.Clone(s.paths)
}

// Stats counts the session contents
func (s *Session) Stats() Stats {
	st := Stats{
		Paths:         len(s.paths),
		Planes:        len(s.planes),
		CapturePoints: s.capture.Len(),
	}
	for _, p := range s.planes {
		if p.State() == flight.Traveling {
			st.Airborne++
		}
	}
	return st
}

func (s *Session) publish() {
	if s.metrics == nil {
		return
	}
	st := s.Stats()
	s.metrics.paths.Store(int64(st.Paths))
	s.metrics.planes.Store(int64(st.Planes))
	s.metrics.airborne.Store(int64(st.Airborne))
	s.metrics.capturePoints.Store(int64(st.CapturePoints))
	s.metrics.paused.Store(s.paused)
}

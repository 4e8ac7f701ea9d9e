package session

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/canvas"
	"github.com/lixenwraith/contrail/flight"
	"github.com/lixenwraith/contrail/status"
	"github.com/lixenwraith/contrail/trail"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	gray  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.CaptureColor = black
	opts.TraceColor = gray
	opts.Style.Left = red
	opts.Style.Right = green
	opts.Style.Outline = blue
	return opts
}

// stroke draws a straight 100 unit line from (x, 0), which processes into 20 points
func stroke(s *Session, x float64) *flight.Plane {
	s.PointerDown(trail.Pt(x, 0))
	s.PointerMove(trail.Pt(x+100, 0))
	return s.PointerUp(trail.Pt(x+500, 500))
}

func TestTakeoff(t *testing.T) {
	var launched []*flight.Plane
	opts := testOptions()
	opts.Hooks.OnTakeoff = func(p *flight.Plane) { launched = append(launched, p) }
	s := New(opts, zerolog.Nop())

	p := stroke(s, 0)
	if p == nil {
		t.Fatal("PointerUp() = nil, want a plane")
	}
	if p.Position != trail.Pt(0, 0) {
		t.Errorf("spawn position = %v, want first raw point", p.Position)
	}
	if p.State() != flight.Traveling {
		t.Errorf("State() = %v, want Traveling", p.State())
	}
	if got := p.Path().Len(); got != 20 {
		t.Errorf("path length = %d, want 20", got)
	}
	if got := p.Path().Last(); got.X > 100 || got.Y != 0 {
		t.Errorf("path ends at %v, release point must not be included", got)
	}
	if len(launched) != 1 || launched[0] != p {
		t.Errorf("OnTakeoff calls = %d, want 1 with the new plane", len(launched))
	}
	want := Stats{Paths: 1, Planes: 1, Airborne: 1}
	if diff := cmp.Diff(want, s.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestShortStrokes(t *testing.T) {
	s := New(testOptions(), zerolog.Nop())

	// Click without motion
	s.PointerDown(trail.Pt(5, 5))
	if p := s.PointerUp(trail.Pt(5, 5)); p != nil {
		t.Error("single point stroke launched a plane")
	}

	// Up without Down
	if p := s.PointerUp(trail.Pt(1, 1)); p != nil {
		t.Error("stray release launched a plane")
	}

	if got := s.Stats(); got != (Stats{}) {
		t.Errorf("Stats() = %+v, want empty", got)
	}
}

func TestSubThresholdStrokeParksPlane(t *testing.T) {
	var landings int
	opts := testOptions()
	opts.Hooks.OnLanding = func(*flight.Plane) { landings++ }
	s := New(opts, zerolog.Nop())

	// Motion smaller than the simplify threshold collapses to one point
	s.PointerDown(trail.Pt(5, 5))
	s.PointerMove(trail.Pt(6, 5))
	p := s.PointerUp(trail.Pt(6, 5))
	if p == nil {
		t.Fatal("PointerUp() = nil, want a parked plane")
	}
	if p.State() != flight.Arrived {
		t.Errorf("State() = %v, want Arrived", p.State())
	}
	if p.Path().Len() != 1 {
		t.Errorf("path length = %d, want 1", p.Path().Len())
	}

	rec := canvas.NewRecorder(50, 50)
	for range 3 {
		if err := s.Frame(rec); err != nil {
			t.Fatalf("Frame() = %v", err)
		}
	}
	if p.Position != trail.Pt(5, 5) {
		t.Errorf("Position = %v, want (5, 5)", p.Position)
	}
	if landings != 0 {
		t.Errorf("landings = %d, want 0 for a plane that never travelled", landings)
	}
	// Drawn every frame, the one-point trace strokes nothing
	if got := rec.Count(canvas.OpFill); got != 2*3 {
		t.Errorf("fills = %d, want %d", got, 2*3)
	}
	want := Stats{Paths: 1, Planes: 1}
	if diff := cmp.Diff(want, s.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameDrawOrder(t *testing.T) {
	s := New(testOptions(), zerolog.Nop())
	stroke(s, 0)
	s.PointerDown(trail.Pt(0, 50))
	s.PointerMove(trail.Pt(10, 50))

	rec := canvas.NewRecorder(200, 100)
	if err := s.Frame(rec); err != nil {
		t.Fatalf("Frame() = %v", err)
	}

	if rec.Ops[0].Kind != canvas.OpClearRect {
		t.Fatalf("first op = %v, want ClearRect", rec.Ops[0].Kind)
	}
	if diff := cmp.Diff([]float64{0, 0, 200, 100}, rec.Ops[0].Args); diff != "" {
		t.Errorf("ClearRect args mismatch (-want +got):\n%s", diff)
	}

	type painted struct {
		Kind  canvas.OpKind
		Color color.Color
	}
	var got []painted
	for _, sh := range rec.Shapes {
		got = append(got, painted{sh.Kind, sh.Color})
	}
	want := []painted{
		{canvas.OpStroke, black}, // live stroke
		{canvas.OpStroke, gray},  // finished path
		{canvas.OpFill, red},
		{canvas.OpStroke, blue},
		{canvas.OpFill, green},
		{canvas.OpStroke, blue},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("painted shapes mismatch (-want +got):\n%s", diff)
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d after frame, want 0", rec.Depth())
	}
	if got := rec.Shapes[0].Points; len(got) != 2 {
		t.Errorf("live stroke has %d points, want 2", len(got))
	}
}

func TestFrameAdvancesAndLands(t *testing.T) {
	var landings int
	opts := testOptions()
	opts.Hooks.OnLanding = func(*flight.Plane) { landings++ }
	s := New(opts, zerolog.Nop())
	p := stroke(s, 0)
	rec := canvas.NewRecorder(200, 100)

	for frame := 1; frame <= 19; frame++ {
		if err := s.Frame(rec); err != nil {
			t.Fatalf("Frame() = %v", err)
		}
		if p.Cursor() != frame {
			t.Fatalf("frame %d: Cursor() = %d", frame, p.Cursor())
		}
	}
	if p.State() != flight.Arrived {
		t.Errorf("State() = %v after 19 frames, want Arrived", p.State())
	}
	if landings != 1 {
		t.Errorf("landings = %d, want 1", landings)
	}

	s.Frame(rec)
	if landings != 1 || p.Cursor() != 19 {
		t.Errorf("after arrival: landings = %d, cursor = %d", landings, p.Cursor())
	}
	if got := s.Stats().Airborne; got != 0 {
		t.Errorf("Airborne = %d, want 0", got)
	}
}

func TestPauseFreezesPlanes(t *testing.T) {
	s := New(testOptions(), zerolog.Nop())
	p := stroke(s, 0)
	rec := canvas.NewRecorder(200, 100)

	s.Frame(rec)
	if !s.TogglePause() || !s.Paused() {
		t.Fatal("TogglePause() did not pause")
	}
	for range 5 {
		s.Frame(rec)
	}
	if p.Cursor() != 1 {
		t.Errorf("Cursor() = %d while paused, want 1", p.Cursor())
	}
	// Paused planes are still drawn
	if got := rec.Count(canvas.OpFill); got != 2*6 {
		t.Errorf("fills = %d, want %d", got, 2*6)
	}

	s.TogglePause()
	s.Frame(rec)
	if p.Cursor() != 2 {
		t.Errorf("Cursor() = %d after resume, want 2", p.Cursor())
	}
}

func TestMaxFlightsEvictsOldest(t *testing.T) {
	opts := testOptions()
	opts.MaxFlights = 2
	s := New(opts, zerolog.Nop())

	first := stroke(s, 0)
	second := stroke(s, 10)
	third := stroke(s, 20)

	planes := s.Planes()
	if len(planes) != 2 || planes[0] != second || planes[1] != third {
		t.Fatalf("Planes() = %v, want [second third]", planes)
	}
	for _, p := range planes {
		if p == first {
			t.Error("oldest plane was kept")
		}
	}
	if got := s.Paths()[0].First(); got != trail.Pt(10, 0) {
		t.Errorf("oldest remaining path starts at %v, want (10, 0)", got)
	}
}

func TestClear(t *testing.T) {
	s := New(testOptions(), zerolog.Nop())
	stroke(s, 0)
	s.PointerDown(trail.Pt(1, 1))
	s.PointerMove(trail.Pt(2, 2))

	s.Clear()
	if got := s.Stats(); got != (Stats{}) {
		t.Errorf("Stats() = %+v after Clear, want empty", got)
	}
	if s.Capturing() {
		t.Error("Capturing() = true after Clear")
	}
	// The release of the dropped stroke launches nothing
	if p := s.PointerUp(trail.Pt(3, 3)); p != nil {
		t.Error("PointerUp after Clear launched a plane")
	}
}

func TestMetricsPublished(t *testing.T) {
	reg := status.NewRegistry()
	opts := testOptions()
	opts.Metrics = reg
	s := New(opts, zerolog.Nop())

	stroke(s, 0)
	s.PointerDown(trail.Pt(0, 50))
	s.PointerMove(trail.Pt(10, 50))
	s.TogglePause()
	s.Frame(canvas.NewRecorder(200, 100))

	snap := reg.Snapshot()
	if snap.Paths != 1 || snap.Planes != 1 || snap.Airborne != 1 || snap.CapturePoints != 2 || !snap.Paused {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

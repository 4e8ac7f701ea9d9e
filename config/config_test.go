package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/lixenwraith/contrail/input"
	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/trail"
)

func TestDefaultMatchesParameters(t *testing.T) {
	cfg := Default()
	if diff := cmp.Diff(trail.DefaultParams(), cfg.TrailParams()); diff != "" {
		t.Errorf("TrailParams() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Engine.FrameInterval != parameter.FrameUpdateInterval {
		t.Errorf("FrameInterval = %v, want %v", cfg.Engine.FrameInterval, parameter.FrameUpdateInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(`
[path]
passes = 3

[plane]
size = 12.5
left = "#ff0000"
loop = true

[engine]
frame_interval = "33ms"

[session]
max_flights = 4

[keys]
x = "quit"
`)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	want := Default()
	want.Path.Passes = 3
	want.Plane.Size = 12.5
	want.Plane.Left = "#ff0000"
	want.Plane.Loop = true
	want.Engine.FrameInterval = 33 * time.Millisecond
	want.Session.MaxFlights = 4
	want.Keys = map[string]string{"x": "quit"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable() = %v", err)
	}
	if got := kt.Lookup(tcell.KeyRune, 'x'); got != input.IntentQuit {
		t.Errorf("x = %v, want Quit", got)
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		t.Fatalf("SessionOptions() = %v", err)
	}
	if !opts.Style.Loop || opts.Style.Size != 12.5 || opts.MaxFlights != 4 {
		t.Errorf("SessionOptions() = %+v", opts)
	}
	r, g, b, _ := opts.Style.Left.RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("left wing = %v, want red", opts.Style.Left)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", "[path]\nstride = 1\n"},
		{"unknown section", "[radar]\non = true\n"},
		{"zero step", "[path]\nstep = 0.0\n"},
		{"step above one", "[path]\nstep = 1.5\n"},
		{"negative threshold", "[path]\nthreshold = -1.0\n"},
		{"negative passes", "[path]\npasses = -2\n"},
		{"zero plane size", "[plane]\nsize = 0.0\n"},
		{"bad colour", "[plane]\noutline = \"black\"\n"},
		{"bad background", "[canvas]\nbackground = \"#12\"\n"},
		{"zero line width", "[canvas]\nline_width = 0.0\n"},
		{"scale too large", "[canvas]\nsupersample_scale = 64\n"},
		{"frame too fast", "[engine]\nframe_interval = \"1ms\"\n"},
		{"negative max flights", "[session]\nmax_flights = -1\n"},
		{"unknown action", "[keys]\nx = \"explode\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("[path\n")
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() = %v, want a decode error", err)
	}
}

func TestLoadAndWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Plane.Loop = true
	cfg.Canvas.Trace = "#abcdef"

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	path := filepath.Join(t.TempDir(), "contrail.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

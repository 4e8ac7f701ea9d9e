// Package config loads the TOML configuration file over the parameter defaults.
package config

import (
	"image/color"
	"io"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/contrail/flight"
	"github.com/lixenwraith/contrail/input"
	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/session"
	"github.com/lixenwraith/contrail/trail"
)

// ErrInvalid marks configuration values that fail validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the full configuration file
type Config struct {
	Path    PathConfig        `toml:"path"`
	Plane   PlaneConfig       `toml:"plane"`
	Canvas  CanvasConfig      `toml:"canvas"`
	Engine  EngineConfig      `toml:"engine"`
	Session SessionConfig     `toml:"session"`
	Audio   AudioConfig       `toml:"audio"`
	Keys    map[string]string `toml:"keys"`
}

// PathConfig tunes the path processing pipeline
type PathConfig struct {
	Step      float64 `toml:"step"`
	Threshold float64 `toml:"threshold"`
	Passes    int     `toml:"passes"`
}

// PlaneConfig is the glyph appearance
type PlaneConfig struct {
	Size    float64 `toml:"size"`
	Left    string  `toml:"left"`
	Right   string  `toml:"right"`
	Outline string  `toml:"outline"`
	Loop    bool    `toml:"loop"`
}

// CanvasConfig is the drawing palette and raster quality
type CanvasConfig struct {
	Background string  `toml:"background"`
	Capture    string  `toml:"capture"`
	Trace      string  `toml:"trace"`
	LineWidth  float64 `toml:"line_width"`
	Scale      int     `toml:"supersample_scale"`
}

// EngineConfig is the frame loop timing
type EngineConfig struct {
	FrameInterval time.Duration `toml:"frame_interval"`
}

// SessionConfig bounds the session
type SessionConfig struct {
	MaxFlights int `toml:"max_flights"`
}

// AudioConfig toggles sound cues
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// maxScale bounds the raster memory at large terminal sizes
const maxScale = 8

// Default returns the parameter package defaults
func Default() Config {
	return Config{
		Path: PathConfig{
			Step:      parameter.SupersampleStep,
			Threshold: parameter.SimplifyThreshold,
			Passes:    parameter.SmoothingPasses,
		},
		Plane: PlaneConfig{
			Size:    parameter.PlaneSize,
			Left:    parameter.PlaneLeftColor,
			Right:   parameter.PlaneRightColor,
			Outline: parameter.PlaneOutlineColor,
			Loop:    parameter.PlaneLoop,
		},
		Canvas: CanvasConfig{
			Background: parameter.BackgroundColor,
			Capture:    parameter.CaptureColor,
			Trace:      parameter.TraceColor,
			LineWidth:  parameter.LineWidth,
			Scale:      parameter.SupersampleScale,
		},
		Engine:  EngineConfig{FrameInterval: parameter.FrameUpdateInterval},
		Session: SessionConfig{MaxFlights: parameter.MaxFlights},
		Audio:   AudioConfig{Enabled: true},
		Keys:    map[string]string{},
	}
}

// Load reads path over the defaults and validates the result
// Keys the file sets that no field accepts are an error
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse is Load for in-memory TOML
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode")
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.Wrapf(ErrInvalid, "unknown keys: %s", strings.Join(keys, ", "))
}

// Write encodes cfg as TOML
func (c Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}

// Validate checks every section; the first failure is returned wrapping ErrInvalid
func (c Config) Validate() error {
	if err := c.TrailParams().Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "path: %v", err)
	}
	if !(c.Plane.Size > 0) || math.IsInf(c.Plane.Size, 0) {
		return errors.Wrapf(ErrInvalid, "plane.size %v must be positive", c.Plane.Size)
	}
	if !(c.Canvas.LineWidth > 0) || math.IsInf(c.Canvas.LineWidth, 0) {
		return errors.Wrapf(ErrInvalid, "canvas.line_width %v must be positive", c.Canvas.LineWidth)
	}
	if c.Canvas.Scale < 1 || c.Canvas.Scale > maxScale {
		return errors.Wrapf(ErrInvalid, "canvas.supersample_scale %d not in [1, %d]", c.Canvas.Scale, maxScale)
	}
	if c.Engine.FrameInterval < parameter.MinFrameInterval {
		return errors.Wrapf(ErrInvalid, "engine.frame_interval %v below %v", c.Engine.FrameInterval, parameter.MinFrameInterval)
	}
	if c.Session.MaxFlights < 0 {
		return errors.Wrapf(ErrInvalid, "session.max_flights %d is negative", c.Session.MaxFlights)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.KeyTable(); err != nil {
		return errors.Wrapf(ErrInvalid, "keys: %v", err)
	}
	return nil
}

// Palette holds the parsed colours
type Palette struct {
	Background, Capture, Trace color.Color
	Left, Right, Outline       color.Color
}

// Palette parses every colour string
func (c Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"canvas.background", c.Canvas.Background, &p.Background},
		{"canvas.capture", c.Canvas.Capture, &p.Capture},
		{"canvas.trace", c.Canvas.Trace, &p.Trace},
		{"plane.left", c.Plane.Left, &p.Left},
		{"plane.right", c.Plane.Right, &p.Right},
		{"plane.outline", c.Plane.Outline, &p.Outline},
	}
	for _, f := range fields {
		cf, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, errors.Wrapf(ErrInvalid, "%s %q is not a #rrggbb colour", f.name, f.hex)
		}
		*f.dst = cf
	}
	return p, nil
}

// TrailParams returns the path pipeline parameters
func (c Config) TrailParams() trail.Params {
	return trail.Params{
		Step:      c.Path.Step,
		Threshold: c.Path.Threshold,
		Passes:    c.Path.Passes,
	}
}

// KeyTable returns the default bindings with [keys] applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if err := kt.ApplyBindings(c.Keys); err != nil {
		return nil, err
	}
	return kt, nil
}

// SessionOptions builds session options from a validated config
func (c Config) SessionOptions() (session.Options, error) {
	p, err := c.Palette()
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Params: c.TrailParams(),
		Style: flight.Style{
			Size:    c.Plane.Size,
			Left:    p.Left,
			Right:   p.Right,
			Outline: p.Outline,
			Loop:    c.Plane.Loop,
		},
		CaptureColor: p.Capture,
		TraceColor:   p.Trace,
		LineWidth:    c.Canvas.LineWidth,
		MaxFlights:   c.Session.MaxFlights,
	}, nil
}

// Package flight implements the plane glyph that follows a processed path,
// one path point per frame, oriented tangent to its direction of travel.
package flight

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/trail"
)

// State is the follower lifecycle
type State uint8

const (
	Unassigned State = iota
	Traveling
	Arrived
)

func (s State) String() string {
	switch s {
	case Unassigned:
		return "Unassigned"
	case Traveling:
		return "Traveling"
	case Arrived:
		return "Arrived"
	default:
		return "Unknown"
	}
}

// Style controls glyph appearance and end-of-path behaviour
type Style struct {
	Size    float64
	Left    color.Color
	Right   color.Color
	Outline color.Color
	// Loop restarts from the first path point after arrival
	Loop bool
}

// DefaultStyle returns the parameter package glyph defaults
func DefaultStyle() Style {
	return Style{
		Size:    parameter.PlaneSize,
		Left:    colorful.MustParseHex(parameter.PlaneLeftColor),
		Right:   colorful.MustParseHex(parameter.PlaneRightColor),
		Outline: colorful.MustParseHex(parameter.PlaneOutlineColor),
		Loop:    parameter.PlaneLoop,
	}
}

// Plane is a glyph with its own cursor into a shared, read-only path
type Plane struct {
	ID       uuid.UUID
	Position trail.Point
	Heading  float64
	Style    Style

	path   trail.ProcessedPath
	cursor int
	state  State
	laps   int
}

// New creates an unassigned plane at the given position facing up
func New(at trail.Point, style Style) *Plane {
	return &Plane{
		ID:       uuid.New(),
		Position: at,
		Style:    style,
	}
}

// AssignPath attaches a path and rewinds the cursor
// An empty path unassigns; a single point path arrives immediately
func (p *Plane) AssignPath(path trail.ProcessedPath) {
	p.path = path
	p.cursor = 0
	p.laps = 0
	switch {
	case path.Empty():
		p.state = Unassigned
	case path.Len() == 1:
		p.state = Arrived
	default:
		p.state = Traveling
	}
}

// Advance moves to the current path point, heads toward the next and steps the cursor
// Returns false when there is nothing to advance
func (p *Plane) Advance() bool {
	if p.state == Unassigned {
		return false
	}
	last := p.path.Len() - 1
	if p.cursor >= last {
		if !p.Style.Loop || last < 1 {
			return false
		}
		p.cursor = 0
		p.laps++
		p.state = Traveling
	}

	cur, next := p.path.At(p.cursor), p.path.At(p.cursor+1)
	p.Position = cur
	p.Heading = trail.Heading(cur, next)
	p.cursor++
	if p.cursor >= last {
		p.state = Arrived
	}
	return true
}

// State returns the follower state
func (p *Plane) State() State {
	return p.state
}

// Cursor returns the index of the next point to visit
func (p *Plane) Cursor() int {
	return p.cursor
}

// Path returns the assigned path, empty when unassigned
func (p *Plane) Path() trail.ProcessedPath {
	return p.path
}

// Laps returns how many times a looping plane restarted its path
func (p *Plane) Laps() int {
	return p.laps
}

// Progress returns the travelled fraction of the path in [0, 1]
func (p *Plane) Progress() float64 {
	last := p.path.Len() - 1
	if last < 1 {
		if p.state == Arrived {
			return 1
		}
		return 0
	}
	return float64(p.cursor) / float64(last)
}

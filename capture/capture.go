// Package capture accumulates pointer positions into raw paths.
package capture

import "github.com/lixenwraith/contrail/trail"

// Capture is the in-flight stroke buffer
// Only the frame loop goroutine touches it
type Capture struct {
	active bool
	points trail.RawPath
}

// New creates an idle capture
func New() *Capture {
	return &Capture{}
}

// Begin starts a stroke at pt, discarding any unfinished one
func (c *Capture) Begin(pt trail.Point) {
	c.active = true
	c.points = c.points[:0]
	if trail.Finite(pt) {
		c.points = append(c.points, pt)
	}
}

// Extend appends pt while a stroke is active
func (c *Capture) Extend(pt trail.Point) {
	if !c.active || !trail.Finite(pt) {
		return
	}
	c.points = append(c.points, pt)
}

// End stops the stroke and hands off its points
// ok is true only when more than one point was recorded
func (c *Capture) End() (trail.RawPath, bool) {
	wasActive := c.active
	c.active = false
	if !wasActive || len(c.points) < 2 {
		c.points = c.points[:0]
		return nil, false
	}
	raw := make(trail.RawPath, len(c.points))
	copy(raw, c.points)
	c.points = c.points[:0]
	return raw, true
}

// Cancel drops the stroke without producing a path
func (c *Capture) Cancel() {
	c.active = false
	c.points = c.points[:0]
}

// Active reports whether a stroke is in progress
func (c *Capture) Active() bool {
	return c.active
}

// Points is a read-only view of the live stroke for preview drawing
// Valid until the next Begin, Extend or End
func (c *Capture) Points() []trail.Point {
	return c.points
}

// Len returns the number of recorded points
func (c *Capture) Len() int {
	return len(c.points)
}

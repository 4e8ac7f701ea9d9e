// Package trail holds the point primitives and the path processing pipeline
// that turns a captured pointer path into a smooth trajectory.
package trail

import (
	"iter"
	"math"

	"honnef.co/go/curve"
)

// Point is a 2D coordinate in surface space
type Point = curve.Point

// Pt returns the point (x, y)
func Pt(x, y float64) Point {
	return curve.Pt(x, y)
}

// Finite reports whether both coordinates are usable for interpolation
func Finite(p Point) bool {
	return !p.IsNaN() && !p.IsInf()
}

// RawPath is a point sequence in capture order, possibly with near duplicates
type RawPath []Point

// ProcessedPath is the finalized output of Process
// Immutable once built; planes and trace rendering share it by value
type ProcessedPath struct {
	pts []Point
}

// NewProcessedPath copies pts into a finalized path
func NewProcessedPath(pts []Point) ProcessedPath {
	if len(pts) == 0 {
		return ProcessedPath{}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return ProcessedPath{pts: cp}
}

// Len returns the number of points
func (p ProcessedPath) Len() int {
	return len(p.pts)
}

// Empty reports whether the path holds no points
func (p ProcessedPath) Empty() bool {
	return len(p.pts) == 0
}

// At returns the i-th point, panics on out of range like a slice index
func (p ProcessedPath) At(i int) Point {
	return p.pts[i]
}

// First returns the first point, zero Point if empty
func (p ProcessedPath) First() Point {
	if len(p.pts) == 0 {
		return Point{}
	}
	return p.pts[0]
}

// Last returns the last point, zero Point if empty
func (p ProcessedPath) Last() Point {
	if len(p.pts) == 0 {
		return Point{}
	}
	return p.pts[len(p.pts)-1]
}

// Points returns a copy of the underlying sequence
func (p ProcessedPath) Points() []Point {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)
	return cp
}

// All iterates index and point pairs without copying
func (p ProcessedPath) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range p.pts {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Length returns the polyline arc length
func (p ProcessedPath) Length() float64 {
	var total float64
	for i := 1; i < len(p.pts); i++ {
		total += p.pts[i-1].Distance(p.pts[i])
	}
	return total
}

// Heading returns the plane heading for travel from cur toward next
// The glyph is authored with "up" as forward, hence the -π/2 offset
func Heading(cur, next Point) float64 {
	return math.Atan2(cur.Y-next.Y, cur.X-next.X) - math.Pi/2
}

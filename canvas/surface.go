// Package canvas defines the rendering surface the session draws on and
// provides a gg-backed raster implementation plus a recording one.
package canvas

import "image/color"

// Surface is the immediate-mode drawing capability set used by glyphs and traces
// Fill and Stroke leave the current path intact; BeginPath discards it
type Surface interface {
	// Size returns the logical surface extent in surface units
	Size() (width, height float64)

	// ClearRect resets a rectangle to the surface background
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	Fill() error
	Stroke() error

	// Save pushes the current transform; Restore pops it
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
}

var (
	_ Surface = (*Raster)(nil)
	_ Surface = (*Recorder)(nil)
)

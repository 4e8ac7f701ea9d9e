package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// Raster is a Surface rendered by gg's software rasterizer
// The backing pixmap is Scale times the logical size for supersampled output
type Raster struct {
	dc            *gg.Context
	width, height int
	scale         int

	background gg.RGBA
	fill       gg.RGBA
	stroke     gg.RGBA
	lineWidth  float64

	// clearErr holds a failed partial clear until the next Fill or Stroke reports it
	clearErr error
}

// NewRaster creates a raster surface of width x height logical units
func NewRaster(width, height, scale int, background color.Color) *Raster {
	if scale < 1 {
		scale = 1
	}
	r := &Raster{
		width:      max(width, 1),
		height:     max(height, 1),
		scale:      scale,
		background: gg.FromColor(background),
		fill:       gg.RGB(0, 0, 0),
		stroke:     gg.RGB(0, 0, 0),
		lineWidth:  1,
	}
	r.dc = gg.NewContext(r.width*scale, r.height*scale)
	r.reset()
	return r
}

// reset restores the base device transform and clears the pixmap
func (r *Raster) reset() {
	r.dc.Identity()
	r.dc.Scale(float64(r.scale), float64(r.scale))
	r.dc.ClearPath()
	r.dc.ClearWithColor(r.background)
	r.clearErr = nil
}

// Resize reallocates the pixmap for a new logical size, no-op if unchanged
func (r *Raster) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == r.width && height == r.height {
		return
	}
	r.dc.Close()
	r.width, r.height = width, height
	r.dc = gg.NewContext(width*r.scale, height*r.scale)
	r.reset()
}

// Scale returns the device pixels per logical unit
func (r *Raster) Scale() int {
	return r.scale
}

// Image returns a snapshot of the rendered frame at device resolution
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Close releases the gg context
func (r *Raster) Close() error {
	return r.dc.Close()
}

func (r *Raster) Size() (float64, float64) {
	return float64(r.width), float64(r.height)
}

// ClearRect paints the background over the rectangle in the current user space
// A full-surface clear also drops accumulated transforms
func (r *Raster) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(r.width) && y+h >= float64(r.height) {
		r.reset()
		return
	}
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetFillBrush(gg.Solid(r.background))
	if err := r.dc.Fill(); err != nil && r.clearErr == nil {
		r.clearErr = errors.Wrap(err, "raster clear")
	}
}

// takeClearErr returns and forgets a pending ClearRect failure
func (r *Raster) takeClearErr() error {
	err := r.clearErr
	r.clearErr = nil
	return err
}

func (r *Raster) BeginPath() {
	r.dc.ClearPath()
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

func (r *Raster) ClosePath() {
	r.dc.ClosePath()
}

func (r *Raster) SetFillColor(c color.Color) {
	r.fill = gg.FromColor(c)
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.stroke = gg.FromColor(c)
}

func (r *Raster) SetLineWidth(w float64) {
	r.lineWidth = w
}

// Fill paints the current path interior, gg shares one brush so it is set per call
func (r *Raster) Fill() error {
	if err := r.takeClearErr(); err != nil {
		return err
	}
	r.dc.SetFillBrush(gg.Solid(r.fill))
	return errors.Wrap(r.dc.FillPreserve(), "raster fill")
}

// Stroke outlines the current path with the stroke colour and line width
// gg scales the width by the current transform, so it stays in logical units
func (r *Raster) Stroke() error {
	if err := r.takeClearErr(); err != nil {
		return err
	}
	r.dc.SetStrokeBrush(gg.Solid(r.stroke))
	r.dc.SetLineWidth(r.lineWidth)
	return errors.Wrap(r.dc.StrokePreserve(), "raster stroke")
}

func (r *Raster) Save() {
	r.dc.Push()
}

func (r *Raster) Restore() {
	r.dc.Pop()
}

func (r *Raster) Translate(x, y float64) {
	r.dc.Translate(x, y)
}

func (r *Raster) Rotate(rad float64) {
	r.dc.Rotate(rad)
}

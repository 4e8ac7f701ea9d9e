package flight

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/lixenwraith/contrail/canvas"
	"github.com/lixenwraith/contrail/parameter"
)

// Draw renders both wings at the plane position rotated by its heading
func (p *Plane) Draw(s canvas.Surface) error {
	s.Save()
	defer s.Restore()

	s.Translate(p.Position.X, p.Position.Y)
	s.Rotate(p.Heading)

	if err := p.drawWing(s, -1, p.Style.Left); err != nil {
		return errors.Wrapf(err, "plane %s left wing", p.ID)
	}
	if err := p.drawWing(s, 1, p.Style.Right); err != nil {
		return errors.Wrapf(err, "plane %s right wing", p.ID)
	}
	return nil
}

// drawWing traces one triangle in glyph space: nose, tail root, wing tip
func (p *Plane) drawWing(s canvas.Surface, direction float64, fill color.Color) error {
	size := p.Style.Size
	top := size * parameter.WingTopRatio
	bottom := size * parameter.WingBottomRatio
	side := size * parameter.WingSpanRatio * direction

	s.BeginPath()
	s.MoveTo(0, top)
	s.LineTo(0, bottom)
	s.LineTo(side, size*parameter.WingSpanRatio)
	s.ClosePath()
	s.SetFillColor(fill)
	if err := s.Fill(); err != nil {
		return err
	}
	s.SetStrokeColor(p.Style.Outline)
	return s.Stroke()
}

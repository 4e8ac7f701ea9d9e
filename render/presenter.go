// Package render blits raster frames to the terminal as half-block cells
// and draws the status bar.
package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/status"
)

// HalfBlock paints the top pixel as foreground and the bottom pixel as background
const HalfBlock = '▀'

// Presenter maps a raster frame onto the screen, two pixels per cell
type Presenter struct {
	screen tcell.Screen
	scaled *image.RGBA
	bar    tcell.Style
}

// NewPresenter creates a presenter for screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen: screen,
		bar: tcell.StyleDefault.
			Foreground(HexToTCell(parameter.StatusBarForeground, tcell.ColorWhite)).
			Background(HexToTCell(parameter.StatusBarBackground, tcell.ColorBlack)),
	}
}

// CanvasCells returns the drawable area in cells, excluding the status row
func (p *Presenter) CanvasCells() (cols, rows int) {
	w, h := p.screen.Size()
	return max(w, 0), max(h-parameter.BottomMargin, 0)
}

// SurfaceSize returns the drawable area in surface units
func (p *Presenter) SurfaceSize() (width, height int) {
	cols, rows := p.CanvasCells()
	return int(float64(cols) * parameter.CellWidth), int(float64(rows) * parameter.CellHeight)
}

// Present downsamples img onto the canvas cells, draws the status bar and shows the screen
func (p *Presenter) Present(img image.Image, snap status.Snapshot) {
	w, h := p.screen.Size()
	cols, rows := p.CanvasCells()

	if cols > 0 && rows > 0 && img != nil {
		p.blit(img, cols, rows)
	}
	if h > rows && w > 0 {
		left, right := StatusLine(snap)
		drawStatusBar(p.screen, rows, w, left, right, p.bar)
	}
	p.screen.Show()
}

func (p *Presenter) blit(img image.Image, cols, rows int) {
	target := image.Rect(0, 0, cols, rows*2)
	if p.scaled == nil || p.scaled.Bounds() != target {
		p.scaled = image.NewRGBA(target)
	}
	if img.Bounds().Size() == target.Size() {
		draw.Copy(p.scaled, image.Point{}, img, img.Bounds(), draw.Src, nil)
	} else {
		draw.BiLinear.Scale(p.scaled, target, img, img.Bounds(), draw.Src, nil)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(rgbaToTCell(p.scaled.RGBAAt(x, 2*y))).
				Background(rgbaToTCell(p.scaled.RGBAAt(x, 2*y+1)))
			p.screen.SetContent(x, y, HalfBlock, nil, style)
		}
	}
}

// rgbaToTCell skips the colorful round trip for opaque raster pixels
func rgbaToTCell(c color.RGBA) tcell.Color {
	if c.A == 0xff {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return ToTCell(c)
}

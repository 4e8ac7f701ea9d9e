package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ToTCell converts any color to a tcell RGB color
// Fully transparent colors map to tcell.ColorDefault
func ToTCell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HexToTCell parses "#rrggbb", falling back on malformed input
func HexToTCell(hex string, fallback tcell.Color) tcell.Color {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

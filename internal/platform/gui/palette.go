// Package gui is the window frontend: an ebiten game that drives the
// engine once per ebiten tick and draws frames through a vector canvas.
// The window's logical size is the play field, so cursor positions are
// already in logical units.
package gui

import (
	"image/color"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// palette maps core colors to RGBA for pixel devices.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 230, G: 230, B: 230, A: 255},
	core.ColorRed:           {R: 200, G: 40, B: 40, A: 255},
	core.ColorGreen:         {R: 46, G: 204, B: 113, A: 255},
	core.ColorYellow:        {R: 241, G: 196, B: 15, A: 255},
	core.ColorBlue:          {R: 52, G: 152, B: 219, A: 255},
	core.ColorMagenta:       {R: 155, G: 89, B: 182, A: 255},
	core.ColorCyan:          {R: 26, G: 188, B: 156, A: 255},
	core.ColorWhite:         {R: 236, G: 240, B: 241, A: 255},
	core.ColorBrightRed:     {R: 231, G: 76, B: 60, A: 255},
	core.ColorBrightGreen:   {R: 88, G: 214, B: 141, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 215, B: 0, A: 255},
	core.ColorBrightBlue:    {R: 93, G: 173, B: 226, A: 255},
	core.ColorBrightMagenta: {R: 255, G: 105, B: 180, A: 255},
	core.ColorBrightCyan:    {R: 0, G: 191, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 230, G: 126, B: 34, A: 255},
	core.ColorGray:          {R: 127, G: 140, B: 141, A: 255},
	core.ColorBrown:         {R: 139, G: 69, B: 19, A: 255},
	core.ColorDarkGreen:     {R: 20, G: 90, B: 50, A: 255},
	core.ColorPurple:        {R: 44, G: 24, B: 64, A: 255},
	core.ColorNavy:          {R: 10, G: 14, B: 40, A: 255},
}

// RGBA returns the pixel color of c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

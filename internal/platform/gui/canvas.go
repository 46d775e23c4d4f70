package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// canvas draws core.Canvas primitives on an ebiten image whose size is
// the logical play field. Fill runes only matter to character devices;
// glyphs and text use the ebiten debug font.
type canvas struct {
	dst *ebiten.Image
}

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst}
}

func (c *canvas) Background(col core.Color) {
	c.dst.Fill(RGBA(col))
}

func (c *canvas) FillRect(b core.Box, _ rune, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), RGBA(col), false)
}

func (c *canvas) Circle(center core.Vec, radius float64, _ rune, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), RGBA(col), true)
}

// Glyph draws a colored dot under the rune so particles keep their color.
func (c *canvas) Glyph(p core.Vec, r rune, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(p.X), float32(p.Y), 4, RGBA(col), true)
	ebitenutil.DebugPrintAt(c.dst, string(r), int(p.X)-glyphW/2, int(p.Y)-glyphH/2)
}

func (c *canvas) Text(p core.Vec, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, s, int(p.X), int(p.Y)-glyphH/2)
}

func (c *canvas) TextCentered(y float64, s string, _ core.Color) {
	x := textX(s)
	ebitenutil.DebugPrintAt(c.dst, s, x, int(y)-glyphH/2)
}

// textX returns the left edge that centers s in the play field.
func textX(s string) int {
	return (core.LogicalW - len([]rune(s))*glyphW) / 2
}

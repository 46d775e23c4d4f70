package core

import "math"

// Canvas is the drawing surface handed to variants and the frame composer.
// All coordinates are logical (LogicalW x LogicalH); implementations scale
// to their device. Fill runes are used by character devices and ignored by
// pixel devices.
type Canvas interface {
	// Background clears the surface to the scenery color.
	Background(c Color)
	FillRect(b Box, fill rune, c Color)
	Circle(center Vec, radius float64, fill rune, c Color)
	Glyph(p Vec, r rune, c Color)
	// Text draws s starting at p (left edge, vertical center).
	Text(p Vec, s string, c Color)
	// TextCentered draws s horizontally centered on the row containing y.
	TextCentered(y float64, s string, c Color)
}

// Raster is a Canvas backed by a character Screen.
type Raster struct {
	screen *Screen
}

// NewRaster wraps screen as a Canvas.
func NewRaster(screen *Screen) *Raster {
	return &Raster{screen: screen}
}

// Screen returns the underlying buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

func (r *Raster) cell(p Vec) (int, int) {
	x := int(math.Floor(p.X * float64(r.screen.Width()) / LogicalW))
	y := int(math.Floor(p.Y * float64(r.screen.Height()) / LogicalH))
	return x, y
}

// Background clears the buffer. Terminal cells carry no background color,
// so the color is only recorded on the blank cells.
func (r *Raster) Background(c Color) {
	r.screen.Fill(' ', c)
}

// FillRect fills every cell whose center lies inside b. Boxes smaller than a
// cell still paint the cell containing their center.
func (r *Raster) FillRect(b Box, fill rune, c Color) {
	x0, y0 := r.cell(Vec{X: b.X, Y: b.Y})
	x1, y1 := r.cell(Vec{X: b.X + b.W, Y: b.Y + b.H})
	if x1 <= x0 || y1 <= y0 {
		cx, cy := r.cell(b.Center())
		r.screen.SetCell(cx, cy, fill, c)
		return
	}
	r.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), fill, c)
}

// Circle fills the cells whose centers fall within radius of center.
func (r *Raster) Circle(center Vec, radius float64, fill rune, c Color) {
	cw := LogicalW / float64(r.screen.Width())
	ch := LogicalH / float64(r.screen.Height())
	x0, y0 := r.cell(Vec{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := r.cell(Vec{X: center.X + radius, Y: center.Y + radius})
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := Vec{X: (float64(x) + 0.5) * cw, Y: (float64(y) + 0.5) * ch}
			if Dist(mid, center) <= radius {
				r.screen.SetCell(x, y, fill, c)
				painted = true
			}
		}
	}
	if !painted {
		r.Glyph(center, fill, c)
	}
}

// Glyph places a single rune at p.
func (r *Raster) Glyph(p Vec, g rune, c Color) {
	x, y := r.cell(p)
	r.screen.SetCell(x, y, g, c)
}

// Text draws s starting at the cell containing p.
func (r *Raster) Text(p Vec, s string, c Color) {
	x, y := r.cell(p)
	r.screen.DrawText(x, y, s, c)
}

// TextCentered draws s centered on the row containing y.
func (r *Raster) TextCentered(y float64, s string, c Color) {
	_, row := r.cell(Vec{Y: y})
	r.screen.DrawTextCentered(row, s, c)
}

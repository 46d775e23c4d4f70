package core

import (
	"strings"
	"testing"
)

// cellAt fails the test unless (x, y) holds r in color c.
func cellAt(t *testing.T, s *Screen, x, y int, r rune, c Color) {
	t.Helper()
	got := s.GetCell(x, y)
	if got.Rune != r || got.Color != c {
		t.Errorf("GetCell(%d, %d) = {%q %d}, expected {%q %d}", x, y, got.Rune, got.Color, r, c)
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank default", x, y, c)
			}
		}
	}
}

func TestScreenSetUsesDefaultColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(5, 5, 'X', ColorRed)

	s.Set(5, 5, 'Y')
	cellAt(t, s, 5, 5, 'Y', ColorDefault)

	// Out of bounds writes are dropped.
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], 'A', ColorRed)
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], s.Get(p[0], p[1]))
		}
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '*', ColorGold)

	cellAt(t, s, 1, 2, '*', ColorGold)
	if c := s.GetCell(9, 9); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", c)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(6, 3)
	s.Fill('#', ColorNavy)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			cellAt(t, s, x, y, ' ', ColorDefault)
		}
	}
}

func TestScreenPrimitivesColor(t *testing.T) {
	tests := []struct {
		name  string
		draw  func(s *Screen)
		cells [][2]int
		r     rune
		c     Color
	}{
		{
			name:  "fill",
			draw:  func(s *Screen) { s.Fill('.', ColorDarkGreen) },
			cells: [][2]int{{0, 0}, {9, 9}, {4, 7}},
			r:     '.',
			c:     ColorDarkGreen,
		},
		{
			name:  "rect",
			draw:  func(s *Screen) { s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBrown) },
			cells: [][2]int{{2, 2}, {4, 4}, {3, 2}},
			r:     '#',
			c:     ColorBrown,
		},
		{
			name:  "hline",
			draw:  func(s *Screen) { s.DrawHLine(2, 2, 5, '-', ColorWater) },
			cells: [][2]int{{2, 2}, {6, 2}},
			r:     '-',
			c:     ColorWater,
		},
		{
			name:  "vline",
			draw:  func(s *Screen) { s.DrawVLine(3, 2, 4, '|', ColorPurple) },
			cells: [][2]int{{3, 2}, {3, 5}},
			r:     '|',
			c:     ColorPurple,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			tc.draw(s)
			for _, p := range tc.cells {
				cellAt(t, s, p[0], p[1], tc.r, tc.c)
			}
		})
	}
}

func TestScreenDrawRectLeavesOutside(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBrown)

	cellAt(t, s, 1, 1, ' ', ColorDefault)
	cellAt(t, s, 5, 5, ' ', ColorDefault)
	cellAt(t, s, 5, 2, ' ', ColorDefault)
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Sahur", ColorAmber)

	for i, ch := range "Sahur" {
		cellAt(t, s, 2+i, 1, ch, ColorAmber)
	}

	s.DrawText(18, 0, "Iftar", ColorMint)
	cellAt(t, s, 18, 0, 'I', ColorMint)
	cellAt(t, s, 19, 0, 'f', ColorMint)
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♥★x", ColorBrightMagenta)

	cellAt(t, s, 0, 0, '♥', ColorBrightMagenta)
	cellAt(t, s, 1, 0, '★', ColorBrightMagenta)
	cellAt(t, s, 2, 0, 'x', ColorBrightMagenta)
	cellAt(t, s, 3, 0, ' ', ColorDefault)
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		text  string
		width int
		x     int
	}{
		{"Hi", 20, 9},
		{"GET READY", 21, 6},
		{"♥♥♥", 9, 3},
	}
	for _, tc := range tests {
		s := NewScreen(tc.width, 3)
		s.DrawTextCentered(1, tc.text, ColorGold)
		first := []rune(tc.text)[0]
		cellAt(t, s, tc.x, 1, first, ColorGold)
		if tc.x > 0 {
			cellAt(t, s, tc.x-1, 1, ' ', ColorDefault)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		cellAt(t, s, c.x, c.y, c.r, ColorCyan)
	}
	for x := 2; x < 5; x++ {
		cellAt(t, s, x, 1, '─', ColorCyan)
		cellAt(t, s, x, 4, '─', ColorCyan)
	}
	for y := 2; y < 4; y++ {
		cellAt(t, s, 1, y, '│', ColorCyan)
		cellAt(t, s, 5, y, '│', ColorCyan)
	}
	// Interior stays empty.
	cellAt(t, s, 3, 2, ' ', ColorDefault)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorRed)
	s.DrawText(0, 1, "BBBBB", ColorGreen)
	s.DrawText(0, 2, "CCCCC", ColorBlue)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("Resize(8, 4) gave %dx%d", s.Width(), s.Height())
	}
	for x := 0; x < 8; x++ {
		cellAt(t, s, x, 0, ' ', ColorDefault)
	}

	// Same size keeps content.
	s.SetCell(1, 1, 'k', ColorGreen)
	s.Resize(8, 4)
	cellAt(t, s, 1, 1, 'k', ColorGreen)
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorGold)
	s.SetCell(9, 2, '♥', ColorRed)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) = %q, expected prefix \"Test\"", row)
	}
	if n := len([]rune(row)); n != 10 {
		t.Errorf("Row(2) has %d runes, expected 10", n)
	}
	if !strings.HasSuffix(row, "♥") {
		t.Errorf("Row(2) = %q, expected the heart in the last column", row)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}

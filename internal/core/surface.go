package core

import (
	"math"
	"unicode/utf8"
)

// Surface is the drawing target a game renders into once per frame.
// All coordinates are world units with the origin at the top-left.
type Surface interface {
	// Clear fills the whole surface with a colour.
	Clear(c Color)

	// Rect draws a filled axis-aligned rectangle.
	Rect(x, y, w, h float64, c Color)

	// Text draws a string with its top-left corner at (x, y).
	Text(s string, x, y, size float64, c Color)

	// MeasureText returns the extent a string would occupy at the given size.
	MeasureText(s string, size float64) (w, h float64)

	// Line draws a straight line segment.
	Line(x1, y1, x2, y2, thickness float64, c Color)
}

// Runes used by CellSurface.
const (
	FillChar  = '█'
	VLineChar = '│'
	HLineChar = '─'
	DotChar   = '·'
)

// CellSurface draws a fixed-size world onto a terminal Screen, scaling every
// coordinate to the current screen dimensions. Text is not scaled: each rune
// takes one cell regardless of the requested size.
type CellSurface struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCellSurface creates a surface mapping a worldW x worldH area onto screen.
func NewCellSurface(screen *Screen, worldW, worldH float64) *CellSurface {
	return &CellSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying buffer.
func (s *CellSurface) Screen() *Screen {
	return s.screen
}

// cellSize returns the world size of one cell.
func (s *CellSurface) cellSize() (float64, float64) {
	w, h := s.screen.Width(), s.screen.Height()
	if w == 0 || h == 0 {
		return s.worldW, s.worldH
	}
	return s.worldW / float64(w), s.worldH / float64(h)
}

// Clear implements Surface.
func (s *CellSurface) Clear(Color) {
	s.screen.Clear()
}

// Rect implements Surface.
func (s *CellSurface) Rect(x, y, w, h float64, c Color) {
	cw, ch := s.cellSize()
	x0, x1 := Scale(x, w, cw)
	y0, y1 := Scale(y, h, ch)

	fill := rune(FillChar)
	if c == ColorBlack {
		fill = ' '
	}
	s.screen.DrawRect(x0, y0, x1, y1, fill, c)
}

// Text implements Surface.
func (s *CellSurface) Text(text string, x, y, _ float64, c Color) {
	cw, ch := s.cellSize()
	s.screen.DrawText(int(math.Floor(x/cw)), int(math.Floor(y/ch)), text, c)
}

// MeasureText implements Surface.
func (s *CellSurface) MeasureText(text string, _ float64) (float64, float64) {
	cw, ch := s.cellSize()
	return float64(utf8.RuneCountInString(text)) * cw, ch
}

// Line implements Surface. Lines only cover blank cells, so text and
// shapes drawn earlier stay readable.
func (s *CellSurface) Line(x1, y1, x2, y2, _ float64, c Color) {
	cw, ch := s.cellSize()
	cx1, cy1 := int(math.Floor(x1/cw)), int(math.Floor(y1/ch))
	cx2, cy2 := int(math.Floor(x2/cw)), int(math.Floor(y2/ch))

	switch {
	case cx1 == cx2:
		top, bottom := min(cy1, cy2), max(cy1, cy2)
		s.screen.DrawVLine(cx1, top, bottom-top+1, VLineChar, c)
	case cy1 == cy2:
		left, right := min(cx1, cx2), max(cx1, cx2)
		s.screen.DrawHLine(left, cy1, right-left+1, HLineChar, c)
	default:
		s.bresenham(cx1, cy1, cx2, cy2, c)
	}
}

// bresenham plots a diagonal line cell by cell.
func (s *CellSurface) bresenham(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.screen.setBlank(x0, y0, DotChar, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

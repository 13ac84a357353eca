package core

import (
	"strings"
	"testing"
)

// newTestSurface maps a 640x480 world onto an 80x24 screen (8x20 units per cell).
func newTestSurface() *CellSurface {
	return NewCellSurface(NewScreen(80, 24), 640, 480)
}

func TestCellSurfaceRect(t *testing.T) {
	s := newTestSurface()
	s.Rect(0, 200, 16, 64, ColorWhite)

	scr := s.Screen()
	// x: [0, 2), y: [10, ceil(264/20)=14)
	for y := 10; y < 14; y++ {
		for x := 0; x < 2; x++ {
			if scr.Get(x, y) != FillChar {
				t.Errorf("expected fill at (%d, %d), got %q", x, y, scr.Get(x, y))
			}
		}
	}
	if scr.Get(2, 10) != ' ' || scr.Get(0, 9) != ' ' || scr.Get(0, 14) != ' ' {
		t.Error("rect should not spill outside its scaled bounds")
	}
}

func TestCellSurfaceRectAtLeastOneCell(t *testing.T) {
	s := newTestSurface()
	s.Rect(312, 232, 16, 16, ColorWhite) // 16 units tall, cells are 20 tall

	found := false
	for y := 0; y < 24; y++ {
		if s.Screen().Get(39, y) == FillChar {
			found = true
		}
	}
	if !found {
		t.Error("a rect smaller than a cell should still occupy a cell")
	}
}

func TestCellSurfaceTextAndMeasure(t *testing.T) {
	s := newTestSurface()

	w, h := s.MeasureText("Hello", 44)
	if w != 40 || h != 20 {
		t.Errorf("MeasureText = (%v, %v), expected (40, 20)", w, h)
	}

	s.Text("Hello", 80, 40, 44, ColorWhite)
	if !strings.HasPrefix(rowText(s.Screen(), 2)[10:], "Hello") {
		t.Errorf("text should start at cell (10, 2), row = %q", rowText(s.Screen(), 2))
	}
}

func TestCellSurfaceVerticalLine(t *testing.T) {
	s := newTestSurface()
	s.Line(320, 0, 320, 480, 2, ColorWhite)

	for y := 0; y < 24; y++ {
		if s.Screen().Get(40, y) != VLineChar {
			t.Errorf("expected line at (40, %d), got %q", y, s.Screen().Get(40, y))
		}
	}
}

func TestCellSurfaceLineKeepsText(t *testing.T) {
	s := newTestSurface()
	s.Text("net", 312, 200, 15, ColorWhite) // cells 39..41 on row 10
	s.Line(320, 0, 320, 480, 2, ColorWhite)

	if got := s.Screen().Get(40, 10); got != 'e' {
		t.Errorf("line should not cover text, got %q", got)
	}
	if got := s.Screen().Get(40, 11); got != VLineChar {
		t.Errorf("expected line below the text, got %q", got)
	}
}

func TestCellSurfaceDiagonalLine(t *testing.T) {
	s := newTestSurface()
	s.Line(0, 0, 80, 200, 1, ColorWhite) // cells (0,0) to (10,10)

	if s.Screen().Get(0, 0) != DotChar || s.Screen().Get(10, 10) != DotChar {
		t.Error("diagonal line should include both end cells")
	}
	if s.Screen().Get(5, 5) != DotChar {
		t.Error("diagonal line should pass through the midpoint")
	}
}

func TestCellSurfaceClear(t *testing.T) {
	s := newTestSurface()
	s.Rect(0, 0, 640, 480, ColorWhite)
	s.Clear(ColorBlack)

	if strings.TrimSpace(screenText(s.Screen())) != "" {
		t.Error("Clear should blank the whole screen")
	}
}

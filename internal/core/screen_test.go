package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if strings.TrimSpace(s.Row(y)) != "" {
			t.Fatalf("row %d should be blank, got %q", y, s.Row(y))
		}
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(5, 5, 'o', ColorAccent)

	if got := s.GetCell(5, 5); got.Rune != 'o' || got.Color != ColorAccent {
		t.Errorf("GetCell(5, 5) = %+v, expected accent 'o'", got)
	}

	for _, p := range []Point{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetColored(p.X, p.Y, 'A', ColorDefault)
		if got := s.GetCell(p.X, p.Y); got.Rune != ' ' || !got.Color.IsDefault() {
			t.Errorf("out of bounds cell %+v = %+v, expected blank", p, got)
		}
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(1, 1, 'x', ColorWarning)
	s.Fill('#')

	if got := s.GetCell(1, 1); got.Rune != '#' || !got.Color.IsDefault() {
		t.Errorf("Fill should reset cells, got %+v", got)
	}
	if s.String() != "#####\n#####\n#####" {
		t.Errorf("String() after Fill = %q", s.String())
	}

	s.Clear()
	if s.Get(1, 1) != ' ' {
		t.Errorf("Clear should blank cells, got %q", s.Get(1, 1))
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(7, 0, "Score", ColorWhite)

	if s.Row(0) != "       Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if got := s.GetCell(7, 0); got.Color != ColorWhite {
		t.Errorf("text color = %q, expected primary", got.Color)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	expected := "      \n ###  \n ###  \n      "
	if s.String() != expected {
		t.Errorf("DrawRect result = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(1, 0, 5, 3), ColorGray)

	rows := []string{
		" ┌───┐ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	for y, want := range rows {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if got := s.GetCell(1, 0); got.Color != ColorGray {
		t.Errorf("box color = %q, expected gray", got.Color)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(0, 1, 10, '─', ColorGray)

	if s.Row(1) != strings.Repeat("─", 10) {
		t.Errorf("Row(1) = %q, expected full rule", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorWarning)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size after shrink = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("shrink should keep top-left content, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if got := s.GetCell(0, 0); got.Rune != 'H' || got.Color != ColorWarning {
		t.Errorf("grow should keep colored content, got %+v", got)
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("row cut by the shrink should come back blank, got %q", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, expected spaces", got)
	}
}

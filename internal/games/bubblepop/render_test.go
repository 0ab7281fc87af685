package bubblepop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bubblepop/internal/core"
)

func testLayout() Layout {
	return NewLayout(80, 23, CellSize{W: 8, H: 16})
}

func TestLayoutGeometry(t *testing.T) {
	l := testLayout()

	if l.Area != core.NewRect(0, 2, 80, 21) {
		t.Errorf("Area = %+v, expected rows 2..22", l.Area)
	}
	w, h, ok := l.Viewport().Size()
	if !ok || w != 640 || h != 336 {
		t.Errorf("Viewport = %.0fx%.0f ok=%v, expected 640x336", w, h, ok)
	}
	if l.Button.Right() != 80 || l.Button.Y != 0 {
		t.Errorf("Button = %+v, expected right-aligned on the HUD row", l.Button)
	}

	btn := l.PlayButton()
	if !l.Overlay().Contains(btn.X, btn.Y) {
		t.Error("Play button should sit inside the overlay")
	}
}

func TestLayoutTinyScreen(t *testing.T) {
	l := NewLayout(10, 2, CellSize{})
	if !l.Area.Empty() {
		t.Errorf("2-row screen should have no play area, got %+v", l.Area)
	}
	if _, _, ok := l.Viewport().Size(); ok {
		t.Error("empty area should not report a viewport size")
	}

	// Rendering must not panic
	s := core.NewScreen(10, 2)
	Render(s, l, Idle(DefaultRules()), DefaultRules())
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestRenderIdleOverlay(t *testing.T) {
	l := testLayout()
	s := core.NewScreen(80, 23)
	Render(s, l, Idle(DefaultRules()), DefaultRules())

	for _, want := range []string{"Score: 0", "Time: 60s", "Start", "BubblePop", "in 60 seconds", "Play"} {
		if !screenContains(s, want) {
			t.Errorf("idle screen should contain %q", want)
		}
	}
	if screenContains(s, "Time's up") {
		t.Error("fresh session should not show a final score")
	}

	btn := l.PlayButton()
	row := []rune(s.Row(btn.Y))
	if got := string(row[btn.X : btn.X+btn.W]); got != "[  Play  ]" {
		t.Errorf("Play button text = %q", got)
	}
}

func TestRenderPlayingAndEnded(t *testing.T) {
	l := testLayout()
	r := DefaultRules()
	s := core.NewScreen(80, 23)

	playing := Start(r)
	playing.Score = 3
	Render(s, l, playing, r)
	if !screenContains(s, "Playing") || screenContains(s, "BubblePop") {
		t.Error("playing screen should show the Playing button and no overlay")
	}

	ended := playing
	ended.Playing = false
	ended.TimeLeft = 0
	Render(s, l, ended, r)
	if !screenContains(s, "Time's up! Final score: 3") {
		t.Error("ended screen should show the final score")
	}
}

func TestRenderBubbleMatchesHitCells(t *testing.T) {
	l := testLayout()
	r := DefaultRules()
	s := core.NewScreen(80, 23)

	b := bubbleAt("x", 100, 70, 60, 40, 0)
	st := playingWith(b)
	Render(s, l, st, r)

	drawn := 0
	for y := l.Area.Y; y < l.Area.Bottom(); y++ {
		for x := 0; x < l.Area.W; x++ {
			cell := s.GetCell(x, y)
			isBubble := cell.Rune == BubbleFill || cell.Rune == BubbleRim
			hit, ok := l.BubbleAt(st, core.Point{X: x, Y: y})
			if isBubble {
				drawn++
				if !ok || hit.ID != "x" {
					t.Errorf("drawn cell (%d,%d) is not clickable", x, y)
				}
			} else if ok {
				t.Errorf("blank cell (%d,%d) hit bubble %s", x, y, hit.ID)
			}
		}
	}
	if drawn == 0 {
		t.Fatal("bubble should be drawn")
	}
}

func TestRenderSmallBubbleVisible(t *testing.T) {
	l := testLayout()
	s := core.NewScreen(80, 23)

	// 30 px bubble straddling cell borders
	st := playingWith(bubbleAt("s", 13, 25, 30, 40, 0))
	Render(s, l, st, DefaultRules())

	found := false
	for y := l.Area.Y; y < l.Area.Bottom() && !found; y++ {
		for x := 0; x < l.Area.W; x++ {
			if r := s.Get(x, y); r == BubbleFill || r == BubbleRim {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("small bubble should occupy at least one cell")
	}
}

func TestRenderClipsToArea(t *testing.T) {
	l := testLayout()
	s := core.NewScreen(80, 23)

	// Rising through the top edge: must not draw over the HUD
	st := playingWith(bubbleAt("top", 0, -30, 80, 40, 0))
	Render(s, l, st, DefaultRules())

	if s.Get(0, 1) != HUDRule {
		t.Errorf("HUD rule overwritten with %q", s.Get(0, 1))
	}
	if _, ok := l.BubbleAt(st, core.Point{X: 2, Y: 1}); ok {
		t.Error("HUD cells should never hit a bubble")
	}
}

func TestBubbleColors(t *testing.T) {
	l := testLayout()
	s := core.NewScreen(80, 23)
	b := bubbleAt("c", 160, 64, 80, 40, 0)
	b.Color = "#f72585"
	Render(s, l, playingWith(b), DefaultRules())

	cx, cy := b.Center()
	cell := s.GetCell(int(cx)/8, l.Area.Y+int(cy)/16)
	if cell.Rune != BubbleFill || cell.Color != "#f72585" {
		t.Errorf("center cell = %+v, expected fill in bubble color", cell)
	}
}

func TestShade(t *testing.T) {
	if got := Shade("#ffffff", 0); got != "#ffffff" {
		t.Errorf("Shade(white, 0) = %s", got)
	}
	if got := Shade("#4cc9f0", 0.35); got == "#4cc9f0" || len(got) != 7 {
		t.Errorf("Shade should darken, got %s", got)
	}
	if got := Shade("nope", 0.5); got != "nope" {
		t.Errorf("invalid colors pass through, got %s", got)
	}
}

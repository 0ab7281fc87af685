package bubblepop

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-bubblepop/internal/core"
)

// Visual characters for rendering
const (
	BubbleFill = '█'
	BubbleRim  = '▓'
	HUDRule    = '─'
)

const (
	buttonWidth   = 13
	overlayWidth  = 52
	overlayHeight = 8
	playLabel     = "[  Play  ]"
	rimDarken     = 0.35
)

// CellSize is how many px one terminal cell stands for.
type CellSize struct {
	W, H int
}

// Layout places the HUD, the start button and the play area on a screen.
type Layout struct {
	Screen core.Rect
	HUD    core.Rect
	Button core.Rect
	Area   core.Rect
	Cell   CellSize
}

// NewLayout splits a w x h screen: one HUD row, one rule, the rest is play area.
func NewLayout(w, h int, cell CellSize) Layout {
	if cell.W <= 0 || cell.H <= 0 {
		cell = CellSize{W: 8, H: 16}
	}
	l := Layout{
		Screen: core.NewRect(0, 0, w, h),
		HUD:    core.NewRect(0, 0, w, 1),
		Cell:   cell,
	}
	bw := core.Min(buttonWidth, w)
	l.Button = core.NewRect(w-bw, 0, bw, 1)
	l.Area = core.NewRect(0, 2, w, core.Max(0, h-2))
	return l
}

// Viewport reports the play area in px.
func (l Layout) Viewport() Viewport {
	return FixedViewport{
		W: float64(l.Area.W * l.Cell.W),
		H: float64(l.Area.H * l.Cell.H),
	}
}

// Overlay returns the start overlay box, centered in the play area.
func (l Layout) Overlay() core.Rect {
	w := core.Min(overlayWidth, l.Area.W)
	h := core.Min(overlayHeight, l.Area.H)
	return core.NewRect(
		l.Area.X+(l.Area.W-w)/2,
		l.Area.Y+(l.Area.H-h)/2,
		w, h,
	)
}

// PlayButton returns the overlay's Play button.
func (l Layout) PlayButton() core.Rect {
	box := l.Overlay()
	w := len(playLabel)
	return core.NewRect(box.X+(box.W-w)/2, box.Y+box.H-2, w, 1)
}

// cellCenter returns the px center of an area-relative cell.
func (l Layout) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(l.Cell.W), (float64(row) + 0.5) * float64(l.Cell.H)
}

// covers reports whether the bubble occupies an area-relative cell. A cell
// is covered when its center lies inside the bubble, and the cell under
// the bubble's center is always covered so small bubbles stay visible.
func (l Layout) covers(b Bubble, col, row int) bool {
	cx, cy := l.cellCenter(col, row)
	if b.Contains(cx, cy) {
		return true
	}
	bx, by := b.Center()
	return col == int(math.Floor(bx/float64(l.Cell.W))) && row == int(math.Floor(by/float64(l.Cell.H)))
}

// cellSpan returns the area-relative cells a bubble's bounding box touches.
func (l Layout) cellSpan(b Bubble) (c0, r0, c1, r1 int) {
	cw, ch := float64(l.Cell.W), float64(l.Cell.H)
	c0 = int(math.Floor(float64(b.X) / cw))
	c1 = int(math.Floor(float64(b.X+b.Size) / cw))
	r0 = int(math.Floor(b.Y / ch))
	r1 = int(math.Floor((b.Y + float64(b.Size)) / ch))
	return c0, r0, c1, r1
}

// BubbleAt returns the topmost live bubble drawn on a screen cell.
func (l Layout) BubbleAt(s State, p core.Point) (Bubble, bool) {
	if !l.Area.ContainsPoint(p) {
		return Bubble{}, false
	}
	local := l.Area.Local(p)
	for i := len(s.Bubbles) - 1; i >= 0; i-- {
		b := s.Bubbles[i]
		c0, r0, c1, r1 := l.cellSpan(b)
		if local.X < c0 || local.X > c1 || local.Y < r0 || local.Y > r1 {
			continue
		}
		if l.covers(b, local.X, local.Y) {
			return b, true
		}
	}
	return Bubble{}, false
}

// Render draws the HUD, bubbles and, when idle, the start overlay.
func Render(dst *core.Screen, l Layout, s State, r Rules) {
	dst.Clear()
	renderHUD(dst, l, s)

	for _, b := range s.Bubbles {
		renderBubble(dst, l, b)
	}

	if !s.Playing {
		renderOverlay(dst, l, s, r)
	}
}

func renderHUD(dst *core.Screen, l Layout, s State) {
	score := fmt.Sprintf(" Score: %d", s.Score)
	dst.DrawTextColored(0, l.HUD.Y, score, core.ColorWhite)

	timeColor := core.ColorWhite
	if s.Playing && s.TimeLeft <= 10 {
		timeColor = core.ColorWarning
	}
	dst.DrawTextColored(len(score)+3, l.HUD.Y, fmt.Sprintf("Time: %ds", s.TimeLeft), timeColor)

	label, color := "[  Start  ]", core.ColorAccent
	if s.Playing {
		label, color = "[ Playing… ]", core.ColorGray
	}
	dst.DrawTextColored(l.Button.X, l.Button.Y, label, color)

	dst.DrawHLine(0, l.HUD.Y+1, l.Screen.W, HUDRule, core.ColorGray)
}

func renderBubble(dst *core.Screen, l Layout, b Bubble) {
	fill := core.Color(b.Color)
	rim := Shade(b.Color, rimDarken)

	c0, r0, c1, r1 := l.cellSpan(b)
	for row := r0; row <= r1; row++ {
		if row < 0 || row >= l.Area.H {
			continue
		}
		for col := c0; col <= c1; col++ {
			if col < 0 || col >= l.Area.W || !l.covers(b, col, row) {
				continue
			}
			ch, c := BubbleFill, fill
			if !l.covers(b, col-1, row) || !l.covers(b, col+1, row) ||
				!l.covers(b, col, row-1) || !l.covers(b, col, row+1) {
				ch, c = BubbleRim, rim
			}
			dst.SetColored(l.Area.X+col, l.Area.Y+row, ch, c)
		}
	}
}

func renderOverlay(dst *core.Screen, l Layout, s State, r Rules) {
	box := l.Overlay()
	if box.Empty() {
		return
	}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorAccent)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}

	center(box.Y+1, "BubblePop", core.ColorAccent)
	center(box.Y+2, fmt.Sprintf("Pop as many bubbles as you can in %d seconds.", r.Duration), core.ColorWhite)
	if s.Ended() {
		center(box.Y+4, fmt.Sprintf("Time's up! Final score: %d", s.Score), core.ColorSuccess)
	}

	btn := l.PlayButton()
	dst.DrawTextColored(btn.X, btn.Y, playLabel, core.ColorSuccess)
}

// Shade darkens a hex color toward black by amount in [0, 1].
// Unparseable colors are returned unchanged.
func Shade(hex string, amount float64) core.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color(hex)
	}
	return core.Color(c.BlendLab(colorful.Color{}, amount).Clamped().Hex())
}

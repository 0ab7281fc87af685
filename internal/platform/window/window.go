// Package window runs BubblePop in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-bubblepop/internal/core"
	"github.com/vovakirdan/tui-bubblepop/internal/platform/pixel"
)

var (
	backgroundColor = color.RGBA{0x10, 0x14, 0x24, 0xff}
	hudColor        = color.RGBA{0x1b, 0x22, 0x3b, 0xff}
	buttonColor     = color.RGBA{0x4c, 0xc9, 0xf0, 0xff}
	disabledColor   = color.RGBA{0x8d, 0x99, 0xae, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

// Host adapts a pixel scene to ebiten's game loop.
type Host struct {
	scene    *pixel.Scene
	touchIDs []ebiten.TouchID
}

// NewHost wraps a scene.
func NewHost(scene *pixel.Scene) *Host {
	return &Host{scene: scene}
}

// Update runs one fixed-rate tick: input first, then the round clock.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	playing := h.scene.Game().State().Playing
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		h.scene.Start()
	case !playing && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)):
		h.scene.Start()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.scene.Press(ebiten.CursorPosition())
	}
	h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		h.scene.Press(ebiten.TouchPosition(id))
	}

	h.scene.Step(1 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the HUD, the bubbles and, when idle, the start overlay.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	area := h.scene.Area()
	for _, b := range h.scene.Game().State().Bubbles {
		cx, cy := b.Center()
		r := float32(b.Size) / 2
		fill, rim := h.scene.BubbleColors(b.Color)
		x, y := float32(cx)+float32(area.X), float32(cy)+float32(area.Y)
		vector.DrawFilledCircle(screen, x, y, r, fill, true)
		vector.StrokeCircle(screen, x, y, r, 2, rim, true)
	}

	h.drawHUD(screen)
	if lines := h.scene.OverlayLines(); lines != nil {
		h.drawOverlay(screen, lines)
	}
}

func (h *Host) drawHUD(screen *ebiten.Image) {
	w, _ := h.scene.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), pixel.HUDHeight, hudColor, false)

	score, timeLeft := h.scene.HUD()
	textY := (pixel.HUDHeight - glyphH) / 2
	ebitenutil.DebugPrintAt(screen, score, 10, textY)
	ebitenutil.DebugPrintAt(screen, timeLeft, 10+(len(score)+4)*glyphW, textY)

	c := buttonColor
	if h.scene.Game().State().Playing {
		c = disabledColor
	}
	drawButton(screen, h.scene.StartButton(), h.scene.StartLabel(), c)
}

func (h *Host) drawOverlay(screen *ebiten.Image, lines []string) {
	area := h.scene.Area()
	vector.DrawFilledRect(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), overlayColor, false)

	y := area.Y + area.H/2 - len(lines)*glyphH
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, area.X+(area.W-len(line)*glyphW)/2, y)
		y += glyphH + 4
	}
	drawButton(screen, h.scene.PlayButton(), "Play", buttonColor)
}

func drawButton(screen *ebiten.Image, r core.Rect, label string, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c, true)
	ebitenutil.DebugPrintAt(screen, label, r.X+(r.W-len(label)*glyphW)/2, r.Y+(r.H-glyphH)/2)
}

// Layout keeps the logical screen at the scene's size; ebiten scales it.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.scene.Size()
}

// Run opens a window and blocks until it is closed.
func Run(scene *pixel.Scene, title string, tps int) error {
	w, h := scene.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	err := ebiten.RunGame(NewHost(scene))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

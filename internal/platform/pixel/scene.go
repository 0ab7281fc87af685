// Package pixel drives a BubblePop game for hosts that draw in pixels and
// update at a fixed rate. It owns the window layout, routes presses to the
// HUD buttons or bubbles, and stores the score when a round ends.
package pixel

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/core"
	"github.com/vovakirdan/tui-bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

// HUDHeight is the height of the score bar above the play area.
const HUDHeight = 32

const (
	startButtonW = 104
	startButtonH = 22
	playButtonW  = 120
	playButtonH  = 36
	rimDarken    = 0.35
)

// Options configures a scene.
type Options struct {
	Config config.BubblePopConfig // preset already applied
	Preset config.DifficultyPreset
	Seed   int64
	Store  *storage.Store // nil disables score saving
	Logger *log.Logger

	// Clock overrides the monotonic game clock.
	Clock bubblepop.Clock
}

// Scene is a game laid out in a window of fixed pixel size.
type Scene struct {
	loop   *bubblepop.Loop
	width  int
	height int
	store  *storage.Store
	logger *log.Logger
	mode   string
	colors map[string]color.Color
}

// NewScene creates an idle game sized to the configured window.
func NewScene(opts Options) *Scene {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	game := bubblepop.New(bubblepop.RulesFromConfig(opts.Config.Rules), bubblepop.SpawnEnv{
		Random: bubblepop.NewRandom(opts.Seed),
		Clock:  opts.Clock,
	})

	s := &Scene{
		loop:   bubblepop.NewLoop(game),
		store:  opts.Store,
		logger: logger,
		mode:   string(preset),
		colors: make(map[string]color.Color),
	}
	s.Resize(opts.Config.Window.Width, opts.Config.Window.Height)
	return s
}

// Game returns the driven game.
func (s *Scene) Game() *bubblepop.Game {
	return s.loop.Game()
}

// Size returns the window size in px.
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the window size; the play area fills everything below the HUD.
func (s *Scene) Resize(w, h int) {
	s.width, s.height = core.Max(w, 1), core.Max(h, HUDHeight+1)
	area := s.Area()
	s.Game().SetViewport(bubblepop.FixedViewport{W: float64(area.W), H: float64(area.H)})
}

// Area returns the play area in window px.
func (s *Scene) Area() core.Rect {
	return core.NewRect(0, HUDHeight, s.width, s.height-HUDHeight)
}

// StartButton returns the HUD button, right-aligned in the score bar.
func (s *Scene) StartButton() core.Rect {
	return core.NewRect(s.width-startButtonW-8, (HUDHeight-startButtonH)/2, startButtonW, startButtonH)
}

// PlayButton returns the overlay button shown while idle.
func (s *Scene) PlayButton() core.Rect {
	area := s.Area()
	return core.NewRect(
		area.X+(area.W-playButtonW)/2,
		area.Y+area.H/2+24,
		playButtonW, playButtonH,
	)
}

// Start begins a new round, discarding any round in progress.
func (s *Scene) Start() {
	s.Game().Start()
	s.logger.Debug("round started", "session", s.Game().Session(), "mode", s.mode)
}

// Press handles a click or tap at window px (x, y). While idle the start
// buttons are live; while playing the topmost bubble under the point pops.
func (s *Scene) Press(x, y int) bool {
	p := core.Point{X: x, Y: y}
	if !s.Game().State().Playing {
		if s.StartButton().ContainsPoint(p) || s.PlayButton().ContainsPoint(p) {
			s.Start()
			return true
		}
		return false
	}

	area := s.Area()
	if !area.ContainsPoint(p) {
		return false
	}
	local := area.Local(p)
	return s.Game().PopAt(float64(local.X), float64(local.Y))
}

// Step advances the game by dt seconds.
func (s *Scene) Step(dt float64) {
	if s.loop.Advance(dt) {
		s.saveScore()
	}
}

// saveScore stores a finished round's score. Storage failures are logged only.
func (s *Scene) saveScore() {
	score := s.Game().State().Score
	s.logger.Info("round over", "score", score, "mode", s.mode)
	if s.store == nil || score <= 0 {
		return
	}
	if _, err := s.store.SaveScore(s.Game().ID(), s.mode, score); err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}

// HUD returns the score and time labels.
func (s *Scene) HUD() (score, timeLeft string) {
	st := s.Game().State()
	return fmt.Sprintf("Score: %d", st.Score), fmt.Sprintf("Time: %ds", st.TimeLeft)
}

// StartLabel returns the HUD button label.
func (s *Scene) StartLabel() string {
	if s.Game().State().Playing {
		return "Playing..."
	}
	return "Start"
}

// OverlayLines returns the idle overlay text, or nil while playing.
func (s *Scene) OverlayLines() []string {
	st := s.Game().State()
	if st.Playing {
		return nil
	}
	lines := []string{
		s.Game().Title(),
		fmt.Sprintf("Pop as many bubbles as you can in %d seconds.", s.Game().Rules().Duration),
	}
	if st.Ended() {
		lines = append(lines, fmt.Sprintf("Time's up! Final score: %d", st.Score))
	}
	return lines
}

// BubbleColors returns the fill and rim colors for a palette entry.
// Unparseable entries fall back to white.
func (s *Scene) BubbleColors(hex string) (fill, rim color.Color) {
	if c, ok := s.colors[hex]; ok {
		return c, s.colors["rim:"+hex]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	r := c.BlendLab(colorful.Color{}, rimDarken).Clamped()
	s.colors[hex], s.colors["rim:"+hex] = c, r
	return c, r
}

package pixel

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/core"
	"github.com/vovakirdan/tui-bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

const step = 1.0 / 60

func newTestScene(t *testing.T, store *storage.Store) (*Scene, *bubblepop.ManualClock) {
	t.Helper()
	clock := &bubblepop.ManualClock{}
	s := NewScene(Options{
		Config: config.DefaultBubblePopConfig(),
		Seed:   11,
		Store:  store,
		Clock:  clock,
	})
	return s, clock
}

func center(r core.Rect) (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestSceneLayout(t *testing.T) {
	s, _ := newTestScene(t, nil)

	w, h := s.Size()
	if w != 480 || h != 640 {
		t.Fatalf("Size = %dx%d, expected the configured 480x640", w, h)
	}
	if s.Area() != core.NewRect(0, HUDHeight, 480, 640-HUDHeight) {
		t.Errorf("Area = %+v", s.Area())
	}
	if !s.Area().Contains(center(s.PlayButton())) {
		t.Error("Play button should sit in the play area")
	}
	if s.StartButton().Bottom() > HUDHeight {
		t.Error("Start button should sit in the HUD")
	}
}

func TestScenePressStarts(t *testing.T) {
	tests := []struct {
		name   string
		button func(*Scene) core.Rect
	}{
		{"hud start", (*Scene).StartButton},
		{"overlay play", (*Scene).PlayButton},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScene(t, nil)
			if !s.Press(center(tt.button(s))) {
				t.Fatal("press should be handled")
			}
			if !s.Game().State().Playing {
				t.Error("press should start a round")
			}
			if s.StartLabel() != "Playing..." || s.OverlayLines() != nil {
				t.Error("playing scene should hide the overlay")
			}
		})
	}
}

func TestSceneStartDisabledWhilePlaying(t *testing.T) {
	s, _ := newTestScene(t, nil)
	s.Start()

	s.Press(center(s.StartButton()))
	if s.Game().Session() != 1 {
		t.Error("Start button should not restart a running round")
	}
}

func TestScenePressPopsBubble(t *testing.T) {
	s, _ := newTestScene(t, nil)
	s.Start()

	// First spawn at 700 ms
	for i := 0; i < 43; i++ {
		s.Step(step)
	}
	st := s.Game().State()
	if st.Len() != 1 {
		t.Fatalf("expected one bubble after 43 frames, got %d", st.Len())
	}

	b := st.Bubbles[0]
	s.Game().Tick((b.Y - 200) / float64(b.Speed))
	b = s.Game().State().Bubbles[0]

	cx, cy := b.Center()
	if !s.Press(int(cx), int(cy)+HUDHeight) {
		t.Fatal("press on the bubble should pop it")
	}
	if got := s.Game().State().Score; got != 1 {
		t.Errorf("Score = %d, expected 1", got)
	}

	if s.Press(5, 5) {
		t.Error("press on the HUD should not pop anything")
	}
}

func TestSceneRoundEndSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	s, _ := newTestScene(t, store)
	s.Start()
	for i := 0; i < 43; i++ {
		s.Step(step)
	}
	b := s.Game().State().Bubbles[0]
	s.Game().Tick((b.Y - 200) / float64(b.Speed))
	b = s.Game().State().Bubbles[0]
	cx, cy := b.Center()
	s.Press(int(cx), int(cy)+HUDHeight)

	for i := 0; i < 4000 && s.Game().State().Playing; i++ {
		s.Step(step)
	}
	if s.Game().State().Playing {
		t.Fatal("round should end within 60 s of frames")
	}

	lines := s.OverlayLines()
	if len(lines) != 3 || lines[2] != "Time's up! Final score: 1" {
		t.Errorf("overlay = %q", lines)
	}

	scores, err := store.TopScores("bubblepop", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 {
		t.Errorf("expected one saved score of 1, got %+v", scores)
	}

	// More frames after the end store nothing new
	for i := 0; i < 120; i++ {
		s.Step(step)
	}
	if scores, _ := store.TopScores("bubblepop", "normal", 10); len(scores) != 1 {
		t.Error("score should be saved once")
	}
}

func TestSceneResize(t *testing.T) {
	s, _ := newTestScene(t, nil)
	s.Resize(800, 600)

	if a := s.Area(); a.W != 800 || a.H != 600-HUDHeight {
		t.Errorf("area after resize = %+v", a)
	}

	s.Start()
	for i := 0; i < 43; i++ {
		s.Step(step)
	}
	b := s.Game().State().Bubbles[0]
	bottom := float64(600 - HUDHeight)
	if b.Y <= bottom || b.Y > bottom+float64(b.Size) {
		t.Errorf("spawn Y = %.1f, expected just below the resized area", b.Y)
	}
}

func TestSceneHUD(t *testing.T) {
	s, _ := newTestScene(t, nil)
	score, left := s.HUD()
	if score != "Score: 0" || left != "Time: 60s" {
		t.Errorf("HUD = %q %q", score, left)
	}
	if s.StartLabel() != "Start" {
		t.Errorf("idle label = %q", s.StartLabel())
	}
	if lines := s.OverlayLines(); len(lines) != 2 || lines[0] != "BubblePop" {
		t.Errorf("fresh overlay = %q", lines)
	}
}

func TestSceneBubbleColors(t *testing.T) {
	s, _ := newTestScene(t, nil)

	fill, rim := s.BubbleColors("#ff0000")
	fr, _, _, _ := fill.RGBA()
	rr, _, _, _ := rim.RGBA()
	if fr != 0xffff {
		t.Errorf("fill red = %#x, expected full", fr)
	}
	if rr >= fr {
		t.Error("rim should be darker than fill")
	}

	again, _ := s.BubbleColors("#ff0000")
	if again != fill {
		t.Error("colors should be cached")
	}

	white, _ := s.BubbleColors("not-a-color")
	if r, g, b, _ := white.RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Error("bad palette entries should fall back to white")
	}
}

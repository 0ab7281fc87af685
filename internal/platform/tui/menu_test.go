package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func testMenuConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		preset     config.DifficultyPreset
		scoreboard bool
		quit       bool
	}{
		{"default is normal", nil, config.DifficultyNormal, false, false},
		{"up to easy", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy, false, false},
		{"clamped at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyUp}}, config.DifficultyEasy, false, false},
		{"down to hard", []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard, false, false},
		{"scoreboard item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, "", true, false},
		{"quit item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}}, "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, testMenuConfig())
			for _, k := range tc.keys {
				m, _ = menuUpdate(t, m, k)
			}
			m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("selecting should end the menu program")
			}

			var got config.DifficultyPreset
			if m.Selected() != nil {
				got = m.Selected().Preset
			}
			if got != tc.preset || m.WantsScoreboard() != tc.scoreboard || m.IsQuitting() != tc.quit {
				t.Errorf("result = (%q, scoreboard %v, quit %v), expected (%q, %v, %v)",
					got, m.WantsScoreboard(), m.IsQuitting(), tc.preset, tc.scoreboard, tc.quit)
			}
		})
	}
}

func TestMenuShortcuts(t *testing.T) {
	m, _ := menuUpdate(t, NewMenuModel(nil, testMenuConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m, _ = menuUpdate(t, NewMenuModel(nil, testMenuConfig()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	m := NewMenuModel(seededStore(t), testMenuConfig())
	view := m.View()

	for _, want := range []string{"Play Easy  (best 30)", "Play Normal  (best 21)", "Play Hard  (best 9)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu should show %q", want)
		}
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m, _ := menuUpdate(t, NewMenuModel(nil, testMenuConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 || cfg.TickRate != 60 {
		t.Errorf("Config() = %+v, expected 120x40 at 60 fps", cfg)
	}
}

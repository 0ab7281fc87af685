// Package tui provides the Bubble Tea frontend for BubblePop.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bubblepop/internal/games/bubblepop"
)

// FrameMsg drives animation at the configured frame rate. Owner is the
// model that armed it so a replaced model's chain dies out.
type FrameMsg struct {
	At    time.Time
	Owner uint64
}

// CountdownMsg fires once per second while a round is running.
type CountdownMsg struct {
	Session uint64
}

// SpawnMsg fires every spawn interval while a round is running.
type SpawnMsg struct {
	Session uint64
}

var modelIDs atomic.Uint64

func nextModelID() uint64 {
	return modelIDs.Add(1)
}

// frameCmd returns a command that sends frame messages at the specified rate.
func frameCmd(tickRate int, owner uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Owner: owner}
	})
}

func countdownCmd(session uint64) tea.Cmd {
	return tea.Tick(bubblepop.CountdownInterval, func(time.Time) tea.Msg {
		return CountdownMsg{Session: session}
	})
}

func spawnCmd(period time.Duration, session uint64) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return SpawnMsg{Session: session}
	})
}

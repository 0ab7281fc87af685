package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/core"
	"github.com/vovakirdan/tui-bubblepop/internal/games/bubblepop"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.BubblePopConfig // preset already applied
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables score saving
	Logger  *log.Logger

	// ScreenshotDir overrides ~/.bubblepop/screenshots.
	ScreenshotDir string

	// Clock overrides the monotonic game clock.
	Clock bubblepop.Clock

	// Embedded keeps the program running on back; the parent model
	// watches BackToMenu instead.
	Embedded bool
}

// Model is the Bubble Tea model for a BubblePop session.
type Model struct {
	id          uint64
	game        *bubblepop.Game
	layout      bubblepop.Layout
	screen      *core.Screen
	frames      bubblepop.FrameTimer
	cell        bubblepop.CellSize
	spawnPeriod time.Duration
	keys        *KeyMapper
	help        help.Model
	store       *storage.Store
	logger      *log.Logger
	mode        string
	config      core.RuntimeConfig
	shotDir     string
	embedded    bool
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model with an idle game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime.Normalize()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := opts.Clock
	if clock == nil {
		clock = bubblepop.NewMonotonicClock()
	}

	rules := bubblepop.RulesFromConfig(opts.Config.Rules)
	game := bubblepop.New(rules, bubblepop.SpawnEnv{
		Random: bubblepop.NewRandom(cfg.Seed),
		Clock:  clock,
		IDs:    bubblepop.UUIDGenerator{},
	})

	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	m := Model{
		id:          nextModelID(),
		game:        game,
		cell:        bubblepop.CellSize{W: opts.Config.Terminal.CellWidth, H: opts.Config.Terminal.CellHeight},
		spawnPeriod: rules.SpawnInterval,
		keys:        NewKeyMapper(),
		help:        help.New(),
		store:       opts.Store,
		logger:      logger,
		mode:        string(preset),
		config:      cfg,
		shotDir:     opts.ScreenshotDir,
		embedded:    opts.Embedded,
		screen:      core.NewScreen(0, 0),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the frame loop. The round starts from the Play button.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if msg.Owner != m.id {
			return m, nil
		}
		m.frames.Drive(msg.At, m.game)
		return m, frameCmd(m.config.TickRate, m.id)

	case CountdownMsg:
		return m.handleCountdown(msg)

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionSnapshot:
		m.saveScreenshot()
	case core.ActionStart:
		if !m.game.State().Playing {
			return m, m.start()
		}
	case core.ActionRestart:
		return m, m.start()
	case core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse pops the bubble under a left click, or presses a button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	p := core.Point{X: msg.X, Y: msg.Y}

	if !m.game.State().Playing {
		if m.layout.Button.ContainsPoint(p) || m.layout.PlayButton().ContainsPoint(p) {
			return m, m.start()
		}
		return m, nil
	}

	if b, ok := m.layout.BubbleAt(m.game.State(), p); ok {
		m.game.Pop(b.ID)
	}
	return m, nil
}

func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.game.Session() || !m.game.State().Playing {
		return m, nil
	}
	if m.game.CountdownTick() {
		m.saveScore()
		return m, nil
	}
	return m, countdownCmd(msg.Session)
}

func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	if msg.Session != m.game.Session() || !m.game.State().Playing {
		return m, nil
	}
	m.game.SpawnTick()
	return m, spawnCmd(m.spawnPeriod, msg.Session)
}

// start begins a new round and arms its countdown and spawn chains.
// Chains from an earlier round see a stale session and stop.
func (m *Model) start() tea.Cmd {
	m.game.Start()
	m.frames.Reset()
	session := m.game.Session()
	m.logger.Debug("round started", "session", session, "mode", m.mode)
	return tea.Batch(countdownCmd(session), spawnCmd(m.spawnPeriod, session))
}

// resize lays the game out on a w x h terminal. The bottom row holds help.
func (m *Model) resize(w, h int) {
	rows := core.Max(0, h-1)
	m.screen.Resize(w, rows)
	m.layout = bubblepop.NewLayout(w, rows, m.cell)
	m.game.SetViewport(m.layout.Viewport())
	m.help.Width = w
}

// saveScore stores a finished round's score. Storage failures are logged only.
func (m *Model) saveScore() {
	score := m.game.State().Score
	m.logger.Info("round over", "score", score, "mode", m.mode)
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.mode, score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	bubblepop.Render(m.screen, m.layout, m.game.State(), m.game.Rules())

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".bubblepop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	bubblepop.Render(m.screen, m.layout, m.game.State(), m.game.Rules())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Game returns the underlying game.
func (m Model) Game() *bubblepop.Game {
	return m.game
}

// Layout returns the current screen layout.
func (m Model) Layout() bubblepop.Layout {
	return m.layout
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back rather than quit.
func Run(opts Options) (backToMenu bool, err error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pop bubbles
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}

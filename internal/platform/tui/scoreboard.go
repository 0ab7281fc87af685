package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

const (
	bestPanelMinWidth = 72 // below this the per-difficulty panel is hidden
	bestPanelWidth    = 22
	scoreboardLimit   = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4cc9f0"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var boardBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var boardActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#f8f9fa")).
	Background(lipgloss.Color("#7209b7")).
	Padding(0, 1)

// scoreTab is one leaderboard: a difficulty, or every difficulty.
type scoreTab struct {
	Title string
	Mode  string
}

func scoreTabs() []scoreTab {
	tabs := []scoreTab{{Title: "All", Mode: storage.AnyMode}}
	for _, p := range config.Presets {
		tabs = append(tabs, scoreTab{Title: p.Title(), Mode: string(p)})
	}
	return tabs
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	store     *storage.Store
	tabs      []scoreTab
	active    int
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	best      map[string]*storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // back returns to the session menu instead of quitting
}

// NewScoreboardModel creates a scoreboard showing every difficulty.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		tabs:   scoreTabs(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showBestPanel() bool {
	return m.width >= bestPanelMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 14
	if m.width >= 90 {
		dateW = 20
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Popped", Width: 8},
		{Title: "Mode", Width: 8},
		{Title: "When", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#f8f9fa")).
		Background(lipgloss.Color("#7209b7")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload queries the store for the active tab and the per-mode summary.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.best, m.loadErr = nil, nil, nil, nil
	if m.store != nil {
		mode := m.tabs[m.active].Mode
		var err error
		if m.scores, err = m.store.TopScores(GameID, mode, scoreboardLimit); err != nil {
			m.loadErr = err
		}
		if m.stats, err = m.store.GetGameStats(GameID, mode); err != nil && m.loadErr == nil {
			m.loadErr = err
		}
		if m.best, err = m.store.ModeStats(GameID); err != nil && m.loadErr == nil {
			m.loadErr = err
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Mode,
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % len(m.tabs)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("BUBBLEPOP HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabStrip(), m.width))
	b.WriteString("\n\n")

	body := boardBoxStyle.Render(m.tableView())
	if m.showBestPanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.bestPanel())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabStrip() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			parts[i] = boardActiveTabStyle.Render(tab.Title)
		} else {
			parts[i] = boardTabStyle.Render(tab.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width {
		return fmt.Sprintf("< %s >", m.tabs[m.active].Title)
	}
	return strip
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.loadErr != nil:
		return boardDimStyle.Render("Scores unavailable:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardDimStyle.Padding(1, 2).Render("No rounds recorded yet.\nPop some bubbles first!")
	}
	return m.table.View()
}

// bestPanel lists the best round of each difficulty.
func (m ScoreboardModel) bestPanel() string {
	var b strings.Builder
	b.WriteString("Best by difficulty\n")
	for _, p := range config.Presets {
		best := "-"
		if s, ok := m.best[string(p)]; ok && s.GamesCount > 0 {
			best = fmt.Sprintf("%d", s.HighScore)
		}
		fmt.Fprintf(&b, "\n%-8s %6s", p.Title(), best)
	}
	return boardBoxStyle.Width(bestPanelWidth).Render(b.String())
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds: %d  Best: %d  Avg: %.1f  Last: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Local().Format("Jan 02 15:04"))
}

// ActiveMode returns the mode filter of the selected tab.
func (m ScoreboardModel) ActiveMode() string {
	return m.tabs[m.active].Mode
}

// Rows returns the number of scores listed for the selected tab.
func (m ScoreboardModel) Rows() int {
	return len(m.scores)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program and reports whether
// the user went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

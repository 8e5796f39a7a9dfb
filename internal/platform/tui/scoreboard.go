package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

const maxScores = 100

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "easier"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "harder"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of one difficulty at a time.
type ScoreboardModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard starting on the first difficulty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var presets []config.DifficultyPreset
	for _, p := range config.Presets() {
		if registry.Exists(string(p)) {
			presets = append(presets, p)
		}
	}

	m := ScoreboardModel{
		presets: presets,
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.loadScores()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Stage", Width: 6},
			{Title: "Player", Width: 14},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// current returns the difficulty on screen, or "" when none is registered.
func (m ScoreboardModel) current() config.DifficultyPreset {
	if len(m.presets) == 0 {
		return ""
	}
	return m.presets[m.cursor]
}

// loadScores refreshes rows and stats for the current difficulty.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = storage.GameStats{}

	if gameID := string(m.current()); m.store != nil && gameID != "" {
		scores, err := m.store.TopScores(gameID, maxScores)
		if err != nil {
			logger.Warn("could not load scores", "game", gameID, "error", err)
		}
		m.scores = scores

		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = *stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Stage),
			playerName(s.Session),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// playerName shortens a session id to the part a player recognizes:
// "local" stays as is and SSH sessions drop their uuid suffix.
func playerName(session string) string {
	if n := len(session) - 36; n > 1 && session[n-1] == '-' {
		if _, err := uuid.Parse(session[n:]); err == nil {
			session = session[:n-1]
		}
	}
	if len([]rune(session)) > 14 {
		session = string([]rune(session)[:13]) + "."
	}
	return session
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = moveCursor(m.cursor, 1, len(m.presets))
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = moveCursor(m.cursor, -1, len(m.presets))
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-12))
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.presets))
	for i, p := range m.presets {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(p.Title())
		} else {
			tabs[i] = tabStyle.Render(p.Title())
		}
	}

	var body string
	if len(m.scores) == 0 {
		body = emptyStyle.Render("No scores recorded yet.\nCatch some pairs to set a high score!")
	} else {
		body = m.table.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HIGH SCORES"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		boxStyle.Render(body),
		dimStyle.Render(m.statsLine()),
		"",
		dimStyle.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m ScoreboardModel) statsLine() string {
	if m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Best stage: %d  Average: %.1f",
		m.stats.GamesCount, m.stats.BestStage, m.stats.AvgScore)
}

// SelectGame moves the scoreboard to the given difficulty if it is listed.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, p := range m.presets {
		if string(p) == gameID {
			m.cursor = i
			m.loadScores()
			return
		}
	}
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen, starting on gameID if given.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, gameID string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)
	if gameID != "" {
		model.SelectGame(gameID)
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

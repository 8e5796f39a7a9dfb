package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenInstructions
	screenScoreboard
	screenGame
)

// AppModel manages the full session flow: menu -> game -> menu, plus the
// instructions and scoreboard screens. Sub-models finish by returning
// tea.Quit; AppModel swallows that and switches screens instead.
type AppModel struct {
	store        *storage.Store
	config       core.RuntimeConfig
	session      string
	screen       appScreen
	menu         MenuModel
	instructions InstructionsModel
	scoreboard   ScoreboardModel
	game         *GameModel
	quitting     bool
}

// NewAppModel creates a session starting on the main menu.
func NewAppModel(store *storage.Store, cfg core.RuntimeConfig, session string) AppModel {
	return AppModel{
		store:   store,
		config:  cfg,
		session: session,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenInstructions:
		return m.updateInstructions(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Choice() {
	case MenuChoicePlay:
		return m.startGame(m.menu.GameID())
	case MenuChoiceInstructions:
		m.instructions = NewInstructionsModel(m.config.ScreenW, m.config.ScreenH)
		m.screen = screenInstructions
		return m, m.instructions.Init()
	case MenuChoiceScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// startGame creates the game for gameID and switches to it.
func (m AppModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		return m.backToMenu()
	}

	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameModel := NewGameModel(game, m.store, cfg, m.session)
	m.game = &gameModel
	m.screen = screenGame
	return m, m.game.Init()
}

func (m AppModel) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.instructions.Update(msg)
	if im, ok := newModel.(InstructionsModel); ok {
		m.instructions = im
	}

	if m.instructions.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.instructions.Closed() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu shows a fresh main menu sized to the current window.
func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenInstructions:
		return m.instructions.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	}
	return m.menu.View()
}

// Session returns the session name recorded with scores.
func (m AppModel) Session() string {
	return m.session
}

// RunApp runs the full menu flow in the local terminal.
func RunApp(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(store, cfg, LocalSession),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-catch/internal/config"
	"github.com/vovakirdan/color-catch/internal/core"
	"github.com/vovakirdan/color-catch/internal/registry"
	"github.com/vovakirdan/color-catch/internal/storage"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceInstructions
	MenuChoiceScoreboard
	MenuChoiceQuit
)

type menuMode int

const (
	modeMain menuMode = iota
	modeDifficulty
	modeConfirmQuit
)

// MenuItem is one line of a menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	GameID string // Set for difficulty entries
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	popoverStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 3)
)

// defaultDifficulty is where the difficulty cursor starts.
var defaultDifficulty string

// SetDefaultDifficulty sets the difficulty highlighted when the popover opens.
func SetDefaultDifficulty(gameID string) {
	defaultDifficulty = gameID
}

// MenuModel is the Bubble Tea model for the main menu. It owns the
// difficulty popover and the quit confirmation.
type MenuModel struct {
	items         []MenuItem
	difficulties  []MenuItem
	cursor        int
	diffCursor    int
	confirmCursor int
	mode          menuMode
	pickerOnly    bool // Started directly on the difficulty popover
	width         int
	height        int
	store         *storage.Store
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	help          help.Model
	choice        MenuChoice
	gameID        string
	quitting      bool
}

// NewMenuModel creates a new main menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items: []MenuItem{
			{Label: "Play", Choice: MenuChoicePlay},
			{Label: "Instructions", Choice: MenuChoiceInstructions},
			{Label: "High Scores", Choice: MenuChoiceScoreboard},
			{Label: "Quit", Choice: MenuChoiceQuit},
		},
		difficulties: difficultyItems(),
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		store:        store,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
		help:         h,
	}
}

// NewDifficultyPicker creates a menu that only shows the difficulty popover.
// Cancel leaves the picker without a selection.
func NewDifficultyPicker(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := NewMenuModel(store, cfg)
	m.mode = modeDifficulty
	m.diffCursor = m.defaultDiffCursor()
	m.pickerOnly = true
	return m
}

// difficultyItems lists the registered presets in order, followed by Cancel.
func difficultyItems() []MenuItem {
	items := make([]MenuItem, 0, 4)
	for _, p := range config.Presets() {
		if !registry.Exists(string(p)) {
			continue
		}
		items = append(items, MenuItem{Label: p.Title(), Choice: MenuChoicePlay, GameID: string(p)})
	}
	return append(items, MenuItem{Label: "Cancel", Choice: MenuChoiceNone})
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		action := m.keyMapper.MapKeyToMenuAction(msg)
		switch m.mode {
		case modeDifficulty:
			return m.updateDifficulty(action)
		case modeConfirmQuit:
			return m.updateConfirm(action)
		default:
			return m.updateMain(action)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) updateMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.mode = modeConfirmQuit
		m.confirmCursor = 0

	case MenuActionUp:
		m.cursor = moveCursor(m.cursor, -1, len(m.items))

	case MenuActionDown:
		m.cursor = moveCursor(m.cursor, 1, len(m.items))

	case MenuActionSelect:
		switch item := m.items[m.cursor]; item.Choice {
		case MenuChoicePlay:
			m.mode = modeDifficulty
			m.diffCursor = m.defaultDiffCursor()
		case MenuChoiceQuit:
			m.mode = modeConfirmQuit
			m.confirmCursor = 0
		default:
			m.choice = item.Choice
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) updateDifficulty(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.cancelDifficulty()

	case MenuActionUp:
		m.diffCursor = moveCursor(m.diffCursor, -1, len(m.difficulties))

	case MenuActionDown:
		m.diffCursor = moveCursor(m.diffCursor, 1, len(m.difficulties))

	case MenuActionSelect:
		item := m.difficulties[m.diffCursor]
		if item.GameID == "" {
			return m.cancelDifficulty()
		}
		m.choice = MenuChoicePlay
		m.gameID = item.GameID
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) defaultDiffCursor() int {
	for i, item := range m.difficulties {
		if item.GameID != "" && item.GameID == defaultDifficulty {
			return i
		}
	}
	return 0
}

func (m MenuModel) cancelDifficulty() (tea.Model, tea.Cmd) {
	if m.pickerOnly {
		m.choice = MenuChoiceNone
		m.quitting = true
		return m, tea.Quit
	}
	m.mode = modeMain
	return m, nil
}

// updateConfirm handles the quit dialog: Quit (0) or Cancel (1).
func (m MenuModel) updateConfirm(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp, MenuActionDown:
		m.confirmCursor = 1 - m.confirmCursor

	case MenuActionBack:
		m.mode = modeMain

	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		m.quitting = true
		return m, tea.Quit

	case MenuActionSelect:
		if m.confirmCursor == 0 {
			m.choice = MenuChoiceQuit
			m.quitting = true
			return m, tea.Quit
		}
		m.mode = modeMain
	}
	return m, nil
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return (cursor + delta + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.mode {
	case modeDifficulty:
		body = m.viewDifficulty()
	case modeConfirmQuit:
		body = m.viewConfirm()
	default:
		body = m.viewMain()
	}

	helpLine := dimStyle.Render(m.help.View(m.keyMapper.Menu))
	content := lipgloss.JoinVertical(lipgloss.Center, body, "", helpLine)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m MenuModel) viewMain() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("C O L O R   C A T C H"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		b.WriteString(renderItem(item.Label, i == m.cursor))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m MenuModel) viewDifficulty() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Difficulty"))
	b.WriteString("\n\n")
	for i, item := range m.difficulties {
		label := item.Label
		if item.GameID != "" {
			if best := m.highScore(item.GameID); best > 0 {
				label = fmt.Sprintf("%s  best %d", label, best)
			}
		} else {
			b.WriteString("\n")
		}
		b.WriteString(renderItem(label, i == m.diffCursor))
		b.WriteString("\n")
	}
	return popoverStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}

func (m MenuModel) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quit Game"))
	b.WriteString("\n\n")
	b.WriteString("Are you sure you want to quit?")
	b.WriteString("\n\n")
	b.WriteString(renderItem("Quit", m.confirmCursor == 0))
	b.WriteString("   ")
	b.WriteString(renderItem("Cancel", m.confirmCursor == 1))
	return popoverStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}

func (m MenuModel) highScore(gameID string) int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(gameID)
	if err != nil {
		return 0
	}
	return best
}

func renderItem(label string, active bool) string {
	if active {
		return activeStyle.Render(" " + label + " ")
	}
	return itemStyle.Render(" " + label + " ")
}

// Choice returns what the player picked, MenuChoiceNone if nothing yet.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// GameID returns the difficulty picked with MenuChoicePlay.
func (m MenuModel) GameID() string {
	return m.gameID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunDifficultyPicker shows the difficulty popover on its own and returns the
// chosen game ID, or "" if the player canceled.
func RunDifficultyPicker(store *storage.Store, cfg core.RuntimeConfig) (string, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewDifficultyPicker(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", cfg, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return "", cfg, nil
	}
	return m.GameID(), m.Config(), nil
}

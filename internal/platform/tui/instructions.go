package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InstructionsText is the body of the instructions screen.
const InstructionsText = `Here are the instructions on how to play the game.

Every tile on the board has a color, and every color appears on
exactly two tiles. Tap two tiles with the same color to catch them.

  - A match scores one point and the two tiles go dark.
  - Two different colors score nothing; both tiles are released.
  - Tap a selected tile again to release it.

The clock starts with your first tap and counts down from 0:30.
When every pair on the board is caught you advance to the next
stage: a fresh board is dealt and five seconds come off the clock,
but it never drops below 0:05.

On boards with an odd number of tiles one gray tile has no partner.
Leave it alone.

The game ends when the clock reaches zero. Try to catch as many
pairs as you can.

Difficulty
  Easy     3×3 board
  Medium   4×4 board
  Hard     5×5 board

Controls
  Mouse click          tap a tile
  Arrows / h j k l     move the cursor
  Space / Enter        tap the tile under the cursor
  R                    restart
  P                    pause
  B / Esc              main menu (when paused or after game over)
  Q                    quit`

const instructionsChrome = 6 // Title, blank line, border and help rows

// InstructionsModel shows the rules in a scrollable viewport.
type InstructionsModel struct {
	viewport viewport.Model
	keys     MenuKeyMap
	closed   bool
	quitting bool
}

// NewInstructionsModel creates the instructions screen for the given size.
func NewInstructionsModel(width, height int) InstructionsModel {
	vp := viewport.New(instructionsWidth(width), instructionsHeight(height))
	vp.SetContent(InstructionsText)

	return InstructionsModel{
		viewport: vp,
		keys:     DefaultMenuKeyMap(),
	}
}

func instructionsWidth(width int) int {
	return max(20, min(72, width-4))
}

func instructionsHeight(height int) int {
	return max(3, height-instructionsChrome)
}

// Init initializes the model.
func (m InstructionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Quit):
			m.closed = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = instructionsWidth(msg.Width)
		m.viewport.Height = instructionsHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the instructions.
func (m InstructionsModel) View() string {
	if m.closed || m.quitting {
		return ""
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Instructions"),
		"",
		body,
		dimStyle.Render("↑/↓ scroll  •  enter/esc close"),
	)
}

// Closed returns true once the player pressed Close.
func (m InstructionsModel) Closed() bool {
	return m.closed
}

// IsQuitting returns true if user requested to quit entirely.
func (m InstructionsModel) IsQuitting() bool {
	return m.quitting
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-catch/internal/storage"
)

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("expected ScoreboardModel, got %T", next)
	}
	return sb
}

func TestScoreboardSwitchesDifficulty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		game  string
		score int
	}{
		{"easy", 3}, {"easy", 5}, {"hard", 9},
	} {
		if _, err := store.SaveScore(s.game, s.score, 2, SessionID("alice")); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 40)
	if m.current() != "easy" || len(m.table.Rows()) != 2 {
		t.Fatalf("expected 2 easy rows, got %q with %d", m.current(), len(m.table.Rows()))
	}
	if row := m.table.Rows()[0]; row[1] != "5" || row[3] != "alice" {
		t.Errorf("expected best easy score by alice first, got %v", row)
	}
	if m.stats.GamesCount != 2 {
		t.Errorf("expected stats for 2 games, got %d", m.stats.GamesCount)
	}

	m = updateScoreboard(t, m, keyRunes("l"))
	if m.current() != "medium" || len(m.table.Rows()) != 0 {
		t.Errorf("expected empty medium board, got %q", m.current())
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message on medium")
	}

	// Wraps from easy back to hard
	m = updateScoreboard(t, m, keyRunes("h"))
	m = updateScoreboard(t, m, keyRunes("h"))
	if m.current() != "hard" || len(m.table.Rows()) != 1 {
		t.Errorf("expected 1 hard row, got %q with %d", m.current(), len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "Hard (5×5)") {
		t.Error("expected hard tab in view")
	}

	m.SelectGame("easy")
	if m.current() != "easy" {
		t.Errorf("expected SelectGame to move to easy, got %q", m.current())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message without a store")
	}

	back := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("expected esc to go back")
	}
	quit := updateScoreboard(t, m, keyRunes("q"))
	if !quit.IsQuitting() {
		t.Error("expected q to quit")
	}
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		session  string
		expected string
	}{
		{"local", "local"},
		{SessionID("alice"), "alice"},
		{SessionID("bob-smith"), "bob-smith"},
		{"carol-not-a-uuid", "carol-not-a-u."},
		{SessionID("averyveryverylongname"), "averyveryvery."},
	}

	for _, tt := range tests {
		if got := playerName(tt.session); got != tt.expected {
			t.Errorf("playerName(%q) = %q, expected %q", tt.session, got, tt.expected)
		}
	}
}

func TestAppModelScoreboard(t *testing.T) {
	m := NewAppModel(nil, testConfig, "")

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScoreboard {
		t.Fatalf("expected scoreboard screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected scoreboard title")
	}

	m = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("expected menu after leaving the scoreboard, got %v", m.screen)
	}
}

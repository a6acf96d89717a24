package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestMenuShowsHighScores(t *testing.T) {
	board := testBoard(t)
	if _, err := board.Record("fake", "ann", 320, 1); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	m := NewMenuModel(board, testConfig())

	var found bool
	for _, item := range m.items {
		if item.GameID == "fake" {
			found = true
			if item.Best != 320 {
				t.Errorf("Best = %d, want 320", item.Best)
			}
		}
	}
	if !found {
		t.Fatal("registered game missing from menu")
	}
	if !strings.Contains(m.View(), "(best 320)") {
		t.Error("menu view should show the high score")
	}
}

func TestSessionGameAndBack(t *testing.T) {
	m := NewSessionModel(testBoard(t), testConfig(), PlayOptions{Player: "ann"})
	for i, item := range m.menu.items {
		if item.GameID == "fake" {
			m.menu.cursor = i
		}
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.gameModel.opts.Standalone {
		t.Error("session games must not be standalone")
	}

	// The fake game starts with zero lives, so back is allowed once ticked.
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("screen = %v, want menu", m.screen)
	}

	// Stale ticks land in the menu harmlessly.
	m = sessionUpdate(t, m, TickMsg{})
	if m.screen != screenMenu {
		t.Error("tick should not leave the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testBoard(t), testConfig(), PlayOptions{})

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores || m.scores == nil {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), PlayOptions{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.View() != "" {
		t.Error("q in the menu should quit the session")
	}
}

func TestScoreboardRows(t *testing.T) {
	board := testBoard(t)
	board.Record("fake", "ann", 100, 0)
	board.Record("fake", "bob", 500, 3)

	sb := NewScoreboardModel(board, 100, 30)
	for i, g := range sb.games {
		if g.ID == "fake" {
			sb.gameCursor = i
			sb.loadScores(g.ID)
		}
	}

	if len(sb.scores) != 2 || sb.scores[0].Player != "bob" {
		t.Fatalf("scores = %+v, want bob first", sb.scores)
	}
	if sb.stats.GamesCount != 2 || sb.stats.HighScore != 500 {
		t.Errorf("stats = %+v", sb.stats)
	}
	if !strings.Contains(sb.View(), "2 games") {
		t.Error("view should show the summary line")
	}
}

func TestScoreboardVariantCycle(t *testing.T) {
	sb := NewScoreboardModel(nil, 80, 24)
	n := len(sb.games)
	if n == 0 {
		t.Fatal("no variants registered")
	}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"tab advances", []tea.KeyMsg{{Type: tea.KeyTab}}, 1 % n},
		{"shift+tab wraps to the last", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, n - 1},
		{"full cycle returns to the first", repeatKey(tea.KeyMsg{Type: tea.KeyRight}, n), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			for _, k := range tc.keys {
				next, _ := m.Update(k)
				m = next.(ScoreboardModel)
			}
			if m.gameCursor != tc.want {
				t.Errorf("gameCursor = %d, want %d", m.gameCursor, tc.want)
			}
			if !strings.Contains(m.View(), "No scores recorded yet") {
				t.Error("empty board should show the placeholder")
			}
		})
	}
}

func repeatKey(k tea.KeyMsg, n int) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

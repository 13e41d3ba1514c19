package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsCurrentVariant(t *testing.T) {
	store := newScoreboardStore(t)
	store.SaveResult(snake.IDClassic, 70, "self-collision")
	store.SaveResult(snake.IDClassic, 21, "quit")
	store.SaveResult(snake.IDCompact, 140, "board-full")

	m := NewScoreboardModel(store, 100, 30)
	if m.Variant() != snake.IDClassic {
		t.Fatalf("Variant() = %q, expected %q", m.Variant(), snake.IDClassic)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 70 {
		t.Fatalf("scores = %+v, expected 70 then 21", m.scores)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "self-collision", "left early", "2 sessions", "best 70"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store := newScoreboardStore(t)
	store.SaveResult(snake.IDCompact, 140, "board-full")

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "No sessions recorded yet.") {
		t.Error("empty variant does not say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Variant() != snake.IDCompact {
		t.Fatalf("after tab Variant() = %q, expected %q", m.Variant(), snake.IDCompact)
	}
	if len(m.scores) != 1 || m.scores[0].Reason != "board-full" {
		t.Errorf("scores = %+v, expected the compact session", m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := next.(ScoreboardModel).Variant(); got != snake.IDClassic {
		t.Errorf("after left Variant() = %q, expected %q", got, snake.IDClassic)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "not played yet") {
		t.Error("board without a store should show no stats")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).back {
		t.Error("esc should leave the board going back")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	sb := next.(ScoreboardModel)
	if cmd == nil || !sb.quit || sb.back {
		t.Error("q should quit without going back")
	}
}

func TestOutcomeLabels(t *testing.T) {
	tests := map[string]string{
		"":               "-",
		"quit":           "left early",
		"self-collision": "self-collision",
		"board-full":     "board-full",
	}
	for reason, want := range tests {
		if got := outcome(reason); got != want {
			t.Errorf("outcome(%q) = %q, expected %q", reason, got, want)
		}
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
	// overAfter ends the game with score overScore on that step; zero never ends it.
	overAfter int
	overScore int
	eatEvery  int
	resized   [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	if in.Has(core.ActionQuit) {
		g.state.GameOver = true
		g.state.Reason = "quit"
		return core.StepResult{State: g.state}
	}
	ate := g.eatEvery > 0 && len(g.frames)%g.eatEvery == 0
	if g.overAfter > 0 && len(g.frames) == g.overAfter {
		g.state.GameOver = true
		g.state.Score = g.overScore
		g.state.Reason = "self-collision"
	}
	return core.StepResult{State: g.state, Ate: ate}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

// recordingPlayer remembers played effects.
type recordingPlayer struct {
	played []audio.Effect
}

func (p *recordingPlayer) Play(e audio.Effect) { p.played = append(p.played, e) }
func (p *recordingPlayer) Close()              {}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *stubGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, Options{})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned nil, expected a tick command")
	}
	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
}

func TestModelConsumesOneActionPerTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Queued() != 3 {
		t.Fatalf("Queued() = %d, expected 3", m.Queued())
	}
	if len(g.frames) != 0 {
		t.Fatal("key presses should not step the game")
	}

	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionNone}
	for i, a := range want {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatalf("tick %d: no follow-up tick scheduled", i)
		}
		frame := g.frames[i]
		if a == core.ActionNone {
			if len(frame.Actions) != 0 {
				t.Errorf("tick %d: frame = %v, expected empty", i, frame.Actions)
			}
			continue
		}
		if !frame.Has(a) || len(frame.Actions) != 1 {
			t.Errorf("tick %d: frame = %v, expected only %v", i, frame.Actions, a)
		}
	}
	if m.Queued() != 0 {
		t.Errorf("Queued() = %d after draining, expected 0", m.Queued())
	}
}

func TestModelQueueIsBounded(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})
	for range maxQueued + 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Queued() != maxQueued {
		t.Errorf("Queued() = %d, expected %d", m.Queued(), maxQueued)
	}
}

func TestModelQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyF2},
		{Type: tea.KeyCtrlC},
		keyRunes("q"),
		{Type: tea.KeyEsc},
	}
	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			g := &stubGame{}
			m := newTestModel(g, Options{})
			m, cmd := update(t, m, k)
			if !isQuitCmd(cmd) {
				t.Error("expected tea.Quit")
			}
			if len(g.frames) != 1 || !g.frames[0].Has(core.ActionQuit) {
				t.Errorf("game frames = %v, expected one quit frame", g.frames)
			}
			if !m.State().GameOver || m.State().Reason != "quit" {
				t.Errorf("State() = %+v, expected quit", m.State())
			}
			if m.View() != "" {
				t.Error("View() after quit should be empty")
			}
		})
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{overAfter: 2, overScore: 14}
	m := newTestModel(g, Options{Store: store})
	for range 4 {
		m, _ = update(t, m, TickMsg{})
	}
	// Leaving after the game ended must not record it twice.
	update(t, m, keyRunes("q"))

	if len(g.frames) != 2 {
		t.Errorf("game stepped %d times, expected 2", len(g.frames))
	}
	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 14 || scores[0].Reason != "self-collision" {
		t.Errorf("saved %+v, expected 14 self-collision", scores[0])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{overAfter: 1, overScore: 7}
	m := newTestModel(g, Options{})

	// Restart is ignored while playing.
	g.overAfter = 0
	m, _ = update(t, m, keyRunes("r"))
	if g.resets != 1 {
		t.Fatalf("restart while playing reset the game")
	}

	g.overAfter = 1
	m, _ = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Queued() != 0 {
		t.Error("turns should not queue after game over")
	}

	m, _ = update(t, m, keyRunes("r"))
	if g.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("State() still over after restart")
	}
}

func TestModelPlaysEffects(t *testing.T) {
	player := &recordingPlayer{}
	g := &stubGame{eatEvery: 2, overAfter: 3}
	m := newTestModel(g, Options{Audio: player})
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}

	want := []audio.Effect{audio.EffectEat, audio.EffectLose}
	if len(player.played) != len(want) {
		t.Fatalf("played %v, expected %v", player.played, want)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("played[%d] = %v, expected %v", i, player.played[i], want[i])
		}
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resized != [2]int{100, 40} {
		t.Errorf("Resize got %v, expected [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if !strings.HasPrefix(m.View(), "stub") {
		t.Errorf("View() = %q, expected the game frame", m.View())
	}
}

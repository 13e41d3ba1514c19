package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// isolateConfig makes Reset use the embedded defaults.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameIDs(t *testing.T) {
	if got := New().ID(); got != "snake" {
		t.Errorf("New().ID() = %s, expected snake", got)
	}
	if got := NewCompact().ID(); got != "snake_compact" {
		t.Errorf("NewCompact().ID() = %s, expected snake_compact", got)
	}
}

func TestTitles(t *testing.T) {
	if got := New().Title(); got != "Snake" {
		t.Errorf("New().Title() = %s, expected Snake", got)
	}
	if got := NewCompact().Title(); got != "Snake (Compact)" {
		t.Errorf("NewCompact().Title() = %s, expected Snake (Compact)", got)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDCompact} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("registry.Create(%q).ID() = %s", id, g.ID())
		}
	}
}

func TestDeterminism(t *testing.T) {
	isolateConfig(t)
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := NewCompact()
	g1.Reset(cfg)
	g2 := NewCompact()
	g2.Reset(cfg)

	for i := 0; i < 100; i++ {
		in := frame()
		switch i {
		case 20:
			in = frame(core.ActionDown)
		case 40:
			in = frame(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestWindowTooSmall(t *testing.T) {
	isolateConfig(t)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 80, ScreenH: 24})

	st := g.State()
	if !st.TooSmall {
		t.Fatal("State().TooSmall = false on 80x24 for the classic board")
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionUp))
	if g.Snapshot() != before {
		t.Error("Step() advanced while the window is too small")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Render() should show the too-small notice")
	}

	g.Resize(122, 36)
	if g.State().TooSmall {
		t.Error("State().TooSmall after growing to 122x36")
	}
	g.Step(frame())
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d after resize, expected 1", g.Snapshot().Tick)
	}
}

func TestRender(t *testing.T) {
	isolateConfig(t)
	cfg := core.RuntimeConfig{Seed: 444, ScreenW: 80, ScreenH: 24}

	g := NewCompact()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	content := screen.String()

	for _, want := range []string{FieldTitle, "Points: 0", HelpLine} {
		if !strings.Contains(content, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	l, err := NewLayout(16, 60, Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatal(err)
	}
	x, y := l.CellAt(g.Session().Head().Pos)
	if c := screen.GetCell(x, y); c.Rune != 'O' || c.Color != ColorBody {
		t.Errorf("head cell = %+v, expected green O", c)
	}
	food, _ := g.Session().Food()
	x, y = l.CellAt(food)
	if c := screen.GetCell(x, y); c.Rune != '*' || c.Color != ColorFood {
		t.Errorf("food cell = %+v, expected red *", c)
	}
	if c := screen.GetCell(l.Field.X, l.Field.Y+1); c.Rune != '|' || c.Color != ColorBorder {
		t.Errorf("border cell = %+v, expected cyan |", c)
	}
}

func TestRenderFollowsTicks(t *testing.T) {
	isolateConfig(t)
	g := NewCompact()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24})

	for range 5 {
		g.Step(frame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	l, _ := NewLayout(16, 60, Size{Rows: 24, Cols: 80})

	bodyCells := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Color == ColorBody {
				bodyCells++
			}
		}
	}
	if bodyCells != g.Session().Len() {
		t.Errorf("rendered %d body cells, expected %d", bodyCells, g.Session().Len())
	}
	for _, seg := range g.Session().Segments() {
		x, y := l.CellAt(seg.Pos)
		if screen.GetCell(x, y).Rune != 'O' {
			t.Errorf("segment %v not rendered", seg.Pos)
		}
	}
}

func TestQuitAndRestart(t *testing.T) {
	isolateConfig(t)
	g := NewCompact()
	g.Reset(core.RuntimeConfig{Seed: 9, ScreenW: 80, ScreenH: 24})

	res := g.Step(frame(core.ActionQuit))
	if !res.State.GameOver || res.State.Reason != "quit" {
		t.Fatalf("State = %+v, expected game over by quit", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), ByeMessage) {
		t.Error("Render() should show the farewell after quitting")
	}

	g.Step(frame(core.ActionRestart))
	if st := g.State(); st.GameOver || st.Score != 0 {
		t.Errorf("State after restart = %+v, expected a fresh game", st)
	}
}

func TestInputFromFrame(t *testing.T) {
	tests := []struct {
		in   core.InputFrame
		want Input
	}{
		{frame(), InputNone},
		{frame(core.ActionUp), InputUp},
		{frame(core.ActionDown), InputDown},
		{frame(core.ActionLeft), InputLeft},
		{frame(core.ActionRight), InputRight},
		{frame(core.ActionRight, core.ActionQuit), InputQuit},
		{frame(core.ActionConfirm), InputNone},
	}
	for _, tt := range tests {
		if got := inputFromFrame(tt.in); got != tt.want {
			t.Errorf("inputFromFrame(%v) = %v, expected %v", tt.in.Actions, got, tt.want)
		}
	}
}

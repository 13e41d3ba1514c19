package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Registered game IDs.
const (
	IDClassic = "snake"
	IDCompact = "snake_compact"
)

// configPath is the custom config file used by Reset, empty for the search
// order of config.LoadSnake.
var configPath string

// SetConfigPath sets the config file path used by subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the registry.Game interface. It keeps its own copy
// of the field, fed through the RenderSink, and paints it into core.Screen
// on Render.
type Game struct {
	compact bool

	cfg      config.SnakeConfig
	rng      *rand.Rand
	session  *Session
	canvas   *canvas
	screenW  int
	screenH  int
	tooSmall bool
	initErr  error
}

// New creates the classic 30x120 game.
func New() *Game {
	return &Game{}
}

// NewCompact creates the game on the compact board that fits 80x24.
func NewCompact() *Game {
	return &Game{compact: true}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDCompact, func() registry.Game {
		return NewCompact()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.compact {
		return IDCompact
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.compact {
		return "Snake (Compact)"
	}
	return "Snake"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	g.cfg = loaded
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	settings := SettingsFromConfig(g.cfg, g.compact)
	g.canvas = newCanvas(settings.Rows, settings.Cols)
	g.session, g.initErr = NewSession(settings, g.rng, g.canvas)
	g.checkSize()
}

// Resize records a new display size. The session is kept; while the display
// is too small no ticks are processed.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

func (g *Game) checkSize() {
	s := g.Settings()
	g.tooSmall = CheckDisplay(s.Rows, s.Cols, Size{Rows: g.screenH, Cols: g.screenW}) != nil
}

// Settings returns the rules of the current or next session.
func (g *Game) Settings() Settings {
	if g.session != nil {
		return g.session.Settings()
	}
	return SettingsFromConfig(g.cfg, g.compact)
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Session exposes the running session, nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the session by one tick with the first action of the frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.Status() != StatusRunning {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Quitting works even while the display is too small.
	if in.Has(core.ActionQuit) {
		g.session.Quit()
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(inputFromFrame(in))
	return core.StepResult{State: g.State(), Ate: res.Ate}
}

// inputFromFrame picks the engine input for a frame. Frontends put at most
// one action in a frame; quit wins over turns otherwise.
func inputFromFrame(in core.InputFrame) Input {
	for _, a := range []core.Action{core.ActionQuit, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return InputFromAction(a)
		}
	}
	return InputNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.initErr != nil, TooSmall: g.tooSmall}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() != StatusRunning,
		Reason:   ResultOf(g.session).Outcome(),
		TooSmall: g.tooSmall,
	}
}

// Result summarises the current session.
func (g *Game) Result() Result {
	if g.session == nil {
		return Result{}
	}
	return ResultOf(g.session)
}

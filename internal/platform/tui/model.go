package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxQueued bounds the turns waiting for a tick; extra key presses are dropped.
const maxQueued = 8

// Options carries the collaborators of a play session. Zero values are safe:
// no storage, a discarding logger and no sound.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Audio  audio.Player
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Audio == nil {
		o.Audio = audio.Nop{}
	}
	return o
}

// resulter is implemented by games that can summarise a finished session.
type resulter interface {
	Result() snake.Result
}

// Model is the Bubble Tea model for playing one game variant.
//
// Key presses are queued and each tick consumes exactly one of them, so a
// burst of keys within one tick interval plays out over the following ticks.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	queue     []core.Action
	gameState core.GameState
	quitting  bool
	finished  bool // Whether the current session has been saved and logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts.withDefaults(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logStart()
	return tickCmd(m.config.TickOrDefault())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit, action == core.ActionBack:
		return m.leave()

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case action.IsTurn():
		if !m.gameState.GameOver && len(m.queue) < maxQueued {
			m.queue = append(m.queue, action)
		}
	}

	return m, nil
}

// leave ends a running session as quit, records it and exits the program.
func (m Model) leave() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		m.gameState = m.game.Step(frame).State
	}
	m.finish()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.queue = m.queue[:0]
	m.finished = false
	m.logStart()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick feeds the oldest queued action, or none, to the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, tickCmd(m.config.TickOrDefault())
	}

	frame := core.NewInputFrame()
	if len(m.queue) > 0 && !m.gameState.TooSmall {
		frame.Set(m.queue[0])
		m.queue = m.queue[1:]
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Ate {
		m.opts.Audio.Play(audio.EffectEat)
	}
	if m.gameState.GameOver {
		m.opts.Audio.Play(audio.EffectLose)
		m.finish()
	}

	return m, tickCmd(m.config.TickOrDefault())
}

// finish saves the score and logs the end of the session, once.
func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true

	if m.opts.Store != nil && m.gameState.Score > 0 {
		if _, err := m.opts.Store.SaveResult(m.game.ID(), m.gameState.Score, m.gameState.Reason); err != nil {
			m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	fields := []any{"game", m.game.ID(), "score", m.gameState.Score, "reason", m.gameState.Reason}
	if r, ok := m.game.(resulter); ok {
		res := r.Result()
		fields = append(fields, "length", res.Length, "eaten", res.Eaten, "ticks", res.Ticks)
	}
	m.opts.Logger.Info("session ended", fields...)
}

func (m Model) logStart() {
	m.opts.Logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tick", m.config.TickOrDefault(),
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Queued returns the number of actions waiting for a tick.
func (m Model) Queued() int {
	return len(m.queue)
}

// Run starts the Bubble Tea program for game and returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}

package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Settings fixes the rules of one session.
type Settings struct {
	Rows        int
	Cols        int
	StartLength int
	FoodReward  int
}

// DefaultSettings returns the classic 30x120 field.
func DefaultSettings() Settings {
	return Settings{
		Rows:        30,
		Cols:        120,
		StartLength: 3,
		FoodReward:  7,
	}
}

// SettingsFromConfig picks the board named by compact and the shared rules.
func SettingsFromConfig(cfg config.SnakeConfig, compact bool) Settings {
	board := cfg.Board
	if compact {
		board = cfg.CompactBoard
	}
	return Settings{
		Rows:        board.Rows,
		Cols:        board.Cols,
		StartLength: cfg.Rules.StartLength,
		FoodReward:  cfg.Rules.FoodReward,
	}
}

// Validate reports settings that cannot start a session.
func (s Settings) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, s.Rows, s.Cols)
	}
	if s.StartLength < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, s.StartLength)
	}
	return nil
}

// TickResult is what one tick produced.
type TickResult struct {
	Ate    bool
	Status Status
	Reason Reason
	Score  int
}

// Session owns the grid, the body and the food of one game. It is not safe
// for concurrent use; frontends drive it from a single goroutine.
type Session struct {
	settings Settings
	grid     *Grid
	body     *Body
	rng      *rand.Rand
	sink     RenderSink

	food    Point
	hasFood bool
	free    []Point // reused by placeFood

	score  int
	eaten  int
	tick   uint64
	status Status
	reason Reason
}

// NewSession builds the field, lays out the body at the centre heading right,
// places the first food and sends the whole initial frame to sink.
// A nil sink discards drawing.
func NewSession(settings Settings, rng *rand.Rand, sink RenderSink) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if sink == nil {
		sink = NopSink{}
	}

	grid, err := NewGrid(settings.Rows, settings.Cols)
	if err != nil {
		return nil, err
	}
	body := NewBody(grid.Size())
	center := Point{Row: settings.Rows / 2, Col: settings.Cols / 2}
	if err := body.Init(grid, center, settings.StartLength, DirRight); err != nil {
		return nil, fmt.Errorf("snake: cannot place a body of length %d on %dx%d: %w",
			settings.StartLength, settings.Rows, settings.Cols, err)
	}

	s := &Session{
		settings: settings,
		grid:     grid,
		body:     body,
		rng:      rng,
		sink:     sink,
		free:     make([]Point, 0, grid.Size()),
	}
	s.placeFood()

	grid.Flush(sink)
	sink.DrawScore(0)
	return s, nil
}

// Tick consumes one input and advances the session by one step. Once the
// session has ended it is left untouched.
func (s *Session) Tick(in Input) TickResult {
	if s.status != StatusRunning {
		return s.result(false)
	}
	if in == InputQuit {
		s.status = StatusQuit
		return s.result(false)
	}

	s.tick++
	s.body.Propagate()
	if d, ok := in.Direction(); ok {
		s.body.Steer(d)
	}
	ate := s.move()

	s.grid.Flush(s.sink)
	if ate {
		s.sink.DrawScore(s.score)
	}
	return s.result(ate)
}

// Quit ends a running session as if the player had asked to leave.
func (s *Session) Quit() {
	if s.status == StatusRunning {
		s.status = StatusQuit
	}
}

func (s *Session) lose(r Reason) {
	s.status = StatusLost
	s.reason = r
}

func (s *Session) result(ate bool) TickResult {
	return TickResult{
		Ate:    ate,
		Status: s.status,
		Reason: s.reason,
		Score:  s.score,
	}
}

// Redraw sends every non-empty cell and the score to sink, for frontends that
// start from a blank surface.
func (s *Session) Redraw(sink RenderSink) {
	for r := 0; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			p := Point{Row: r, Col: c}
			if cell := s.grid.Get(p); cell != CellEmpty {
				sink.DrawCell(p, cell)
			}
		}
	}
	sink.DrawScore(s.score)
}

// Settings returns the rules the session was built with.
func (s *Session) Settings() Settings { return s.settings }

// Score returns the points collected so far.
func (s *Session) Score() int { return s.score }

// Status returns the state machine position.
func (s *Session) Status() Status { return s.status }

// Reason returns why the session was lost, ReasonNone otherwise.
func (s *Session) Reason() Reason { return s.reason }

// Food returns the food cell and whether food is on the board.
func (s *Session) Food() (Point, bool) { return s.food, s.hasFood }

// Len returns the body length.
func (s *Session) Len() int { return s.body.Len() }

// Head returns the head segment.
func (s *Session) Head() Segment { return s.body.Head() }

// Segments returns the body from head to tail.
func (s *Session) Segments() []Segment { return s.body.Segments() }

// Grid exposes the occupancy model. Callers must not modify it.
func (s *Session) Grid() *Grid { return s.grid }

// Eaten returns the number of foods eaten.
func (s *Session) Eaten() int { return s.eaten }

// Ticks returns the number of steps taken.
func (s *Session) Ticks() uint64 { return s.tick }

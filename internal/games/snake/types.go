package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Engine errors.
var (
	ErrInvalidGrid   = errors.New("snake: grid dimensions must be positive")
	ErrInvalidLength = errors.New("snake: starting length must be at least 1")
	ErrOverlap       = errors.New("snake: initial body overlaps itself")
	ErrBodyFull      = errors.New("snake: body storage exhausted")
)

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBody
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate. Rows grow downwards.
type Point struct {
	Row, Col int
}

// Direction is a segment's travel direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction as (rows, cols).
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Input is the single event consumed by one tick.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
)

// Direction returns the turn requested by the input, if any.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirUp, true
	case InputDown:
		return DirDown, true
	case InputLeft:
		return DirLeft, true
	case InputRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// InputFromAction maps a platform action to an engine input.
func InputFromAction(a core.Action) Input {
	switch a {
	case core.ActionUp:
		return InputUp
	case core.ActionDown:
		return InputDown
	case core.ActionLeft:
		return InputLeft
	case core.ActionRight:
		return InputRight
	case core.ActionQuit:
		return InputQuit
	default:
		return InputNone
	}
}

// Status is the session state machine. Lost and Quit are terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusLost
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Reason tags why a session was lost.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSelfCollision
	ReasonBoardFull
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonSelfCollision:
		return "self-collision"
	case ReasonBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Display geometry around the field: a one-cell border on every side of the
// grid plus a four-line score panel at the bottom.
const (
	borderSize   = 1
	panelHeight  = 4
	extraRows    = 2*borderSize + panelHeight
	extraColumns = 2 * borderSize
)

// Text shown around the field.
const (
	FieldTitle = "Snake"
	PanelTitle = "Score"
	HelpLine   = "F2 anytime to *rage* quit. Arrow keys to move."
	ByeMessage = "Leaving...bye! See you later :)"
)

// ScoreLine formats the score panel line.
func ScoreLine(score int) string {
	return fmt.Sprintf("Points: %d", score)
}

// GoodbyeLine returns the farewell shown after a session ends.
func GoodbyeLine(r Result) string {
	if r.Status == StatusLost {
		return fmt.Sprintf("You scored %d points!", r.Score)
	}
	return ByeMessage
}

// Size is a display size in character cells.
type Size struct {
	Rows, Cols int
}

func (s Size) String() string {
	return fmt.Sprintf("%d rows x %d cols", s.Rows, s.Cols)
}

// DisplayTooSmallError reports a display that cannot hold the field.
type DisplayTooSmallError struct {
	Need Size
	Have Size
}

func (e *DisplayTooSmallError) Error() string {
	return fmt.Sprintf("This screen has %d rows and %d columns. Enlarge it.\nYou need at least %d rows and %d columns.",
		e.Have.Rows, e.Have.Cols, e.Need.Rows, e.Need.Cols)
}

// RequiredSize returns the smallest display that fits a rows x cols grid.
func RequiredSize(rows, cols int) Size {
	return Size{Rows: rows + extraRows, Cols: cols + extraColumns}
}

// CheckDisplay fails with *DisplayTooSmallError when a display of have cells
// cannot hold a rows x cols grid.
func CheckDisplay(rows, cols int, have Size) error {
	need := RequiredSize(rows, cols)
	if have.Rows < need.Rows || have.Cols < need.Cols {
		return &DisplayTooSmallError{Need: need, Have: have}
	}
	return nil
}

// Layout places the bordered field and the score panel on a display.
type Layout struct {
	Display Size
	Field   core.Rect // includes the border
	Panel   core.Rect // includes the border, spans the display width
}

// NewLayout centres the field in the space above the score panel, which sits
// on the last four lines. It fails like CheckDisplay.
func NewLayout(rows, cols int, display Size) (Layout, error) {
	if err := CheckDisplay(rows, cols, display); err != nil {
		return Layout{}, err
	}
	fieldW := cols + extraColumns
	fieldH := rows + 2*borderSize
	return Layout{
		Display: display,
		Field: core.NewRect(
			(display.Cols-fieldW)/2,
			(display.Rows-extraRows-rows)/2,
			fieldW, fieldH,
		),
		Panel: core.NewRect(0, display.Rows-panelHeight, display.Cols, panelHeight),
	}, nil
}

// CellAt returns the display position (x, y) of a grid cell.
func (l Layout) CellAt(p Point) (int, int) {
	return l.Field.X + borderSize + p.Col, l.Field.Y + borderSize + p.Row
}

// TitleAt returns where the field title starts.
func (l Layout) TitleAt() (int, int) {
	return l.Field.X + borderSize, l.Field.Y
}

// ScoreAt returns where the score line starts.
func (l Layout) ScoreAt() (int, int) {
	return l.Panel.X + borderSize, l.Panel.Y + 1
}

// HelpAt returns where the help line starts.
func (l Layout) HelpAt() (int, int) {
	return l.Panel.X + borderSize, l.Panel.Y + 2
}

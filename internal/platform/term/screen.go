// Package term is the plain terminal frontend. It draws the session straight
// onto a tcell screen, cell by cell, and reads keys with a per-tick timeout.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	styleDefault = tcell.StyleDefault
	styleBody    = styleFor(snake.ColorBody)
	styleFood    = styleFor(snake.ColorFood)
	stylePanel   = styleFor(snake.ColorPanel)
	styleBorder  = styleFor(snake.ColorBorder)
)

func styleFor(c core.Color) tcell.Style {
	switch c {
	case core.ColorRed:
		return styleDefault.Foreground(tcell.ColorMaroon)
	case core.ColorGreen:
		return styleDefault.Foreground(tcell.ColorGreen)
	case core.ColorYellow:
		return styleDefault.Foreground(tcell.ColorOlive).Bold(true)
	case core.ColorBlue:
		return styleDefault.Foreground(tcell.ColorNavy)
	case core.ColorMagenta:
		return styleDefault.Foreground(tcell.ColorPurple)
	case core.ColorCyan:
		return styleDefault.Foreground(tcell.ColorTeal).Bold(true)
	case core.ColorWhite:
		return styleDefault.Foreground(tcell.ColorSilver)
	case core.ColorGray:
		return styleDefault.Foreground(tcell.ColorGray)
	default:
		return styleDefault
	}
}

// Frontend renders a session on a tcell screen and feeds it keys. It is both
// the session's RenderSink and its InputSource.
type Frontend struct {
	screen tcell.Screen
	rows   int
	cols   int
	body   rune
	food   rune
	layout snake.Layout
	score  int

	// redraw repaints the field after the screen was cleared.
	redraw func(snake.RenderSink)

	events chan tcell.Event
	done   chan struct{}
}

// NewFrontend lays out a rows x cols field on screen, which must already be
// initialised. It fails with *snake.DisplayTooSmallError when the field does
// not fit.
func NewFrontend(screen tcell.Screen, rows, cols int, glyphs config.GlyphConfig) (*Frontend, error) {
	f := &Frontend{
		screen: screen,
		rows:   rows,
		cols:   cols,
		body:   glyphs.BodyRune(),
		food:   glyphs.FoodRune(),
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
	if err := f.relayout(); err != nil {
		return nil, err
	}

	screen.SetStyle(styleDefault)
	screen.HideCursor()
	f.drawChrome()

	go f.pump()
	return f, nil
}

// Attach makes the frontend repaint s whenever it has to clear the screen.
func (f *Frontend) Attach(s *snake.Session) {
	f.redraw = s.Redraw
}

// Close stops forwarding events. The screen itself stays open.
func (f *Frontend) Close() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

// pump forwards screen events until the screen is finalised or Close is called.
func (f *Frontend) pump() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			close(f.events)
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

func (f *Frontend) relayout() error {
	w, h := f.screen.Size()
	l, err := snake.NewLayout(f.rows, f.cols, snake.Size{Rows: h, Cols: w})
	if err != nil {
		return err
	}
	f.layout = l
	return nil
}

// Layout returns the current placement of the field and panel.
func (f *Frontend) Layout() snake.Layout {
	return f.layout
}

// DrawCell paints one grid cell.
func (f *Frontend) DrawCell(p snake.Point, c snake.Cell) {
	x, y := f.layout.CellAt(p)
	switch c {
	case snake.CellBody:
		f.screen.SetContent(x, y, f.body, nil, styleBody)
	case snake.CellFood:
		f.screen.SetContent(x, y, f.food, nil, styleFood)
	default:
		f.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
}

// DrawScore rewrites the score line of the panel.
func (f *Frontend) DrawScore(score int) {
	f.score = score
	x, y := f.layout.ScoreAt()
	p := f.layout.Panel
	f.fill(x, y, p.X+p.W-1-x, ' ', styleDefault)
	f.text(x, y, snake.ScoreLine(score), stylePanel)
}

// drawChrome clears the screen and draws the borders, titles and help line.
func (f *Frontend) drawChrome() {
	f.screen.Clear()

	f.frame(f.layout.Field, styleBorder)
	x, y := f.layout.TitleAt()
	f.text(x, y, snake.FieldTitle, styleBorder)

	f.frame(f.layout.Panel, stylePanel)
	f.text(f.layout.Panel.X+1, f.layout.Panel.Y, snake.PanelTitle, stylePanel)
	x, y = f.layout.HelpAt()
	f.text(x, y, snake.HelpLine, styleDefault)

	f.DrawScore(f.score)
}

// repaint redraws everything after a resize.
func (f *Frontend) repaint() error {
	if err := f.relayout(); err != nil {
		return err
	}
	f.screen.Sync()
	f.drawChrome()
	if f.redraw != nil {
		f.redraw(f)
	}
	return nil
}

func (f *Frontend) frame(r core.Rect, st tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		f.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, st)
		f.screen.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		f.screen.SetContent(r.X, y, tcell.RuneVLine, nil, st)
		f.screen.SetContent(right, y, tcell.RuneVLine, nil, st)
	}
	f.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, st)
	f.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, st)
	f.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, st)
	f.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
}

func (f *Frontend) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (f *Frontend) fill(x, y, n int, r rune, st tcell.Style) {
	for i := 0; i < n; i++ {
		f.screen.SetContent(x+i, y, r, nil, st)
	}
}

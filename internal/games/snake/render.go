package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Field colours.
const (
	ColorBody   = core.ColorGreen
	ColorFood   = core.ColorRed
	ColorPanel  = core.ColorYellow
	ColorBorder = core.ColorCyan
)

// canvas is a RenderSink that mirrors the field as the session reports it.
type canvas struct {
	cols  int
	cells []Cell
	score int
}

func newCanvas(rows, cols int) *canvas {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return &canvas{cols: cols, cells: make([]Cell, rows*cols)}
}

func (c *canvas) DrawCell(p Point, cell Cell) {
	c.cells[p.Row*c.cols+p.Col] = cell
}

func (c *canvas) DrawScore(score int) {
	c.score = score
}

// Render draws the bordered field, the score panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.Settings()
	layout, err := NewLayout(s.Rows, s.Cols, Size{Rows: dst.Height(), Cols: dst.Width()})
	if err != nil {
		g.renderTooSmall(dst, err)
		return
	}

	g.renderField(dst, layout)
	g.renderPanel(dst, layout)

	if g.session != nil && g.session.Status() != StatusRunning {
		g.renderOverlay(dst, GoodbyeLine(g.Result()), "Press R to restart, Q to leave")
	}
}

func (g *Game) renderField(dst *core.Screen, l Layout) {
	dst.DrawFrame(l.Field, ColorBorder)
	x, y := l.TitleAt()
	dst.DrawTextColored(x, y, FieldTitle, ColorBorder)

	if g.canvas == nil {
		return
	}
	body := g.cfg.Glyphs.BodyRune()
	food := g.cfg.Glyphs.FoodRune()
	for i, cell := range g.canvas.cells {
		p := Point{Row: i / g.canvas.cols, Col: i % g.canvas.cols}
		cx, cy := l.CellAt(p)
		switch cell {
		case CellBody:
			dst.SetColored(cx, cy, body, ColorBody)
		case CellFood:
			dst.SetColored(cx, cy, food, ColorFood)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, l Layout) {
	dst.DrawFrame(l.Panel, ColorPanel)
	dst.DrawTextColored(l.Panel.X+borderSize, l.Panel.Y, PanelTitle, ColorPanel)

	score := 0
	if g.canvas != nil {
		score = g.canvas.score
	}
	x, y := l.ScoreAt()
	dst.DrawTextColored(x, y, ScoreLine(score), ColorPanel)
	x, y = l.HelpAt()
	dst.DrawTextColored(x, y, HelpLine, ColorPanel)
}

func (g *Game) renderTooSmall(dst *core.Screen, err error) {
	tooSmall, ok := err.(*DisplayTooSmallError)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, err.Error(), core.ColorRed)
		return
	}
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(mid, "Need "+tooSmall.Need.String()+", have "+tooSmall.Have.String(), core.ColorDefault)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorDefault)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawFrame(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

package snake

// RenderSink receives the draw instructions produced by a session. The engine
// does not know how they end up on screen.
type RenderSink interface {
	// DrawCell sets the glyph at a grid cell to blank, body or food.
	DrawCell(p Point, c Cell)
	// DrawScore updates the score display.
	DrawScore(score int)
}

// DrawKind distinguishes recorded draw instructions.
type DrawKind int

const (
	DrawKindCell DrawKind = iota
	DrawKindScore
)

// DrawOp is one recorded draw instruction.
type DrawOp struct {
	Kind  DrawKind
	Pos   Point // DrawKindCell only
	Cell  Cell  // DrawKindCell only
	Score int   // DrawKindScore only
}

// Recorder is a RenderSink that keeps every instruction it receives.
type Recorder struct {
	Ops []DrawOp
}

// DrawCell records a cell update.
func (r *Recorder) DrawCell(p Point, c Cell) {
	r.Ops = append(r.Ops, DrawOp{Kind: DrawKindCell, Pos: p, Cell: c})
}

// DrawScore records a score update.
func (r *Recorder) DrawScore(score int) {
	r.Ops = append(r.Ops, DrawOp{Kind: DrawKindScore, Score: score})
}

// Reset forgets the recorded instructions.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Cells returns the final state of every cell touched since the last Reset.
func (r *Recorder) Cells() map[Point]Cell {
	out := make(map[Point]Cell)
	for _, op := range r.Ops {
		if op.Kind == DrawKindCell {
			out[op.Pos] = op.Cell
		}
	}
	return out
}

// LastScore returns the most recent score update, or -1 if there was none.
func (r *Recorder) LastScore() int {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == DrawKindScore {
			return r.Ops[i].Score
		}
	}
	return -1
}

// NopSink discards all draw instructions.
type NopSink struct{}

func (NopSink) DrawCell(Point, Cell) {}
func (NopSink) DrawScore(int)        {}

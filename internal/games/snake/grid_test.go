package snake

import (
	"errors"
	"testing"
)

func TestNewGridInvalid(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
	}
	for _, tt := range tests {
		if _, err := NewGrid(tt.rows, tt.cols); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGrid(%d, %d) error = %v, expected ErrInvalidGrid", tt.rows, tt.cols, err)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g, err := NewGrid(30, 120)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{0, 0}},
		{Point{-1, 0}, Point{29, 0}},
		{Point{30, 0}, Point{0, 0}},
		{Point{0, -1}, Point{0, 119}},
		{Point{0, 120}, Point{0, 0}},
		{Point{-31, 241}, Point{29, 1}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestGridStepWraps(t *testing.T) {
	g, _ := NewGrid(30, 120)

	tests := []struct {
		from Point
		dir  Direction
		want Point
	}{
		{Point{0, 0}, DirUp, Point{29, 0}},
		{Point{29, 5}, DirDown, Point{0, 5}},
		{Point{7, 0}, DirLeft, Point{7, 119}},
		{Point{7, 119}, DirRight, Point{7, 0}},
		{Point{7, 7}, DirRight, Point{7, 8}},
	}
	for _, tt := range tests {
		if got := g.Step(tt.from, tt.dir); got != tt.want {
			t.Errorf("Step(%v, %v) = %v, expected %v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestGridSetGetCount(t *testing.T) {
	g, _ := NewGrid(3, 4)

	if got := g.CountFree(); got != 12 {
		t.Fatalf("CountFree() = %d, expected 12", got)
	}

	g.Set(Point{0, 0}, CellBody)
	g.Set(Point{1, 1}, CellBody)
	g.Set(Point{2, 3}, CellFood)

	if got := g.Get(Point{1, 1}); got != CellBody {
		t.Errorf("Get(1,1) = %v, expected body", got)
	}
	if got := g.Get(Point{2, 3}); got != CellFood {
		t.Errorf("Get(2,3) = %v, expected food", got)
	}
	if got := g.CountFree(); got != 9 {
		t.Errorf("CountFree() = %d, expected 9", got)
	}
	if got := g.Count(CellBody); got != 2 {
		t.Errorf("Count(body) = %d, expected 2", got)
	}
}

func TestGridAppendFreeRowMajor(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.Set(Point{0, 1}, CellBody)

	free := g.AppendFree(nil)
	want := []Point{{0, 0}, {1, 0}, {1, 1}}
	if len(free) != len(want) {
		t.Fatalf("AppendFree() = %v, expected %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("AppendFree()[%d] = %v, expected %v", i, free[i], want[i])
		}
	}
}

func TestGridFlush(t *testing.T) {
	g, _ := NewGrid(3, 3)
	rec := &Recorder{}

	g.Set(Point{1, 1}, CellBody)
	g.Set(Point{0, 2}, CellFood)
	g.Set(Point{1, 1}, CellEmpty) // back to the flushed state
	g.Set(Point{2, 0}, CellFood)
	g.Set(Point{2, 0}, CellBody)
	g.Flush(rec)

	want := []DrawOp{
		{Kind: DrawKindCell, Pos: Point{0, 2}, Cell: CellFood},
		{Kind: DrawKindCell, Pos: Point{2, 0}, Cell: CellBody},
	}
	if len(rec.Ops) != len(want) {
		t.Fatalf("Flush() ops = %+v, expected %+v", rec.Ops, want)
	}
	for i := range want {
		if rec.Ops[i] != want[i] {
			t.Errorf("op %d = %+v, expected %+v", i, rec.Ops[i], want[i])
		}
	}

	// Nothing left to report.
	rec.Reset()
	g.Flush(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("second Flush() ops = %+v, expected none", rec.Ops)
	}
}

func TestGridFlushNilSink(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.Set(Point{0, 0}, CellBody)
	g.Flush(nil)

	rec := &Recorder{}
	g.Flush(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("Flush() after nil flush ops = %+v, expected none", rec.Ops)
	}
}

package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid is the authoritative occupancy map of the board.
//
// Callers pass coordinates that are already wrapped; Wrap does that. Set
// remembers which cells changed so the next Flush can report them to a
// RenderSink.
type Grid struct {
	rows, cols int
	cells      []Cell
	dirty      []int  // indexes touched since the last flush, in order
	isDirty    []bool // index -> listed in dirty
	before     []Cell // state of a dirty cell at its first touch
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidGrid
	}
	n := rows * cols
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, n),
		isDirty: make([]bool, n),
		before:  make([]Cell, n),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Wrap maps any point onto the torus.
func (g *Grid) Wrap(p Point) Point {
	return Point{Row: core.Wrap(p.Row, g.rows), Col: core.Wrap(p.Col, g.cols)}
}

// Step returns the wrapped neighbour of p in direction d.
func (g *Grid) Step(p Point, d Direction) Point {
	dr, dc := d.Delta()
	return g.Wrap(Point{Row: p.Row + dr, Col: p.Col + dc})
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Get returns the state of a cell.
func (g *Grid) Get(p Point) Cell {
	return g.cells[g.index(p)]
}

// Set changes the state of a cell.
func (g *Grid) Set(p Point, c Cell) {
	i := g.index(p)
	if !g.isDirty[i] {
		g.isDirty[i] = true
		g.before[i] = g.cells[i]
		g.dirty = append(g.dirty, i)
	}
	g.cells[i] = c
}

// CountFree returns the number of empty cells.
func (g *Grid) CountFree() int {
	free := 0
	for _, c := range g.cells {
		if c == CellEmpty {
			free++
		}
	}
	return free
}

// Count returns the number of cells in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// AppendFree appends every empty cell, in row-major order, to buf.
func (g *Grid) AppendFree(buf []Point) []Point {
	for i, c := range g.cells {
		if c == CellEmpty {
			buf = append(buf, Point{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return buf
}

// Flush reports each cell whose state differs from the last flush, in
// first-touched order. Cells that were vacated and reclaimed within the same
// tick are skipped. A nil sink just clears the dirty set.
func (g *Grid) Flush(sink RenderSink) {
	for _, i := range g.dirty {
		g.isDirty[i] = false
		if sink != nil && g.cells[i] != g.before[i] {
			sink.DrawCell(Point{Row: i / g.cols, Col: i % g.cols}, g.cells[i])
		}
	}
	g.dirty = g.dirty[:0]
}

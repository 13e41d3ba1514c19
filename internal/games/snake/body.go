package snake

// Segment is one cell-sized unit of the body.
type Segment struct {
	Pos Point
	Dir Direction
}

// segment is an arena record. next points towards the tail, prev towards the
// head; the chain is circular, so the head's prev is the tail.
type segment struct {
	Segment
	next, prev int
}

// Body is the snake: a circular doubly-linked chain of segments stored in a
// fixed arena addressed by index. The arena is sized once, so growing never
// allocates and head/tail access and appends are O(1).
type Body struct {
	segs []segment
	head int
}

// NewBody creates an empty body able to hold capacity segments.
func NewBody(capacity int) *Body {
	return &Body{
		segs: make([]segment, 0, capacity),
		head: -1,
	}
}

// Init lays out length segments in a straight line starting at center and
// extending away from dir, all travelling in dir, and marks them on the grid.
// A layout that would cover a cell twice fails with ErrOverlap and leaves the
// grid untouched.
func (b *Body) Init(g *Grid, center Point, length int, dir Direction) error {
	if length < 1 {
		return ErrInvalidLength
	}
	if length > cap(b.segs) {
		return ErrBodyFull
	}

	cells := make([]Point, 0, length)
	p := g.Wrap(center)
	back := dir.Opposite()
	for i := 0; i < length; i++ {
		if g.Get(p) == CellBody {
			return ErrOverlap
		}
		for _, prev := range cells {
			if prev == p {
				return ErrOverlap
			}
		}
		cells = append(cells, p)
		p = g.Step(p, back)
	}

	b.segs = b.segs[:0]
	for i, pos := range cells {
		b.segs = append(b.segs, segment{
			Segment: Segment{Pos: pos, Dir: dir},
			next:    (i + 1) % length,
			prev:    (i + length - 1) % length,
		})
		g.Set(pos, CellBody)
	}
	b.head = 0
	return nil
}

// Head returns the head segment.
func (b *Body) Head() Segment {
	return b.segs[b.head].Segment
}

// Tail returns the tail segment.
func (b *Body) Tail() Segment {
	return b.segs[b.tail()].Segment
}

func (b *Body) tail() int {
	return b.segs[b.head].prev
}

// GrowAt appends a segment after the tail and marks its cell. It returns
// ErrBodyFull when the arena has no room left; the chain is unchanged then.
func (b *Body) GrowAt(g *Grid, pos Point, dir Direction) error {
	if len(b.segs) == cap(b.segs) {
		return ErrBodyFull
	}

	tail := b.tail()
	i := len(b.segs)
	b.segs = append(b.segs, segment{
		Segment: Segment{Pos: pos, Dir: dir},
		next:    b.head,
		prev:    tail,
	})
	b.segs[tail].next = i
	b.segs[b.head].prev = i
	g.Set(pos, CellBody)
	return nil
}

// Len counts the segments by walking the chain.
func (b *Body) Len() int {
	if b.head < 0 {
		return 0
	}
	n := 1
	for i := b.segs[b.head].next; i != b.head; i = b.segs[i].next {
		n++
	}
	return n
}

// Segments returns the segments ordered from head to tail.
func (b *Body) Segments() []Segment {
	if b.head < 0 {
		return nil
	}
	out := make([]Segment, 0, len(b.segs))
	i := b.head
	for {
		out = append(out, b.segs[i].Segment)
		i = b.segs[i].next
		if i == b.head {
			return out
		}
	}
}

// Release drops every segment. The arena keeps its capacity.
func (b *Body) Release() {
	b.segs = b.segs[:0]
	b.head = -1
}

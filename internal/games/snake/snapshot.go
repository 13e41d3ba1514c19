package snake

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Eaten   int
	Len     int
	Head    Point
	Dir     Direction
	Food    Point
	HasFood bool
	Free    int // empty cells
	Status  Status
	Reason  Reason
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.body.Head()
	return Snapshot{
		Tick:    s.tick,
		Score:   s.score,
		Eaten:   s.eaten,
		Len:     s.body.Len(),
		Head:    head.Pos,
		Dir:     head.Dir,
		Food:    s.food,
		HasFood: s.hasFood,
		Free:    s.grid.CountFree(),
		Status:  s.status,
		Reason:  s.reason,
	}
}

// Snapshot returns the snapshot of the current session, or the zero value
// before the first Reset.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

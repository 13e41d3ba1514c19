package snake

// move advances the body one cell. It returns true when food was eaten.
//
// The collision check runs against the occupancy before anything moves, so
// the head may not enter the cell the tail is about to leave.
func (s *Session) move() bool {
	g, b := s.grid, s.body

	dest := g.Step(b.Head().Pos, b.Head().Dir)
	eat := false
	switch g.Get(dest) {
	case CellBody:
		s.lose(ReasonSelfCollision)
		return false
	case CellFood:
		eat = true
	}

	oldTail := b.Tail()

	// Head to tail: vacate the old cell, claim the next one. Each segment
	// lands on the cell its predecessor just left.
	i := b.head
	for {
		seg := &b.segs[i]
		g.Set(seg.Pos, CellEmpty)
		seg.Pos = g.Step(seg.Pos, seg.Dir)
		g.Set(seg.Pos, CellBody)
		i = seg.next
		if i == b.head {
			break
		}
	}

	if !eat {
		return false
	}

	s.hasFood = false
	// The arena is sized to the board, so this only fails if the body
	// already covers every cell; that tick simply does not grow.
	_ = b.GrowAt(g, oldTail.Pos, oldTail.Dir)

	s.score += s.settings.FoodReward
	s.eaten++
	if g.CountFree() == 0 {
		s.lose(ReasonBoardFull)
		return true
	}
	s.placeFood()
	return true
}

package snake

// placeFood puts food on an empty cell chosen uniformly at random from the
// grid model. With no empty cell left the session is lost as BoardFull.
func (s *Session) placeFood() bool {
	s.free = s.grid.AppendFree(s.free[:0])
	if len(s.free) == 0 {
		s.hasFood = false
		s.lose(ReasonBoardFull)
		return false
	}

	p := s.free[s.rng.Intn(len(s.free))]
	s.grid.Set(p, CellFood)
	s.food = p
	s.hasFood = true
	return true
}

package engine

// MiniMax is AlphaBeta without pruning. It visits every node down to the
// horizon and returns the same value; kept as the reference the pruning
// search is checked against.
func (s *Searcher) MiniMax(depth, limit int) Score {
	if depth > limit {
		violate("search depth %d beyond limit %d", depth, limit)
	}
	if depth == limit {
		s.Stats.Leaves++
		return s.eval.Evaluate(s.board)
	}
	s.Stats.Nodes++

	isWhiteMove := s.board.SideToMove().Maximizing()
	best := worst(s.board.SideToMove())

	for _, move := range s.board.LegalMoves() {
		s.board.Apply(move)
		score := s.MiniMax(depth+1, limit)
		s.board.Undo()

		if isWhiteMove {
			best = maxScore(best, score)
		} else {
			best = minScore(best, score)
		}
	}
	return best
}

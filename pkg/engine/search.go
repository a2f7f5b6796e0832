package engine

type Stats struct {
	Nodes   int // interior nodes expanded
	Leaves  int // horizon evaluations
	Cutoffs int
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	s.Cutoffs += o.Cutoffs
}

// Searcher runs depth-limited searches over one board. It is not safe for
// concurrent use; give each goroutine its own board and Searcher.
type Searcher struct {
	board Board
	eval  Evaluator
	Stats Stats

	done    <-chan struct{}
	stopped bool
}

func NewSearcher(b Board, eval Evaluator) *Searcher {
	return &Searcher{board: b, eval: eval}
}

// StopOn makes the searcher give up once done is closed. An abandoned
// search still unwinds every move it applied, but its scores are
// meaningless; check Stopped before using them.
func (s *Searcher) StopOn(done <-chan struct{}) {
	s.done = done
}

func (s *Searcher) Stopped() bool {
	return s.stopped
}

func (s *Searcher) halted() bool {
	if s.stopped || s.done == nil {
		return s.stopped
	}
	select {
	case <-s.done:
		s.stopped = true
	default:
	}
	return s.stopped
}

// AlphaBeta returns the minimax value of the current position searched from
// depth to limit, pruning branches that cannot change the value seen by the
// caller's (alpha, beta) window. White maximizes, black minimizes.
//
// A position with no legal moves above the horizon scores as the sentinel
// of the side to move: -Inf when white is stuck, +Inf when black is.
func (s *Searcher) AlphaBeta(depth, limit int, alpha, beta Score) Score {
	if depth > limit {
		violate("search depth %d beyond limit %d", depth, limit)
	}
	if depth == limit {
		s.Stats.Leaves++
		return s.eval.Evaluate(s.board)
	}
	if s.halted() {
		return worst(s.board.SideToMove())
	}
	s.Stats.Nodes++

	moves := s.board.LegalMoves()

	if s.board.SideToMove().Maximizing() {
		best := -Inf
		for _, move := range moves {
			s.board.Apply(move)
			score := s.AlphaBeta(depth+1, limit, alpha, beta)
			s.board.Undo()

			if s.stopped {
				break
			}
			best = maxScore(best, score)
			alpha = maxScore(alpha, score)
			if beta <= alpha {
				// beta cut-off
				s.Stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := Inf
	for _, move := range moves {
		s.board.Apply(move)
		score := s.AlphaBeta(depth+1, limit, alpha, beta)
		s.board.Undo()

		if s.stopped {
			break
		}
		best = minScore(best, score)
		beta = minScore(beta, score)
		if beta <= alpha {
			// alpha cut-off
			s.Stats.Cutoffs++
			break
		}
	}
	return best
}

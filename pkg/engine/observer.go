package engine

// Observer receives progress from the root selector. Callbacks run on the
// searching goroutine and must not touch the board.
type Observer interface {
	// RootMoveScored is called once per root move with its backed-up score.
	RootMoveScored(m Move, s Score)
	// BestMoveChanged is called when a root move strictly improves on the
	// best score seen so far.
	BestMoveChanged(m Move, s Score)
}

type nopObserver struct{}

func (nopObserver) RootMoveScored(Move, Score)  {}
func (nopObserver) BestMoveChanged(Move, Score) {}

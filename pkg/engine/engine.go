// Package engine picks a move by depth-limited minimax search with
// alpha-beta pruning over a material and mobility evaluation.
//
// The board is borrowed from the caller and mutated in place with
// Apply/Undo; it is handed back exactly as it was received.
package engine

import (
	"context"
	"fmt"
)

// MaxDepth bounds the depth limit, and with it the recursion depth.
const MaxDepth = 16

type Engine struct {
	depth    int
	eval     Evaluator
	observer Observer
}

type Option func(*Engine)

func WithEvaluator(eval Evaluator) Option {
	return func(e *Engine) {
		e.eval = eval
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// New returns an engine searching depth plies below the root.
func New(depth int, opts ...Option) (*Engine, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, depth, MaxDepth)
	}
	e := &Engine{
		depth:    depth,
		eval:     NewMaterialMobility(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Depth() int {
	return e.depth
}

type SearchResult struct {
	Move  Move
	Score Score
	// Fallback is set when no root move improved on the starting sentinel
	// and the first legal move was returned instead.
	Fallback bool
	Stats    Stats
}

// Search scores every root move with a full (-Inf, +Inf) window and returns
// the best one for the side to move. Ties keep the earliest move. It
// returns ErrNoLegalMoves when the side to move has no move.
func (e *Engine) Search(b Board) (SearchResult, error) {
	return e.SearchContext(context.Background(), b)
}

// SearchContext is Search that gives up with ctx.Err() once ctx is done.
// The board is restored either way.
func (e *Engine) SearchContext(ctx context.Context, b Board) (SearchResult, error) {
	if e.depth < 1 {
		violate("depth limit %d", e.depth)
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}

	ply, hasPly := plyOf(b)
	s := NewSearcher(b, e.eval)
	s.StopOn(ctx.Done())
	sel := newSelector(b.SideToMove(), e.observer)

	for _, move := range moves {
		if s.halted() {
			break
		}
		b.Apply(move)
		score := s.AlphaBeta(1, e.depth, -Inf, Inf)
		b.Undo()

		if s.Stopped() {
			break
		}
		sel.consider(move, score)
	}

	if hasPly {
		checkBalance(b, ply)
	}
	if s.Stopped() {
		return SearchResult{Stats: s.Stats}, ctx.Err()
	}

	result := sel.result(moves)
	result.Stats = s.Stats
	return result, nil
}

// selector tracks the best root move for one side.
type selector struct {
	side      Side
	observer  Observer
	bestMove  Move
	bestScore Score
}

func newSelector(side Side, observer Observer) *selector {
	return &selector{
		side:      side,
		observer:  observer,
		bestScore: worst(side),
	}
}

func (sel *selector) consider(move Move, score Score) {
	sel.observer.RootMoveScored(move, score)

	improved := score > sel.bestScore
	if !sel.side.Maximizing() {
		improved = score < sel.bestScore
	}
	if improved {
		sel.bestMove, sel.bestScore = move, score
		sel.observer.BestMoveChanged(move, score)
	}
}

func (sel *selector) result(moves []Move) SearchResult {
	if sel.bestMove == nil {
		return SearchResult{Move: moves[0], Score: sel.bestScore, Fallback: true}
	}
	return SearchResult{Move: sel.bestMove, Score: sel.bestScore}
}

func plyOf(b Board) (int, bool) {
	if p, ok := b.(Plier); ok {
		return p.Ply(), true
	}
	return 0, false
}

func checkBalance(b Board, want int) {
	if got, _ := plyOf(b); got != want {
		violate("board left at ply %d, started at %d", got, want)
	}
}

package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SearchParallel is Search with the root moves scored concurrently, one
// clone of the board per root move. Scores are reduced in move order, so
// the result matches Search exactly. Boards that are not Cloners are
// searched sequentially with SearchContext. The caller's board is only read.
func (e *Engine) SearchParallel(ctx context.Context, b Board) (SearchResult, error) {
	cloner, ok := b.(Cloner)
	if !ok {
		return e.SearchContext(ctx, b)
	}
	if e.depth < 1 {
		violate("depth limit %d", e.depth)
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}

	scores := make([]Score, len(moves))
	stats := make([]Stats, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := cloner.Clone()
			child.Apply(move)
			s := NewSearcher(child, e.eval)
			s.StopOn(ctx.Done())
			scores[i] = s.AlphaBeta(1, e.depth, -Inf, Inf)
			child.Undo()
			stats[i] = s.Stats
			if s.Stopped() {
				return ctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	sel := newSelector(b.SideToMove(), e.observer)
	var total Stats
	for i, move := range moves {
		sel.consider(move, scores[i])
		total.add(stats[i])
	}
	result := sel.result(moves)
	result.Stats = total
	return result, nil
}

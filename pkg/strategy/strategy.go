// Package strategy holds the ways a player can pick its next move. The
// search engine is one of them; the others are simple baselines.
package strategy

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/engine"
	"github.com/qnkhuat/fatbot/pkg/rules"
)

const (
	NameFatBot       = "fatbot"
	NameRandom       = "random"
	NameAlphabetical = "alphabetical"
	NameFirstMove    = "firstmove"
)

// Names lists the known strategies, the default first.
var Names = []string{NameFatBot, NameRandom, NameAlphabetical, NameFirstMove}

// Choice is a picked move. Score and Stats are only filled by strategies
// that search.
type Choice struct {
	Move     *chess.Move
	Score    engine.Score
	Fallback bool
	Stats    engine.Stats
}

// Strategy picks a legal move for the side to move. It returns
// engine.ErrNoLegalMoves when there is none and leaves the board as it
// found it.
type Strategy interface {
	Name() string
	Move(ctx context.Context, b *rules.Board) (Choice, error)
}

type Options struct {
	Depth    int
	Parallel bool
	Engine   []engine.Option
	// Seed for the random strategy, zero picks a fresh one.
	Seed int64
}

// New builds the named strategy.
func New(name string, opts Options) (Strategy, error) {
	switch name {
	case NameFatBot:
		e, err := engine.New(opts.Depth, opts.Engine...)
		if err != nil {
			return nil, err
		}
		return &FatBot{engine: e, parallel: opts.Parallel}, nil
	case NameRandom:
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewRandomMove(seed), nil
	case NameAlphabetical:
		return Alphabetical{}, nil
	case NameFirstMove:
		return FirstMove{}, nil
	default:
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}
}

// FatBot searches with the alpha-beta engine.
type FatBot struct {
	engine   *engine.Engine
	parallel bool
}

func NewFatBot(e *engine.Engine, parallel bool) *FatBot {
	return &FatBot{engine: e, parallel: parallel}
}

func (f *FatBot) Name() string {
	return NameFatBot
}

func (f *FatBot) Move(ctx context.Context, b *rules.Board) (Choice, error) {
	var (
		res engine.SearchResult
		err error
	)
	if f.parallel {
		res, err = f.engine.SearchParallel(ctx, b)
	} else {
		res, err = f.engine.SearchContext(ctx, b)
	}
	if err != nil {
		return Choice{}, err
	}
	return Choice{
		Move:     res.Move.(*chess.Move),
		Score:    res.Score,
		Fallback: res.Fallback,
		Stats:    res.Stats,
	}, nil
}

// RandomMove plays a uniformly random legal move.
type RandomMove struct {
	rnd *rand.Rand
}

func NewRandomMove(seed int64) *RandomMove {
	return &RandomMove{rnd: rand.New(rand.NewSource(seed))}
}

func (r *RandomMove) Name() string {
	return NameRandom
}

func (r *RandomMove) Move(_ context.Context, b *rules.Board) (Choice, error) {
	moves := b.Moves()
	if len(moves) == 0 {
		return Choice{}, engine.ErrNoLegalMoves
	}
	return Choice{Move: moves[r.rnd.Intn(len(moves))]}, nil
}

// Alphabetical plays the first move when sorted by algebraic notation.
type Alphabetical struct{}

func (Alphabetical) Name() string {
	return NameAlphabetical
}

func (Alphabetical) Move(_ context.Context, b *rules.Board) (Choice, error) {
	return firstBy(b, b.SAN)
}

// FirstMove plays the first move when sorted by UCI notation.
type FirstMove struct{}

func (FirstMove) Name() string {
	return NameFirstMove
}

func (FirstMove) Move(_ context.Context, b *rules.Board) (Choice, error) {
	return firstBy(b, (*chess.Move).String)
}

func firstBy(b *rules.Board, key func(*chess.Move) string) (Choice, error) {
	moves := append([]*chess.Move(nil), b.Moves()...)
	if len(moves) == 0 {
		return Choice{}, engine.ErrNoLegalMoves
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return key(moves[i]) < key(moves[j])
	})
	return Choice{Move: moves[0]}, nil
}

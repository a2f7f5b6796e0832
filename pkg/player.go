package pkg

import (
	"context"
	"errors"
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/engine"
	"github.com/qnkhuat/fatbot/pkg/rules"
	"github.com/qnkhuat/fatbot/pkg/strategy"
	"go.uber.org/zap"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

func colorOf(c chess.Color) PlayerColor {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return Unknown
	}
}

// Player answers positions with moves picked by its strategy.
type Player struct {
	Name     string
	Strategy strategy.Strategy
	log      *zap.SugaredLogger
}

// Reply is what a player found for one position.
type Reply struct {
	FEN      string
	Color    PlayerColor
	Move     *chess.Move
	SAN      string
	Score    engine.Score
	Fallback bool
	Stats    engine.Stats
	// Status tells checkmate from stalemate when there was no move.
	Status chess.Method
}

func NewPlayer(cfg *Config, log *zap.SugaredLogger) (*Player, error) {
	name := petname.Generate(2, "-")
	log = log.With("player", name)

	s, err := strategy.New(cfg.Strategy, strategy.Options{
		Depth:    cfg.Depth,
		Parallel: cfg.Parallel,
		Seed:     cfg.Seed,
		Engine: []engine.Option{
			engine.WithEvaluator(cfg.Evaluator()),
			engine.WithObserver(LogObserver{log: log}),
		},
	})
	if err != nil {
		return nil, err
	}
	return &Player{Name: name, Strategy: s, log: log}, nil
}

// Play picks a move for b. The board is left as it was. When the side to
// move has no move the error wraps engine.ErrNoLegalMoves and the reply
// carries the terminal status.
func (p *Player) Play(ctx context.Context, b *rules.Board) (Reply, error) {
	reply := Reply{FEN: b.FEN(), Color: colorOf(b.Position().Turn())}

	choice, err := p.Strategy.Move(ctx, b)
	if errors.Is(err, engine.ErrNoLegalMoves) {
		reply.Status = b.Status()
		p.log.Infow("No legal move", "fen", reply.FEN, "status", reply.Status.String())
		return reply, fmt.Errorf("%s: %w", reply.Status, err)
	}
	if err != nil {
		return reply, err
	}

	reply.Move = choice.Move
	reply.SAN = b.SAN(choice.Move)
	reply.Score = choice.Score
	reply.Fallback = choice.Fallback
	reply.Stats = choice.Stats
	p.log.Infow("Found move",
		"fen", reply.FEN,
		"strategy", p.Strategy.Name(),
		"move", reply.Move.String(),
		"score", reply.Score.String(),
		"fallback", reply.Fallback,
		"nodes", reply.Stats.Nodes+reply.Stats.Leaves,
	)
	return reply, nil
}

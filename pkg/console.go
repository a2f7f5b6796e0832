package pkg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/fatbot/pkg/engine"
	"go.uber.org/zap"
)

const Prompt = "Enter FEN string: "

var (
	moveColor  = color.New(color.FgGreen, color.Bold)
	infoColor  = color.New(color.Faint)
	errorColor = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
)

// Console reads one FEN per line and answers with the player's move. An
// empty line ends the session.
type Console struct {
	player *Player
	in     io.Reader
	out    io.Writer
	log    *zap.SugaredLogger
}

func NewConsole(player *Player, in io.Reader, out io.Writer, log *zap.SugaredLogger) *Console {
	return &Console{player: player, in: in, out: out, log: log}
}

func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		c.answer(ctx, strings.TrimSpace(line))
	}
}

func (c *Console) answer(ctx context.Context, fen string) {
	b, err := BoardFromFEN(fen)
	if err != nil {
		c.log.Debugw("Rejected fen", "fen", fen, "error", err)
		errorColor.Fprintln(c.out, "Invalid FEN!")
		return
	}

	reply, err := c.player.Play(ctx, b)
	switch {
	case errors.Is(err, engine.ErrNoLegalMoves):
		warnColor.Fprintf(c.out, "No legal move: %s\n", reply.Status)
		return
	case err != nil:
		errorColor.Fprintf(c.out, "Search failed: %v\n", err)
		return
	}

	moveColor.Fprintf(c.out, "FATBOT found move: %s", reply.Move)
	infoColor.Fprintf(c.out, " (%s, %s)\n", reply.SAN, describe(reply))
}

func describe(r Reply) string {
	var parts []string
	if r.Stats.Nodes+r.Stats.Leaves > 0 {
		parts = append(parts, fmt.Sprintf("score %s", r.Score), fmt.Sprintf("%d nodes", r.Stats.Nodes+r.Stats.Leaves))
	}
	if r.Fallback {
		parts = append(parts, "fallback")
	}
	if len(parts) == 0 {
		return r.Color.String() + " to move"
	}
	return strings.Join(parts, ", ")
}

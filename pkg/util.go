package pkg

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/rules"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. With a log file configured every
// line goes there, which keeps the terminal free for the client.
func NewLogger(cfg *Config, name string) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("error opening log: %w", err)
	}
	return logger.Named(name).Sugar(), nil
}

func BoardFromFEN(fen string) (*rules.Board, error) {
	b, err := rules.FromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return b, nil
}

func squareToColor(sq chess.Square, highlights map[chess.Square]bool, t Theme) tcell.Color {
	if hl, ok := highlights[sq]; ok && hl {
		return t.SquareHigh
	} else if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return t.SquareDark
	} else {
		return t.SquareLight
	}
}

package pkg

import (
	"github.com/qnkhuat/fatbot/pkg/engine"
	"go.uber.org/zap"
)

// LogObserver reports root search progress at debug level.
type LogObserver struct {
	log *zap.SugaredLogger
}

func (o LogObserver) RootMoveScored(m engine.Move, s engine.Score) {
	o.log.Debugw("Root move scored", "move", m.String(), "score", s.String())
}

func (o LogObserver) BestMoveChanged(m engine.Move, s engine.Score) {
	o.log.Debugw("Changing best move", "move", m.String(), "score", s.String())
}

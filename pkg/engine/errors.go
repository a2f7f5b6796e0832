package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoLegalMoves = errors.New("engine: no legal move")
	ErrInvalidDepth = errors.New("engine: invalid depth limit")
)

// ContractViolation is the panic value raised when the engine or its board
// break the apply/undo contract. It is a programming error and is never
// recovered by the engine.
type ContractViolation struct {
	Reason string
}

func (c ContractViolation) Error() string {
	return "engine: contract violation: " + c.Reason
}

func violate(format string, args ...interface{}) {
	panic(ContractViolation{Reason: fmt.Sprintf(format, args...)})
}

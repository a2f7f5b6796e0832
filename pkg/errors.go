package pkg

import "errors"

var (
	ErrInvalidFEN      = errors.New("invalid fen")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrDepthTooDeep    = errors.New("depth above server limit")
)

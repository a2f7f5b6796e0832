// Package rules adapts github.com/notnil/chess to the engine's Board
// contract. Positions are immutable in notnil/chess, so a Board keeps a
// stack of them: Apply pushes the updated position and Undo pops it.
package rules

import (
	"fmt"

	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/engine"
)

const numOfSquaresInBoard = 64

type Board struct {
	positions []*chess.Position
}

// NewBoard returns a board at the standard starting position.
func NewBoard() *Board {
	return FromPosition(chess.NewGame(chess.UseNotation(chess.UCINotation{})).Position())
}

func FromPosition(pos *chess.Position) *Board {
	return &Board{positions: []*chess.Position{pos}}
}

// FromFEN parses a position in Forsyth-Edwards notation.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("rules: invalid fen %q: %w", fen, err)
	}
	game := chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))
	return FromPosition(game.Position()), nil
}

// Position is the current position.
func (b *Board) Position() *chess.Position {
	return b.positions[len(b.positions)-1]
}

func (b *Board) FEN() string {
	return b.Position().String()
}

func (b *Board) Moves() []*chess.Move {
	return b.Position().ValidMoves()
}

func (b *Board) LegalMoves() []engine.Move {
	valid := b.Moves()
	moves := make([]engine.Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

func (b *Board) Apply(m engine.Move) {
	move, ok := m.(*chess.Move)
	if !ok {
		panic(engine.ContractViolation{Reason: fmt.Sprintf("rules: foreign move %T", m)})
	}
	b.positions = append(b.positions, b.Position().Update(move))
}

func (b *Board) Undo() {
	if len(b.positions) == 1 {
		panic(engine.ContractViolation{Reason: "rules: undo without a matching apply"})
	}
	b.positions[len(b.positions)-1] = nil
	b.positions = b.positions[:len(b.positions)-1]
}

// Ply is the number of applied moves not yet undone.
func (b *Board) Ply() int {
	return len(b.positions) - 1
}

func (b *Board) SideToMove() engine.Side {
	return sideOf(b.Position().Turn())
}

func (b *Board) PieceAt(sq engine.Square) (engine.Piece, bool) {
	p := b.Position().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return engine.Piece{}, false
	}
	return engine.Piece{Kind: kindOf(p.Type()), Side: sideOf(p.Color())}, true
}

func (b *Board) NumSquares() int {
	return numOfSquaresInBoard
}

// Clone returns a board at the current position that shares nothing
// mutable with b. Applied moves are not carried over.
func (b *Board) Clone() engine.Board {
	clone, err := FromFEN(b.FEN())
	if err != nil {
		// the fen came from a valid position
		panic(err)
	}
	return clone
}

// Status tells checkmate from stalemate once the side to move is stuck.
func (b *Board) Status() chess.Method {
	return b.Position().Status()
}

// ParseMove decodes a move in UCI notation, e.g. "e2e4" or "e7e8q".
func (b *Board) ParseMove(s string) (*chess.Move, error) {
	m, err := chess.UCINotation{}.Decode(b.Position(), s)
	if err != nil {
		return nil, fmt.Errorf("rules: invalid move %q: %w", s, err)
	}
	for _, valid := range b.Moves() {
		if valid.String() == m.String() {
			return valid, nil
		}
	}
	return nil, fmt.Errorf("rules: illegal move %q", s)
}

// SAN renders a move in standard algebraic notation for the current
// position.
func (b *Board) SAN(m *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(b.Position(), m)
}

func sideOf(c chess.Color) engine.Side {
	if c == chess.Black {
		return engine.Black
	}
	return engine.White
}

func kindOf(t chess.PieceType) engine.PieceKind {
	switch t {
	case chess.Pawn:
		return engine.Pawn
	case chess.Knight:
		return engine.Knight
	case chess.Bishop:
		return engine.Bishop
	case chess.Rook:
		return engine.Rook
	case chess.Queen:
		return engine.Queen
	case chess.King:
		return engine.King
	default:
		panic(fmt.Sprintf("rules: unknown piece type %v", t))
	}
}

package engine

type Side int

const (
	White Side = iota
	Black
)

// Maximizing reports whether the side is the one the search maximizes for.
func (s Side) Maximizing() bool {
	return s == White
}

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numPieceKinds
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

type Piece struct {
	Kind PieceKind
	Side Side
}

type Square int

// Move is an opaque legal transition handed out by a Board. The engine never
// builds or changes one; it only passes it back to the Board it came from.
type Move interface {
	String() string
}

// Board is the rules collaborator the engine searches over. It is owned by
// the caller and mutated in place: every Apply made by the engine is matched
// by exactly one Undo before the engine returns.
type Board interface {
	// LegalMoves lists the moves legal in the current position, in the
	// order the engine will try them. Empty when there are none.
	LegalMoves() []Move
	Apply(m Move)
	Undo()
	SideToMove() Side
	// PieceAt reports the piece on sq, if any. Squares run from 0 to
	// NumSquares()-1.
	PieceAt(sq Square) (Piece, bool)
	NumSquares() int
}

// Plier is implemented by boards that can report how many moves are
// currently applied. The engine uses it to check apply/undo balance.
type Plier interface {
	Ply() int
}

// Cloner is implemented by boards that can hand out an independent copy,
// needed to search root moves concurrently. A clone must accept the moves
// listed by the board it was cloned from.
type Cloner interface {
	Clone() Board
}

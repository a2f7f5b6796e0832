package engine

// Evaluator scores a position without searching. It must not mutate the
// board and must return the same score for the same position.
type Evaluator interface {
	Evaluate(b Board) Score
}

// PieceValues indexed by PieceKind.
type PieceValues [numPieceKinds]Score

var DefaultPieceValues = PieceValues{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   100,
}

const (
	DefaultMaterialWeight = 1
	DefaultMobilityWeight = 5
)

// MaterialMobility is the weighted sum of material balance and the
// side-to-move mobility signal.
type MaterialMobility struct {
	MaterialWeight Score
	MobilityWeight Score
	Values         PieceValues
}

func NewMaterialMobility() *MaterialMobility {
	return &MaterialMobility{
		MaterialWeight: DefaultMaterialWeight,
		MobilityWeight: DefaultMobilityWeight,
		Values:         DefaultPieceValues,
	}
}

func (e *MaterialMobility) Evaluate(b Board) Score {
	mobility := Mobility(b)
	if mobility.IsInf() {
		// terminal: the sentinel outranks any material, whatever the weights
		return mobility
	}
	return e.MaterialWeight*Material(b, &e.Values) + e.MobilityWeight*mobility
}

// Material sums piece values over the board, white added and black
// subtracted.
func Material(b Board, values *PieceValues) Score {
	var score Score
	for sq := 0; sq < b.NumSquares(); sq++ {
		p, ok := b.PieceAt(Square(sq))
		if !ok {
			continue
		}
		if p.Side.Maximizing() {
			score += values[p.Kind]
		} else {
			score -= values[p.Kind]
		}
	}
	return score
}

// Mobility is 1/N for N legal moves of the side to move, signed against
// that side: fewer options for the side to move favours its opponent. With
// no legal moves the signal is infinite.
func Mobility(b Board) Score {
	n := len(b.LegalMoves())
	var score Score
	if n == 0 {
		score = Inf
	} else {
		score = 1 / Score(n)
	}
	if b.SideToMove().Maximizing() {
		return -score
	}
	return score
}

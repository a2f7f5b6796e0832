package rules

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/engine"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestFromFEN(t *testing.T) {
	if _, err := FromFEN("not a fen"); err == nil {
		t.Error("expected an error for a malformed fen")
	}
	b, err := FromFEN(startFEN)
	if err != nil {
		t.Fatal(err)
	}
	if b.FEN() != NewBoard().FEN() {
		t.Errorf("fen = %s, want the starting position", b.FEN())
	}
	if n := len(b.LegalMoves()); n != 20 {
		t.Errorf("start has %d moves, want 20", n)
	}
}

func TestApplyUndo(t *testing.T) {
	b := NewBoard()
	before := b.FEN()

	m, err := b.ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	b.Apply(m)
	if b.Ply() != 1 || b.SideToMove() != engine.Black {
		t.Fatalf("after e2e4: ply %d, %s to move", b.Ply(), b.SideToMove())
	}
	if p, ok := b.PieceAt(engine.Square(chess.E4)); !ok || p != (engine.Piece{Kind: engine.Pawn, Side: engine.White}) {
		t.Errorf("e4 holds %+v (%v)", p, ok)
	}
	if _, ok := b.PieceAt(engine.Square(chess.E2)); ok {
		t.Error("e2 should be empty")
	}

	b.Undo()
	if b.FEN() != before || b.Ply() != 0 {
		t.Errorf("after undo: %s at ply %d", b.FEN(), b.Ply())
	}
}

func TestPieceAt(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		sq   chess.Square
		want engine.Piece
	}{
		{chess.A1, engine.Piece{Kind: engine.Rook, Side: engine.White}},
		{chess.B1, engine.Piece{Kind: engine.Knight, Side: engine.White}},
		{chess.C1, engine.Piece{Kind: engine.Bishop, Side: engine.White}},
		{chess.D1, engine.Piece{Kind: engine.Queen, Side: engine.White}},
		{chess.E1, engine.Piece{Kind: engine.King, Side: engine.White}},
		{chess.D8, engine.Piece{Kind: engine.Queen, Side: engine.Black}},
		{chess.H7, engine.Piece{Kind: engine.Pawn, Side: engine.Black}},
	}
	for _, test := range tests {
		got, ok := b.PieceAt(engine.Square(test.sq))
		if !ok || got != test.want {
			t.Errorf("%s: got %+v (%v), want %+v", test.sq, got, ok, test.want)
		}
	}
	count := 0
	for sq := 0; sq < b.NumSquares(); sq++ {
		if _, ok := b.PieceAt(engine.Square(sq)); ok {
			count++
		}
	}
	if count != 32 {
		t.Errorf("found %d pieces, want 32", count)
	}
}

func TestUndoWithoutApplyPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(engine.ContractViolation); !ok {
			t.Fatal("expected a ContractViolation panic")
		}
	}()
	NewBoard().Undo()
}

type fakeMove string

func (m fakeMove) String() string { return string(m) }

func TestApplyForeignMovePanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(engine.ContractViolation); !ok {
			t.Fatal("expected a ContractViolation panic")
		}
	}()
	NewBoard().Apply(fakeMove("e2e4"))
}

func TestClone(t *testing.T) {
	b := NewBoard()
	m, _ := b.ParseMove("g1f3")
	b.Apply(m)

	clone := b.Clone().(*Board)
	if clone.FEN() != b.FEN() || clone.Ply() != 0 {
		t.Fatalf("clone at %s ply %d", clone.FEN(), clone.Ply())
	}
	reply := clone.Moves()[0]
	clone.Apply(reply)
	if b.Ply() != 1 {
		t.Errorf("applying on the clone moved the original to ply %d", b.Ply())
	}
	// moves listed by the original are accepted by a clone
	clone.Undo()
	clone.Apply(b.LegalMoves()[0])
	clone.Undo()
}

func TestParseMove(t *testing.T) {
	b := NewBoard()
	if _, err := b.ParseMove("e2e5"); err == nil {
		t.Error("expected e2e5 to be rejected")
	}
	if _, err := b.ParseMove("zz"); err == nil {
		t.Error("expected garbage to be rejected")
	}
	m, err := b.ParseMove("b1c3")
	if err != nil {
		t.Fatal(err)
	}
	if san := b.SAN(m); san != "Nc3" {
		t.Errorf("san = %s, want Nc3", san)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		fen  string
		want chess.Method
	}{
		{startFEN, chess.NoMethod},
		{"k7/8/8/8/8/8/5q2/7K w - - 0 1", chess.Stalemate},
		{"k7/8/8/8/8/8/6q1/6qK w - - 0 1", chess.Checkmate},
	}
	for _, test := range tests {
		b, err := FromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.Status(); got != test.want {
			t.Errorf("%s: status %v, want %v", test.fen, got, test.want)
		}
	}
}

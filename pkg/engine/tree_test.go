package engine

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

// node is a position in a hand-built game tree. value is what the static
// evaluator returns for it; children are its legal replies in order.
type node struct {
	name     string
	side     Side
	value    Score
	children []*node
}

type treeMove struct {
	to *node
}

func (m treeMove) String() string {
	return m.to.name
}

// treeBoard walks a game tree with apply/undo.
type treeBoard struct {
	path []*node
}

func newTreeBoard(root *node) *treeBoard {
	return &treeBoard{path: []*node{root}}
}

func (b *treeBoard) current() *node {
	return b.path[len(b.path)-1]
}

func (b *treeBoard) LegalMoves() []Move {
	moves := make([]Move, len(b.current().children))
	for i, c := range b.current().children {
		moves[i] = treeMove{to: c}
	}
	return moves
}

func (b *treeBoard) Apply(m Move) {
	tm, ok := m.(treeMove)
	if !ok {
		violate("foreign move %T", m)
	}
	for _, c := range b.current().children {
		if c == tm.to {
			b.path = append(b.path, c)
			return
		}
	}
	violate("move %s not legal at %s", tm, b.current().name)
}

func (b *treeBoard) Undo() {
	if len(b.path) == 1 {
		violate("undo at root")
	}
	b.path = b.path[:len(b.path)-1]
}

func (b *treeBoard) SideToMove() Side             { return b.current().side }
func (b *treeBoard) PieceAt(Square) (Piece, bool) { return Piece{}, false }
func (b *treeBoard) NumSquares() int              { return 0 }
func (b *treeBoard) Ply() int                     { return len(b.path) - 1 }
func (b *treeBoard) Clone() Board                 { return newTreeBoard(b.current()) }

type nodeEval struct{}

func (nodeEval) Evaluate(b Board) Score {
	return b.(interface{ current() *node }).current().value
}

// leaf builds a node with no replies.
func leaf(name string, side Side, value Score) *node {
	return &node{name: name, side: side, value: value}
}

func branch(name string, side Side, children ...*node) *node {
	return &node{name: name, side: side, children: children}
}

// randomTree builds a tree of the given height with up to four replies per
// node. Some interior nodes have no replies at all.
func randomTree(r *rand.Rand, name string, side Side, height int) *node {
	n := &node{name: name, side: side, value: Score(r.Intn(41) - 20)}
	if height == 0 {
		return n
	}
	width := r.Intn(5)
	for i := 0; i < width; i++ {
		n.children = append(n.children, randomTree(r, fmt.Sprintf("%s.%d", name, i), side.Other(), height-1))
	}
	return n
}

type recordingObserver struct {
	scored  []string
	changed []string
}

func (o *recordingObserver) RootMoveScored(m Move, s Score) {
	o.scored = append(o.scored, fmt.Sprintf("%s=%s", m, s))
}

func (o *recordingObserver) BestMoveChanged(m Move, s Score) {
	o.changed = append(o.changed, fmt.Sprintf("%s=%s", m, s))
}

// fullTree builds a tree where every interior node has width replies.
func fullTree(name string, side Side, height, width int) *node {
	n := &node{name: name, side: side, value: Score(len(name))}
	if height == 0 {
		return n
	}
	for i := 0; i < width; i++ {
		n.children = append(n.children, fullTree(fmt.Sprintf("%s.%d", name, i), side.Other(), height-1, width))
	}
	return n
}

// cancellingEval cancels its context after a number of evaluations.
type cancellingEval struct {
	after  int64
	calls  int64
	cancel func()
}

func (e *cancellingEval) Evaluate(b Board) Score {
	if atomic.AddInt64(&e.calls, 1) == e.after {
		e.cancel()
	}
	return nodeEval{}.Evaluate(b)
}

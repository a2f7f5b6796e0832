package pkg

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/fatbot/pkg/engine"
	"github.com/qnkhuat/fatbot/pkg/rules"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	numrows = 8
	numcols = 8
)

// Client is the terminal front end: paste a FEN, watch the player answer
// on the board, optionally play the answer and keep going.
type Client struct {
	App         *tview.Application
	Board       *tview.Table
	Layout      *tview.Grid
	Input       *tview.InputField
	MessageText *tview.TextView
	Color       PlayerColor

	player     *Player
	theme      Theme
	log        *zap.SugaredLogger
	ctx        context.Context
	position   *rules.Board
	lastReply  *Reply
	highlights map[chess.Square]bool
	searching  bool
}

func NewClient(ctx context.Context, player *Player, theme Theme, log *zap.SugaredLogger) *Client {
	app := tview.NewApplication()
	cl := &Client{
		App:        app,
		Board:      tview.NewTable(),
		player:     player,
		theme:      theme,
		log:        log,
		ctx:        ctx,
		position:   rules.NewBoard(),
		highlights: make(map[chess.Square]bool),
	}

	cl.Input = tview.NewInputField().
		SetLabel(Prompt).
		SetFieldWidth(0).
		SetDoneFunc(cl.onInput)

	cl.MessageText = tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf("Player [::b]%s[::-] (%s)", player.Name, player.Strategy.Name()))

	gameOptions := tview.NewGrid().
		SetColumns(10, 10).
		SetRows(1, 1, 1, -1).
		AddItem(cl.button(ActionSearch, cl.search), 0, 0, 1, 1, 0, 0, false).
		AddItem(cl.button(ActionPlay, cl.play), 0, 1, 1, 1, 0, 0, false).
		AddItem(cl.button(ActionFlip, cl.flip), 1, 0, 1, 1, 0, 0, false).
		AddItem(cl.button(ActionReset, cl.reset), 1, 1, 1, 1, 0, 0, false).
		AddItem(cl.button(ActionExit, app.Stop), 2, 0, 1, 2, 0, 0, false).
		AddItem(cl.MessageText, 3, 0, 1, 2, 0, 0, false)

	cl.Layout = tview.NewGrid().
		SetRows(-1, 12, 1, -1).
		SetColumns(-1, 30, 24, -1).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, false).
		AddItem(gameOptions, 1, 2, 1, 1, 0, 0, false).
		AddItem(cl.Input, 2, 1, 1, 2, 0, 0, true)

	cl.Input.SetText(cl.position.FEN())
	cl.RenderTable()
	return cl
}

func (cl *Client) Run() error {
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

func (cl *Client) button(a Action, f func()) *tview.Button {
	return tview.NewButton(string(a)).SetSelectedFunc(f)
}

func (cl *Client) onInput(key tcell.Key) {
	switch key {
	case tcell.KeyEscape:
		cl.App.Stop()
	case tcell.KeyEnter:
		fen := cl.Input.GetText()
		if fen == "" {
			cl.App.Stop()
			return
		}
		b, err := BoardFromFEN(fen)
		if err != nil {
			cl.log.Debugw("Rejected fen", "fen", fen, "error", err)
			cl.setMessage("[red]Invalid FEN![-]")
			return
		}
		cl.position = b
		cl.lastReply = nil
		cl.highlights = make(map[chess.Square]bool)
		cl.RenderTable()
		cl.search()
	}
}

// search runs the player off the UI goroutine and shows the answer.
func (cl *Client) search() {
	if cl.searching {
		return
	}
	cl.searching = true
	cl.setMessage("Searching...")

	// the player gets its own board so rendering never sees a half-applied move
	searched := cl.position
	b := rules.FromPosition(searched.Position())
	go func() {
		reply, err := cl.player.Play(cl.ctx, b)
		cl.App.QueueUpdateDraw(func() {
			cl.showReply(searched, reply, err)
		})
	}()
}

// showReply displays the answer found for searched. Answers for a position
// that was replaced while the search ran are dropped.
func (cl *Client) showReply(searched *rules.Board, reply Reply, err error) {
	cl.searching = false
	if searched != cl.position {
		cl.log.Debugw("Dropped stale reply", "fen", reply.FEN)
		cl.setMessage("Position changed, search again")
		return
	}
	switch {
	case errors.Is(err, engine.ErrNoLegalMoves):
		cl.setMessage(fmt.Sprintf("[yellow]No legal move: %s[-]", reply.Status))
	case err != nil:
		cl.setMessage(fmt.Sprintf("[red]%v[-]", err))
	default:
		cl.lastReply = &reply
		cl.highlights = map[chess.Square]bool{reply.Move.S1(): true, reply.Move.S2(): true}
		cl.setMessage(fmt.Sprintf("FATBOT found move: [::b]%s[::-]\n%s\n%s", reply.Move, reply.SAN, describe(reply)))
		cl.RenderTable()
	}
}

// play applies the last answer to the board.
func (cl *Client) play() {
	if cl.lastReply == nil || cl.searching {
		return
	}
	cl.position = rules.FromPosition(cl.position.Position().Update(cl.lastReply.Move))
	cl.lastReply = nil
	cl.Input.SetText(cl.position.FEN())
	cl.RenderTable()
}

func (cl *Client) flip() {
	if cl.Color == Black {
		cl.Color = White
	} else {
		cl.Color = Black
	}
	cl.RenderTable()
}

func (cl *Client) reset() {
	cl.position = rules.NewBoard()
	cl.lastReply = nil
	cl.highlights = make(map[chess.Square]bool)
	cl.Input.SetText(cl.position.FEN())
	cl.RenderTable()
}

func (cl *Client) setMessage(msg string) {
	cl.MessageText.SetText(msg)
}

func (cl *Client) RenderTable() {
	board := cl.position.Position().Board()
	var r, f int
	// Step through the ranks starting with the top row
	for r = 0; r <= numrows; r++ {
		for f = 0; f <= numcols; f++ {
			if f == 0 && r != numrows { // draw rank square
				rank := chess.Rank(numrows - r - 1)
				if cl.Color == Black {
					rank = chess.Rank(r)
				}
				cell := tview.NewTableCell(rank.String()).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.theme.Rank).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == numrows && f > 0 { // draw file square
				file := chess.File(f - 1)
				if cl.Color == Black {
					file = chess.File(numcols - f)
				}
				cell := tview.NewTableCell(fmt.Sprintf(" %s", file.String())).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.theme.File).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == numrows && f == 0 {
				continue
			}

			sq := cl.posToSquare(r, f)
			p := board.Piece(sq)
			fg := cl.theme.White
			if p.Color() == chess.Black {
				fg = cl.theme.Black
			}
			cell := tview.NewTableCell(fmt.Sprintf(" %s ", p.String())).
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(squareToColor(sq, cl.highlights, cl.theme))
			cl.Board.SetCell(r, f, cell)
		}
	}
}

func (cl *Client) posToSquare(row, col int) chess.Square {
	// A1 is square 0
	col = col - 1 // 1 column for the rank
	if cl.Color == Black {
		return chess.Square(row*8 + (numcols - 1 - col))
	}
	row = numrows - row - 1
	return chess.Square(row*8 + col)
}

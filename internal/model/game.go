package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Game is one play session on top of a Board: it remembers the square the
// player selected and the destinations highlighted for it. All methods are
// safe for concurrent use.
type Game struct {
	ID         string
	mu         sync.Mutex
	board      *Board
	selected   *Square
	highlights SquareSet
	lastError  string
	version    uint64
}

// GameState is the view handed to the presentation layer after every call.
type GameState struct {
	Board            map[string]string `json:"board"`
	HighlightSquares []string          `json:"highlightSquares"`
	SelectedSquare   *Square           `json:"selectedSquare"`
	Turn             Colour            `json:"turn"`
	IsCheck          bool              `json:"isCheck"`
	GameOver         bool              `json:"gameOver"`
	Result           Result            `json:"result"`
	Winner           *Colour           `json:"winner"`
	CapturedPieces   CapturedPieces    `json:"capturedPieces"`
	LastMove         *Ply              `json:"lastMove"`
	FEN              string            `json:"fen"`
	Error            string            `json:"error,omitempty"`
	// Version grows with every call that changes the session; a larger
	// version is always the newer state.
	Version uint64 `json:"version"`
}

// CapturedPieces lists eliminated piece codes per colour.
type CapturedPieces struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

func NewGame(id string, board *Board) *Game {
	return &Game{
		ID:    id,
		board: board,
	}
}

// Board returns the algebraic label to piece code mapping.
func (g *Game) Board() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.WebView()
}

func (g *Game) Turn() Colour {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Turn()
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.stateLocked()
}

// Reset replaces the board with a fresh standard layout.
func (g *Game) Reset() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board = NewBoard(g.board.Rule())
	g.resetSelection()
	g.lastError = ""
	g.version++
	return g.stateLocked()
}

// Click handles one click from the player. label is either a square ("e2")
// or a move ("e2-e4", "e2e4"). Clicking an own piece selects it and
// highlights its legal destinations; clicking a highlighted square plays the
// move. Anything rejected clears the selection and leaves the board as it
// was; the reason is reported in GameState.Error.
func (g *Game) Click(label string) GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastError = ""
	if err := g.click(strings.TrimSpace(label)); err != nil {
		g.lastError = err.Error()
		g.resetSelection()
	}
	g.version++
	return g.stateLocked()
}

// MakeMove plays start-end directly, bypassing the selection.
func (g *Game) MakeMove(move SimpleMove) (Ply, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetSelection()
	g.version++
	return g.board.Move(move.From, move.To)
}

func (g *Game) click(label string) error {
	if move, ok, err := parseMoveLabel(label); ok {
		if err != nil {
			return err
		}
		_, err = g.board.Move(move.From, move.To)
		g.resetSelection()
		return err
	}

	sq, err := ParseSquare(label)
	if err != nil {
		return err
	}
	if g.selected != nil && g.highlights.Has(sq) {
		_, err = g.board.Move(*g.selected, sq)
		g.resetSelection()
		return err
	}
	if g.board.GameOver() {
		g.resetSelection()
		return ErrGameOver
	}
	if !g.board.IsCurrentPlayersPiece(sq) {
		g.resetSelection()
		return nil
	}
	moves := g.board.PossibleMoves(sq)
	if moves.Empty() {
		g.resetSelection()
		return nil
	}
	g.selected = &sq
	g.highlights = moves
	return nil
}

// parseMoveLabel recognises "e2-e4" and "e2e4". ok is false when label is
// not shaped like a move at all.
func parseMoveLabel(label string) (move SimpleMove, ok bool, err error) {
	var from, to string
	switch {
	case strings.Contains(label, "-"):
		parts := strings.Split(label, "-")
		if len(parts) != 2 {
			return SimpleMove{}, true, fmt.Errorf("%w: move format %q", ErrInvalidMove, label)
		}
		from, to = parts[0], parts[1]
	case len(label) == 4:
		from, to = label[:2], label[2:]
	default:
		return SimpleMove{}, false, nil
	}
	start, err := ParseSquare(from)
	if err != nil {
		return SimpleMove{}, true, err
	}
	end, err := ParseSquare(to)
	if err != nil {
		return SimpleMove{}, true, err
	}
	return SimpleMove{From: start, To: end}, true, nil
}

func (g *Game) resetSelection() {
	g.selected = nil
	g.highlights = 0
}

func (g *Game) stateLocked() GameState {
	state := GameState{
		Board:            g.board.WebView(),
		HighlightSquares: g.highlights.Labels(),
		Turn:             g.board.Turn(),
		IsCheck:          g.board.InCheck(),
		GameOver:         g.board.GameOver(),
		Result:           g.board.Result(),
		CapturedPieces: CapturedPieces{
			White: pieceCodes(g.board.Eliminated(White)),
			Black: pieceCodes(g.board.Eliminated(Black)),
		},
		LastMove: g.board.LastMove(),
		FEN:      g.board.FEN(),
		Error:    g.lastError,
		Version:  g.version,
	}
	if g.selected != nil {
		sq := *g.selected
		state.SelectedSquare = &sq
	}
	if winner, ok := g.board.Winner(); ok {
		state.Winner = &winner
	}
	return state
}

func pieceCodes(pieces []Piece) []string {
	codes := make([]string, 0, len(pieces))
	for _, p := range pieces {
		codes = append(codes, p.Code())
	}
	return codes
}

// IsRejection reports whether err is one of the recoverable input errors.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidMove) || errors.Is(err, ErrInvalidPosition)
}

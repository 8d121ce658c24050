package model

import "fmt"

// Result is the game status of a board.
type Result uint8

const (
	InProgress Result = iota
	Checkmate
	Stalemate
)

func (r Result) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "in progress"
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Board is one game: the occupancy, whose turn it is, captured pieces and
// whether the game has ended. It only changes through Move.
type Board struct {
	layout          Layout
	turn            Colour
	result          Result
	winner          Colour
	eliminatedWhite []Piece
	eliminatedBlack []Piece
	lastMove        *Ply
	plies           int
}

// NewBoard returns a board with the standard starting layout, white to move.
func NewBoard(rule CastlingRule) *Board {
	return &Board{
		layout:          standardLayout(rule),
		turn:            White,
		eliminatedWhite: make([]Piece, 0),
		eliminatedBlack: make([]Piece, 0),
	}
}

func (b *Board) Turn() Colour       { return b.turn }
func (b *Board) Rule() CastlingRule { return b.layout.rule }

// Layout returns a copy of the current occupancy.
func (b *Board) Layout() Layout { return b.layout }

// PieceAt returns the piece on sq and whether there is one.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.layout.At(sq)
	return p, !p.IsEmpty()
}

func (b *Board) IsCurrentPlayersPiece(sq Square) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Colour == b.turn
}

// PossibleMoves returns the legal destinations of the piece on sq: its
// movement pattern with every move that would leave its own king in check
// removed. An empty square yields an empty set.
func (b *Board) PossibleMoves(sq Square) SquareSet {
	return b.layout.LegalMoves(sq)
}

// IsLegalMove reports whether start-end is a legal move for the side to move.
func (b *Board) IsLegalMove(start, end Square) bool {
	return b.result == InProgress && b.IsCurrentPlayersPiece(start) && b.PossibleMoves(start).Has(end)
}

func (b *Board) IsCheck(c Colour) bool     { return b.layout.IsCheck(c) }
func (b *Board) IsCheckmate(c Colour) bool { return b.layout.IsCheckmate(c) }

func (b *Board) IsCastlingPossible(start, end Square) bool {
	return b.layout.IsCastlingPossible(start, end)
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.layout.IsCheck(b.turn) }

func (b *Board) GameOver() bool { return b.result != InProgress }
func (b *Board) Result() Result { return b.result }

// Winner returns the winning colour once the game ended in checkmate.
func (b *Board) Winner() (Colour, bool) {
	return b.winner, b.result == Checkmate
}

// Eliminated returns the captured pieces of colour c in capture order.
func (b *Board) Eliminated(c Colour) []Piece {
	src := b.eliminatedWhite
	if c == Black {
		src = b.eliminatedBlack
	}
	out := make([]Piece, len(src))
	copy(out, src)
	return out
}

func (b *Board) LastMove() *Ply { return b.lastMove }

// Plies is the number of moves played since the start position.
func (b *Board) Plies() int { return b.plies }

// Move plays start-end for the side to move. Nothing is changed unless the
// move is legal.
func (b *Board) Move(start, end Square) (Ply, error) {
	if !start.Valid() || !end.Valid() {
		return Ply{}, fmt.Errorf("%w: square %d or %d is off the board", ErrInvalidPosition, uint8(start), uint8(end))
	}
	mover, ok := b.PieceAt(start)
	if !ok {
		return Ply{}, fmt.Errorf("%w: no piece at %s", ErrInvalidMove, start)
	}
	if b.GameOver() {
		return Ply{}, ErrGameOver
	}
	if mover.Colour != b.turn {
		return Ply{}, fmt.Errorf("%w: %s to move, %s belongs to %s", ErrInvalidMove, b.turn, start, mover.Colour)
	}
	if !b.PossibleMoves(start).Has(end) {
		return Ply{}, fmt.Errorf("%w: %s-%s for %s", ErrInvalidMove, start, end, mover)
	}

	notation := b.layout.getNotation(start, end)
	effect := b.layout.apply(start, end)
	ply := Ply{
		Piece:          mover,
		From:           start,
		To:             end,
		CastleRookMove: effect.castle,
	}
	if !effect.captured.IsEmpty() {
		captured := effect.captured
		ply.CapturedPiece = &captured
		if captured.Colour == White {
			b.eliminatedWhite = append(b.eliminatedWhite, captured)
		} else {
			b.eliminatedBlack = append(b.eliminatedBlack, captured)
		}
	}
	if effect.promoted {
		ply.Promotion = Queen
	}

	opponent := b.turn.Opponent()
	check := b.layout.IsCheck(opponent)
	escapes := b.layout.hasLegalMove(opponent)
	switch {
	case check && !escapes:
		b.result = Checkmate
		b.winner = mover.Colour
		notation += "#"
	case check:
		notation += "+"
	case !escapes:
		b.result = Stalemate
	}
	ply.Notation = notation

	b.turn = opponent
	b.plies++
	b.lastMove = &ply
	return ply, nil
}

// WebView maps algebraic labels of occupied squares to piece codes.
func (b *Board) WebView() map[string]string {
	view := make(map[string]string)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := b.layout.At(sq); !p.IsEmpty() {
			view[sq.String()] = p.Code()
		}
	}
	return view
}

// refreshResult derives the status of a board that was set up rather than
// played into, e.g. from FEN.
func (b *Board) refreshResult() {
	switch {
	case b.layout.IsCheckmate(b.turn):
		b.result = Checkmate
		b.winner = b.turn.Opponent()
	case b.layout.IsStalemate(b.turn):
		b.result = Stalemate
	default:
		b.result = InProgress
	}
}

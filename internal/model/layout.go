package model

import (
	"fmt"
	"strings"
)

// CastlingRule selects how castling eligibility is decided.
type CastlingRule uint8

const (
	// CastlingTracked forgets a side's castling right as soon as its king
	// or the matching rook leaves its home square. A king may not castle
	// out of check or across an attacked square.
	CastlingTracked CastlingRule = iota
	// CastlingGeometric only looks at where the pieces currently stand, so
	// a king that walks away and back may castle again.
	CastlingGeometric
)

func (r CastlingRule) String() string {
	if r == CastlingGeometric {
		return "geometric"
	}
	return "tracked"
}

func ParseCastlingRule(s string) (CastlingRule, error) {
	switch strings.ToLower(s) {
	case "", "tracked":
		return CastlingTracked, nil
	case "geometric", "classic":
		return CastlingGeometric, nil
	}
	return CastlingTracked, fmt.Errorf("unknown castling rule %q", s)
}

type castlingRights uint8

const (
	whiteKingside castlingRights = 1 << iota
	whiteQueenside
	blackKingside
	blackQueenside

	allCastlingRights = whiteKingside | whiteQueenside | blackKingside | blackQueenside
)

const kingHomeFile = 4

type castleSide struct {
	kingTo   int
	rookFrom int
	rookTo   int
	between  []int
	notation string
	fenWhite byte
}

var castleSides = [2]castleSide{
	{kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}, notation: "O-O", fenWhite: 'K'},
	{kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}, notation: "O-O-O", fenWhite: 'Q'},
}

func (cs castleSide) right(c Colour) castlingRights {
	kingside := cs.kingTo == 6
	switch {
	case c == White && kingside:
		return whiteKingside
	case c == White:
		return whiteQueenside
	case kingside:
		return blackKingside
	}
	return blackQueenside
}

func (cs castleSide) fenLetter(c Colour) byte {
	if c == Black {
		return cs.fenWhite + ('a' - 'A')
	}
	return cs.fenWhite
}

// Layout is an occupancy snapshot: which piece stands on each square plus the
// castling rights still held. It is a plain value, so copying it gives an
// independent board to simulate moves on.
type Layout struct {
	squares [NumSquares]Piece
	rights  castlingRights
	rule    CastlingRule
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func standardLayout(rule CastlingRule) Layout {
	l := Layout{rights: allCastlingRights, rule: rule}
	for _, c := range []Colour{White, Black} {
		for file, t := range backRank {
			l.put(mustSquare(c.homeRank(), file), Piece{Type: t, Colour: c})
			l.put(mustSquare(c.pawnRank(), file), Piece{Type: Pawn, Colour: c})
		}
	}
	return l
}

// At returns the piece on sq, or the zero Piece if the square is empty or
// off the board.
func (l *Layout) At(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return l.squares[sq]
}

func (l *Layout) put(sq Square, p Piece) {
	l.squares[sq] = p
}

func (l *Layout) clear(sq Square) {
	l.squares[sq] = Piece{}
}

func (l *Layout) kingSquare(c Colour) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := l.squares[sq]; p.Type == King && p.Colour == c {
			return sq, true
		}
	}
	return 0, false
}

// castleSideFor reports which castling start..end describes, judged by the
// squares alone.
func castleSideFor(c Colour, start, end Square) (castleSide, bool) {
	home := c.homeRank()
	if start.Rank() != home || start.File() != kingHomeFile || end.Rank() != home {
		return castleSide{}, false
	}
	for _, side := range castleSides {
		if end.File() == side.kingTo {
			return side, true
		}
	}
	return castleSide{}, false
}

// IsCastlingPossible holds when the king on start may castle to end: the king
// and a same coloured rook are on their home squares, every square between
// them is empty, and under CastlingTracked neither has moved yet. Attacks are
// judged by LegalMoves, not here.
func (l *Layout) IsCastlingPossible(start, end Square) bool {
	if !start.Valid() || !end.Valid() {
		return false
	}
	king := l.At(start)
	if king.Type != King {
		return false
	}
	side, ok := castleSideFor(king.Colour, start, end)
	if !ok || l.rights&side.right(king.Colour) == 0 {
		return false
	}
	home := king.Colour.homeRank()
	if rook := l.At(mustSquare(home, side.rookFrom)); rook.Type != Rook || rook.Colour != king.Colour {
		return false
	}
	for _, file := range side.between {
		if !l.At(mustSquare(home, file)).IsEmpty() {
			return false
		}
	}
	return true
}

func (l *Layout) castlingMoves(from Square) SquareSet {
	var moves SquareSet
	if from.File() != kingHomeFile {
		return moves
	}
	for _, side := range castleSides {
		end := mustSquare(from.Rank(), side.kingTo)
		if l.IsCastlingPossible(from, end) {
			moves = moves.With(end)
		}
	}
	return moves
}

type moveEffect struct {
	mover    Piece
	captured Piece
	promoted bool
	castle   *CastleRookMove
}

// apply performs from-to on the layout without any legality check: captures,
// queen promotion, the rook hop of a castling king and castling rights.
func (l *Layout) apply(from, to Square) moveEffect {
	mover := l.At(from)
	effect := moveEffect{mover: mover, captured: l.At(to)}

	l.clear(from)
	if mover.Type == Pawn && to.Rank() == mover.Colour.promotionRank() {
		l.put(to, Piece{Type: Queen, Colour: mover.Colour})
		effect.promoted = true
	} else {
		l.put(to, mover)
	}

	if mover.Type == King {
		if side, ok := castleSideFor(mover.Colour, from, to); ok {
			rookFrom := mustSquare(from.Rank(), side.rookFrom)
			rookTo := mustSquare(from.Rank(), side.rookTo)
			if rook := l.At(rookFrom); rook.Type == Rook && rook.Colour == mover.Colour {
				l.clear(rookFrom)
				l.put(rookTo, rook)
				effect.castle = &CastleRookMove{From: rookFrom, To: rookTo}
			}
		}
	}

	if l.rule == CastlingTracked {
		l.updateRights(mover, from, to)
	}
	return effect
}

func (l *Layout) updateRights(mover Piece, from, to Square) {
	if mover.Type == King {
		for _, side := range castleSides {
			l.rights &^= side.right(mover.Colour)
		}
	}
	for _, c := range []Colour{White, Black} {
		for _, side := range castleSides {
			corner := mustSquare(c.homeRank(), side.rookFrom)
			if from == corner || to == corner {
				l.rights &^= side.right(c)
			}
		}
	}
}

// IsCheck reports whether any enemy piece could move onto c's king. A side
// without a king is never in check.
func (l *Layout) IsCheck(c Colour) bool {
	king, ok := l.kingSquare(c)
	if !ok {
		return false
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		p := l.squares[sq]
		if p.IsEmpty() || p.Colour == c {
			continue
		}
		if p.PossibleMoves(l, sq).Has(king) {
			return true
		}
	}
	return false
}

// leavesKingInCheck plays from-to on a copy and tests the mover's king.
func (l *Layout) leavesKingInCheck(from, to Square) bool {
	next := *l
	effect := next.apply(from, to)
	return next.IsCheck(effect.mover.Colour)
}

// LegalMoves is PossibleMoves minus the moves that leave the mover in check.
func (l *Layout) LegalMoves(from Square) SquareSet {
	p := l.At(from)
	if p.IsEmpty() {
		return 0
	}
	var legal SquareSet
	for _, to := range p.PossibleMoves(l, from).Squares() {
		if l.leavesKingInCheck(from, to) {
			continue
		}
		if p.Type == King && l.rule == CastlingTracked && !l.castlesSafely(p.Colour, from, to) {
			continue
		}
		legal = legal.With(to)
	}
	return legal
}

// castlesSafely rejects a castling king that starts in check or crosses an
// attacked square. Any other king move passes.
func (l *Layout) castlesSafely(c Colour, from, to Square) bool {
	side, ok := castleSideFor(c, from, to)
	if !ok {
		return true
	}
	if l.IsCheck(c) {
		return false
	}
	// The king crosses the square the rook lands on.
	return !l.leavesKingInCheck(from, mustSquare(from.Rank(), side.rookTo))
}

func (l *Layout) hasLegalMove(c Colour) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := l.squares[sq]; !p.IsEmpty() && p.Colour == c && !l.LegalMoves(sq).Empty() {
			return true
		}
	}
	return false
}

// IsCheckmate holds when c is in check and no move of c escapes it.
func (l *Layout) IsCheckmate(c Colour) bool {
	return l.IsCheck(c) && !l.hasLegalMove(c)
}

// IsStalemate holds when c is not in check but has no legal move.
func (l *Layout) IsStalemate(c Colour) bool {
	return !l.IsCheck(c) && !l.hasLegalMove(c)
}

package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// getPieceNotation is the SAN prefix; pawns have none.
func (p PieceType) getPieceNotation() string {
	if p == Pawn {
		return ""
	}
	return p.Letter()
}

// Letter is the one letter code of the type, "P" for pawns.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Piece is a coloured piece. The zero Piece is an empty square.
type Piece struct {
	Type   PieceType `json:"type"`
	Colour Colour    `json:"colour"`
}

// NewPiece builds a piece from a type name ("rook", "Rook") or letter ("R").
func NewPiece(name string, colour Colour) (Piece, error) {
	var t PieceType
	switch strings.ToLower(name) {
	case "king", "k":
		t = King
	case "queen", "q":
		t = Queen
	case "rook", "r":
		t = Rook
	case "bishop", "b":
		t = Bishop
	case "knight", "n":
		t = Knight
	case "pawn", "p":
		t = Pawn
	default:
		return Piece{}, fmt.Errorf("%w: %q", ErrInvalidPiece, name)
	}
	return Piece{Type: t, Colour: colour}, nil
}

func (p Piece) IsEmpty() bool { return p.Type == "" }

// Code is the two letter view code, colour then type: "WK", "BP".
func (p Piece) Code() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Colour.Code() + p.Type.Letter()
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s", p.Colour, p.Type)
}

// Movement tables, written once from the mover's own perspective.
var (
	orthogonalRays = [][]Direction{
		{Forward}, {Backward}, {Left}, {Right},
	}
	diagonalRays = [][]Direction{
		{Forward, Left}, {Forward, Right}, {Backward, Left}, {Backward, Right},
	}
	royalRays = [][]Direction{
		{Forward}, {Backward}, {Left}, {Right},
		{Forward, Left}, {Forward, Right}, {Backward, Left}, {Backward, Right},
	}
	knightJumps = [][]Direction{
		{Forward, Forward, Left}, {Forward, Forward, Right},
		{Backward, Backward, Left}, {Backward, Backward, Right},
		{Left, Left, Forward}, {Left, Left, Backward},
		{Right, Right, Forward}, {Right, Right, Backward},
	}
	pawnCaptures = [][]Direction{
		{Forward, Left}, {Forward, Right},
	}
)

// PossibleMoves returns every square p standing on from could move to or
// capture on in l. Whether the move exposes the mover's king is not checked.
// An off-board square or unknown colour yields an empty set.
func (p Piece) PossibleMoves(l *Layout, from Square) SquareSet {
	pos, err := PositionOf(p.Colour, from)
	if err != nil {
		return 0
	}
	switch p.Type {
	case Pawn:
		return l.pawnMoves(p, pos)
	case Knight:
		return l.leaps(p, pos, knightJumps)
	case Bishop:
		return l.slides(p, pos, diagonalRays)
	case Rook:
		return l.slides(p, pos, orthogonalRays)
	case Queen:
		return l.slides(p, pos, royalRays)
	case King:
		return l.leaps(p, pos, royalRays) | l.castlingMoves(from)
	}
	return 0
}

func (l *Layout) leaps(p Piece, from Position, patterns [][]Direction) SquareSet {
	var moves SquareSet
	for _, pattern := range patterns {
		to, err := from.Move(pattern...)
		if err != nil {
			continue
		}
		if target := l.At(to.Square()); target.IsEmpty() || target.Colour != p.Colour {
			moves = moves.With(to.Square())
		}
	}
	return moves
}

func (l *Layout) slides(p Piece, from Position, rays [][]Direction) SquareSet {
	var moves SquareSet
	for _, ray := range rays {
		cur := from
		for {
			next, err := cur.Move(ray...)
			if err != nil {
				break
			}
			target := l.At(next.Square())
			if !target.IsEmpty() {
				if target.Colour != p.Colour {
					moves = moves.With(next.Square())
				}
				break
			}
			moves = moves.With(next.Square())
			cur = next
		}
	}
	return moves
}

func (l *Layout) pawnMoves(p Piece, from Position) SquareSet {
	var moves SquareSet
	if one, err := from.Neighbour(Forward); err == nil && l.At(one.Square()).IsEmpty() {
		moves = moves.With(one.Square())
		if from.Rank() == p.Colour.pawnRank() {
			if two, err := one.Neighbour(Forward); err == nil && l.At(two.Square()).IsEmpty() {
				moves = moves.With(two.Square())
			}
		}
	}
	for _, pattern := range pawnCaptures {
		to, err := from.Move(pattern...)
		if err != nil {
			continue
		}
		if target := l.At(to.Square()); !target.IsEmpty() && target.Colour != p.Colour {
			moves = moves.With(to.Square())
		}
	}
	return moves
}

package model

import (
	"fmt"
	"strings"
)

// Square is an absolute board square, rank*8+file. Rank 0 is row "8" and
// file 0 is column "a", so a8 is 0 and h1 is 63.
type Square uint8

const NumSquares = 64

func NewSquare(rank, file int) (Square, error) {
	if !onBoard(rank, file) {
		return 0, fmt.Errorf("%w: rank %d file %d", ErrInvalidPosition, rank, file)
	}
	return Square(rank*8 + file), nil
}

func mustSquare(rank, file int) Square {
	sq, err := NewSquare(rank, file)
	if err != nil {
		panic(err)
	}
	return sq
}

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

// Valid reports whether s names one of the 64 squares.
func (s Square) Valid() bool { return s < NumSquares }

func (s Square) Rank() int { return int(s) / 8 }
func (s Square) File() int { return int(s) % 8 }

func (s Square) getFileNotation() string {
	return string(rune('a' + s.File()))
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File(), 8-s.Rank())
}

func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseSquare reads a two character algebraic label. The column letter is
// case-insensitive; row 8 maps to rank 0.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, label)
	}
	col := strings.ToLower(label[:1])[0]
	row := label[1]
	if col < 'a' || col > 'h' || row < '1' || row > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, label)
	}
	return Square(int('8'-row)*8 + int(col-'a')), nil
}

// Direction is a single step relative to a perspective.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// delta translates a perspective relative direction into a rank/file step.
// Forward runs towards rank 0 for white and towards rank 7 for black, and
// left/right are mirrored the same way.
func (d Direction) delta(perspective Colour) (dRank, dFile int) {
	switch d {
	case Forward:
		dRank = -1
	case Backward:
		dRank = 1
	case Left:
		dFile = -1
	case Right:
		dFile = 1
	}
	if perspective == Black {
		return -dRank, -dFile
	}
	return dRank, dFile
}

// Position is a square seen from one side of the board. The perspective only
// decides which way the directions point; two positions naming the same
// square always refer to the same board cell.
type Position struct {
	square      Square
	perspective Colour
}

var positions [2][NumSquares]Position

func init() {
	for _, c := range []Colour{White, Black} {
		for sq := 0; sq < NumSquares; sq++ {
			positions[c][sq] = Position{square: Square(sq), perspective: c}
		}
	}
}

// GetPosition returns the position for rank and file in the given perspective.
func GetPosition(perspective Colour, rank, file int) (Position, error) {
	if perspective != White && perspective != Black {
		return Position{}, fmt.Errorf("%w: perspective %d", ErrInvalidPosition, perspective)
	}
	sq, err := NewSquare(rank, file)
	if err != nil {
		return Position{}, err
	}
	return positions[perspective][sq], nil
}

// PositionOf views sq from the given perspective.
func PositionOf(perspective Colour, sq Square) (Position, error) {
	if perspective != White && perspective != Black {
		return Position{}, fmt.Errorf("%w: perspective %d", ErrInvalidPosition, perspective)
	}
	if !sq.Valid() {
		return Position{}, fmt.Errorf("%w: square %d", ErrInvalidPosition, uint8(sq))
	}
	return positions[perspective][sq], nil
}

func (p Position) Square() Square      { return p.square }
func (p Position) Perspective() Colour { return p.perspective }
func (p Position) Rank() int           { return p.square.Rank() }
func (p Position) File() int           { return p.square.File() }

// Algebraic renders the square; it does not depend on the perspective.
func (p Position) Algebraic() string { return p.square.String() }

func (p Position) String() string { return p.square.String() }

// Neighbour steps once in direction d.
func (p Position) Neighbour(d Direction) (Position, error) {
	dRank, dFile := d.delta(p.perspective)
	rank, file := p.Rank()+dRank, p.File()+dFile
	if !onBoard(rank, file) {
		return Position{}, fmt.Errorf("%w: %s %s leaves the board", ErrInvalidPosition, p, d)
	}
	return positions[p.perspective][rank*8+file], nil
}

// Move folds Neighbour over dirs and stops at the first step off the board.
func (p Position) Move(dirs ...Direction) (Position, error) {
	cur := p
	for _, d := range dirs {
		next, err := cur.Neighbour(d)
		if err != nil {
			return Position{}, err
		}
		cur = next
	}
	return cur, nil
}

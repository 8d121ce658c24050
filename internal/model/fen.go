package model

import (
	"fmt"
	"strconv"
	"strings"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN sets up a board from a FEN record. Placement and side to move are
// required. The castling field is checked under both rules but only honoured
// under CastlingTracked; the en-passant field is checked but otherwise ignored.
func ParseFEN(fen string, rule CastlingRule) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: fen needs placement and side to move: %q", ErrInvalidPosition, fen)
	}

	layout := Layout{rule: rule}
	if err := layout.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	var turn Colour
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidPosition, fields[1])
	}

	castling := "-"
	if len(fields) > 2 {
		castling = fields[2]
	}
	rights, err := parseCastlingField(castling)
	if err != nil {
		return nil, err
	}
	// The geometric rule never loses a right.
	layout.rights = allCastlingRights
	if rule == CastlingTracked {
		layout.rights = rights
	}

	if len(fields) > 3 && fields[3] != "-" {
		if _, err := ParseSquare(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: en-passant field %q", ErrInvalidPosition, fields[3])
		}
	}

	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidPosition, fields[5])
		}
		fullmove = n
	}

	b := &Board{
		layout:          layout,
		turn:            turn,
		eliminatedWhite: make([]Piece, 0),
		eliminatedBlack: make([]Piece, 0),
		plies:           (fullmove - 1) * 2,
	}
	if turn == Black {
		b.plies++
	}
	b.refreshResult()
	return b, nil
}

func (l *Layout) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: placement needs 8 rows, got %d", ErrInvalidPosition, len(rows))
	}
	for rank, row := range rows {
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			colour := White
			if ch >= 'a' && ch <= 'z' {
				colour = Black
			}
			piece, err := NewPiece(string(ch), colour)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPosition, err)
			}
			if file > 7 {
				return fmt.Errorf("%w: row %d is too long", ErrInvalidPosition, 8-rank)
			}
			l.put(mustSquare(rank, file), piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: row %d has %d files", ErrInvalidPosition, 8-rank, file)
		}
	}
	return nil
}

func parseCastlingField(field string) (castlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights castlingRights
	for i := 0; i < len(field); i++ {
		matched := false
		for _, c := range []Colour{White, Black} {
			for _, side := range castleSides {
				if field[i] == side.fenLetter(c) {
					rights |= side.right(c)
					matched = true
				}
			}
		}
		if !matched {
			return 0, fmt.Errorf("%w: castling field %q", ErrInvalidPosition, field)
		}
	}
	return rights, nil
}

// FEN renders the board. Castling letters are only written for sides that
// could still castle later: right held and king and rook at home.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.layout.At(mustSquare(rank, file))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.Type.Letter()
			if p.Colour == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(b.turn.Code()))

	castling := ""
	for _, c := range []Colour{White, Black} {
		for _, side := range castleSides {
			if b.layout.canEverCastle(c, side) {
				castling += string(side.fenLetter(c))
			}
		}
	}
	if castling == "" {
		castling = "-"
	}
	fmt.Fprintf(&sb, " %s - 0 %d", castling, b.plies/2+1)
	return sb.String()
}

func (l *Layout) canEverCastle(c Colour, side castleSide) bool {
	if l.rights&side.right(c) == 0 {
		return false
	}
	home := c.homeRank()
	king := l.At(mustSquare(home, kingHomeFile))
	rook := l.At(mustSquare(home, side.rookFrom))
	return king == Piece{Type: King, Colour: c} && rook == Piece{Type: Rook, Colour: c}
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition means a coordinate, algebraic label or FEN does not
	// map onto the 8x8 board. The board is left untouched.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidMove means a well-formed move is not legal for the side to move.
	ErrInvalidMove = errors.New("invalid move")

	ErrGameOver     = fmt.Errorf("%w: game is over", ErrInvalidMove)
	ErrInvalidPiece = errors.New("invalid piece")
)

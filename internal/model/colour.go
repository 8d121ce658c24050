package model

import "fmt"

type Colour uint8

const (
	White Colour = iota
	Black
)

// Opponent returns the other side.
func (c Colour) Opponent() Colour {
	if c == White {
		return Black
	}
	return White
}

// Code is the single letter used by the web view: "W" or "B".
func (c Colour) Code() string {
	if c == White {
		return "W"
	}
	return "B"
}

func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

func (c *Colour) UnmarshalText(text []byte) error {
	colour, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = colour
	return nil
}

// ParseColour accepts "W"/"B" codes as well as "white"/"black".
func ParseColour(s string) (Colour, error) {
	switch s {
	case "W", "w", "white", "WHITE":
		return White, nil
	case "B", "b", "black", "BLACK":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
}

// homeRank is the back rank of the colour in board coordinates (rank 0 is row "8").
func (c Colour) homeRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Colour) pawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRank is the farthest rank from the colour's own side.
func (c Colour) promotionRank() int {
	if c == White {
		return 0
	}
	return 7
}

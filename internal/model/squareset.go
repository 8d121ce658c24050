package model

import (
	"math/bits"
	"slices"
)

// SquareSet is a set of squares, one bit per square.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool { return s&(1<<sq) != 0 }

func (s SquareSet) With(sq Square) SquareSet { return s | 1<<sq }

func (s SquareSet) Without(sq Square) SquareSet { return s &^ (1 << sq) }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

func (s SquareSet) Empty() bool { return s == 0 }

// Squares lists the members in ascending order (a8 first, h1 last).
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// Labels lists the members as sorted algebraic labels.
func (s SquareSet) Labels() []string {
	labels := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		labels = append(labels, sq.String())
	}
	slices.Sort(labels)
	return labels
}

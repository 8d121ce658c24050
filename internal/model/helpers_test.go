package model

import (
	"testing"
)

func sq(t *testing.T, label string) Square {
	t.Helper()
	s, err := ParseSquare(label)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", label, err)
	}
	return s
}

func mustPosition(t *testing.T, perspective Colour, s Square) Position {
	t.Helper()
	pos, err := PositionOf(perspective, s)
	if err != nil {
		t.Fatalf("PositionOf(%s, %s): %v", perspective, s, err)
	}
	return pos
}

// layoutOf builds a layout from label -> piece code pairs such as "e1": "WK".
func layoutOf(t *testing.T, rule CastlingRule, pieces map[string]string) Layout {
	t.Helper()
	l := Layout{rights: allCastlingRights, rule: rule}
	for label, code := range pieces {
		if len(code) != 2 {
			t.Fatalf("bad piece code %q", code)
		}
		colour, err := ParseColour(code[:1])
		if err != nil {
			t.Fatalf("piece code %q: %v", code, err)
		}
		p, err := NewPiece(code[1:], colour)
		if err != nil {
			t.Fatalf("piece code %q: %v", code, err)
		}
		l.put(sq(t, label), p)
	}
	return l
}

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen, CastlingTracked)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func mustMove(t *testing.T, b *Board, from, to string) Ply {
	t.Helper()
	ply, err := b.Move(sq(t, from), sq(t, to))
	if err != nil {
		t.Fatalf("move %s-%s: %v", from, to, err)
	}
	return ply
}

func countPieces(b *Board, c Colour) int {
	n := 0
	for _, code := range b.WebView() {
		if code[:1] == c.Code() {
			n++
		}
	}
	return n
}

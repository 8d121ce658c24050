package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPiece(t *testing.T) {
	tests := []struct {
		name string
		want PieceType
	}{
		{"Rook", Rook},
		{"rook", Rook},
		{"R", Rook},
		{"n", Knight},
		{"Knight", Knight},
		{"QUEEN", Queen},
		{"p", Pawn},
	}
	for _, tt := range tests {
		p, err := NewPiece(tt.name, Black)
		if err != nil {
			t.Errorf("NewPiece(%q): %v", tt.name, err)
			continue
		}
		if p.Type != tt.want || p.Colour != Black {
			t.Errorf("NewPiece(%q) = %v", tt.name, p)
		}
	}
	if _, err := NewPiece("dragon", White); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("expected ErrInvalidPiece, got %v", err)
	}
}

func TestPieceCode(t *testing.T) {
	tests := map[string]Piece{
		"WK": {Type: King, Colour: White},
		"BP": {Type: Pawn, Colour: Black},
		"WN": {Type: Knight, Colour: White},
		"BQ": {Type: Queen, Colour: Black},
		"":   {},
	}
	for want, p := range tests {
		if got := p.Code(); got != want {
			t.Errorf("%v.Code() = %q want %q", p, got, want)
		}
	}
}

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		from   string
		want   []string
	}{
		{
			name:   "knight in the corner",
			pieces: map[string]string{"a1": "WN"},
			from:   "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name:   "knight in the centre",
			pieces: map[string]string{"d4": "BN"},
			from:   "d4",
			want:   []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name:   "knight skips own pieces and takes enemies",
			pieces: map[string]string{"d4": "WN", "b3": "WP", "f5": "BP"},
			from:   "d4",
			want:   []string{"b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name:   "rook stops at own piece and captures enemy",
			pieces: map[string]string{"a1": "WR", "a3": "WP", "c1": "BB"},
			from:   "a1",
			want:   []string{"a2", "b1", "c1"},
		},
		{
			name:   "bishop on an open board",
			pieces: map[string]string{"c1": "WB"},
			from:   "c1",
			want:   []string{"a3", "b2", "d2", "e3", "f4", "g5", "h6"},
		},
		{
			name:   "queen combines rook and bishop rays",
			pieces: map[string]string{"d1": "WQ", "d3": "BP"},
			from:   "d1",
			want: []string{
				"a1", "a4", "b1", "b3", "c1", "c2", "d2", "d3",
				"e1", "e2", "f1", "f3", "g1", "g4", "h1", "h5",
			},
		},
		{
			name:   "white pawn on its home rank",
			pieces: map[string]string{"e2": "WP"},
			from:   "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "white pawn off its home rank",
			pieces: map[string]string{"e3": "WP"},
			from:   "e3",
			want:   []string{"e4"},
		},
		{
			name:   "pawn double step needs both squares empty",
			pieces: map[string]string{"e2": "WP", "e4": "BP"},
			from:   "e2",
			want:   []string{"e3"},
		},
		{
			name:   "blocked pawn cannot jump",
			pieces: map[string]string{"e2": "WP", "e3": "BN"},
			from:   "e2",
			want:   []string{},
		},
		{
			name:   "pawn captures diagonally forward only",
			pieces: map[string]string{"e4": "WP", "d5": "BP", "f5": "WP", "d3": "BP", "e5": "BP"},
			from:   "e4",
			want:   []string{"d5"},
		},
		{
			name:   "black pawn walks down the board",
			pieces: map[string]string{"d7": "BP", "e6": "WN", "c6": "BN"},
			from:   "d7",
			want:   []string{"d5", "d6", "e6"},
		},
		{
			name:   "king steps",
			pieces: map[string]string{"e4": "WK", "e5": "WP", "d5": "BP"},
			from:   "e4",
			want:   []string{"d3", "d4", "d5", "e3", "f3", "f4", "f5"},
		},
		{
			name:   "king offers both castling squares",
			pieces: map[string]string{"e1": "WK", "a1": "WR", "h1": "WR"},
			from:   "e1",
			want:   []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name:   "black king castles on its own back rank",
			pieces: map[string]string{"e8": "BK", "h8": "BR", "d8": "BQ"},
			from:   "e8",
			want:   []string{"d7", "e7", "f7", "f8", "g8"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layoutOf(t, CastlingTracked, tt.pieces)
			from := sq(t, tt.from)
			got := l.At(from).PossibleMoves(&l, from).Labels()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPossibleMovesHasNoSideEffects(t *testing.T) {
	b := NewBoard(CastlingTracked)
	before := b.Layout()
	for s := Square(0); s < NumSquares; s++ {
		if p, ok := b.PieceAt(s); ok {
			l := b.Layout()
			p.PossibleMoves(&l, s)
		}
	}
	if before != b.Layout() {
		t.Fatal("generating moves changed the board")
	}
}

package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetPositionRejectsOffBoard(t *testing.T) {
	tests := []struct {
		name       string
		rank, file int
	}{
		{"negative rank", -1, 0},
		{"rank too big", 8, 0},
		{"negative file", 0, -1},
		{"file too big", 3, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetPosition(White, tt.rank, tt.file)
			if !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("expected ErrInvalidPosition, got %v", err)
			}
		})
	}
	if _, err := GetPosition(Colour(7), 0, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition for unknown perspective, got %v", err)
	}
}

func TestPositionsAreInterned(t *testing.T) {
	a, err := GetPosition(Black, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GetPosition(Black, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected equal positions, got %v and %v", a, b)
	}
	w, _ := GetPosition(White, 3, 5)
	if w == a {
		t.Fatal("positions of different perspectives compared equal")
	}
	if w.Square() != a.Square() {
		t.Fatal("positions of the same square must share the square key")
	}
}

func TestAlgebraicIgnoresPerspective(t *testing.T) {
	tests := []struct {
		rank, file int
		want       string
	}{
		{0, 0, "a8"},
		{7, 0, "a1"},
		{7, 7, "h1"},
		{6, 4, "e2"},
		{3, 3, "d5"},
	}
	for _, tt := range tests {
		for _, c := range []Colour{White, Black} {
			p, err := GetPosition(c, tt.rank, tt.file)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Algebraic(); got != tt.want {
				t.Errorf("%s (%d,%d): got %q want %q", c, tt.rank, tt.file, got, tt.want)
			}
		}
	}
}

func TestNeighbourFollowsPerspective(t *testing.T) {
	tests := []struct {
		name        string
		perspective Colour
		from        string
		dir         Direction
		want        string
	}{
		{"white forward", White, "e2", Forward, "e3"},
		{"white backward", White, "e2", Backward, "e1"},
		{"white left", White, "e2", Left, "d2"},
		{"white right", White, "e2", Right, "f2"},
		{"black forward", Black, "e7", Forward, "e6"},
		{"black backward", Black, "e7", Backward, "e8"},
		{"black left", Black, "e7", Left, "f7"},
		{"black right", Black, "e7", Right, "d7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := mustPosition(t, tt.perspective, sq(t, tt.from))
			got, err := from.Neighbour(tt.dir)
			if err != nil {
				t.Fatalf("Neighbour: %v", err)
			}
			if got.Algebraic() != tt.want {
				t.Fatalf("got %s want %s", got, tt.want)
			}
			if got.Perspective() != tt.perspective {
				t.Fatalf("perspective changed to %s", got.Perspective())
			}
		})
	}
}

func TestNeighbourOffBoard(t *testing.T) {
	tests := []struct {
		perspective Colour
		from        string
		dir         Direction
	}{
		{White, "a8", Forward},
		{White, "a1", Left},
		{White, "h4", Right},
		{Black, "c1", Forward},
		{Black, "h5", Left},
		{Black, "d8", Backward},
	}
	for _, tt := range tests {
		_, err := mustPosition(t, tt.perspective, sq(t, tt.from)).Neighbour(tt.dir)
		if !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("%s %s %s: expected ErrInvalidPosition, got %v", tt.perspective, tt.from, tt.dir, err)
		}
	}
}

func TestMoveShortCircuits(t *testing.T) {
	from := mustPosition(t, White, sq(t, "a1"))
	if _, err := from.Move(Left, Right); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected the first off-board step to fail, got %v", err)
	}
	got, err := from.Move(Forward, Forward, Right)
	if err != nil {
		t.Fatal(err)
	}
	if got.Algebraic() != "b3" {
		t.Fatalf("got %s want b3", got)
	}
	same, err := from.Move()
	if err != nil || same != from {
		t.Fatalf("empty move should return the start, got %v %v", same, err)
	}
}

func TestParseSquare(t *testing.T) {
	valid := map[string][2]int{
		"a8": {0, 0},
		"h1": {7, 7},
		"e4": {4, 4},
		"E4": {4, 4},
		"c7": {1, 2},
	}
	for label, want := range valid {
		got, err := ParseSquare(label)
		if err != nil {
			t.Errorf("ParseSquare(%q): %v", label, err)
			continue
		}
		if diff := cmp.Diff(want, [2]int{got.Rank(), got.File()}); diff != "" {
			t.Errorf("ParseSquare(%q) mismatch (-want +got):\n%s", label, diff)
		}
	}

	for _, label := range []string{"", "e", "e44", "i1", "a9", "a0", "11", "ee", " e4"} {
		if _, err := ParseSquare(label); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParseSquare(%q): expected ErrInvalidPosition, got %v", label, err)
		}
	}
}

func TestSquareSetLabelsSorted(t *testing.T) {
	var s SquareSet
	for _, label := range []string{"h1", "a8", "e4", "a1"} {
		s = s.With(sq(t, label))
	}
	s = s.Without(sq(t, "e4"))
	if diff := cmp.Diff([]string{"a1", "a8", "h1"}, s.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 || s.Has(sq(t, "e4")) {
		t.Fatalf("unexpected set %v", s.Labels())
	}
}

func TestPositionOfRejectsBadInput(t *testing.T) {
	tests := []struct {
		name        string
		perspective Colour
		square      Square
	}{
		{"square past h1", White, Square(NumSquares)},
		{"largest square value", Black, Square(255)},
		{"unknown perspective", Colour(2), Square(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PositionOf(tt.perspective, tt.square); !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("expected ErrInvalidPosition, got %v", err)
			}
		})
	}
}

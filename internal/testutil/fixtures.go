package testutil

import (
	"testing"

	"github.com/IndaPlus23/eliassam-chess/chess"
)

// MustParseSquare parses a coordinate like "e4" and aborts the test on failure.
// Use this in test setup where a bad coordinate is a bug in the test itself.
func MustParseSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(s)
	if !ok {
		t.Fatalf("bad test coordinate %q", s)
	}
	return sq
}

// SquareNames converts a slice of squares to their algebraic names,
// preserving order. Useful for comparing move lists against literals.
func SquareNames(squares []chess.Square) []string {
	if squares == nil {
		return nil
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

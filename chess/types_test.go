package chess

import "testing"

func TestColour(t *testing.T) {
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("Colour.String() = %q, %q; want White, Black", White, Black)
	}
	if White.Opposite() != Black {
		t.Errorf("White.Opposite() = %v; want Black", White.Opposite())
	}
	if Black.Opposite() != White {
		t.Errorf("Black.Opposite() = %v; want White", Black.Opposite())
	}
}

func TestColouredPiecePacking(t *testing.T) {
	for _, piece := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, colour := range []Colour{White, Black} {
			cp := MakeColouredPiece(colour, piece)
			if got := ExtractPiece(cp); got != piece {
				t.Errorf("ExtractPiece(%v %v) = %v; want %v", colour, piece, got, piece)
			}
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v; want %v", colour, piece, got, colour)
			}
		}
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestPawnRanks(t *testing.T) {
	if got := PawnStartRank(White); got != '2' {
		t.Errorf("PawnStartRank(White) = %c; want 2", got)
	}
	if got := PawnStartRank(Black); got != '7' {
		t.Errorf("PawnStartRank(Black) = %c; want 7", got)
	}
	if got := PromotionRank(White); got != '8' {
		t.Errorf("PromotionRank(White) = %c; want 8", got)
	}
	if got := PromotionRank(Black); got != '1' {
		t.Errorf("PromotionRank(Black) = %c; want 1", got)
	}
}

func TestColourOffset(t *testing.T) {
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset() should be +1 for White and -1 for Black")
	}
}

package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/IndaPlus23/eliassam-chess/chess"
)

// destinationNames generates pseudo-legal destinations and returns their
// algebraic names sorted for comparison against literals.
func destinationNames(board *chess.Board, from chess.Square) []string {
	dests := PseudoLegalDestinations(board, from)
	if len(dests) == 0 {
		return nil
	}
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	slices.Sort(names)
	return names
}

func TestPseudoLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "pawn single and double push",
			fen:  InitialFEN,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "pawn double push blocked on far square",
			fen:  "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn fully blocked",
			fen:  "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "pawn captures diagonally",
			fen:  "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"d5", "e5", "f5"},
		},
		{
			name: "pawn cannot capture own piece",
			fen:  "4k3/8/8/3P4/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"e5"},
		},
		{
			name: "pawn en passant capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			from: "e5",
			want: []string{"d6", "e6"},
		},
		{
			name: "black pawn moves down the board",
			fen:  "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1",
			from: "e7",
			want: []string{"e5", "e6"},
		},
		{
			name: "knight from corner",
			fen:  "4k3/8/8/8/8/8/8/N3K3 w - - 0 1",
			from: "a1",
			want: []string{"b3", "c2"},
		},
		{
			name: "knight jumps over blockers",
			fen:  InitialFEN,
			from: "b1",
			want: []string{"a3", "c3"},
		},
		{
			name: "bishop rays stop at blockers",
			fen:  "4k3/8/8/4p3/8/8/8/B3K3 w - - 0 1",
			from: "a1",
			want: []string{"b2", "c3", "d4", "e5"},
		},
		{
			name: "rook on open board",
			fen:  "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			from: "a1",
			want: []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1"},
		},
		{
			name: "queen combines rook and bishop",
			fen:  "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1",
			from: "a1",
			want: []string{
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "b2", "c1", "c3", "d1", "d4", "e5", "f6", "g7", "h8",
			},
		},
		{
			name: "king box",
			fen:  "4k3/8/8/8/3K4/8/8/8 w - - 0 1",
			from: "d4",
			want: []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"},
		},
		{
			name: "empty square yields nothing",
			fen:  InitialFEN,
			from: "e4",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			from, _ := chess.ParseSquare(tt.from)
			got := destinationNames(board, from)
			if !slices.Equal(got, tt.want) {
				t.Errorf("destinations from %s = %v; want %v:\n%v", tt.from, got, tt.want, board)
			}
		})
	}
}

func TestCastlingDestinations(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		from          string
		wantKingside  bool
		wantQueenside bool
	}{
		{
			name: "both sides available",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			from: "e1", wantKingside: true, wantQueenside: true,
		},
		{
			name: "black castles on rank 8",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from: "e8", wantKingside: true, wantQueenside: true,
		},
		{
			name: "rights revoked",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			from: "e1", wantKingside: false, wantQueenside: false,
		},
		{
			name: "kingside path occupied",
			fen:  "4k3/8/8/8/8/8/8/R3KB1R w KQ - 0 1",
			from: "e1", wantKingside: false, wantQueenside: true,
		},
		{
			name: "queenside path occupied on b1",
			fen:  "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1",
			from: "e1", wantKingside: true, wantQueenside: false,
		},
		{
			name: "king in check",
			fen:  "4k3/8/8/8/8/4r3/8/R3K2R w KQ - 0 1",
			from: "e1", wantKingside: false, wantQueenside: false,
		},
		{
			name: "kingside transit square attacked",
			fen:  "4k3/8/5r2/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1", wantKingside: false, wantQueenside: true,
		},
		{
			name: "queenside transit square attacked",
			fen:  "4k3/8/3r4/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1", wantKingside: true, wantQueenside: false,
		},
		{
			name: "attack on b1 does not block queenside",
			fen:  "4k3/8/1r6/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1", wantKingside: true, wantQueenside: true,
		},
		{
			name: "rook missing despite right",
			fen:  "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1",
			from: "e1", wantKingside: true, wantQueenside: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			from, _ := chess.ParseSquare(tt.from)
			rank := from.Rank
			got := destinationNames(board, from)

			kingside := slices.Contains(got, chess.Sq('g', rank).String())
			queenside := slices.Contains(got, chess.Sq('c', rank).String())
			if kingside != tt.wantKingside || queenside != tt.wantQueenside {
				t.Errorf("castling from %s = kingside %v, queenside %v; want %v, %v:\n%v",
					tt.from, kingside, queenside, tt.wantKingside, tt.wantQueenside, board)
			}
		})
	}
}

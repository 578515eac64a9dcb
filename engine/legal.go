package engine

import "github.com/IndaPlus23/eliassam-chess/chess"

// LegalDestinations returns every legal destination for the piece on from.
// It generates the pseudo-legal set and discards each candidate that would
// leave the mover's own king attacked. The result is nil when from is empty,
// off the board, or holds a piece of the side not to move.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	if chess.ExtractColour(piece) != board.ToMove {
		return nil
	}

	var dests []chess.Square
	for _, to := range PseudoLegalDestinations(board, from) {
		if !leavesKingAttacked(board, from, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// leavesKingAttacked simulates the move on a disposable board copy, honouring
// en passant capture and the castling rook relocation, and reports whether
// the mover's king ends up attacked.
func leavesKingAttacked(board *chess.Board, from, to chess.Square) bool {
	colour := chess.ExtractColour(board.At(from))
	test := board.Copy()
	ApplyMove(test, chess.Move{From: from, To: to})
	return IsInCheck(test, colour)
}

// HasAnyLegalMove reports whether the given colour has at least one legal
// move. It short-circuits on the first legal move found.
func HasAnyLegalMove(board *chess.Board, colour chess.Colour) bool {
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}

			from := chess.Sq(col, rank)
			for _, to := range PseudoLegalDestinations(board, from) {
				if !leavesKingAttacked(board, from, to) {
					return true
				}
			}
		}
	}
	return false
}

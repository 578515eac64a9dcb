package engine

import "github.com/IndaPlus23/eliassam-chess/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)

	// If the king position is not tracked, search for it.
	if !king.Valid() {
		var found bool
		king, found = findKing(board, colour)
		if !found {
			return false
		}
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// byColour. This is a pure geometric query over the current board: it
// ignores whether moving the attacker would expose its own king, and it
// never consults the legality filter.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks cover only the diagonal capture pattern.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if board.At(sq.Offset(dc, pawnDir)) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.At(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.At(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	// Sliding rays stop at the first blocker.
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if slidingAttack(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return slidingAttack(board, sq, straightDirs, rook, queen)
}

// slidingAttack walks each direction outward from sq and reports whether the
// first occupied square holds one of the two attacker pieces.
func slidingAttack(board *chess.Board, sq chess.Square, dirs [][2]int, attacker, queen chess.Piece) bool {
	for _, dir := range dirs {
		to := sq.Offset(dir[0], dir[1])
		for to.Valid() {
			piece := board.At(to)
			if piece != chess.Empty {
				if piece == attacker || piece == queen {
					return true
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

package engine

import "github.com/IndaPlus23/eliassam-chess/chess"

// Movement geometry shared by the move generator and the attack tester.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalDestinations returns every destination the piece on from could
// move to by its movement pattern alone, ignoring whether the move would
// leave its own king attacked. An empty or off-board square yields nil.
func PseudoLegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnDestinations(board, from, colour)
	case chess.Knight:
		return offsetDestinations(board, from, colour, knightOffsets)
	case chess.Bishop:
		return slidingDestinations(board, from, colour, diagonalDirs)
	case chess.Rook:
		return slidingDestinations(board, from, colour, straightDirs)
	case chess.Queen:
		dests := slidingDestinations(board, from, colour, diagonalDirs)
		return append(dests, slidingDestinations(board, from, colour, straightDirs)...)
	case chess.King:
		dests := offsetDestinations(board, from, colour, kingOffsets)
		return append(dests, castlingDestinations(board, from, colour)...)
	}
	return nil
}

// pawnDestinations generates pawn pushes, captures and en passant captures.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var dests []chess.Square
	dir := chess.ColourOffset(colour)

	// Single push onto an empty square.
	one := from.Offset(0, dir)
	if one.Valid() && board.At(one) == chess.Empty {
		dests = append(dests, one)

		// Double push from the starting rank onto two empty squares.
		if from.Rank == chess.PawnStartRank(colour) {
			two := from.Offset(0, 2*dir)
			if board.At(two) == chess.Empty {
				dests = append(dests, two)
			}
		}
	}

	// Diagonal captures, including the en passant target.
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dc, dir)
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			dests = append(dests, to)
			continue
		}
		if board.EnPassant && to == board.EPSquare {
			dests = append(dests, to)
		}
	}

	return dests
}

// offsetDestinations generates fixed-offset destinations for knights and kings.
func offsetDestinations(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var dests []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			dests = append(dests, to)
		}
	}
	return dests
}

// slidingDestinations ray-casts in the given directions, stopping at the
// first occupied square (included when it holds an enemy piece).
func slidingDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var dests []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					dests = append(dests, to)
				}
				break
			}
			dests = append(dests, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return dests
}

// castlingDestinations generates g- and c-file king destinations when the
// corresponding right is held, the path is empty, the rook is in place, the
// king is not in check and neither the transit nor the destination square
// is attacked.
func castlingDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	home := chess.Sq('e', homeRank(colour))
	if from != home {
		return nil
	}

	var dests []chess.Square
	enemy := colour.Opposite()
	rank := home.Rank

	kingside := board.Castling.WhiteKingside
	queenside := board.Castling.WhiteQueenside
	if colour == chess.Black {
		kingside = board.Castling.BlackKingside
		queenside = board.Castling.BlackQueenside
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if kingside &&
		board.Get('h', rank) == rook &&
		board.Get('f', rank) == chess.Empty &&
		board.Get('g', rank) == chess.Empty &&
		!IsSquareAttacked(board, home, enemy) &&
		!IsSquareAttacked(board, chess.Sq('f', rank), enemy) &&
		!IsSquareAttacked(board, chess.Sq('g', rank), enemy) {
		dests = append(dests, chess.Sq('g', rank))
	}

	if queenside &&
		board.Get('a', rank) == rook &&
		board.Get('b', rank) == chess.Empty &&
		board.Get('c', rank) == chess.Empty &&
		board.Get('d', rank) == chess.Empty &&
		!IsSquareAttacked(board, home, enemy) &&
		!IsSquareAttacked(board, chess.Sq('d', rank), enemy) &&
		!IsSquareAttacked(board, chess.Sq('c', rank), enemy) {
		dests = append(dests, chess.Sq('c', rank))
	}

	return dests
}

// homeRank returns the back rank of the given colour.
func homeRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return chess.FirstRank
	}
	return chess.LastRank
}

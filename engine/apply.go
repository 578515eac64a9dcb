package engine

import "github.com/IndaPlus23/eliassam-chess/chess"

// ApplyMove mutates the board with an already validated move: it relocates
// the piece, resolves captures (including the en passant victim), relocates
// the rook on castling, revokes castling rights, maintains the en passant
// target and both clocks, and flips the side to move.
//
// ApplyMove performs no legality checking. Callers validate first (see
// Game.MakeMove) or apply to a disposable copy (see the legality filter).
func ApplyMove(board *chess.Board, move chess.Move) {
	piece := board.At(move.From)
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	captured := board.At(move.To)

	// En passant removes the pawn on the adjacent square, not the destination.
	if kind == chess.Pawn && board.EnPassant && move.To == board.EPSquare {
		victim := move.To.Offset(0, -chess.ColourOffset(colour))
		board.Put(victim, chess.Empty)
		captured = chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	}

	// Relocate, promoting if requested.
	board.Put(move.From, chess.Empty)
	if move.IsPromotion() {
		board.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		board.Put(move.To, piece)
	}

	if kind == chess.King {
		// Castling additionally relocates the rook.
		if fileDistance(move.From, move.To) == 2 {
			rank := move.From.Rank
			if move.To.Col > move.From.Col {
				moveRook(board, chess.Sq('h', rank), chess.Sq('f', rank))
			} else {
				moveRook(board, chess.Sq('a', rank), chess.Sq('d', rank))
			}
		}
		board.SetKingSquare(colour, move.To)
		revokeAllRights(board, colour)
	}

	// A rook leaving its corner, or captured on it, permanently revokes
	// the corresponding right.
	if kind == chess.Rook {
		revokeRookRight(board, colour, move.From)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		revokeRookRight(board, chess.ExtractColour(captured), move.To)
	}

	// The en passant target lives for exactly one move after a double push.
	if kind == chess.Pawn && rankDistance(move.From, move.To) == 2 {
		board.SetEnPassantTarget(move.From.Offset(0, chess.ColourOffset(colour)))
	} else {
		board.ClearEnPassantTarget()
	}

	if captured != chess.Empty || kind == chess.Pawn {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.FullmoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// moveRook relocates a rook during castling.
func moveRook(board *chess.Board, from, to chess.Square) {
	rook := board.At(from)
	board.Put(from, chess.Empty)
	board.Put(to, rook)
}

// revokeAllRights clears both castling rights of the given colour.
func revokeAllRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.Castling.WhiteKingside = false
		board.Castling.WhiteQueenside = false
	} else {
		board.Castling.BlackKingside = false
		board.Castling.BlackQueenside = false
	}
}

// revokeRookRight clears the castling right tied to a rook corner square,
// when sq is such a corner for the given colour.
func revokeRookRight(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != homeRank(colour) {
		return
	}
	switch sq.Col {
	case 'h':
		if colour == chess.White {
			board.Castling.WhiteKingside = false
		} else {
			board.Castling.BlackKingside = false
		}
	case 'a':
		if colour == chess.White {
			board.Castling.WhiteQueenside = false
		} else {
			board.Castling.BlackQueenside = false
		}
	}
}

// fileDistance returns the absolute file distance between two squares.
func fileDistance(a, b chess.Square) int {
	return abs(int(b.Col) - int(a.Col))
}

// rankDistance returns the absolute rank distance between two squares.
func rankDistance(a, b chess.Square) int {
	return abs(int(b.Rank) - int(a.Rank))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

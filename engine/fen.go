package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/IndaPlus23/eliassam-chess/chess"
	"github.com/IndaPlus23/eliassam-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromFENChar converts a FEN letter to an uncoloured piece type.
func pieceFromFENChar(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// fenCharFromPiece converts a coloured piece to its FEN letter.
func fenCharFromPiece(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// BoardFromFEN creates a board from a FEN string. All six fields are parsed
// strictly; any malformed field yields an error wrapping ErrInvalidFEN and
// no board.
func BoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("want 6 FEN fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePlacement(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePlacement parses the piece placement field: eight '/'-separated
// ranks from rank 8 down to rank 1, each covering exactly eight files.
func parsePiecePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				col += chess.Col(c - '0')
				continue
			}

			piece := pieceFromFENChar(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.LastCol {
				return fmt.Errorf("rank %c overfilled: %w", rank, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				board.SetKingSquare(colour, chess.Sq(col, rank))
			}
			col++
		}

		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c does not cover 8 files: %w", rank, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the active colour field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field: "-" or a
// non-empty subset of "KQkq" without repetition.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
	if field == "" {
		return fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}

	for _, c := range field {
		var flag *bool
		switch c {
		case 'K':
			flag = &board.Castling.WhiteKingside
		case 'Q':
			flag = &board.Castling.WhiteQueenside
		case 'k':
			flag = &board.Castling.BlackKingside
		case 'q':
			flag = &board.Castling.BlackQueenside
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, errors.ErrInvalidFEN)
		}
		if *flag {
			return fmt.Errorf("repeated castling character %q: %w", c, errors.ErrInvalidFEN)
		}
		*flag = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.ClearEnPassantTarget()
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	board.SetEnPassantTarget(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	h, err := strconv.ParseUint(halfmove, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid halfmove clock %q: %w", halfmove, errors.ErrInvalidFEN)
	}
	f, err := strconv.ParseUint(fullmove, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid fullmove number %q: %w", fullmove, errors.ErrInvalidFEN)
	}
	board.HalfmoveClock = uint(h)
	board.FullmoveNumber = uint(f)
	return nil
}

// BoardToFEN converts a board to its canonical six-field FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePlacement(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.FullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement with run-length-encoded
// empty squares, rank 8 down to rank 1.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenCharFromPiece(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the active colour.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability in fixed KQkq order,
// or "-" when no right remains.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square or "-".
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := board.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}

package chess

import "strings"

// CastlingRights holds the four independent castling flags. Rights are only
// ever revoked over the lifetime of a game, never restored.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Any reports whether at least one right remains.
func (cr CastlingRights) Any() bool {
	return cr.WhiteKingside || cr.WhiteQueenside || cr.BlackKingside || cr.BlackQueenside
}

// Board represents a chess position with all state needed for the rules.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The four castling flags.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Is an en passant capture possible? If so EPSquare holds the square
	// on which it can be made, valid for exactly one move.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number, incremented after each Black move.
	FullmoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			b.Set(col, rank, Empty)
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i := 0; i < BoardSize; i++ {
		col := Col(ColBase + i)
		b.Set(col, '1', W(backRank[i]))
		b.Set(col, '2', W(Pawn))
		b.Set(col, '7', B(Pawn))
		b.Set(col, '8', B(backRank[i]))
	}

	b.WKing = Sq('e', '1')
	b.BKing = Sq('e', '8')

	b.Castling = CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}

	b.ToMove = White
	b.EnPassant = false
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// Get returns the piece at the given coordinates ('a'-'h', '1'-'8').
// Off-board coordinates yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on the given square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on the given square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// KingSquare returns the tracked king square for the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKingSquare updates the tracked king square for the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// EnPassantTarget returns the current en passant target square, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.EnPassant {
		return Square{}, false
	}
	return b.EPSquare, true
}

// SetEnPassantTarget records the en passant target square for one move.
func (b *Board) SetEnPassantTarget(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassantTarget clears the en passant target square.
func (b *Board) ClearEnPassantTarget() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board rank 8 down to rank 1, one rank per line, with
// piece letters (lowercase for Black) and '*' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank(LastRank); rank >= FirstRank; rank-- {
		for col := Col(FirstCol); col <= LastCol; col++ {
			piece := b.Get(col, rank)
			if piece == Empty {
				sb.WriteByte('*')
			} else {
				letter := ExtractPiece(piece).Letter()
				if ExtractColour(piece) == Black {
					letter += 'a' - 'A'
				}
				sb.WriteByte(letter)
			}
			if col < LastCol {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package chess

// Square identifies one of the 64 board squares by file and rank characters.
// The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq is a shorthand constructor for a square.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic notation of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Offset returns the square dCol files and dRank ranks away. The result may
// be off the board; callers check with Valid.
func (s Square) Offset(dCol, dRank int) Square {
	return Square{Col: Col(int(s.Col) + dCol), Rank: Rank(int(s.Rank) + dRank)}
}

// ParseSquare parses a two-character coordinate like "e4". It accepts exactly
// the grammar [a-h][1-8] and reports failure for anything else.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, false
	}
	return sq, true
}

// PromotionFromChar converts a promotion letter to a piece type.
// Accepts Q, R, N and B in either case; anything else yields Empty.
func PromotionFromChar(c byte) Piece {
	switch c {
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	default:
		return Empty
	}
}

// ParseDestination parses a destination coordinate with an optional trailing
// promotion letter, e.g. "e4" or "e8q". The returned piece is Empty when no
// promotion letter is present.
func ParseDestination(s string) (Square, Piece, bool) {
	switch len(s) {
	case 2:
		sq, ok := ParseSquare(s)
		return sq, Empty, ok
	case 3:
		sq, ok := ParseSquare(s[:2])
		if !ok {
			return Square{}, Empty, false
		}
		promo := PromotionFromChar(s[2])
		if promo == Empty {
			return Square{}, Empty, false
		}
		return sq, promo, true
	default:
		return Square{}, Empty, false
	}
}

// Move represents a single move as a source square, a destination square and
// an optional promotion piece. Both Empty and the zero value mean the move is
// not a promotion.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion > Empty
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8Q".
func (m Move) String() string {
	if m.IsPromotion() {
		return m.From.String() + m.To.String() + string(m.Promotion.Letter())
	}
	return m.From.String() + m.To.String()
}

// Package engine implements the chess rules: move generation, the legality
// filter, game-state classification, move execution and FEN transcoding.
// A Game value is exclusively owned by its caller; the engine performs no
// internal locking and no I/O.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/IndaPlus23/eliassam-chess/chess"
	"github.com/IndaPlus23/eliassam-chess/internal/errors"
)

// Game is the aggregate root owning the board and all game metadata. It is
// created by New or loaded from a FEN string, and mutated only through
// MakeMove and LoadFEN. Failed operations leave the game untouched.
type Game struct {
	board *chess.Board
}

// New creates a game in the standard starting position: White to move, all
// castling rights, no en passant target, halfmove clock 0, fullmove number 1.
func New() *Game {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return &Game{board: board}
}

// GameState classifies the current position for the side to move. The state
// is recomputed from the board on every call, never cached.
func (g *Game) GameState() GameState {
	return EvaluateState(g.board)
}

// Turn returns "White" or "Black".
func (g *Game) Turn() string {
	return g.board.ToMove.String()
}

// Halfmove returns the halfmove clock: moves since the last capture or pawn
// advance. The engine exposes the raw counter only; fifty-move adjudication
// is left to the host.
func (g *Game) Halfmove() uint {
	return g.board.HalfmoveClock
}

// Fullmove returns the fullmove number, starting at 1 and incremented after
// each Black move.
func (g *Game) Fullmove() uint {
	return g.board.FullmoveNumber
}

// Board returns a copy of the current position. Mutating the copy does not
// affect the game.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the canonical FEN string of the current position.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// LoadFEN replaces the game with the position encoded by fen and returns the
// freshly computed game state. On malformed FEN it reports false and leaves
// the game unchanged.
func (g *Game) LoadFEN(fen string) (GameState, bool) {
	board, err := BoardFromFEN(fen)
	if err != nil {
		return InProgress, false
	}
	g.board = board
	return EvaluateState(g.board), true
}

// PossibleMoves returns the legal destinations for the piece on the given
// coordinate, in algebraic notation sorted alphabetically. It returns nil
// when the coordinate is malformed, the square holds no piece of the side
// to move, or no legal destination exists.
func (g *Game) PossibleMoves(square string) []string {
	from, ok := chess.ParseSquare(square)
	if !ok {
		return nil
	}

	dests := LegalDestinations(g.board, from)
	if len(dests) == 0 {
		return nil
	}

	names := make([]string, len(dests))
	for i, to := range dests {
		names[i] = to.String()
	}
	slices.Sort(names)
	return names
}

// MakeMove plays a move given as two coordinates, with an optional
// case-insensitive promotion letter (Q, R, N or B) appended to the
// destination, e.g. MakeMove("e7", "e8q"). On success it returns the new
// game state and true; on any malformed or illegal input it returns false
// and leaves the game unchanged.
func (g *Game) MakeMove(from, to string) (GameState, bool) {
	state, err := g.Move(from, to)
	return state, err == nil
}

// Move is the error-reporting form of MakeMove. The returned error wraps
// one of the package sentinels (ErrInvalidSquare, ErrIllegalMove,
// ErrBadPromotion) inside a MoveError carrying the offending coordinates.
func (g *Game) Move(from, to string) (GameState, error) {
	move, err := g.validateMove(from, to)
	if err != nil {
		return InProgress, &errors.MoveError{Err: err, From: from, To: to}
	}

	ApplyMove(g.board, move)
	return EvaluateState(g.board), nil
}

// validateMove parses and fully validates a move before any mutation.
func (g *Game) validateMove(from, to string) (chess.Move, error) {
	fromSq, ok := chess.ParseSquare(from)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidSquare, "source %q", from)
	}
	toSq, promotion, ok := chess.ParseDestination(to)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidSquare, "destination %q", to)
	}

	piece := g.board.At(fromSq)
	if piece == chess.Empty {
		return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, "no piece on source square")
	}
	if chess.ExtractColour(piece) != g.board.ToMove {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%v to move", g.board.ToMove)
	}

	// Strict promotion policy: a pawn reaching the last rank requires a
	// promotion letter, and a promotion letter is rejected everywhere else.
	promoting := chess.ExtractPiece(piece) == chess.Pawn &&
		toSq.Rank == chess.PromotionRank(g.board.ToMove)
	if promoting && promotion == chess.Empty {
		return chess.Move{}, errors.Wrap(errors.ErrBadPromotion, "promotion piece required")
	}
	if !promoting && promotion != chess.Empty {
		return chess.Move{}, errors.Wrap(errors.ErrBadPromotion, "promotion piece not applicable")
	}

	if !slices.Contains(LegalDestinations(g.board, fromSq), toSq) {
		return chess.Move{}, errors.ErrIllegalMove
	}

	return chess.Move{From: fromSq, To: toSq, Promotion: promotion}, nil
}

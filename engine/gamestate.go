package engine

import "github.com/IndaPlus23/eliassam-chess/chess"

// GameState classifies a position from the side to move's point of view.
// It is always derived from the current board, never stored independently.
type GameState int

const (
	InProgress GameState = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// EvaluateState classifies the board for the side to move by combining
// check detection with the existence of at least one legal move.
func EvaluateState(board *chess.Board) GameState {
	inCheck := IsInCheck(board, board.ToMove)
	hasMove := HasAnyLegalMove(board, board.ToMove)

	switch {
	case inCheck && hasMove:
		return Check
	case inCheck:
		return Checkmate
	case hasMove:
		return InProgress
	default:
		return Stalemate
	}
}

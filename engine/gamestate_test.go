package engine

import "testing"

func TestGameStateString(t *testing.T) {
	tests := []struct {
		state GameState
		want  string
	}{
		{InProgress, "InProgress"},
		{Check, "Check"},
		{Checkmate, "Checkmate"},
		{Stalemate, "Stalemate"},
		{GameState(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("GameState(%d).String() = %q; want %q", tt.state, got, tt.want)
		}
	}
}

func TestEvaluateState(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameState
	}{
		{
			name: "initial position in progress",
			fen:  InitialFEN,
			want: InProgress,
		},
		{
			name: "rook check with escape squares",
			fen:  "4k3/8/8/8/8/8/8/4RK2 b - - 0 1",
			want: Check,
		},
		{
			name: "fools mate is checkmate",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: Checkmate,
		},
		{
			name: "back rank mate",
			fen:  "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			want: Checkmate,
		},
		{
			name: "queen stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: Stalemate,
		},
		{
			name: "cornered king without check in progress",
			fen:  "7k/8/5K2/8/8/8/8/8 b - - 0 1",
			want: InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := EvaluateState(board); got != tt.want {
				t.Errorf("EvaluateState() = %v; want %v:\n%v", got, tt.want, board)
			}
		})
	}
}

package board

import (
	"testing"

	"github.com/ninghz77/chess/position"
)

func TestGenerateLegalMovesCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fen  string
		want int
	}{
		{
			name: "starting position",
			fen:  DefaultStartingPositionFEN,
			want: 20,
		},
		{
			name: "starting position black",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
			want: 20,
		},
		{
			name: "kiwipete",
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			want: 48,
		},
		{
			name: "lone kings",
			fen:  "k7/8/8/8/8/8/8/7K w - - 0 1",
			want: 3,
		},
		{
			name: "checkmated side has no moves",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: 0,
		},
		{
			name: "stalemated side has no moves",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			if got := len(b.GenerateLegalMoves()); got != tt.want {
				t.Errorf("unexpected move count: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestGenerateLegalMovesKingSafety(t *testing.T) {
	t.Parallel()

	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/1B1pp3/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 3",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, fen)
			mover := b.Turn()
			for _, mv := range b.GenerateLegalMoves() {
				b.MakeMove(mv)
				if b.IsInCheck(mover) {
					t.Errorf("move %s leaves own king attacked", mv.UCI())
				}
				b.UndoMove()
			}
		})
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	t.Parallel()

	// The e-file knight is pinned against the king by the rook.
	b := mustBoard(t, "4r2k/8/8/8/8/4N3/8/4K3 w - - 0 1")
	for _, mv := range b.GenerateLegalMoves() {
		if mv.From == position.New(position.FileE, position.Rank3) {
			t.Errorf("pinned knight moved: %s", mv.UCI())
		}
	}
}

func TestCheckEvasion(t *testing.T) {
	t.Parallel()

	// Black king checked by the bishop on b5; blocks, captures of the line,
	// and king steps are the only answers.
	b := mustBoard(t, "rnbqkbnr/ppp2ppp/8/1B1pp3/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 3")
	if !b.IsInCheck(SideBlack) {
		t.Fatal("expected black to be in check")
	}
	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		t.Fatal("expected evasions to exist")
	}
	for _, mv := range mvs {
		b.MakeMove(mv)
		if b.IsInCheck(SideBlack) {
			t.Errorf("evasion %s leaves king in check", mv.UCI())
		}
		b.UndoMove()
	}
}

func TestIsSquareAttacked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fen    string
		square string
		by     Side
		want   bool
	}{
		{name: "pawn attacks diagonally", fen: "8/8/8/8/8/8/4P3/8 w - - 0 1", square: "d3", by: SideWhite, want: true},
		{name: "pawn attacks diagonally right", fen: "8/8/8/8/8/8/4P3/8 w - - 0 1", square: "f3", by: SideWhite, want: true},
		{name: "pawn does not attack forward", fen: "8/8/8/8/8/8/4P3/8 w - - 0 1", square: "e3", by: SideWhite, want: false},
		{name: "black pawn attacks downward", fen: "8/4p3/8/8/8/8/8/8 w - - 0 1", square: "d6", by: SideBlack, want: true},
		{name: "knight attack", fen: "8/8/8/8/8/8/8/N7 w - - 0 1", square: "b3", by: SideWhite, want: true},
		{name: "rook along file", fen: "8/8/8/8/8/8/8/R7 w - - 0 1", square: "a8", by: SideWhite, want: true},
		{name: "rook blocked", fen: "8/8/8/p7/8/8/8/R7 w - - 0 1", square: "a8", by: SideWhite, want: false},
		{name: "bishop along diagonal", fen: "8/8/8/8/8/8/8/2B5 w - - 0 1", square: "h6", by: SideWhite, want: true},
		{name: "queen as rook", fen: "8/8/8/8/8/8/8/3Q4 w - - 0 1", square: "d8", by: SideWhite, want: true},
		{name: "queen as bishop", fen: "8/8/8/8/8/8/8/3Q4 w - - 0 1", square: "h8", by: SideWhite, want: false},
		{name: "queen diagonal short", fen: "8/8/8/8/8/8/8/3Q4 w - - 0 1", square: "f3", by: SideWhite, want: true},
		{name: "king adjacency", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1", square: "d2", by: SideWhite, want: true},
		{name: "king beyond reach", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1", square: "e3", by: SideWhite, want: false},
		{name: "wrong side", fen: "8/8/8/8/8/8/8/R7 w - - 0 1", square: "a8", by: SideBlack, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			pos, err := position.NewPosFromNotation(tt.square)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := b.IsSquareAttacked(pos, tt.by); got != tt.want {
				t.Errorf("unexpected attack: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestGenerateCastlingMoves(t *testing.T) {
	t.Parallel()

	hasMove := func(mvs []Move, notation string) bool {
		want, _ := ParseMove(notation)
		for _, mv := range mvs {
			if mv.Equal(want) && mv.IsCastle {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{
			name:          "both sides open",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name:          "rights revoked",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			wantKingside:  false,
			wantQueenside: false,
		},
		{
			name:          "kingside path occupied",
			fen:           "r3k2r/8/8/8/8/8/8/R3KN1R w KQkq - 0 1",
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "queenside b1 occupied blocks castle",
			fen:           "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: false,
		},
		{
			name:          "king in check",
			fen:           "r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1",
			wantKingside:  false,
			wantQueenside: false,
		},
		{
			name:          "king transit square attacked",
			fen:           "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1",
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "rook under attack may still castle",
			fen:           "r3k2r/8/8/8/8/7r/8/R3K2R w KQkq - 0 1",
			wantKingside:  true,
			wantQueenside: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			mvs := b.GenerateLegalMoves()
			if got := hasMove(mvs, "e1g1"); got != tt.wantKingside {
				t.Errorf("unexpected kingside castle availability: got=%v want=%v", got, tt.wantKingside)
			}
			if got := hasMove(mvs, "e1c1"); got != tt.wantQueenside {
				t.Errorf("unexpected queenside castle availability: got=%v want=%v", got, tt.wantQueenside)
			}
		})
	}
}

func TestPawnMoveShapes(t *testing.T) {
	t.Parallel()

	t.Run("double push only from start rank", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, "8/8/8/8/8/4P3/8/K6k w - - 0 1")
		for _, mv := range b.GenerateLegalMoves() {
			if mv.From == position.New(position.FileE, position.Rank3) && mv.To == position.New(position.FileE, position.Rank5) {
				t.Error("unexpected double push from e3")
			}
		}
	})

	t.Run("blocked pawn cannot push", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, "8/8/8/8/4p3/4P3/8/K6k w - - 0 1")
		for _, mv := range b.GenerateLegalMoves() {
			if mv.From == position.New(position.FileE, position.Rank3) {
				t.Errorf("blocked pawn moved: %s", mv.UCI())
			}
		}
	})

	t.Run("promotion yields four moves per target", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, "8/P7/8/8/8/8/8/K6k w - - 0 1")
		var promos int
		for _, mv := range b.GenerateLegalMoves() {
			if mv.From == position.New(position.FileA, position.Rank7) {
				if mv.Promote == PieceUnknown {
					t.Errorf("promotion-rank move without promotion: %s", mv.UCI())
				}
				promos++
			}
		}
		if promos != 4 {
			t.Errorf("unexpected promotion move count: got=%d want=4", promos)
		}
	})

	t.Run("en passant offered only immediately", func(t *testing.T) {
		t.Parallel()
		b := mustBoard(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3")
		mustApply(t, b, "e2e4")
		var found bool
		for _, mv := range b.GenerateLegalMoves() {
			if mv.IsEnPassant {
				found = true
				if mv.UCI() != "d4e3" {
					t.Errorf("unexpected en-passant move: %s", mv.UCI())
				}
			}
		}
		if !found {
			t.Error("expected en-passant capture after double push")
		}

		mustApply(t, b, "g8f6")
		mustApply(t, b, "g1f3")
		for _, mv := range b.GenerateLegalMoves() {
			if mv.IsEnPassant {
				t.Errorf("stale en-passant move offered: %s", mv.UCI())
			}
		}
	})
}

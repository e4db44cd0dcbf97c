package engine

import (
	"errors"
	"testing"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/game"
)

var errEvaluatorBroken = errors.New("evaluator broken")

type brokenEvaluator struct{}

func (brokenEvaluator) Name() string { return "broken" }

func (brokenEvaluator) Evaluate(*game.GameState) (int32, error) {
	return 0, errEvaluatorBroken
}

func TestNewMinimaxSearcherClampsDepth(t *testing.T) {
	t.Parallel()

	if got := NewMinimaxSearcher(NewMaterialEvaluator(), 0).Depth(); got != 1 {
		t.Errorf("unexpected depth: got=%d want=1", got)
	}
	if got := NewMinimaxSearcher(NewMaterialEvaluator(), -3).Depth(); got != 1 {
		t.Errorf("unexpected depth: got=%d want=1", got)
	}
	if got := NewMinimaxSearcher(NewMaterialEvaluator(), 4).Depth(); got != 4 {
		t.Errorf("unexpected depth: got=%d want=4", got)
	}
}

func TestBestMoveMateInOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
	}{
		{
			name:  "white mates with the queen",
			fen:   "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
			depth: 1,
			want:  "h5f7",
		},
		{
			name:  "white mates at depth three",
			fen:   "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
			depth: 3,
			want:  "h5f7",
		},
		{
			name:  "black mates on the back rank",
			fen:   "6k1/5ppp/8/8/8/8/r4PPP/6K1 b - - 0 1",
			depth: 2,
			want:  "a2a1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			s := NewMinimaxSearcher(NewMaterialEvaluator(), tt.depth)
			mv, err := s.BestMove(g)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := mv.UCI(); got != tt.want {
				t.Errorf("unexpected best move: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestBestMoveTakesHangingQueen(t *testing.T) {
	t.Parallel()

	g := mustGame(t, "3q3k/8/8/8/8/8/8/3R3K w - - 0 1")
	s := NewMinimaxSearcher(NewMaterialEvaluator(), 1)
	mv, err := s.BestMove(g)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := mv.UCI(); got != "d1d8" {
		t.Errorf("unexpected best move: got=%s want=d1d8", got)
	}
}

func TestBestMoveAvoidsPoisonedCapture(t *testing.T) {
	t.Parallel()

	// The black pawn is defended; taking it with the queen loses her for a
	// pawn, which depth two sees.
	g := mustGame(t, "3r3k/3p4/8/3Q4/8/8/8/7K w - - 0 1")
	s := NewMinimaxSearcher(NewMaterialEvaluator(), 2)
	mv, err := s.BestMove(g)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := mv.UCI(); got == "d5d7" {
		t.Error("expected the searcher to refuse the defended pawn")
	}
}

func TestBestMoveIsLegal(t *testing.T) {
	t.Parallel()

	fens := []string{
		board.DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/1B1pp3/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 3",
	}
	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, fen)
			before := g.Board().FEN()
			s := NewMinimaxSearcher(NewPositionalEvaluator(), 2)
			mv, err := s.BestMove(g)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			var legal bool
			for _, cand := range g.Board().GenerateLegalMoves() {
				if cand.Equal(mv) {
					legal = true
				}
			}
			if !legal {
				t.Errorf("best move %s is not legal", mv.UCI())
			}
			if got := g.Board().FEN(); got != before {
				t.Errorf("search mutated the position: got=%s want=%s", got, before)
			}
		})
	}
}

func TestBestMoveWhenEveryMoveLoses(t *testing.T) {
	t.Parallel()

	// White's sole legal move walks into a back-rank mate; the searcher must
	// still play it rather than return the null move.
	g := mustGame(t, "8/8/8/8/8/6k1/1r6/7K w - - 0 1")
	s := NewMinimaxSearcher(NewMaterialEvaluator(), 2)
	mv, err := s.BestMove(g)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if mv.IsNull() {
		t.Fatal("best move is the null move")
	}
	if got := mv.UCI(); got != "h1g1" {
		t.Errorf("unexpected best move: got=%s want=h1g1", got)
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	t.Parallel()

	g := mustGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	s := NewMinimaxSearcher(NewMaterialEvaluator(), 2)
	if _, err := s.BestMove(g); !errors.Is(err, ErrNoLegalMoves) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoLegalMoves)
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	t.Parallel()

	g := mustGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	s := NewMinimaxSearcher(NewPositionalEvaluator(), 2)

	first, err := s.BestMove(g)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for i := 0; i < 3; i++ {
		mv, err := s.BestMove(g)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if !mv.Equal(first) {
			t.Fatalf("unexpected nondeterminism: got=%s want=%s", mv.UCI(), first.UCI())
		}
	}
}

func TestNodesGrowWithDepth(t *testing.T) {
	t.Parallel()

	g := game.NewGameState()
	shallow := NewMinimaxSearcher(NewMaterialEvaluator(), 1)
	deep := NewMinimaxSearcher(NewMaterialEvaluator(), 3)

	if _, err := shallow.BestMove(g); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := deep.BestMove(g); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if shallow.Nodes() == 0 || deep.Nodes() <= shallow.Nodes() {
		t.Errorf("unexpected node counts: shallow=%d deep=%d", shallow.Nodes(), deep.Nodes())
	}
}

func TestBestMoveEvaluatorError(t *testing.T) {
	t.Parallel()

	g := game.NewGameState()
	s := NewMinimaxSearcher(brokenEvaluator{}, 2)
	if _, err := s.BestMove(g); !errors.Is(err, errEvaluatorBroken) {
		t.Errorf("unexpected error: got=%v want=%v", err, errEvaluatorBroken)
	}
}

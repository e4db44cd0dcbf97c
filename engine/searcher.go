package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/game"
)

const (
	// ScoreInfinite bounds every reachable score; +-ScoreInfinite doubles as
	// the forced-mate score.
	ScoreInfinite int32 = 100_000_000

	DefaultSearchDepth = 3
)

var (
	// ErrNoLegalMoves is returned by BestMove when the side to move has no
	// legal moves, i.e. the game is already over.
	ErrNoLegalMoves = errors.New("no legal moves")
)

// pieceOrderValue feeds the capture-first ordering: victim value x10 minus
// attacker value, a cheap MVV-LVA proxy.
var pieceOrderValue = [6 + 1]int32{
	board.PiecePawn:   1,
	board.PieceKnight: 3,
	board.PieceBishop: 3,
	board.PieceRook:   5,
	board.PieceQueen:  9,
	board.PieceKing:   100,
}

// MinimaxSearcher runs fixed-depth minimax with alpha-beta pruning over a
// GameState's board, making and undoing moves in place. It is evaluator
// agnostic and holds no state between BestMove calls beyond diagnostics.
//
// The result is deterministic for a fixed evaluator, depth, and ordering:
// the first move reaching the best score wins ties.
type MinimaxSearcher struct {
	evaluator Evaluator
	depth     int

	nodes uint64
}

func NewMinimaxSearcher(evaluator Evaluator, depth int) *MinimaxSearcher {
	if depth < 1 {
		depth = 1
	}
	return &MinimaxSearcher{
		evaluator: evaluator,
		depth:     depth,
	}
}

func (s *MinimaxSearcher) Depth() int {
	return s.depth
}

// Nodes reports the recursive calls made by the last BestMove invocation.
func (s *MinimaxSearcher) Nodes() uint64 {
	return s.nodes
}

// BestMove returns the strongest move for the side to move, or
// ErrNoLegalMoves when none exist. An evaluator failure aborts the search
// and surfaces wrapped.
func (s *MinimaxSearcher) BestMove(st *game.GameState) (board.Move, error) {
	s.nodes = 0
	b := st.Board()
	maximizing := b.Turn() == board.SideWhite

	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}
	orderMoves(b, mvs)

	// Seed with the first ordered move so a legal move comes back even when
	// every reply scores -ScoreInfinite (forced mate after any move).
	best := mvs[0]
	bestScore := -ScoreInfinite
	if !maximizing {
		bestScore = ScoreInfinite
	}
	alpha, beta := -ScoreInfinite, ScoreInfinite

	for _, mv := range mvs {
		b.MakeMove(mv)
		score, err := s.search(st, s.depth-1, alpha, beta, !maximizing)
		b.UndoMove()
		if err != nil {
			return board.Move{}, err
		}

		if maximizing {
			if score > bestScore {
				bestScore = score
				best = mv
			}
			alpha = max(alpha, score)
		} else {
			if score < bestScore {
				bestScore = score
				best = mv
			}
			beta = min(beta, score)
		}
	}
	return best, nil
}

func (s *MinimaxSearcher) search(st *game.GameState, depth int, alpha, beta int32, maximizing bool) (int32, error) {
	s.nodes++
	b := st.Board()

	mvs := b.GenerateLegalMoves()
	if len(mvs) == 0 {
		if b.IsInCheck(b.Turn()) {
			// the side to move is mated and loses
			if maximizing {
				return -ScoreInfinite, nil
			}
			return ScoreInfinite, nil
		}
		return 0, nil // stalemate
	}

	if depth == 0 {
		score, err := s.evaluator.Evaluate(st)
		if err != nil {
			return 0, fmt.Errorf("evaluator %q: %w", s.evaluator.Name(), err)
		}
		return score, nil
	}

	orderMoves(b, mvs)

	if maximizing {
		value := -ScoreInfinite
		for _, mv := range mvs {
			b.MakeMove(mv)
			score, err := s.search(st, depth-1, alpha, beta, false)
			b.UndoMove()
			if err != nil {
				return 0, err
			}
			value = max(value, score)
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value, nil
	}

	value := ScoreInfinite
	for _, mv := range mvs {
		b.MakeMove(mv)
		score, err := s.search(st, depth-1, alpha, beta, true)
		b.UndoMove()
		if err != nil {
			return 0, err
		}
		value = min(value, score)
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value, nil
}

// orderMoves sorts captures to the front by descending victim/attacker
// score; quiet moves keep their generation order so results stay
// deterministic.
func orderMoves(b *board.Board, mvs []board.Move) {
	captureScore := func(mv board.Move) int32 {
		_, victim := b.PieceAt(mv.To)
		if victim == board.PieceUnknown {
			return 0
		}
		_, attacker := b.PieceAt(mv.From)
		return pieceOrderValue[victim]*10 - pieceOrderValue[attacker]
	}
	sort.SliceStable(mvs, func(i, j int) bool {
		return captureScore(mvs[i]) > captureScore(mvs[j])
	})
}

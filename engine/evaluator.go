package engine

import (
	"github.com/ninghz77/chess/game"
)

// Evaluator scores a position in centipawns from White's perspective:
// positive favors White, 100 is roughly one pawn.
//
// Evaluate must be a pure read of the state: no MakeMove/UndoMove on the
// board and no call into the state's legal-move cache, since the searcher
// hands it positions mid-variation. A returned error aborts the enclosing
// search rather than contaminating it with a default score.
type Evaluator interface {
	Name() string
	Evaluate(st *game.GameState) (int32, error)
}

package engine

import (
	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/game"
	"github.com/ninghz77/chess/position"
)

// StandardPieceValues holds the conventional centipawn piece values.
var StandardPieceValues = [6 + 1]int32{
	board.PiecePawn:   100,
	board.PieceKnight: 320,
	board.PieceBishop: 330,
	board.PieceRook:   500,
	board.PieceQueen:  900,
	board.PieceKing:   20000,
}

// MaterialEvaluator scores by summing piece values, White minus Black.
type MaterialEvaluator struct {
	// Values is the per-piece-type valuation table, indexed by Piece.
	// Override entries before use to reweigh pieces.
	Values [6 + 1]int32
}

func NewMaterialEvaluator() *MaterialEvaluator {
	return &MaterialEvaluator{Values: StandardPieceValues}
}

func (e *MaterialEvaluator) Name() string {
	return "material"
}

func (e *MaterialEvaluator) Evaluate(st *game.GameState) (int32, error) {
	b := st.Board()
	var score int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		s, p := b.PieceAt(pos)
		if p == board.PieceUnknown {
			continue
		}
		if s == board.SideWhite {
			score += e.Values[p]
		} else {
			score -= e.Values[p]
		}
	}
	return score, nil
}

package engine

import (
	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/game"
	"github.com/ninghz77/chess/position"
)

// Piece-square bonus tables, written visually: the first row is rank 8, the
// last row is rank 1, from White's point of view. Black uses the same tables
// through a vertical mirror, so the symmetric starting position nets to zero.
// Pawn rows strictly favor the center files over the edges on every rank a
// pawn can occupy.
var piecePositionScore = [6 + 1][board.TotalCells]int32{
	board.PiecePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 55, 60, 60, 55, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 10, 15, 25, 25, 15, 10, 5,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 5, 10, 15, 15, 10, 5, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.PieceKnight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.PieceBishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.PieceRook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.PieceQueen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.PieceKing: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// PositionalEvaluator adds piece-square positional bonuses on top of the
// material sum.
type PositionalEvaluator struct {
	material *MaterialEvaluator
}

func NewPositionalEvaluator() *PositionalEvaluator {
	return &PositionalEvaluator{material: NewMaterialEvaluator()}
}

func (e *PositionalEvaluator) Name() string {
	return "positional"
}

func (e *PositionalEvaluator) Evaluate(st *game.GameState) (int32, error) {
	score, err := e.material.Evaluate(st)
	if err != nil {
		return 0, err
	}
	b := st.Board()
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		s, p := b.PieceAt(pos)
		switch s {
		case board.SideWhite:
			score += piecePositionScore[p][tableIndex(pos)]
		case board.SideBlack:
			score -= piecePositionScore[p][mirrorTableIndex(pos)]
		}
	}
	return score, nil
}

// tableIndex maps a White square onto the visually-written tables (row 0 is
// rank 8); mirrorTableIndex flips the rank for Black.
func tableIndex(pos position.Pos) position.Pos {
	return position.New(pos.X(), board.Height-1-pos.Y())
}

func mirrorTableIndex(pos position.Pos) position.Pos {
	return pos
}

package board

import (
	"github.com/ninghz77/chess/position"
)

type delta struct {
	dx, dy position.Pos
}

var (
	deltasDiagonal   = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	deltasOrthogonal = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	deltasKnight     = []delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	deltasKing       = []delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

func onBoard(x, y position.Pos) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// GenerateLegalMoves returns every legal move for the side to move. Each
// pseudo-legal and castling candidate is applied, the mover's king tested for
// attack, and the move undone; only king-safe moves survive.
func (b *Board) GenerateLegalMoves() []Move {
	s := b.turn
	pseudo := b.generatePseudoLegalMoves(s)
	pseudo = append(pseudo, b.generateCastlingMoves(s)...)

	legal := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		b.MakeMove(mv)
		if !b.IsInCheck(s) {
			legal = append(legal, mv)
		}
		b.UndoMove()
	}
	return legal
}

// IsInCheck reports whether s's king is attacked. An absent king counts as
// not attacked.
func (b *Board) IsInCheck(s Side) bool {
	kingPos, ok := b.FindKing(s)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(kingPos, s.Opposite())
}

// IsSquareAttacked reports whether any piece of by attacks pos, by probing
// the reverse attack patterns from pos outward.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	x, y := pos.X(), pos.Y()

	// pawns attack diagonally forward, so probe one rank towards the attacker
	pawnRank := y - 1
	if by == SideBlack {
		pawnRank = y + 1
	}
	for _, dx := range []position.Pos{-1, 1} {
		if onBoard(x+dx, pawnRank) && b.occupant(position.New(x+dx, pawnRank), by, PiecePawn) {
			return true
		}
	}

	for _, d := range deltasKnight {
		if onBoard(x+d.dx, y+d.dy) && b.occupant(position.New(x+d.dx, y+d.dy), by, PieceKnight) {
			return true
		}
	}

	if b.rayHits(x, y, deltasOrthogonal, by, PieceRook) {
		return true
	}
	if b.rayHits(x, y, deltasDiagonal, by, PieceBishop) {
		return true
	}

	for _, d := range deltasKing {
		if onBoard(x+d.dx, y+d.dy) && b.occupant(position.New(x+d.dx, y+d.dy), by, PieceKing) {
			return true
		}
	}
	return false
}

func (b *Board) occupant(pos position.Pos, s Side, p Piece) bool {
	return b.sides[pos] == s && b.pieces[pos] == p
}

// rayHits casts rays from (x, y) and reports whether the first occupant on
// any of them is a slider (or queen) of side by.
func (b *Board) rayHits(x, y position.Pos, deltas []delta, by Side, slider Piece) bool {
	for _, d := range deltas {
		cx, cy := x+d.dx, y+d.dy
		for onBoard(cx, cy) {
			pos := position.New(cx, cy)
			if b.pieces[pos] != PieceUnknown {
				if b.sides[pos] == by && (b.pieces[pos] == slider || b.pieces[pos] == PieceQueen) {
					return true
				}
				break
			}
			cx += d.dx
			cy += d.dy
		}
	}
	return false
}

func (b *Board) generatePseudoLegalMoves(s Side) []Move {
	var mvs []Move
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.sides[pos] != s {
			continue
		}
		switch b.pieces[pos] {
		case PiecePawn:
			mvs = append(mvs, b.pawnMoves(pos, s)...)
		case PieceKnight:
			mvs = append(mvs, b.stepperMoves(pos, s, deltasKnight)...)
		case PieceBishop:
			mvs = append(mvs, b.sliderMoves(pos, s, deltasDiagonal)...)
		case PieceRook:
			mvs = append(mvs, b.sliderMoves(pos, s, deltasOrthogonal)...)
		case PieceQueen:
			mvs = append(mvs, b.sliderMoves(pos, s, deltasDiagonal)...)
			mvs = append(mvs, b.sliderMoves(pos, s, deltasOrthogonal)...)
		case PieceKing:
			mvs = append(mvs, b.stepperMoves(pos, s, deltasKing)...)
		}
	}
	return mvs
}

func (b *Board) pawnMoves(from position.Pos, s Side) []Move {
	var mvs []Move
	x, y := from.X(), from.Y()
	dir, startRank, promoRank := position.Pos(1), position.Rank2, position.Rank8
	if s == SideBlack {
		dir, startRank, promoRank = -1, position.Rank7, position.Rank1
	}

	appendTargets := func(to position.Pos) {
		if to.Y() == promoRank {
			for _, promote := range PawnPromoteCandidates {
				mvs = append(mvs, Move{From: from, To: to, Promote: promote})
			}
		} else {
			mvs = append(mvs, Move{From: from, To: to})
		}
	}

	// single and double push
	ny := y + dir
	if onBoard(x, ny) {
		fwd := position.New(x, ny)
		if b.pieces[fwd] == PieceUnknown {
			appendTargets(fwd)
			if y == startRank {
				dbl := position.New(x, y+2*dir)
				if b.pieces[dbl] == PieceUnknown {
					mvs = append(mvs, Move{From: from, To: dbl})
				}
			}
		}

		// diagonal captures, en passant included
		for _, dx := range []position.Pos{-1, 1} {
			if !onBoard(x+dx, ny) {
				continue
			}
			to := position.New(x+dx, ny)
			if b.pieces[to] != PieceUnknown && b.sides[to] != s {
				appendTargets(to)
			} else if to == b.enPassantPos {
				mvs = append(mvs, Move{From: from, To: to, IsEnPassant: true})
			}
		}
	}
	return mvs
}

func (b *Board) stepperMoves(from position.Pos, s Side, deltas []delta) []Move {
	var mvs []Move
	x, y := from.X(), from.Y()
	for _, d := range deltas {
		if !onBoard(x+d.dx, y+d.dy) {
			continue
		}
		to := position.New(x+d.dx, y+d.dy)
		if b.sides[to] != s {
			mvs = append(mvs, Move{From: from, To: to})
		}
	}
	return mvs
}

func (b *Board) sliderMoves(from position.Pos, s Side, deltas []delta) []Move {
	var mvs []Move
	x, y := from.X(), from.Y()
	for _, d := range deltas {
		cx, cy := x+d.dx, y+d.dy
		for onBoard(cx, cy) {
			to := position.New(cx, cy)
			if b.pieces[to] == PieceUnknown {
				mvs = append(mvs, Move{From: from, To: to})
			} else {
				if b.sides[to] != s {
					mvs = append(mvs, Move{From: from, To: to})
				}
				break
			}
			cx += d.dx
			cy += d.dy
		}
	}
	return mvs
}

// generateCastlingMoves yields the castle moves currently available to s:
// right intact, king and rook at home, path empty, and no square on the
// king's walk attacked.
func (b *Board) generateCastlingMoves(s Side) []Move {
	var mvs []Move
	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	opponent := s.Opposite()
nextDirection:
	for _, d := range castleDirectionsForSide(s) {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		spec := castleSpecs[d]
		if !b.occupant(spec.kingFrom, s, PieceKing) || !b.occupant(spec.rookFrom, s, PieceRook) {
			continue
		}
		for _, pos := range spec.empty {
			if b.pieces[pos] != PieceUnknown {
				continue nextDirection
			}
		}
		for _, pos := range spec.kingPath {
			if b.IsSquareAttacked(pos, opponent) {
				continue nextDirection
			}
		}
		mvs = append(mvs, Move{From: spec.kingFrom, To: spec.kingTo, IsCastle: true})
	}
	return mvs
}

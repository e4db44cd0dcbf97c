package board

import (
	"math/rand"

	"github.com/ninghz77/chess/position"
)

// DefaultZobristSeed keeps hashes reproducible across runs. Cross-process
// repetition counting only works when both sides share the seed.
const DefaultZobristSeed int64 = 42

var sidesAll = []Side{SideWhite, SideBlack}

var piecesAll = []Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

var castleDirectionsAll = []CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

// ZobristHasher is a table of independent 64-bit keys, read-only after
// construction and safe to share between any number of boards. Hash equality
// is trusted as position equality; collisions are possible in principle and
// not detected.
type ZobristHasher struct {
	pieceTable  [2 + 1][6 + 1][TotalCells]uint64
	blackToMove uint64
	castling    [4 + 1]uint64
	epFile      [Width]uint64
}

// NewZobristHasher fills the tables deterministically from seed, in a fixed
// construction order.
func NewZobristHasher(seed int64) *ZobristHasher {
	r := rand.New(rand.NewSource(seed))
	z := &ZobristHasher{}
	for _, s := range sidesAll {
		for _, p := range piecesAll {
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				z.pieceTable[s][p][pos] = r.Uint64()
			}
		}
	}
	z.blackToMove = r.Uint64()
	for _, d := range castleDirectionsAll {
		z.castling[d] = r.Uint64()
	}
	for f := position.Pos(0); f < Width; f++ {
		z.epFile[f] = r.Uint64()
	}
	return z
}

// HashBoard fingerprints occupancy, side to move, castling rights, and the
// en-passant file.
func (z *ZobristHasher) HashBoard(b *Board) uint64 {
	var h uint64
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.pieces[pos] != PieceUnknown {
			h ^= z.pieceTable[b.sides[pos]][b.pieces[pos]][pos]
		}
	}
	if b.turn == SideBlack {
		h ^= z.blackToMove
	}
	for _, d := range castleDirectionsAll {
		if b.castleRights.IsAllowed(d) {
			h ^= z.castling[d]
		}
	}
	if ep, ok := b.EnPassant(); ok {
		h ^= z.epFile[ep.X()]
	}
	return h
}

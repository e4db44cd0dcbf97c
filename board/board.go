package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ninghz77/chess/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

// flagNoEnPassant marks the en-passant square as unset.
const flagNoEnPassant position.Pos = -1

var backRank = [Width]Piece{
	PieceRook, PieceKnight, PieceBishop, PieceQueen,
	PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// Board is a mutable mailbox position with a reversible move history.
// Squares are indexed by position.Pos, a1 = 0 through h8 = 63.
type Board struct {
	// grid data
	sides  [TotalCells]Side
	pieces [TotalCells]Piece

	// meta
	turn           Side
	castleRights   CastleRights
	enPassantPos   position.Pos
	halfMoveClock  int
	fullMoveNumber int

	// undo stack, owned exclusively by this Board
	history []undoRecord
}

// undoRecord captures everything MakeMove changes besides the piece
// relocation itself, so UndoMove can restore the prior state exactly.
type undoRecord struct {
	move           Move
	capturedSide   Side
	capturedPiece  Piece
	epVictimPos    position.Pos
	epVictimSide   Side
	castleRights   CastleRights
	enPassantPos   position.Pos
	halfMoveClock  int
	fullMoveNumber int
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard builds a Board at the standard starting position, or at the
// position given by WithFEN.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if cfg.fen == "" {
		b.SetupStartPosition()
		return b, nil
	}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetupStartPosition resets to the standard 32-piece arrangement, White to
// move, all rights intact, empty history.
func (b *Board) SetupStartPosition() {
	b.sides = [TotalCells]Side{}
	b.pieces = [TotalCells]Piece{}
	b.turn = SideWhite
	b.castleRights = CastleRightsAll
	b.enPassantPos = flagNoEnPassant
	b.halfMoveClock = 0
	b.fullMoveNumber = 1
	b.history = nil

	for x := position.Pos(0); x < Width; x++ {
		b.set(position.New(x, position.Rank1), SideWhite, backRank[x])
		b.set(position.New(x, position.Rank2), SideWhite, PiecePawn)
		b.set(position.New(x, position.Rank7), SideBlack, PiecePawn)
		b.set(position.New(x, position.Rank8), SideBlack, backRank[x])
	}
}

func (b *Board) set(pos position.Pos, s Side, p Piece) {
	b.sides[pos] = s
	b.pieces[pos] = p
}

func (b *Board) clear(pos position.Pos) {
	b.sides[pos] = SideUnknown
	b.pieces[pos] = PieceUnknown
}

// PieceAt returns the occupant of pos, or (SideUnknown, PieceUnknown) for an
// empty square.
func (b *Board) PieceAt(pos position.Pos) (Side, Piece) {
	return b.sides[pos], b.pieces[pos]
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the current en-passant target square, if any.
func (b *Board) EnPassant() (position.Pos, bool) {
	return b.enPassantPos, b.enPassantPos != flagNoEnPassant
}

func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// MakeMove applies a move assumed legal (or pseudo-legal during generation)
// and pushes an undo record.
func (b *Board) MakeMove(mv Move) {
	s, p := b.PieceAt(mv.From)

	undo := undoRecord{
		move:           mv,
		capturedSide:   b.sides[mv.To],
		capturedPiece:  b.pieces[mv.To],
		epVictimPos:    flagNoEnPassant,
		castleRights:   b.castleRights,
		enPassantPos:   b.enPassantPos,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
	}

	// en passant removes the opponent pawn behind the destination, not the
	// destination occupant
	if mv.IsEnPassant {
		victim := mv.To - Width
		if s == SideBlack {
			victim = mv.To + Width
		}
		undo.epVictimPos = victim
		undo.epVictimSide = b.sides[victim]
		b.clear(victim)
	}

	// relocate the moving piece
	b.clear(mv.From)
	if mv.Promote != PieceUnknown {
		b.set(mv.To, s, mv.Promote)
	} else {
		b.set(mv.To, s, p)
	}

	// castling relocates the rook as well
	if mv.IsCastle {
		spec := castleSpecs[castleDirectionByKingTo(mv.To)]
		b.clear(spec.rookFrom)
		b.set(spec.rookTo, s, PieceRook)
	}

	// en-passant square exists only for the ply after a double pawn push
	b.enPassantPos = flagNoEnPassant
	if p == PiecePawn {
		if diff := mv.To.Y() - mv.From.Y(); diff == 2 || diff == -2 {
			b.enPassantPos = position.New(mv.From.X(), (mv.From.Y()+mv.To.Y())/2)
		}
	}

	// castling rights are monotonically lost until undo restores them
	if p == PieceKing {
		for _, d := range castleDirectionsForSide(s) {
			b.castleRights.Set(d, false)
		}
	}
	if p == PieceRook {
		b.dropRookRight(mv.From)
	}
	if undo.capturedPiece == PieceRook {
		b.dropRookRight(mv.To)
	}

	if p == PiecePawn || undo.capturedPiece != PieceUnknown || mv.IsEnPassant {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	if s == SideBlack {
		b.fullMoveNumber++
	}

	b.turn = b.turn.Opposite()
	b.history = append(b.history, undo)
}

// dropRookRight clears the castling right tied to a rook home square when a
// rook moves away from it or is captured on it.
func (b *Board) dropRookRight(pos position.Pos) {
	switch pos {
	case position.H1:
		b.castleRights.Set(CastleDirectionWhiteRight, false)
	case position.A1:
		b.castleRights.Set(CastleDirectionWhiteLeft, false)
	case position.H8:
		b.castleRights.Set(CastleDirectionBlackRight, false)
	case position.A8:
		b.castleRights.Set(CastleDirectionBlackLeft, false)
	}
}

// UndoMove exactly reverses the last MakeMove. No-op on an empty history.
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		return
	}
	undo := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	mv := undo.move

	b.turn = b.turn.Opposite()
	mover := b.turn

	// restore the moving piece; a promoted pawn reverts to a pawn
	movedPiece := b.pieces[mv.To]
	if mv.Promote != PieceUnknown {
		movedPiece = PiecePawn
	}
	b.set(mv.From, mover, movedPiece)
	if undo.capturedPiece != PieceUnknown {
		b.set(mv.To, undo.capturedSide, undo.capturedPiece)
	} else {
		b.clear(mv.To)
	}

	if mv.IsEnPassant && undo.epVictimPos != flagNoEnPassant {
		b.set(undo.epVictimPos, undo.epVictimSide, PiecePawn)
	}

	if mv.IsCastle {
		spec := castleSpecs[castleDirectionByKingTo(mv.To)]
		b.clear(spec.rookTo)
		b.set(spec.rookFrom, mover, PieceRook)
	}

	b.castleRights = undo.castleRights
	b.enPassantPos = undo.enPassantPos
	b.halfMoveClock = undo.halfMoveClock
	b.fullMoveNumber = undo.fullMoveNumber
}

// HistoryLen returns the number of undoable moves on this Board.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// FindKing scans for the king of s. The second return is false if the king
// is absent, which should not occur in normal play.
func (b *Board) FindKing(s Side) (position.Pos, bool) {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if b.sides[pos] == s && b.pieces[pos] == PieceKing {
			return pos, true
		}
	}
	return 0, false
}

// Copy produces an independent Board with identical state and an empty undo
// history. Copies are for read-only inspection or fresh exploration, not for
// resuming undo chains.
func (b *Board) Copy() *Board {
	return &Board{
		sides:          b.sides,
		pieces:         b.pieces,
		turn:           b.turn,
		castleRights:   b.castleRights,
		enPassantPos:   b.enPassantPos,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
	}
}

var (
	cellLight = color.New(color.FgBlack, color.BgHiWhite)
	cellDark  = color.New(color.FgBlack, color.BgHiGreen)
	labelBold = color.New(color.Bold)
)

// Draw renders the board with colored cells for terminal play.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(labelBold.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.New(x, y)
			s, p := b.PieceAt(pos)
			sym := p.SymbolUnicode(s)
			if p == PieceUnknown {
				sym = " "
			}
			style := cellDark
			if (x+y)%2 == 1 {
				style = cellLight
			}
			_, _ = builder.WriteString(style.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(labelBold.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Dump renders a plain ASCII board for logs and tests.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(position.New(x, y))
			sym := p.SymbolFEN(s)
			if p == PieceUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nenp:  %4s\nhalf: %4d\nfull: %4d", b.castleRights, b.enPassantPos.Notation(), b.halfMoveClock, b.fullMoveNumber)
}

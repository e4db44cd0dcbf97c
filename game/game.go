package game

import (
	"errors"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/position"
)

var (
	// ErrGameFinished rejects any move submitted after the game has ended.
	ErrGameFinished = errors.New("game already finished")

	// ErrIllegalMove rejects a move not present in the legal-move list.
	ErrIllegalMove = errors.New("illegal move")
)

// The Zobrist tables are read-only after construction and shared by every
// GameState in the process.
var defaultHasher = board.NewZobristHasher(board.DefaultZobristSeed)

// GameState owns one Board plus everything the bare position cannot tell:
// committed move history, repetition counts, the memoized legal-move list,
// and the game result.
//
// Access to one GameState must be serialized by the caller; the search makes
// and undoes moves on the owned Board in place.
type GameState struct {
	board  *board.Board
	hasher *board.ZobristHasher

	// positionCounts grows once per committed position (the initial position
	// included) and is never decremented; search-internal undo must not
	// un-record repetitions.
	positionCounts map[uint64]int
	moveHistory    []board.Move

	cachedLegal []board.Move
	legalDirty  bool

	result     Result
	drawReason DrawReason
	resigned   board.Side
}

// NewGameState starts a game at the standard starting position.
func NewGameState() *GameState {
	b, _ := board.NewBoard()
	return newGameState(b)
}

// NewGameStateFromFEN starts a game at an arbitrary position. The result is
// computed immediately, so a terminal position loads as already decided.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return nil, err
	}
	g := newGameState(b)
	g.updateResult()
	return g, nil
}

func newGameState(b *board.Board) *GameState {
	g := &GameState{
		board:          b,
		hasher:         defaultHasher,
		positionCounts: make(map[uint64]int),
		legalDirty:     true,
	}
	g.recordPosition()
	return g
}

// Board exposes the owned board. The search mutates it via MakeMove/UndoMove
// pairs; committed state may only change through GameState.MakeMove.
func (g *GameState) Board() *board.Board {
	return g.board
}

func (g *GameState) Result() Result {
	return g.result
}

func (g *GameState) DrawReason() DrawReason {
	return g.drawReason
}

// Resigned returns the side that resigned, if any.
func (g *GameState) Resigned() board.Side {
	return g.resigned
}

// LegalMoves returns the memoized legal-move list for the side to move. The
// returned slice is shared; callers must not modify it.
func (g *GameState) LegalMoves() []board.Move {
	if g.legalDirty {
		g.cachedLegal = g.board.GenerateLegalMoves()
		g.legalDirty = false
	}
	return g.cachedLegal
}

func (g *GameState) InCheck() bool {
	return g.board.IsInCheck(g.board.Turn())
}

// MoveHistory returns a copy of the committed moves.
func (g *GameState) MoveHistory() []board.Move {
	history := make([]board.Move, len(g.moveHistory))
	copy(history, g.moveHistory)
	return history
}

// MakeMove commits mv if the game is ongoing and mv matches a legal move by
// (from, to, promotion). On failure the state is unchanged.
func (g *GameState) MakeMove(mv board.Move) error {
	if !g.result.IsOngoing() {
		return ErrGameFinished
	}

	matched, ok := g.matchLegal(mv)
	if !ok {
		return ErrIllegalMove
	}

	g.board.MakeMove(matched)
	g.moveHistory = append(g.moveHistory, matched)
	g.legalDirty = true
	g.recordPosition()
	g.updateResult()
	return nil
}

// matchLegal resolves mv against the legal-move list so the caller does not
// need to supply the derived castle/en-passant flags.
func (g *GameState) matchLegal(mv board.Move) (board.Move, bool) {
	for _, legal := range g.LegalMoves() {
		if legal.Equal(mv) {
			return legal, true
		}
	}
	return board.Move{}, false
}

// Resign ends the game in favor of s's opponent. No-op once decided.
func (g *GameState) Resign(s board.Side) {
	if !g.result.IsOngoing() {
		return
	}
	g.resigned = s
	if s == board.SideWhite {
		g.result = ResultBlackWins
	} else {
		g.result = ResultWhiteWins
	}
}

func (g *GameState) recordPosition() {
	g.positionCounts[g.hasher.HashBoard(g.board)]++
}

// updateResult recomputes the result tag; first matching rule wins.
func (g *GameState) updateResult() {
	legal := g.LegalMoves()
	current := g.board.Turn()

	if len(legal) == 0 {
		if g.board.IsInCheck(current) {
			// checkmate: the side that just moved wins
			if current == board.SideWhite {
				g.result = ResultBlackWins
			} else {
				g.result = ResultWhiteWins
			}
		} else {
			g.result = ResultDraw
			g.drawReason = DrawReasonStalemate
		}
		return
	}

	if g.board.HalfMoveClock() >= 100 {
		g.result = ResultDraw
		g.drawReason = DrawReasonFiftyMove
		return
	}

	if g.positionCounts[g.hasher.HashBoard(g.board)] >= 3 {
		g.result = ResultDraw
		g.drawReason = DrawReasonThreefold
		return
	}

	if g.insufficientMaterial() {
		g.result = ResultDraw
		g.drawReason = DrawReasonInsufficientMaterial
	}
}

type placedPiece struct {
	pos   position.Pos
	side  board.Side
	piece board.Piece
}

// insufficientMaterial covers bare kings, king plus one minor versus bare
// king, and king and bishop each where the bishops stand on same-colored
// squares.
func (g *GameState) insufficientMaterial() bool {
	var placed []placedPiece
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if s, p := g.board.PieceAt(pos); p != board.PieceUnknown {
			placed = append(placed, placedPiece{pos: pos, side: s, piece: p})
		}
	}

	switch len(placed) {
	case 2:
		return true
	case 3:
		for _, pp := range placed {
			if pp.piece == board.PieceBishop || pp.piece == board.PieceKnight {
				return true
			}
		}
	case 4:
		var bishops []placedPiece
		for _, pp := range placed {
			if pp.piece == board.PieceBishop {
				bishops = append(bishops, pp)
			}
		}
		if len(bishops) == 2 && bishops[0].side != bishops[1].side &&
			squareColor(bishops[0].pos) == squareColor(bishops[1].pos) {
			return true
		}
	}
	return false
}

func squareColor(pos position.Pos) position.Pos {
	return (pos.X() + pos.Y()) % 2
}

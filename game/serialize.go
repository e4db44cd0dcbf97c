package game

import (
	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/position"
)

// Snapshot is the wire representation of a GameState, shaped for JSON.
type Snapshot struct {
	Board          []SnapshotPiece `json:"board"`
	Turn           string          `json:"turn"`
	CastlingRights map[string]bool `json:"castling_rights"`
	EPSquare       *int            `json:"ep_square"`
	HalfmoveClock  int             `json:"halfmove_clock"`
	FullmoveNumber int             `json:"fullmove_number"`
	LegalMoves     []SnapshotMove  `json:"legal_moves"`
	InCheck        bool            `json:"in_check"`
	Result         string          `json:"result"`
	DrawReason     string          `json:"draw_reason,omitempty"`
	MoveHistory    []string        `json:"move_history"`
}

type SnapshotPiece struct {
	Square int    `json:"square"`
	Color  string `json:"color"`
	Type   string `json:"type"`
}

type SnapshotMove struct {
	From        int    `json:"from"`
	To          int    `json:"to"`
	Promotion   string `json:"promotion,omitempty"`
	IsCastle    bool   `json:"is_castle"`
	IsEnPassant bool   `json:"is_en_passant"`
}

// UCI renders the move in coordinate text.
func (m SnapshotMove) UCI() string {
	mv := board.Move{From: position.Pos(m.From), To: position.Pos(m.To)}
	for _, p := range board.PawnPromoteCandidates {
		if p.SerialName() == m.Promotion {
			mv.Promote = p
		}
	}
	return mv.UCI()
}

// Serialize renders the full game state: occupancy, scalars, legal moves,
// check flag, result, and the move history in coordinate text.
func (g *GameState) Serialize() *Snapshot {
	b := g.board

	pieces := make([]SnapshotPiece, 0, 32)
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		s, p := b.PieceAt(pos)
		if p == board.PieceUnknown {
			continue
		}
		pieces = append(pieces, SnapshotPiece{
			Square: int(pos),
			Color:  s.Name(),
			Type:   p.SerialName(),
		})
	}

	legal := g.LegalMoves()
	moves := make([]SnapshotMove, 0, len(legal))
	for _, mv := range legal {
		sm := SnapshotMove{
			From:        int(mv.From),
			To:          int(mv.To),
			IsCastle:    mv.IsCastle,
			IsEnPassant: mv.IsEnPassant,
		}
		if mv.Promote != board.PieceUnknown {
			sm.Promotion = mv.Promote.SerialName()
		}
		moves = append(moves, sm)
	}

	var epSquare *int
	if ep, ok := b.EnPassant(); ok {
		v := int(ep)
		epSquare = &v
	}

	history := make([]string, 0, len(g.moveHistory))
	for _, mv := range g.moveHistory {
		history = append(history, mv.UCI())
	}

	rights := b.CastleRights()
	return &Snapshot{
		Board: pieces,
		Turn:  b.Turn().Name(),
		CastlingRights: map[string]bool{
			"K": rights.IsAllowed(board.CastleDirectionWhiteRight),
			"Q": rights.IsAllowed(board.CastleDirectionWhiteLeft),
			"k": rights.IsAllowed(board.CastleDirectionBlackRight),
			"q": rights.IsAllowed(board.CastleDirectionBlackLeft),
		},
		EPSquare:       epSquare,
		HalfmoveClock:  b.HalfMoveClock(),
		FullmoveNumber: b.FullMoveNumber(),
		LegalMoves:     moves,
		InCheck:        g.InCheck(),
		Result:         g.result.String(),
		DrawReason:     g.drawReason.String(),
		MoveHistory:    history,
	}
}

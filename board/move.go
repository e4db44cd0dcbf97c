package board

import (
	"errors"
	"fmt"

	"github.com/ninghz77/chess/position"
)

var (
	// ErrInvalidMoveNotation represents a malformed coordinate move string.
	ErrInvalidMoveNotation = errors.New("invalid move notation")
)

// Move describes a single ply. Identity is (From, To, Promote); the castle and
// en-passant flags are derived from the position and do not participate in
// equality.
type Move struct {
	From, To position.Pos
	Promote  Piece

	IsCastle    bool
	IsEnPassant bool
}

// ParseMove decodes a coordinate move string such as "e2e4" or "a7a8q".
// The castle and en-passant flags cannot be recovered from the text and are
// left unset; match against a legal-move list to resolve them.
func ParseMove(n string) (Move, error) {
	if len(n) != 4 && len(n) != 5 {
		return Move{}, fmt.Errorf("%w: bad length %d", ErrInvalidMoveNotation, len(n))
	}
	from, err := position.NewPosFromNotation(n[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMoveNotation, err)
	}
	to, err := position.NewPosFromNotation(n[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMoveNotation, err)
	}
	var promote Piece
	if len(n) == 5 {
		promote = PieceFromPromotionLetter(n[4])
		if promote == PieceUnknown {
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrInvalidMoveNotation, n[4])
		}
	}
	return Move{From: from, To: to, Promote: promote}, nil
}

func (m Move) String() string {
	return m.UCI()
}

// UCI encodes the move in coordinate notation, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	s := m.From.Notation() + m.To.Notation()
	if m.Promote != PieceUnknown {
		s += string(m.Promote.SymbolLetter())
	}
	return s
}

// Equal compares by (From, To, Promote) only.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promote == o.Promote
}

// IsNull reports whether the move is the zero value.
func (m Move) IsNull() bool {
	return m == Move{}
}

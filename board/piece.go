package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// SerialName returns the serialization identifier for the piece type.
func (p Piece) SerialName() string {
	switch p {
	case PiecePawn:
		return "PAWN"
	case PieceKnight:
		return "KNIGHT"
	case PieceBishop:
		return "BISHOP"
	case PieceRook:
		return "ROOK"
	case PieceQueen:
		return "QUEEN"
	case PieceKing:
		return "KING"
	default:
		return ""
	}
}

// SymbolLetter returns the lowercase single-letter symbol used by the
// coordinate move codec, or 0 for an unknown piece.
func (p Piece) SymbolLetter() byte {
	switch p {
	case PiecePawn:
		return 'p'
	case PieceKnight:
		return 'n'
	case PieceBishop:
		return 'b'
	case PieceRook:
		return 'r'
	case PieceQueen:
		return 'q'
	case PieceKing:
		return 'k'
	default:
		return 0
	}
}

// PieceFromPromotionLetter maps a promotion letter (case-insensitive) to a
// promotable piece type. Anything else yields PieceUnknown.
func PieceFromPromotionLetter(letter byte) Piece {
	switch letter | 0x20 {
	case 'q':
		return PieceQueen
	case 'r':
		return PieceRook
	case 'b':
		return PieceBishop
	case 'n':
		return PieceKnight
	default:
		return PieceUnknown
	}
}

func (p Piece) SymbolFEN(s Side) string {
	sym := p.SymbolLetter()
	if sym == 0 {
		return ""
	}
	if s == SideWhite {
		sym &^= 0x20 // uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

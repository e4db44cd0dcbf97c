package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ninghz77/chess/position"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// UnmarshalFEN parses fen into b, replacing its entire state and clearing
// its undo history.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidFEN)
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var sides [TotalCells]Side
	var pieces [TotalCells]Piece
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		ptr := -1
		for x := position.Pos(0); x < Width; x++ {
			ptr++
			if ptr >= len(row) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var p Piece
			switch cell := rune(row[ptr]); cell {
			case 'P':
				s, p = SideWhite, PiecePawn
			case 'N':
				s, p = SideWhite, PieceKnight
			case 'B':
				s, p = SideWhite, PieceBishop
			case 'R':
				s, p = SideWhite, PieceRook
			case 'Q':
				s, p = SideWhite, PieceQueen
			case 'K':
				s, p = SideWhite, PieceKing
			case 'p':
				s, p = SideBlack, PiecePawn
			case 'n':
				s, p = SideBlack, PieceKnight
			case 'b':
				s, p = SideBlack, PieceBishop
			case 'r':
				s, p = SideBlack, PieceRook
			case 'q':
				s, p = SideBlack, PieceQueen
			case 'k':
				s, p = SideBlack, PieceKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, string(cell))
			}
			pos := position.New(x, y)
			sides[pos] = s
			pieces[pos] = p
		}
		if ptr != len(row)-1 {
			return fmt.Errorf("%w: excess cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	var castleRights CastleRights
	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			castleRights.Set(CastleDirectionWhiteRight, true)
		case 'Q':
			castleRights.Set(CastleDirectionWhiteLeft, true)
		case 'k':
			castleRights.Set(CastleDirectionBlackRight, true)
		case 'q':
			castleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	enPassantPos := flagNoEnPassant
	if segments[3] != "-" {
		var err error
		enPassantPos, err = position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant square: %v", ErrInvalidFEN, err)
		}
	}

	halfMoveClock, err := strconv.Atoi(segments[4])
	if err != nil || halfMoveClock < 0 {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveNumber, err := strconv.Atoi(segments[5])
	if err != nil || fullMoveNumber < 1 {
		return fmt.Errorf("%w: invalid full move number", ErrInvalidFEN)
	}

	b.sides = sides
	b.pieces = pieces
	b.turn = turn
	b.castleRights = castleRights
	b.enPassantPos = enPassantPos
	b.halfMoveClock = halfMoveClock
	b.fullMoveNumber = fullMoveNumber
	b.history = nil
	return nil
}

// FEN emits the position in Forsyth-Edwards notation.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		skip := 0
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(position.New(x, y))
			if p == PieceUnknown {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		for _, d := range castleDirectionsAll {
			if b.castleRights.IsAllowed(d) {
				_, _ = builder.WriteString(d.FENSymbol())
			}
		}
	}
	_, _ = builder.WriteRune(' ')

	if ep, ok := b.EnPassant(); ok {
		_, _ = builder.WriteString(ep.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveNumber))

	return builder.String()
}

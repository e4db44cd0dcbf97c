package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the board edge length the position system supports.
	MaxComponentScalar Pos = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index, a1 = 0 through h8 = 63, laid out rank by rank.
type Pos int8

// Files and ranks, usable both as components and as table indexes.
const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Named squares referenced by the castling tables.
const (
	A1 Pos = 0
	B1 Pos = 1
	C1 Pos = 2
	D1 Pos = 3
	E1 Pos = 4
	F1 Pos = 5
	G1 Pos = 6
	H1 Pos = 7

	A8 Pos = 56
	B8 Pos = 57
	C8 Pos = 58
	D8 Pos = 59
	E8 Pos = 60
	F8 Pos = 61
	G8 Pos = 62
	H8 Pos = 63
)

// New builds a Pos from file and rank components.
func New(x, y Pos) Pos {
	return MaxComponentScalar*y + x
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// X returns the file component.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y returns the rank component.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// IsValid reports whether p lies on the board.
func (p Pos) IsValid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	pX := Pos(x - 'a')
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (Pos, error) {
	pY := Pos(y-'0') - 1
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}

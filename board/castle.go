package board

import "github.com/ninghz77/chess/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// FENSymbol returns the castling rights letter used by the FEN codec.
func (d CastleDirection) FENSymbol() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "K"
	case CastleDirectionWhiteLeft:
		return "Q"
	case CastleDirectionBlackRight:
		return "k"
	case CastleDirectionBlackLeft:
		return "q"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

type CastleRights uint8

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

// CastleRightsAll grants every direction.
const CastleRightsAll CastleRights = 0b1111

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteRight]|maskCastleRights[CastleDirectionWhiteLeft]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackRight]|maskCastleRights[CastleDirectionBlackLeft]) != 0
}

// castleSpec describes one castling direction: where the king and rook start
// and land, which squares must be empty, and which squares the king crosses
// (and therefore must not be attacked, its start square included).
type castleSpec struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	empty            []position.Pos
	kingPath         []position.Pos
}

var castleSpecs = [5]castleSpec{
	CastleDirectionWhiteRight: {
		kingFrom: position.E1, kingTo: position.G1,
		rookFrom: position.H1, rookTo: position.F1,
		empty:    []position.Pos{position.F1, position.G1},
		kingPath: []position.Pos{position.E1, position.F1, position.G1},
	},
	CastleDirectionWhiteLeft: {
		kingFrom: position.E1, kingTo: position.C1,
		rookFrom: position.A1, rookTo: position.D1,
		empty:    []position.Pos{position.B1, position.C1, position.D1},
		kingPath: []position.Pos{position.E1, position.D1, position.C1},
	},
	CastleDirectionBlackRight: {
		kingFrom: position.E8, kingTo: position.G8,
		rookFrom: position.H8, rookTo: position.F8,
		empty:    []position.Pos{position.F8, position.G8},
		kingPath: []position.Pos{position.E8, position.F8, position.G8},
	},
	CastleDirectionBlackLeft: {
		kingFrom: position.E8, kingTo: position.C8,
		rookFrom: position.A8, rookTo: position.D8,
		empty:    []position.Pos{position.B8, position.C8, position.D8},
		kingPath: []position.Pos{position.E8, position.D8, position.C8},
	},
}

func castleDirectionsForSide(s Side) []CastleDirection {
	if s == SideWhite {
		return []CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
	}
	return []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
}

// castleDirectionByKingTo resolves the direction of an already-flagged castle
// move from its king destination square.
func castleDirectionByKingTo(to position.Pos) CastleDirection {
	switch to {
	case position.G1:
		return CastleDirectionWhiteRight
	case position.C1:
		return CastleDirectionWhiteLeft
	case position.G8:
		return CastleDirectionBlackRight
	case position.C8:
		return CastleDirectionBlackLeft
	default:
		return CastleDirectionUnknown
	}
}

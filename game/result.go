package game

// Result is the outcome of a game, ongoing included.
type Result uint8

const (
	ResultOngoing Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultWhiteWins:
		return "white"
	case ResultBlackWins:
		return "black"
	case ResultDraw:
		return "draw"
	default:
		return ""
	}
}

func (r Result) IsOngoing() bool {
	return r == ResultOngoing
}

// DrawReason qualifies ResultDraw.
type DrawReason uint8

const (
	DrawReasonUnknown DrawReason = iota
	DrawReasonStalemate
	DrawReasonFiftyMove
	DrawReasonThreefold
	DrawReasonInsufficientMaterial
)

func (d DrawReason) String() string {
	switch d {
	case DrawReasonStalemate:
		return "stalemate"
	case DrawReasonFiftyMove:
		return "fifty_move"
	case DrawReasonThreefold:
		return "threefold"
	case DrawReasonInsufficientMaterial:
		return "insufficient_material"
	default:
		return ""
	}
}

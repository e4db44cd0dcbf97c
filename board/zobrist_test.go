package board

import (
	"testing"
)

func TestZobristDeterministic(t *testing.T) {
	t.Parallel()

	h1 := NewZobristHasher(DefaultZobristSeed)
	h2 := NewZobristHasher(DefaultZobristSeed)
	b := mustBoard(t, DefaultStartingPositionFEN)

	if h1.HashBoard(b) != h2.HashBoard(b) {
		t.Error("expected identical hashers from identical seeds")
	}

	h3 := NewZobristHasher(DefaultZobristSeed + 1)
	if h1.HashBoard(b) == h3.HashBoard(b) {
		t.Error("expected differing seeds to produce differing hashes")
	}
}

func TestZobristSensitivity(t *testing.T) {
	t.Parallel()

	hasher := NewZobristHasher(DefaultZobristSeed)
	base := hasher.HashBoard(mustBoard(t, DefaultStartingPositionFEN))

	// Each FEN differs from the starting position in exactly one component.
	differing := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Qkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQk - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
	}
	for _, fen := range differing {
		if got := hasher.HashBoard(mustBoard(t, fen)); got == base {
			t.Errorf("expected hash to differ for %s", fen)
		}
	}
}

func TestZobristIgnoresClocks(t *testing.T) {
	t.Parallel()

	hasher := NewZobristHasher(DefaultZobristSeed)
	a := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 42 33")

	if hasher.HashBoard(a) != hasher.HashBoard(b) {
		t.Error("expected move clocks to not participate in the hash")
	}
}

func TestZobristMakeUndoStable(t *testing.T) {
	t.Parallel()

	hasher := NewZobristHasher(DefaultZobristSeed)
	b := mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := hasher.HashBoard(b)

	for _, mv := range b.GenerateLegalMoves() {
		b.MakeMove(mv)
		b.UndoMove()
		if got := hasher.HashBoard(b); got != before {
			t.Fatalf("hash drifted after make/undo of %s", mv.UCI())
		}
	}
}

func TestZobristTransposition(t *testing.T) {
	t.Parallel()

	hasher := NewZobristHasher(DefaultZobristSeed)

	// Two move orders reaching the same position hash identically.
	a := mustBoard(t, DefaultStartingPositionFEN)
	mustApply(t, a, "g1f3")
	mustApply(t, a, "g8f6")
	mustApply(t, a, "b1c3")

	b := mustBoard(t, DefaultStartingPositionFEN)
	mustApply(t, b, "b1c3")
	mustApply(t, b, "g8f6")
	mustApply(t, b, "g1f3")

	if hasher.HashBoard(a) != hasher.HashBoard(b) {
		t.Error("expected transposed move orders to hash identically")
	}
}

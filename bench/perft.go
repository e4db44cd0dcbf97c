package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ninghz77/chess/board"
)

type counters struct {
	nodes, captures, enPassants, castles, promotions, checks uint64
}

// Perft walks the legal-move tree to the given depth and reports node and
// move-class tallies on out. Parallel mode fans out the root subtrees, each
// on its own board copy.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var c counters
	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, c.nodes, int(float64(c.nodes)/elapsed.Seconds()),
			c.captures, c.enPassants, c.castles, c.promotions, c.checks, elapsed.Seconds())

	return nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, c *counters) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, c *counters) uint64 {
	if d == 0 {
		c.nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateLegalMoves() {
		var child uint64
		if d == 1 {
			child = 1
			c.nodes++
			tallyMove(b, mv, c, false)
		} else {
			b.MakeMove(mv)
			child = runPerft(b, d-1, false, verbose, out, c)
			b.UndoMove()
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, c *counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateLegalMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Copy()
			if d == 1 {
				child = 1
				atomic.AddUint64(&c.nodes, 1)
				tallyMove(bb, mv, c, true)
			} else {
				bb.MakeMove(mv)
				child = runPerftSequentialInto(bb, d-1, c)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// runPerftSequentialInto descends one subtree on a private board copy,
// accumulating into the shared counters with atomics.
func runPerftSequentialInto(b *board.Board, d int, c *counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateLegalMoves() {
		var child uint64
		if d == 1 {
			child = 1
			atomic.AddUint64(&c.nodes, 1)
			tallyMove(b, mv, c, true)
		} else {
			b.MakeMove(mv)
			child = runPerftSequentialInto(b, d-1, c)
			b.UndoMove()
		}
		sum += child
	}
	return sum
}

// tallyMove classifies a legal leaf move. The check tally needs a
// make/probe/undo round trip, so it is the expensive one.
func tallyMove(b *board.Board, mv board.Move, c *counters, atomically bool) {
	add := func(p *uint64) {
		if atomically {
			atomic.AddUint64(p, 1)
		} else {
			*p++
		}
	}

	if _, captured := b.PieceAt(mv.To); captured != board.PieceUnknown || mv.IsEnPassant {
		add(&c.captures)
	}
	if mv.IsEnPassant {
		add(&c.enPassants)
	}
	if mv.IsCastle {
		add(&c.castles)
	}
	if mv.Promote != board.PieceUnknown {
		add(&c.promotions)
	}
	b.MakeMove(mv)
	if b.IsInCheck(b.Turn()) {
		add(&c.checks)
	}
	b.UndoMove()
}

package main

import (
	"fmt"
	"strconv"

	"github.com/ninghz77/chess/board"
)

func movegen(fen string, draw bool) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())

	mvs := b.GenerateLegalMoves()
	width := len(strconv.Itoa(len(mvs)))
	for i, mv := range mvs {
		_, piece := b.PieceAt(mv.From)
		fmt.Printf("option %*d: [%s] %s %s => %s (enp=%v) (cas=%v) (pro=%s)\n",
			width, i+1, mv.UCI(), piece, mv.From.Notation(), mv.To.Notation(), mv.IsEnPassant, mv.IsCastle, mv.Promote)
	}

	if draw {
		for _, mv := range mvs {
			b.MakeMove(mv)
			fmt.Println(mv)
			fmt.Println(b.Draw())
			fmt.Println(b.FEN())
			b.UndoMove()
		}
	}
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/game"
	"github.com/ninghz77/chess/session"
)

func play(manager *session.Manager, evaluator string, depth int, playBlack bool) error {
	cfg := session.Config{Mode: session.ModeHumanVsComputer}
	if playBlack {
		cfg.WhiteEvaluator = evaluator
		cfg.WhiteDepth = depth
	} else {
		cfg.BlackEvaluator = evaluator
		cfg.BlackDepth = depth
	}
	s, err := manager.Create(cfg)
	if err != nil {
		return err
	}
	defer manager.Delete(s.ID())

	fmt.Println("Enter moves in coordinate notation (e2e4, a7a8q). Commands: moves, fen, resign, quit.")
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(s.Render())

		if result, reason := s.Result(); !result.IsOngoing() {
			printResult(result, reason)
			return nil
		}

		if !s.IsHumanTurn() {
			mv, err := s.PlayComputerMove()
			if err != nil {
				return err
			}
			fmt.Printf("engine plays %s\n", color.CyanString(mv.UCI()))
			continue
		}

		fmt.Printf("%s> ", s.Turn())
		if !in.Scan() {
			return in.Err()
		}
		input := strings.TrimSpace(in.Text())
		switch input {
		case "":
			continue
		case "quit":
			return nil
		case "fen":
			fmt.Println(s.FEN())
			continue
		case "moves":
			for _, mv := range s.Snapshot().LegalMoves {
				fmt.Printf("%s ", mv.UCI())
			}
			fmt.Println()
			continue
		case "resign":
			s.Resign(s.Turn())
			continue
		}

		if err := s.AttemptMoveUCI(input); err != nil {
			switch {
			case errors.Is(err, board.ErrInvalidMoveNotation):
				color.Red("cannot parse %q", input)
			case errors.Is(err, game.ErrIllegalMove):
				color.Red("illegal move %q", input)
			default:
				return err
			}
		}
	}
}

func printResult(result game.Result, reason game.DrawReason) {
	switch result {
	case game.ResultDraw:
		color.Yellow("game drawn (%s)", reason)
	default:
		color.Green("game over: %s wins", result)
	}
}

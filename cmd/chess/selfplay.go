package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ninghz77/chess/session"
)

func selfplay(manager *session.Manager, whiteEval, blackEval string, depth, maxPlies int) error {
	s, err := manager.Create(session.Config{
		Mode:           session.ModeComputerVsComputer,
		WhiteEvaluator: whiteEval,
		BlackEvaluator: blackEval,
		WhiteDepth:     depth,
		BlackDepth:     depth,
	})
	if err != nil {
		return err
	}
	defer manager.Delete(s.ID())

	log.Info().Str("white", whiteEval).Str("black", blackEval).Msg("selfplay started")
	for ply := 0; ply < maxPlies; ply++ {
		if result, _ := s.Result(); !result.IsOngoing() {
			break
		}
		side := s.Turn()
		mv, err := s.PlayComputerMove()
		if err != nil {
			return err
		}
		fmt.Printf("\n>>> %s: %s\n", side, mv.UCI())
		fmt.Println(s.Render())
		fmt.Println(s.FEN())
	}

	result, reason := s.Result()
	if result.IsOngoing() {
		log.Warn().Int("plies", maxPlies).Msg("selfplay aborted, game still ongoing")
		return nil
	}
	printResult(result, reason)
	fmt.Println(s.Snapshot().MoveHistory)
	return nil
}

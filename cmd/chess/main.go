package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/session"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	debug = flag.Bool("debug", false, "enable debug logging")

	playRun       = flag.Bool("play", false, "run interactive play mode against the engine")
	playEvaluator = flag.String("play.evaluator", "positional", "engine evaluator in play mode")
	playDepth     = flag.Int("play.depth", 0, "engine search depth in play mode")
	playBlack     = flag.Bool("play.black", false, "play the black pieces in play mode")

	selfplayRun       = flag.Bool("selfplay", false, "run engine-vs-engine mode")
	selfplayWhiteEval = flag.String("selfplay.white", "positional", "white evaluator in selfplay mode")
	selfplayBlackEval = flag.String("selfplay.black", "material", "black evaluator in selfplay mode")
	selfplayDepth     = flag.Int("selfplay.depth", 0, "search depth for both sides in selfplay mode")
	selfplayMaxPlies  = flag.Int("selfplay.maxplies", 200, "abort selfplay after this many plies")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw resulting boards in movegen mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 4, "perft depth")
	perftParallel = flag.Bool("perft.parallel", true, "fan out root subtrees in perft mode")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := realMain(flag.Args()); err != nil {
		log.Error().Err(err).Msg("exited with error")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	registry := session.DefaultRegistry()
	manager := session.NewManager(registry, log.Logger)

	switch {
	case *playRun:
		return play(manager, *playEvaluator, *playDepth, *playBlack)
	case *selfplayRun:
		return selfplay(manager, *selfplayWhiteEval, *selfplayBlackEval, *selfplayDepth, *selfplayMaxPlies)
	case *movegenRun:
		return movegen(fen, *movegenDraw)
	case *perftRun:
		return perft(*perftDepth, fen, *perftParallel)
	}

	flag.Usage()
	return nil
}

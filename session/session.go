package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ninghz77/chess/board"
	"github.com/ninghz77/chess/engine"
	"github.com/ninghz77/chess/game"
	"github.com/ninghz77/chess/position"
)

type Mode string

const (
	ModeHumanVsHuman       Mode = "hvh"
	ModeHumanVsComputer    Mode = "hvc"
	ModeComputerVsComputer Mode = "cvc"
)

var (
	// ErrNoSearcher is returned by ComputeMove when the side to move has no
	// configured searcher, i.e. is controlled by a human.
	ErrNoSearcher = errors.New("no searcher for side to move")

	// ErrBadSquare rejects a move submission with an off-board square index.
	ErrBadSquare = errors.New("square index out of range")
)

// GameSession owns one GameState and serializes every access to it: one move
// application, one search, or one snapshot read at a time, as the engine
// core requires.
type GameSession struct {
	id   string
	mode Mode
	log  zerolog.Logger

	mu    sync.Mutex
	game  *game.GameState
	white *engine.MinimaxSearcher // nil when White is human
	black *engine.MinimaxSearcher // nil when Black is human
}

// Config describes a new session. Empty evaluator names leave that side
// under human control.
type Config struct {
	Mode           Mode
	WhiteEvaluator string
	BlackEvaluator string
	WhiteDepth     int
	BlackDepth     int
}

func newGameSession(id string, cfg Config, registry Registry, log zerolog.Logger) (*GameSession, error) {
	s := &GameSession{
		id:   id,
		mode: cfg.Mode,
		log:  log,
		game: game.NewGameState(),
	}

	var err error
	if s.white, err = newSearcher(registry, cfg.WhiteEvaluator, cfg.WhiteDepth); err != nil {
		return nil, fmt.Errorf("white: %w", err)
	}
	if s.black, err = newSearcher(registry, cfg.BlackEvaluator, cfg.BlackDepth); err != nil {
		return nil, fmt.Errorf("black: %w", err)
	}
	return s, nil
}

func newSearcher(registry Registry, evaluatorName string, depth int) (*engine.MinimaxSearcher, error) {
	if evaluatorName == "" {
		return nil, nil
	}
	evaluator, err := registry.New(evaluatorName)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		depth = engine.DefaultSearchDepth
	}
	return engine.NewMinimaxSearcher(evaluator, depth), nil
}

func (s *GameSession) ID() string {
	return s.id
}

func (s *GameSession) Mode() Mode {
	return s.mode
}

// Turn returns the side to move.
func (s *GameSession) Turn() board.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board().Turn()
}

func (s *GameSession) Result() (game.Result, game.DrawReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Result(), s.game.DrawReason()
}

// IsHumanTurn reports whether no searcher is configured for the side to move.
func (s *GameSession) IsHumanTurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSearcher() == nil
}

// currentSearcher must be called with the mutex held.
func (s *GameSession) currentSearcher() *engine.MinimaxSearcher {
	if s.game.Board().Turn() == board.SideWhite {
		return s.white
	}
	return s.black
}

// AttemptMove submits a move by square indices. The promotion letter maps
// case-insensitively to queen/rook/bishop/knight; anything else counts as no
// promotion. The castle/en-passant flags are resolved by matching against
// the legal-move list.
func (s *GameSession) AttemptMove(from, to int, promotion string) error {
	if from < 0 || from >= int(board.TotalCells) || to < 0 || to >= int(board.TotalCells) {
		return ErrBadSquare
	}
	var promote board.Piece
	if promotion != "" {
		promote = board.PieceFromPromotionLetter(promotion[0])
	}
	mv := board.Move{From: position.Pos(from), To: position.Pos(to), Promote: promote}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.MakeMove(mv); err != nil {
		return err
	}
	s.log.Debug().Str("move", mv.UCI()).Str("result", s.game.Result().String()).Msg("move committed")
	return nil
}

// AttemptMoveUCI submits a move in coordinate text, e.g. "e2e4" or "a7a8q".
func (s *GameSession) AttemptMoveUCI(notation string) error {
	mv, err := board.ParseMove(notation)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MakeMove(mv)
}

// ComputeMove runs the configured searcher for the side to move and returns
// its choice without committing it. Blocking CPU work; callers run it off
// their primary goroutine when latency matters.
func (s *GameSession) ComputeMove() (board.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeMove()
}

// PlayComputerMove computes and immediately commits the searcher's choice.
func (s *GameSession) PlayComputerMove() (board.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mv, err := s.computeMove()
	if err != nil {
		return board.Move{}, err
	}
	if err := s.game.MakeMove(mv); err != nil {
		return board.Move{}, err
	}
	return mv, nil
}

// computeMove must be called with the mutex held.
func (s *GameSession) computeMove() (board.Move, error) {
	searcher := s.currentSearcher()
	if searcher == nil {
		return board.Move{}, ErrNoSearcher
	}

	start := time.Now()
	mv, err := searcher.BestMove(s.game)
	if err != nil {
		return board.Move{}, err
	}
	s.log.Info().
		Str("move", mv.UCI()).
		Int("depth", searcher.Depth()).
		Uint64("nodes", searcher.Nodes()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return mv, nil
}

// Resign ends the game in favor of side's opponent; no-op once decided.
func (s *GameSession) Resign(side board.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Resign(side)
}

// Snapshot serializes the full game state.
func (s *GameSession) Snapshot() *game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Serialize()
}

// FEN returns the current position in Forsyth-Edwards notation.
func (s *GameSession) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board().FEN()
}

// Render draws the current board for terminal display.
func (s *GameSession) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board().Draw()
}

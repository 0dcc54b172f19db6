package searcher

import (
	"alphabeta/game"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrNilState      = errors.New("searcher: nil state")
	ErrNilEvaluate   = errors.New("searcher: nil evaluation function")
	ErrNegativeDepth = errors.New("searcher: negative depth")
	// ErrNoLegalMoves is returned when a state reports it is not terminal but
	// has nothing to play.
	ErrNoLegalMoves = errors.New("searcher: non-terminal state without legal moves")
)

// EvaluatedMove pairs a backed-up value with the move that achieves it. Move is nil
// for leaf scores and for bounds no move has improved yet.
type EvaluatedMove struct {
	Value float64
	Move  game.Move
}

func (e EvaluatedMove) String() string {
	if e.Move == nil {
		return fmt.Sprintf("%g", e.Value)
	}
	return fmt.Sprintf("%g (%s)", e.Value, e.Move)
}

// LowerBound is the starting alpha: nothing is guaranteed to the maximizer yet.
func LowerBound() EvaluatedMove {
	return EvaluatedMove{Value: math.Inf(-1)}
}

// UpperBound is the starting beta: nothing is guaranteed to the minimizer yet.
func UpperBound() EvaluatedMove {
	return EvaluatedMove{Value: math.Inf(1)}
}

type Option func(s *search)

// WithMaxPlayer sets the player whose value is maximized. Defaults to the player to
// move at the searched state.
func WithMaxPlayer(player string) Option {
	return func(s *search) {
		s.maxPlayer = player
		s.hasMaxPlayer = true
	}
}

// WithWindow starts the search from the given bounds instead of the full window.
func WithWindow(alpha, beta EvaluatedMove) Option {
	return func(s *search) {
		s.alpha = alpha
		s.beta = beta
	}
}

func WithMetrics(collector Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type search struct {
	evaluate     game.Evaluate
	maxPlayer    string
	hasMaxPlayer bool
	alpha        EvaluatedMove
	beta         EvaluatedMove
	metrics      Collector
}

func newSearch(state game.State, depth int, evaluate game.Evaluate, options []Option) (*search, error) {
	if state == nil {
		return nil, ErrNilState
	}
	if evaluate == nil {
		return nil, ErrNilEvaluate
	}
	if depth < 0 {
		return nil, errors.Wrapf(ErrNegativeDepth, "depth %d", depth)
	}

	s := &search{ // Default values, fresh per call
		evaluate: evaluate,
		alpha:    LowerBound(),
		beta:     UpperBound(),
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if !s.hasMaxPlayer {
		s.maxPlayer = state.Player()
	}
	return s, nil
}

func (s *search) isLeaf(state game.State, depth int) bool {
	s.metrics.AddNode()
	return state.IsTerminal() || depth < 1
}

func (s *search) evaluateLeaf(state game.State) EvaluatedMove {
	s.metrics.AddEvaluation()
	return EvaluatedMove{Value: s.evaluate(state, s.maxPlayer)}
}

// legalMoves fails fast on a state that is neither terminal nor playable.
func (s *search) legalMoves(state game.State, depth int) ([]game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.Wrapf(ErrNoLegalMoves, "player %s with %d plies left", state.Player(), depth)
	}
	return moves, nil
}

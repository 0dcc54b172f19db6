package engine

import (
	"alphabeta/game"
	"alphabeta/searcher"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

var (
	ErrNoPlayers    = errors.New("engine: no player depths configured")
	ErrInvalidDepth = errors.New("engine: search depth must be at least 1")
	ErrUnknownMover = errors.New("engine: no search depth for player to move")
)

// Step is one entry of a game trace. The first step holds the initial state only:
// Move is nil, Player is empty and Value is meaningless. Every later step holds the
// state after Player played Move and the value the search predicted for it.
type Step struct {
	State  game.State
	Player string
	Move   game.Move
	Value  float64
	Metric searcher.SearchMetric
}

// IsInitial reports whether the step carries no move.
func (s Step) IsInitial() bool {
	return s.Move == nil
}

func (s Step) String() string {
	if s.IsInitial() {
		return "initial state"
	}
	return fmt.Sprintf("%s played %s with value %g", s.Player, s.Move, s.Value)
}

type Option func(e *Engine)

// WithMetrics collects search metrics for every move.
func WithMetrics() Option {
	return func(e *Engine) {
		e.withMetrics = true
	}
}

// Engine plays a game between alpha-beta searchers, each player searching to its own
// depth. It owns the authoritative game state.
type Engine struct {
	State       game.State
	depths      map[string]int
	evaluate    game.Evaluate
	withMetrics bool
	started     bool
	turns       int
	err         error
}

// New returns an engine starting at initial. depths maps every player token that can
// be to move to its search depth.
func New(initial game.State, depths map[string]int, evaluate game.Evaluate, options ...Option) (*Engine, error) {
	if initial == nil {
		return nil, searcher.ErrNilState
	}
	if evaluate == nil {
		return nil, searcher.ErrNilEvaluate
	}
	if len(depths) == 0 {
		return nil, ErrNoPlayers
	}

	copied := make(map[string]int, len(depths))
	for player, depth := range depths {
		if depth < 1 {
			return nil, errors.Wrapf(ErrInvalidDepth, "player %s has depth %d", player, depth)
		}
		copied[player] = depth
	}

	e := &Engine{
		State:    initial,
		depths:   copied,
		evaluate: evaluate,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Steps lazily plays the game, one move per step pulled, and ends after yielding a
// terminal state. The sequence cannot be restarted: ranging over Steps again resumes
// where the previous loop stopped, and yields nothing once the game is over.
// A failed turn is yielded as an error and ends the sequence.
func (e *Engine) Steps() iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		if e.err != nil {
			yield(Step{}, e.err)
			return
		}
		if !e.started {
			e.started = true
			if !yield(Step{State: e.State}, nil) {
				return
			}
		}

		for !e.State.IsTerminal() {
			step, err := e.turn()
			if err != nil {
				e.err = err
				yield(Step{}, err)
				return
			}
			if !yield(step, nil) {
				return
			}
		}
	}
}

// Turns returns the number of moves played so far.
func (e *Engine) Turns() int {
	return e.turns
}

func (e *Engine) turn() (Step, error) {
	player := e.State.Player()
	depth, ok := e.depths[player]
	if !ok {
		return Step{}, errors.Wrapf(ErrUnknownMover, "player %s", player)
	}

	collector := searcher.NewDummyCollector()
	if e.withMetrics {
		collector = searcher.NewCollector()
	}

	best, err := searcher.AlphaBeta(e.State, depth, e.evaluate, searcher.WithMetrics(collector))
	if err != nil {
		return Step{}, errors.Wrapf(err, "turn %d of player %s", e.turns+1, player)
	}

	e.State = e.State.Play(best.Move)
	e.turns++

	return Step{
		State:  e.State,
		Player: player,
		Move:   best.Move,
		Value:  best.Value,
		Metric: collector.Complete(),
	}, nil
}

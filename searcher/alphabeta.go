package searcher

import "alphabeta/game"

// AlphaBeta returns the best move for the maximizing player at state together with
// its minimax value, searching depth plies and pruning branches that cannot change
// the result.
//
// The returned move is nil only when state itself is a leaf (terminal or depth 0).
// Among equally valued moves the first one in LegalMoves order is kept. When the
// value falls outside the window given by WithWindow, the search stops at the
// first move that proves it and returns the crossed bound's value. Evaluations
// are not validated: a NaN never compares greater or smaller than a bound, so it
// neither replaces the running best move nor causes a cutoff.
func AlphaBeta(state game.State, depth int, evaluate game.Evaluate, options ...Option) (EvaluatedMove, error) {
	s, err := newSearch(state, depth, evaluate, options)
	if err != nil {
		return EvaluatedMove{}, err
	}

	s.metrics.Start(depth)
	return s.alphabeta(state, depth, s.alpha, s.beta)
}

// alphabeta receives its bounds by value, so tightening them never leaks to siblings
// or to the caller.
func (s *search) alphabeta(state game.State, depth int, alpha, beta EvaluatedMove) (EvaluatedMove, error) {
	if s.isLeaf(state, depth) {
		return s.evaluateLeaf(state), nil
	}

	moves, err := s.legalMoves(state, depth)
	if err != nil {
		return EvaluatedMove{}, err
	}

	// best is the move that last tightened this node's bound, so the returned move
	// is always one of this node's own moves. It stays the first move until a
	// child beats the inherited bound.
	best := moves[0]

	if state.Player() == s.maxPlayer {
		for _, move := range moves {
			child, err := s.alphabeta(state.Play(move), depth-1, alpha, beta)
			if err != nil {
				return EvaluatedMove{}, err
			}
			if child.Value > alpha.Value {
				alpha = EvaluatedMove{Value: child.Value, Move: move}
				best = move
			}
			// The minimizer above already has a better alternative
			if alpha.Value >= beta.Value {
				s.metrics.AddCutoff()
				return EvaluatedMove{Value: beta.Value, Move: best}, nil
			}
		}
		return EvaluatedMove{Value: alpha.Value, Move: best}, nil
	}

	for _, move := range moves {
		child, err := s.alphabeta(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return EvaluatedMove{}, err
		}
		if child.Value < beta.Value {
			beta = EvaluatedMove{Value: child.Value, Move: move}
			best = move
		}
		// The maximizer above already has a better alternative
		if alpha.Value >= beta.Value {
			s.metrics.AddCutoff()
			return EvaluatedMove{Value: alpha.Value, Move: best}, nil
		}
	}
	return EvaluatedMove{Value: beta.Value, Move: best}, nil
}

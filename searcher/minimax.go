package searcher

import "alphabeta/game"

// Minimax expands the full tree to depth without pruning. It has the same leaf, tie
// and error behaviour as AlphaBeta and serves as its baseline. WithWindow is ignored.
func Minimax(state game.State, depth int, evaluate game.Evaluate, options ...Option) (EvaluatedMove, error) {
	s, err := newSearch(state, depth, evaluate, options)
	if err != nil {
		return EvaluatedMove{}, err
	}

	s.metrics.Start(depth)
	return s.minimax(state, depth)
}

func (s *search) minimax(state game.State, depth int) (EvaluatedMove, error) {
	if s.isLeaf(state, depth) {
		return s.evaluateLeaf(state), nil
	}

	moves, err := s.legalMoves(state, depth)
	if err != nil {
		return EvaluatedMove{}, err
	}

	maximizing := state.Player() == s.maxPlayer
	var best EvaluatedMove
	for i, move := range moves {
		child, err := s.minimax(state.Play(move), depth-1)
		if err != nil {
			return EvaluatedMove{}, err
		}
		if i == 0 ||
			(maximizing && child.Value > best.Value) ||
			(!maximizing && child.Value < best.Value) {
			best = EvaluatedMove{Value: child.Value, Move: move}
		}
	}
	return best, nil
}

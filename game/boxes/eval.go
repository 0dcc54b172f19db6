package boxes

import "alphabeta/game"

// Evaluate scores a position as the box lead of player over the opponent.
func Evaluate(s game.State, player string) float64 {
	bs, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	return float64(bs.Score(player) - bs.Score(Opponent(player)))
}

package game

import "fmt"

// Move is opaque to the searcher, only the state that produced it knows how to
// play it. String is used for logging.
type Move interface {
	fmt.Stringer
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the token of the player to move
	Player() string
	IsTerminal() bool
	// LegalMoves returns the playable moves in a stable order. The order decides
	// which move wins a tie and how much can be pruned, never the value.
	LegalMoves() []Move
	// Play returns the state after move. Sibling states must not observe each
	// other, so implementations copy whatever they change.
	Play(Move) State
}

// Evaluate scores a state from the given player's perspective. A higher score is
// better for player. It must be consistent within one search.
type Evaluate func(state State, player string) float64

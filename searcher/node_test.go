package searcher

import (
	"alphabeta/game"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	maxer = "max"
	miner = "min"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

// mockState is a node of a hand-built game tree. Nodes without children are terminal
// unless open is set, which models a broken state that claims moves but has none.
type mockState struct {
	player   string
	value    float64 // From maxer's perspective
	children []*mockState
	open     bool
}

func (m *mockState) Player() string {
	return m.player
}

func (m *mockState) IsTerminal() bool {
	return len(m.children) == 0 && !m.open
}

func (m *mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (m *mockState) Play(move game.Move) game.State {
	return m.children[move.(mockMove).id]
}

func leaf(value float64) *mockState {
	return &mockState{player: maxer, value: value}
}

func node(player string, children ...*mockState) *mockState {
	return &mockState{player: player, children: children}
}

// leaves builds a node whose children are all leaves with the given values.
func leaves(player string, values ...float64) *mockState {
	children := make([]*mockState, len(values))
	for i, v := range values {
		children[i] = leaf(v)
	}
	return node(player, children...)
}

type countingEvaluator struct {
	calls int
}

func (c *countingEvaluator) evaluate(s game.State, player string) float64 {
	c.calls++
	v := s.(*mockState).value
	if player == maxer {
		return v
	}
	return -v
}

// randomTree builds a tree with up to maxBranching children per node. Players are
// drawn at random so that a player may move twice in a row.
func randomTree(r *rand.Rand, depth, maxBranching int) *mockState {
	player := maxer
	if r.Intn(2) == 0 {
		player = miner
	}
	// Small value range to produce plenty of ties
	value := float64(r.Intn(21) - 10)
	if depth == 0 {
		return &mockState{player: player, value: value}
	}

	branching := r.Intn(maxBranching + 1)
	children := make([]*mockState, branching)
	for i := range children {
		children[i] = randomTree(r, depth-1, maxBranching)
	}
	return &mockState{player: player, value: value, children: children}
}

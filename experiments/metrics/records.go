package metrics

import (
	"alphabeta/searcher"
	"time"
)

// MatchUp pairs the search depths of the two players.
type MatchUp struct {
	ID     int
	Depth1 int // Depth of player 1
	Depth2 int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Value  float64 // Predicted by the search
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID      int
	MatchUp int // MatchUp.ID
	Seed    uint64
	Score1  int
	Score2  int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// PruningRecord compares a pruned and an unpruned search of the same position.
type PruningRecord struct {
	Depth     int
	Seed      uint64
	Value     float64
	AlphaBeta searcher.SearchMetric
	Minimax   searcher.SearchMetric
}

package engine

import (
	"alphabeta/experiments/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

// Run plays the game to the end and returns its trace together with game and
// per-move metrics.
func (e *Engine) Run() ([]Step, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	var trace []Step

	log.Info().Msgf("player %s is starting", e.State.Player())

	for step, err := range e.Steps() {
		if err != nil {
			return trace, gameMetric, moveMetrics, err
		}
		trace = append(trace, step)
		if step.IsInitial() {
			continue
		}

		log.Debug().Msgf("turn %d: %s", e.turns, step)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.turns,
			Player:       step.Player,
			Move:         step.Move.String(),
			Value:        step.Value,
			SearchMetric: step.Metric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.turns
	if w, ok := e.State.(interface{ Winner() string }); ok {
		gameMetric.Winner = w.Winner()
	}

	log.Info().Msgf("game over after %d moves, winner: %q", e.turns, gameMetric.Winner)

	return trace, gameMetric, moveMetrics, nil
}

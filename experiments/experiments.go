package experiments

import (
	"alphabeta/engine"
	"alphabeta/experiments/metrics"
	"alphabeta/game"
	"alphabeta/game/boxes"
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Result holds everything recorded by RunDepthExperiment.
type Result struct {
	MatchUps []metrics.MatchUp
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
	Dir      string // Where the CSV files were written, empty if they were not
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// RunDepthExperiment plays cfg.Games games of dots and boxes for every match-up of
// search depths. Games run concurrently; every search stays single-threaded.
func RunDepthExperiment(ctx context.Context, cfg Config) (Result, error) {
	matchUps := make([]metrics.MatchUp, len(cfg.MatchUps))
	for i, m := range cfg.MatchUps {
		matchUps[i] = metrics.MatchUp{ID: i + 1, Depth1: m.Depth1, Depth2: m.Depth2}
	}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	results := make([]gameResult, len(matchUps)*cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for mi, matchUp := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			id := mi*cfg.Games + i + 1
			seed := cfg.Seed + uint64(id)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(id, matchUp, cfg.Size, cfg.Openings, seed)
				if err != nil {
					return errors.Wrapf(err, "match-up %d game %d", matchUp.ID, i+1)
				}
				results[id-1] = result

				log.Info().Msgf("completed match-up %d of %d game %d of %d with winner: %q",
					matchUp.ID, len(matchUps), i+1, cfg.Games, result.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{MatchUps: matchUps}
	for _, r := range results {
		result.Games = append(result.Games, r.record)
		result.Moves = append(result.Moves, r.moves...)
	}
	logSummary(result)

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.Output == "-" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

// runGame plays one game after a seeded random opening.
func runGame(id int, matchUp metrics.MatchUp, size, openings int, seed uint64) (gameResult, error) {
	state := randomOpening(boxes.New(size), openings, seed)
	depths := map[string]int{
		boxes.PlayerOne: matchUp.Depth1,
		boxes.PlayerTwo: matchUp.Depth2,
	}

	e, err := engine.New(state, depths, boxes.Evaluate, engine.WithMetrics())
	if err != nil {
		return gameResult{}, err
	}
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	final := e.State.(*boxes.State)
	result := gameResult{
		record: metrics.GameRecord{
			ID:         id,
			MatchUp:    matchUp.ID,
			Seed:       seed,
			Score1:     final.Score(boxes.PlayerOne),
			Score2:     final.Score(boxes.PlayerTwo),
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return result, nil
}

// randomOpening plays up to n uniformly random moves so that games of a match-up differ.
func randomOpening(state game.State, n int, seed uint64) game.State {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n && !state.IsTerminal(); i++ {
		moves := state.LegalMoves()
		state = state.Play(moves[r.Intn(len(moves))])
	}
	return state
}

func logSummary(result Result) {
	for _, m := range result.MatchUps {
		wins := map[string]int{}
		for _, g := range result.Games {
			if g.MatchUp == m.ID {
				wins[g.Winner]++
			}
		}
		log.Info().Msgf("match-up %d (depth %d vs %d): player 1 won %d, player 2 won %d, %d draws",
			m.ID, m.Depth1, m.Depth2, wins[boxes.PlayerOne], wins[boxes.PlayerTwo], wins[""])
	}
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}

	err = writer.WriteMatchUps(result.MatchUps)
	if err != nil {
		return "", errors.Wrap(err, "failed to store match-ups")
	}
	log.Info().Msg("stored match-ups")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", errors.Wrap(err, "failed to store game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

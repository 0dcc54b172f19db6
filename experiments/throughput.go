package experiments

import (
	"alphabeta/experiments/metrics"
	"alphabeta/game/boxes"
	"alphabeta/meta"
	"alphabeta/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RunPruningExperiment searches the same random positions with and without pruning
// at every configured depth and records how many nodes each search visits.
// It fails if the two searches ever disagree on the value.
func RunPruningExperiment(cfg Config) ([]metrics.PruningRecord, error) {
	depths := cfg.Depths
	if len(depths) == 0 {
		for d := 1; d <= meta.DEPTH; d++ {
			depths = append(depths, d)
		}
	}

	log.Info().Msgf("starting pruning experiment at depths %v...", depths)

	var records []metrics.PruningRecord
	for _, depth := range depths {
		var pruned, full int64
		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(i+1)
			state := randomOpening(boxes.New(cfg.Size), cfg.Openings, seed)

			abMetrics := searcher.NewCollector()
			ab, err := searcher.AlphaBeta(state, depth, boxes.Evaluate, searcher.WithMetrics(abMetrics))
			if err != nil {
				return nil, errors.Wrapf(err, "alpha-beta at depth %d", depth)
			}
			mmMetrics := searcher.NewCollector()
			mm, err := searcher.Minimax(state, depth, boxes.Evaluate, searcher.WithMetrics(mmMetrics))
			if err != nil {
				return nil, errors.Wrapf(err, "minimax at depth %d", depth)
			}
			if ab.Value != mm.Value {
				return nil, errors.Errorf("depth %d seed %d: alpha-beta value %g differs from minimax value %g", depth, seed, ab.Value, mm.Value)
			}

			record := metrics.PruningRecord{
				Depth:     depth,
				Seed:      seed,
				Value:     ab.Value,
				AlphaBeta: abMetrics.Complete(),
				Minimax:   mmMetrics.Complete(),
			}
			pruned += record.AlphaBeta.Nodes
			full += record.Minimax.Nodes
			records = append(records, record)
		}
		log.Info().Msgf("depth %d: alpha-beta visited %d nodes, minimax %d", depth, pruned, full)
	}

	log.Info().Msg("completed pruning experiment")

	if cfg.Output == "-" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.Output, "pruning")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create experiment writer")
	}
	err = writer.WritePruningRecords(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store pruning records")
	}
	log.Info().Msg("stored pruning records")
	return records, nil
}

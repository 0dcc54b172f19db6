package experiments

import (
	"alphabeta/game/boxes"
	"alphabeta/meta"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads all fields", func(t *testing.T) {
		path := writeConfig(t, `
name: shallow
size: 4
games: 3
openings: 2
seed: 7
parallel: 2
output: out
match_ups:
  - depth1: 1
    depth2: 2
  - depth1: 2
    depth2: 1
pruning_depths: [1, 2, 3]
`)

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, Config{
			Name:     "shallow",
			Size:     4,
			Games:    3,
			Openings: 2,
			Seed:     7,
			Parallel: 2,
			Output:   "out",
			MatchUps: []MatchUpConfig{{Depth1: 1, Depth2: 2}, {Depth1: 2, Depth2: 1}},
			Depths:   []int{1, 2, 3},
		}, cfg)
	})

	t.Run("fills in defaults", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, "seed: 1\n"))

		require.NoError(t, err)
		require.Equal(t, meta.BOARD_SIZE, cfg.Size)
		require.Equal(t, meta.GAMES, cfg.Games)
		require.Equal(t, meta.PARALLEL, cfg.Parallel)
		require.Equal(t, meta.OUTPUT, cfg.Output)
		require.Equal(t, []MatchUpConfig{{Depth1: meta.DEPTH, Depth2: meta.DEPTH}}, cfg.MatchUps)
	})

	t.Run("rejects invalid depths", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "match_ups:\n  - depth1: 0\n    depth2: 2\n"))

		require.ErrorContains(t, err, "depths must be at least 1")
	})

	t.Run("rejects a too small board", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "size: 1\n"))

		require.ErrorContains(t, err, "board size")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "games: [\n"))

		require.ErrorContains(t, err, "failed to parse")
	})
}

func testConfig(output string) Config {
	return Config{
		Name:     "test",
		Size:     3,
		Games:    3,
		Openings: 2,
		Seed:     11,
		Parallel: 2,
		Output:   output,
		MatchUps: []MatchUpConfig{{Depth1: 1, Depth2: 2}, {Depth1: 2, Depth2: 2}},
		Depths:   []int{1, 2, 3},
	}
}

func TestRunDepthExperiment(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		output := t.TempDir()

		result, err := RunDepthExperiment(context.Background(), testConfig(output))

		require.NoError(t, err)
		require.Len(t, result.MatchUps, 2)
		require.Len(t, result.Games, 6, "Should play every game of every match-up")
		for i, g := range result.Games {
			require.Equal(t, i+1, g.ID, "Games should be ordered by id")
			require.Equal(t, i/3+1, g.MatchUp)
			require.Equal(t, 4, g.Score1+g.Score2, "Every box of a 3x3 board should be owned")
			require.Equal(t, 12-2, g.TotalMoves, "Searchers should play the lines left after the opening")
		}
		require.Len(t, result.Moves, 6*10)

		for _, name := range []string{"match_ups.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(result.Dir, name))
		}
	})

	t.Run("same seed replays the same games", func(t *testing.T) {
		first, err := RunDepthExperiment(context.Background(), testConfig("-"))
		require.NoError(t, err)
		second, err := RunDepthExperiment(context.Background(), testConfig("-"))
		require.NoError(t, err)

		require.Empty(t, first.Dir, "Should not write files")
		require.Equal(t, len(first.Moves), len(second.Moves))
		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Move, second.Moves[i].Move)
			require.Equal(t, first.Moves[i].Value, second.Moves[i].Value)
		}
	})

	t.Run("canceled context stops the experiment", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunDepthExperiment(ctx, testConfig("-"))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunPruningExperiment(t *testing.T) {
	records, err := RunPruningExperiment(testConfig("-"))

	require.NoError(t, err)
	require.Len(t, records, 3*3, "Should search every position at every depth")
	for _, r := range records {
		require.LessOrEqual(t, r.AlphaBeta.Nodes, r.Minimax.Nodes, "Pruning should never visit more nodes")
		require.LessOrEqual(t, r.AlphaBeta.Evaluations, r.Minimax.Evaluations)
		require.Equal(t, r.Depth, r.AlphaBeta.Depth)
	}
}

func TestRandomOpening(t *testing.T) {
	t.Run("plays the requested number of moves", func(t *testing.T) {
		state := randomOpening(boxes.New(3), 5, 1)

		require.Len(t, state.LegalMoves(), 12-5)
	})

	t.Run("stops at the end of the game", func(t *testing.T) {
		state := randomOpening(boxes.New(2), 10, 1)

		require.True(t, state.IsTerminal())
	})

	t.Run("is reproducible", func(t *testing.T) {
		require.Equal(t, randomOpening(boxes.New(4), 6, 3), randomOpening(boxes.New(4), 6, 3))
	})
}

package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the CSV files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchUps(matchUps []MatchUp) error {
	header := []string{"id", "depth1", "depth2"}
	rows := make([][]string, len(matchUps))
	for i, m := range matchUps {
		rows[i] = []string{
			strconv.Itoa(m.ID),
			strconv.Itoa(m.Depth1),
			strconv.Itoa(m.Depth2),
		}
	}
	return w.write("match_ups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_up", "seed", "starting_player", "winner", "score1", "score2", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.MatchUp),
			strconv.FormatUint(record.Seed, 10),
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Score2),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "value", "depth", "duration", "nodes", "evaluations", "cutoffs"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Evaluations, 10),
			strconv.FormatInt(record.Cutoffs, 10),
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WritePruningRecords(records []PruningRecord) error {
	header := []string{"depth", "seed", "value", "alphabeta_nodes", "alphabeta_evaluations", "alphabeta_cutoffs", "alphabeta_duration", "minimax_nodes", "minimax_evaluations", "minimax_duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Depth),
			strconv.FormatUint(record.Seed, 10),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			strconv.FormatInt(record.AlphaBeta.Nodes, 10),
			strconv.FormatInt(record.AlphaBeta.Evaluations, 10),
			strconv.FormatInt(record.AlphaBeta.Cutoffs, 10),
			record.AlphaBeta.Duration.String(),
			strconv.FormatInt(record.Minimax.Nodes, 10),
			strconv.FormatInt(record.Minimax.Evaluations, 10),
			record.Minimax.Duration.String(),
		}
	}
	return w.write("pruning_records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", filename)
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", filename)
	}
	return nil
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores one game's metrics as CSV files in a directory.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) WriteGame(game GameMetric) error {
	header := []string{"outcome", "start_time", "end_time", "duration", "turns"}
	row := []string{
		game.Outcome,
		game.StartTime.Format(time.RFC3339),
		game.EndTime.Format(time.RFC3339),
		game.Duration.String(),
		strconv.Itoa(game.TotalTurns),
	}
	return w.write("game.csv", header, [][]string{row})
}

func (w *Writer) WriteTurns(turns []TurnMetric) error {
	header := []string{
		"turn", "evader_move", "evader", "pursuer1", "pursuer2", "detected", "mode1", "mode2",
		"depth", "completed_depth", "pruning", "nodes", "leaves", "cutoffs", "duration",
	}
	rows := make([][]string, 0, len(turns))
	for _, t := range turns {
		rows = append(rows, []string{
			strconv.Itoa(t.Turn),
			t.EvaderMove.String(),
			t.Evader.String(),
			t.Pursuers[0].String(),
			t.Pursuers[1].String(),
			strconv.FormatBool(t.Detected),
			t.Modes[0],
			t.Modes[1],
			strconv.Itoa(t.Depth),
			strconv.Itoa(t.CompletedDepth),
			strconv.FormatBool(t.Pruning),
			strconv.Itoa(t.Nodes),
			strconv.Itoa(t.Leaves),
			strconv.Itoa(t.Cutoffs),
			t.Duration.String(),
		})
	}
	return w.write("turns.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

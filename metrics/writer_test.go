package metrics

import (
	"os"
	"path/filepath"
	"pursuit/game"
	"pursuit/searcher"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("creates the target directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "run")
		_, err := NewWriter(dir)
		require.NoError(t, err)
		require.DirExists(t, dir)
	})

	t.Run("writes one row per turn", func(t *testing.T) {
		dir := t.TempDir()
		w, err := NewWriter(dir)
		require.NoError(t, err)

		turns := []TurnMetric{
			{Turn: 1, EvaderMove: game.East, Evader: game.Position{X: 1}, Modes: [2]string{"patrol", "patrol"}},
			{Turn: 2, EvaderMove: game.South, Evader: game.Position{X: 1, Y: 1}, Detected: true,
				Modes: [2]string{"chase", "chase"}, SearchMetric: searcher.SearchMetric{Depth: 4, Nodes: 120}},
		}
		require.NoError(t, w.WriteTurns(turns))

		data, err := os.ReadFile(filepath.Join(dir, "turns.csv"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3, "Header plus two turns")
		require.True(t, strings.HasPrefix(lines[0], "turn,evader_move"))
		require.True(t, strings.HasPrefix(lines[2], `2,SOUTH,"(1,1)"`), lines[2])
		require.Contains(t, lines[2], ",chase,chase,4,0,false,120,")
	})

	t.Run("writes the game summary", func(t *testing.T) {
		dir := t.TempDir()
		w, err := NewWriter(dir)
		require.NoError(t, err)

		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGame(GameMetric{
			Outcome:    "captured",
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalTurns: 12,
		}))

		data, err := os.ReadFile(filepath.Join(dir, "game.csv"))
		require.NoError(t, err)
		require.Contains(t, string(data), "captured,2024-01-02T03:04:05Z,2024-01-02T03:04:06Z,1s,12")
	})
}

package engine

import (
	"pursuit/evader"
	"pursuit/game"
	"pursuit/pursuer"
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(x, y int) game.Position { return game.Position{X: x, Y: y} }

// scripted replays fixed pursuer positions, then holds.
type scripted struct {
	moves [][2]game.Position
	calls int
}

func (s *scripted) GetBestMoves(snapshot game.Snapshot) (game.Position, game.Position) {
	s.calls++
	if len(s.moves) == 0 {
		return snapshot.Pursuers[0], snapshot.Pursuers[1]
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next[0], next[1]
}

func TestRun(t *testing.T) {
	t.Run("evader reaches the goal", func(t *testing.T) {
		grid := game.NewGrid(5, 5)
		e := evader.New(pos(0, 0), pos(0, 2))
		eng := New(grid, pos(0, 2), e, &scripted{}, pos(4, 4), pos(4, 3))

		outcome, gameMetric, turns := eng.Run()

		require.Equal(t, GoalReached, outcome)
		require.Equal(t, 2, gameMetric.TotalTurns)
		require.Equal(t, "goal-reached", gameMetric.Outcome)
		require.Len(t, turns, 2)
		require.Equal(t, game.South, turns[1].EvaderMove)
		require.Equal(t, pos(0, 2), turns[1].Evader)
	})

	t.Run("evader walks into a pursuer", func(t *testing.T) {
		grid := game.NewGrid(5, 2)
		e := evader.New(pos(0, 0), pos(4, 0), evader.WithVisionRadius(0))
		coordinator := &scripted{}
		eng := New(grid, pos(4, 0), e, coordinator, pos(3, 0), pos(3, 1))

		outcome, _, turns := eng.Run()

		require.Equal(t, Captured, outcome)
		require.Len(t, turns, 2)
		require.Equal(t, 1, coordinator.calls, "The game ends before the pursuers move on turn 2")
	})

	t.Run("pursuers capture the evader", func(t *testing.T) {
		grid := game.NewGrid(7, 1)
		e := evader.New(pos(0, 0), pos(6, 0))
		coordinator := pursuer.New(pos(3, 0), pos(6, 0), pursuer.WithMetrics())
		eng := New(grid, pos(6, 0), e, coordinator, pos(3, 0), pos(6, 0))

		outcome, gameMetric, turns := eng.Run()

		require.Equal(t, Captured, outcome)
		require.Equal(t, 2, gameMetric.TotalTurns)
		require.Equal(t, pos(0, 0), turns[1].Evader, "A visible pursuer blocks the corridor")
		require.Equal(t, pos(1, 0), turns[1].Pursuers[0])
		require.True(t, turns[0].Detected)
		require.Equal(t, [2]string{"chase", "chase"}, turns[0].Modes)
		require.Equal(t, 4, turns[0].Depth)
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		grid := game.NewGrid(3, 3, pos(1, 0), pos(1, 1), pos(1, 2))
		e := evader.New(pos(0, 0), pos(2, 0))
		eng := New(grid, pos(2, 0), e, &scripted{}, pos(2, 2), pos(2, 1), WithMaxTurns(5))

		outcome, gameMetric, turns := eng.Run()

		require.Equal(t, TurnLimit, outcome)
		require.Equal(t, 5, gameMetric.TotalTurns)
		for _, turn := range turns {
			require.Equal(t, game.Wait, turn.EvaderMove, "The goal is walled off")
		}
	})

	t.Run("rejects colliding moves", func(t *testing.T) {
		grid := game.NewGrid(5, 5)
		e := evader.New(pos(0, 0), pos(0, 4))
		coordinator := &scripted{moves: [][2]game.Position{{pos(3, 3), pos(3, 3)}}}
		eng := New(grid, pos(0, 4), e, coordinator, pos(3, 4), pos(4, 3), WithMaxTurns(1))

		eng.Run()

		require.Equal(t, [2]game.Position{pos(3, 4), pos(4, 3)}, eng.Pursuers())
	})

	t.Run("rejects jumps and walls", func(t *testing.T) {
		grid := game.NewGrid(5, 5, pos(4, 4))
		e := evader.New(pos(0, 0), pos(0, 4))
		coordinator := &scripted{moves: [][2]game.Position{{pos(1, 4), pos(4, 4)}}}
		eng := New(grid, pos(0, 4), e, coordinator, pos(3, 4), pos(4, 3), WithMaxTurns(1))

		eng.Run()

		require.Equal(t, [2]game.Position{pos(3, 4), pos(4, 3)}, eng.Pursuers())
	})

	t.Run("panics on shared start cells", func(t *testing.T) {
		require.Panics(t, func() {
			New(game.NewGrid(3, 3), pos(2, 2), evader.New(pos(0, 0), pos(2, 2)), &scripted{}, pos(1, 1), pos(1, 1))
		})
	})
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "turn-limit", TurnLimit.String())
	require.Equal(t, "goal-reached", GoalReached.String())
	require.Equal(t, "captured", Captured.String())
}

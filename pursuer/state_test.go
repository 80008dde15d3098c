package pursuer

import (
	"pursuit/game"
	"pursuit/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func leafState(p1, p2, target game.Position) *jointState {
	return &jointState{
		grid:      game.NewGrid(7, 7),
		pursuers:  [2]game.Position{p1, p2},
		candidate: [2]game.Position{p1, p2},
		targets:   [2]game.Position{target, target},
		chasing:   [2]bool{true, true},
		weights:   &DefaultWeights,
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("rewards flanking the target", func(t *testing.T) {
		flank := leafState(pos(0, 3), pos(6, 3), pos(3, 3))
		sameSide := leafState(pos(1, 2), pos(2, 1), pos(3, 3))

		require.True(t, flank.flanking())
		require.False(t, sameSide.flanking())
		require.Equal(t, 60.0, flank.Evaluate(), "6*10 + 3*5 - 15")
		require.Equal(t, 75.0, sameSide.Evaluate(), "6*10 + 3*5")
	})

	t.Run("closer pursuers lower the score", func(t *testing.T) {
		far := leafState(pos(0, 0), pos(6, 6), pos(3, 3))
		near := leafState(pos(1, 1), pos(6, 6), pos(3, 3))

		require.Less(t, near.Evaluate(), far.Evaluate())
	})

	t.Run("penalizes returning to the previous cell", func(t *testing.T) {
		s := leafState(pos(0, 3), pos(6, 3), pos(3, 3))
		base := s.Evaluate()

		s.remember = true
		s.previous = [2]game.Position{pos(0, 3), pos(5, 3)}
		require.Equal(t, base+DefaultWeights.Oscillation, s.Evaluate())

		step := game.Wait
		s.fixed[0] = &step
		require.Equal(t, base, s.Evaluate(), "A patrolling pursuer is not penalized")
	})

	t.Run("penalizes a root move back to the previous cell at depth", func(t *testing.T) {
		root := leafState(pos(3, 3), pos(6, 6), pos(0, 0))
		root.root = true
		root.adversary = true
		root.remember = true
		root.previous = [2]game.Position{pos(2, 3), pos(6, 5)}

		leaf := func(s *jointState) float64 {
			var next searcher.State[ply] = s
			next = next.Play(ply{first: game.West, second: game.Wait})
			next = next.Play(ply{first: game.Wait})
			next = next.Play(ply{first: game.East, second: game.Wait})
			next = next.Play(ply{first: game.Wait})
			require.Equal(t, pos(3, 3), next.(*jointState).pursuers[0])
			return next.Evaluate()
		}

		forgetful := *root
		forgetful.remember = false
		require.Equal(t, leaf(&forgetful)+DefaultWeights.Oscillation, leaf(root),
			"Stepping back to (2,3) at the root is penalized even four plies down")
	})

	t.Run("judges the root move, not the leaf position", func(t *testing.T) {
		root := leafState(pos(3, 3), pos(6, 6), pos(0, 0))
		root.root = true
		root.remember = true
		root.previous = [2]game.Position{pos(3, 3), pos(6, 5)}

		moved := root.Play(ply{first: game.West, second: game.Wait}).(*jointState)
		back := moved.Play(ply{first: game.East, second: game.Wait}).(*jointState)

		require.Equal(t, pos(3, 3), back.pursuers[0], "The leaf is back on the previous cell")
		require.Equal(t, pos(2, 3), back.candidate[0])
		unpenalized := *back
		unpenalized.remember = false
		require.Equal(t, unpenalized.Evaluate(), back.Evaluate())
	})

	t.Run("penalizes clumping and sharing a cell", func(t *testing.T) {
		apart := leafState(pos(3, 0), pos(3, 6), pos(3, 3))
		adjacent := leafState(pos(4, 0), pos(5, 0), pos(3, 6))
		shared := leafState(pos(3, 0), pos(3, 0), pos(3, 6))

		require.Equal(t, 75.0-DefaultWeights.Encircle, apart.Evaluate())
		require.Equal(t, 7*10+8*10+7*5+DefaultWeights.Spacing, adjacent.Evaluate())
		require.Equal(t, 12*10+6*5+DefaultWeights.Spacing+DefaultWeights.Collision, shared.Evaluate())
	})

	t.Run("ignores pursuers that are not chasing", func(t *testing.T) {
		s := leafState(pos(0, 0), pos(6, 6), pos(6, 5))
		s.chasing[0] = false

		require.Equal(t, 1*10+1*5.0, s.Evaluate())
	})

	t.Run("capture is terminal below the root", func(t *testing.T) {
		s := leafState(pos(3, 2), pos(6, 6), pos(3, 3))
		s.adversary = true
		s.plies = 3

		require.True(t, s.Terminal())
		require.Equal(t, -DefaultWeights.Capture+3, s.Evaluate())

		s.root = true
		require.False(t, s.Terminal(), "The root is always expanded")
	})

	t.Run("reaching a remembered position is not a capture", func(t *testing.T) {
		s := leafState(pos(3, 2), pos(6, 6), pos(3, 3))

		require.False(t, s.Terminal())
		require.Greater(t, s.Evaluate(), 0.0)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("forbid drops every shared destination", func(t *testing.T) {
		s := leafState(pos(2, 3), pos(4, 3), pos(0, 0))
		s.collision = Forbid

		for _, m := range s.LegalMoves() {
			require.NotEqual(t, s.pursuers[0].Add(m.first), s.pursuers[1].Add(m.second))
		}
		require.Len(t, s.LegalMoves(), 24, "Only East/West into (3,3) collides")
	})

	t.Run("penalize keeps shared destinations below the root", func(t *testing.T) {
		s := leafState(pos(2, 3), pos(4, 3), pos(0, 0))
		s.collision = Penalize
		require.Len(t, s.LegalMoves(), 25)

		s.root = true
		require.Len(t, s.LegalMoves(), 24)
	})

	t.Run("stays inside the grid", func(t *testing.T) {
		s := leafState(pos(0, 0), pos(6, 6), pos(3, 3))
		require.Len(t, s.LegalMoves(), 9)
		require.Equal(t, ply{first: game.South, second: game.North}, s.LegalMoves()[0])
	})

	t.Run("evader cannot step onto a pursuer", func(t *testing.T) {
		s := leafState(pos(3, 2), pos(6, 6), pos(3, 3))
		s.evaderMove = true

		moves := s.LegalMoves()
		require.Len(t, moves, 4)
		require.NotContains(t, moves, ply{first: game.North})
	})

	t.Run("play alternates sides", func(t *testing.T) {
		s := leafState(pos(0, 0), pos(6, 6), pos(3, 3))
		s.adversary = true

		next := s.Play(ply{first: game.South, second: game.West}).(*jointState)
		require.True(t, next.Maximizing())
		require.Equal(t, [2]game.Position{pos(0, 1), pos(5, 6)}, next.pursuers)
		require.Equal(t, 1, next.plies)

		after := next.Play(ply{first: game.East}).(*jointState)
		require.False(t, after.Maximizing())
		require.Equal(t, [2]game.Position{pos(4, 3), pos(4, 3)}, after.targets)
		require.Equal(t, [2]game.Position{pos(0, 0), pos(6, 6)}, s.pursuers, "Play leaves the receiver untouched")
	})
}

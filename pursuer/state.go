package pursuer

import (
	"pursuit/game"
	"pursuit/searcher"
	"pursuit/utils"
)

// ply is one layer's move. On a pursuer layer both fields are used; on an
// evader layer only first is.
type ply struct {
	first  game.Direction
	second game.Direction
}

// jointState is a search node. It is never mutated after construction; the
// grid is shared read-only by every node.
//
// The capture terminal only applies while a real evader is modelled. When the
// pursuers head for a remembered position, reaching it is scored like any
// other leaf, so the move that actually steps onto the cell wins on distance.
type jointState struct {
	grid       *game.Grid
	pursuers   [2]game.Position
	candidate  [2]game.Position // pursuer positions after the root move
	targets    [2]game.Position
	chasing    [2]bool
	fixed      [2]*game.Direction
	previous   [2]game.Position
	remember   bool
	adversary  bool // model the evader as a maximizing layer
	evaderMove bool
	root       bool
	plies      int
	collision  CollisionPolicy
	weights    *Weights
}

var _ searcher.State[ply] = (*jointState)(nil)

func (s *jointState) Maximizing() bool {
	return s.evaderMove
}

func (s *jointState) LegalMoves() []ply {
	if s.evaderMove {
		return s.evaderMoves()
	}

	firsts := s.actions(0)
	seconds := s.actions(1)
	moves := make([]ply, 0, len(firsts)*len(seconds))
	for _, a := range firsts {
		for _, b := range seconds {
			if s.pursuers[0].Add(a) == s.pursuers[1].Add(b) && (s.root || s.collision == Forbid) {
				continue
			}
			moves = append(moves, ply{first: a, second: b})
		}
	}
	if len(moves) == 0 {
		moves = append(moves, ply{first: game.Wait, second: game.Wait})
	}
	return moves
}

// actions lists a pursuer's candidate moves. Staying put is always legal.
func (s *jointState) actions(i int) []game.Direction {
	if s.fixed[i] != nil {
		return []game.Direction{*s.fixed[i]}
	}
	actions := make([]game.Direction, 0, len(game.Actions))
	for _, a := range game.Actions {
		if a == game.Wait || s.grid.IsFree(s.pursuers[i].Add(a)) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (s *jointState) evaderMoves() []ply {
	evader := s.targets[0]
	moves := make([]ply, 0, len(game.Actions))
	for _, a := range game.Actions {
		next := evader.Add(a)
		if a != game.Wait && (!s.grid.IsFree(next) || next == s.pursuers[0] || next == s.pursuers[1]) {
			continue
		}
		moves = append(moves, ply{first: a})
	}
	return moves
}

func (s *jointState) Play(move ply) searcher.State[ply] {
	next := *s
	next.root = false
	next.plies = s.plies + 1
	if s.evaderMove {
		evader := s.targets[0].Add(move.first)
		next.targets = [2]game.Position{evader, evader}
		next.evaderMove = false
		return &next
	}
	next.pursuers = [2]game.Position{s.pursuers[0].Add(move.first), s.pursuers[1].Add(move.second)}
	if s.root {
		next.candidate = next.pursuers
	}
	next.evaderMove = s.adversary
	return &next
}

func (s *jointState) Terminal() bool {
	return !s.root && s.captured()
}

func (s *jointState) captured() bool {
	if !s.adversary {
		return false
	}
	for i := range s.pursuers {
		if s.chasing[i] && game.Manhattan(s.pursuers[i], s.targets[i]) <= 1 {
			return true
		}
	}
	return false
}

func (s *jointState) Evaluate() float64 {
	w := s.weights
	if s.captured() {
		// Sooner is better for the pursuers.
		return -w.Capture + float64(s.plies)
	}

	score := 0.0
	nearest := -1
	for i := range s.pursuers {
		if !s.chasing[i] {
			continue
		}
		d := game.Manhattan(s.pursuers[i], s.targets[i])
		score += float64(d) * w.Distance
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest >= 0 {
		score += float64(nearest) * w.Closest
	}

	if s.chasing[0] && s.chasing[1] && s.targets[0] == s.targets[1] && s.flanking() {
		score -= w.Encircle
	}

	if s.remember {
		for i := range s.pursuers {
			if s.fixed[i] == nil && s.candidate[i] == s.previous[i] {
				score += w.Oscillation
			}
		}
	}

	gap := game.Manhattan(s.pursuers[0], s.pursuers[1])
	if gap <= 1 {
		score += w.Spacing
	}
	if gap == 0 {
		score += w.Collision
	}
	return score
}

// flanking reports whether the pursuers sit in opposing quadrants around the
// target: the offsets differ in sign on at least one axis.
func (s *jointState) flanking() bool {
	t := s.targets[0]
	v1x, v1y := s.pursuers[0].X-t.X, s.pursuers[0].Y-t.Y
	v2x, v2y := s.pursuers[1].X-t.X, s.pursuers[1].Y-t.Y
	return utils.Sign(v1x) != utils.Sign(v2x) || utils.Sign(v1y) != utils.Sign(v2y)
}

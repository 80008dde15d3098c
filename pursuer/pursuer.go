// Package pursuer coordinates the two pursuers as a single decision maker.
//
// Each turn the coordinator picks a target per pursuer (the evader if either
// pursuer detects it, a remembered position, or a patrol waypoint) and then
// searches the joint move space of both pursuers with depth-limited minimax,
// modelling the evader as an adversary when its position is known.
package pursuer

import "pursuit/game"

// Pursuer is the state carried across turns for one pursuer.
type Pursuer struct {
	ID       int
	Position game.Position
	// LastKnown is the last confirmed evader position, nil when forgotten.
	LastKnown *game.Position
	// LastPatrol is the waypoint most recently chosen while patrolling.
	LastPatrol *game.Position
}

// Mode is how a pursuer picked its target this turn.
type Mode int

const (
	Patrol Mode = iota
	Ghost
	Chase
)

func (m Mode) String() string {
	switch m {
	case Chase:
		return "chase"
	case Ghost:
		return "ghost"
	}
	return "patrol"
}

// CollisionPolicy decides how the search treats both pursuers planning into
// the same cell.
type CollisionPolicy int

const (
	// Forbid drops joint moves that put both pursuers on one cell.
	Forbid CollisionPolicy = iota
	// Penalize keeps such moves below the root and scores them with
	// Weights.Collision. Committed moves never collide under either policy.
	Penalize
)

func (p CollisionPolicy) String() string {
	if p == Penalize {
		return "penalize"
	}
	return "forbid"
}

// Weights tune the leaf evaluation. Scores are from the evader's side: higher
// favors the evader, lower favors the pursuers.
type Weights struct {
	Distance    float64 // per step of summed pursuer distance
	Closest     float64 // per step of the nearer pursuer's distance
	Encircle    float64 // subtracted when pursuers flank the target
	Oscillation float64 // added when a pursuer returns to its previous cell
	Spacing     float64 // added when pursuers are within one cell of each other
	Collision   float64 // added when pursuers share a cell (Penalize only)
	Capture     float64 // magnitude of the capture score
}

var DefaultWeights = Weights{
	Distance:    10,
	Closest:     5,
	Encircle:    15,
	Oscillation: 50,
	Spacing:     30,
	Collision:   200,
	Capture:     10000,
}

func ptr(p game.Position) *game.Position {
	return &p
}

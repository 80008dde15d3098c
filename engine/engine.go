package engine

import (
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/pursuer"
)

type Outcome int

const (
	TurnLimit Outcome = iota
	GoalReached
	Captured
)

func (o Outcome) String() string {
	switch o {
	case GoalReached:
		return "goal-reached"
	case Captured:
		return "captured"
	}
	return "turn-limit"
}

// Evader moves itself one step per turn.
type Evader interface {
	Position() game.Position
	PlanAndMove(grid *game.Grid, pursuers []game.Position) game.Direction
}

// Coordinator moves both pursuers at once.
type Coordinator interface {
	GetBestMoves(snapshot game.Snapshot) (game.Position, game.Position)
}

// reporter is implemented by coordinators that expose their last decision.
type reporter interface {
	LastSearch() pursuer.Report
}

type Engine interface {
	// Run plays until the goal is reached, the evader is captured or the turn limit hits
	Run() (outcome Outcome, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}

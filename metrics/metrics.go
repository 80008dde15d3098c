package metrics

import (
	"pursuit/game"
	"pursuit/searcher"
	"time"
)

// TurnMetric records one full turn: the evader's move and, unless the game
// ended first, the pursuers' reply.
type TurnMetric struct {
	Turn       int
	EvaderMove game.Direction
	Evader     game.Position
	Pursuers   [2]game.Position
	Detected   bool
	Modes      [2]string // Empty for coordinators that do not report
	searcher.SearchMetric
}

type GameMetric struct {
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
}

package engine

import (
	"pursuit/game"
	"pursuit/meta"
	"pursuit/metrics"
	"pursuit/pursuer"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine runs a game in-process, alternating the evader and the
// coordinator strictly.
type LocalEngine struct {
	grid        *game.Grid
	goal        game.Position
	evader      Evader
	coordinator Coordinator
	pursuers    [2]game.Position
	maxTurns    int
}

var _ Engine = (*LocalEngine)(nil)

func New(grid *game.Grid, goal game.Position, evader Evader, coordinator Coordinator, p1, p2 game.Position, options ...Option) *LocalEngine {
	if grid == nil {
		panic("engine needs a grid")
	}
	if p1 == p2 {
		panic("pursuers must start on distinct cells")
	}
	e := &LocalEngine{ // Default values
		grid:        grid,
		goal:        goal,
		evader:      evader,
		coordinator: coordinator,
		pursuers:    [2]game.Position{p1, p2},
		maxTurns:    meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) Pursuers() [2]game.Position {
	return e.pursuers
}

// Run executes the game loop until an outcome is reached.
func (e *LocalEngine) Run() (Outcome, metrics.GameMetric, []metrics.TurnMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	log.Info().Msgf("game started: evader %s, goal %s, pursuers %s %s",
		e.evader.Position(), e.goal, e.pursuers[0], e.pursuers[1])

	outcome := TurnLimit
	var turns []metrics.TurnMetric
	for turn := 1; turn <= e.maxTurns; turn++ {
		move := e.evader.PlanAndMove(e.grid, e.pursuers[:])
		evader := e.evader.Position()
		record := metrics.TurnMetric{Turn: turn, EvaderMove: move, Evader: evader, Pursuers: e.pursuers}

		if evader == e.goal {
			outcome = GoalReached
			turns = append(turns, record)
			break
		}
		if game.Captured(evader, e.pursuers[:]...) {
			outcome = Captured
			turns = append(turns, record)
			break
		}

		e.movePursuers(evader, &record)
		turns = append(turns, record)
		log.Debug().Msgf("turn %d: evader %s %s, pursuers %s %s",
			turn, move, evader, e.pursuers[0], e.pursuers[1])

		if game.Captured(evader, e.pursuers[:]...) {
			outcome = Captured
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = len(turns)
	gameMetric.Outcome = outcome.String()
	log.Info().Msgf("game over after %d turns: %s", len(turns), outcome)
	return outcome, gameMetric, turns
}

func (e *LocalEngine) movePursuers(evader game.Position, record *metrics.TurnMetric) {
	snapshot := game.Snapshot{
		Grid:     e.grid,
		Pursuers: e.pursuers,
		Evader:   game.EvaderAt(evader),
	}
	n1, n2 := e.coordinator.GetBestMoves(snapshot)

	next := [2]game.Position{n1, n2}
	if !e.valid(next) {
		log.Warn().Msgf("coordinator returned invalid moves %s %s, holding", n1, n2)
		next = e.pursuers
	}
	e.pursuers = next
	record.Pursuers = next

	if r, ok := e.coordinator.(reporter); ok {
		report := r.LastSearch()
		record.Detected = report.Modes[0] == pursuer.Chase
		record.Modes = [2]string{report.Modes[0].String(), report.Modes[1].String()}
		record.SearchMetric = report.Metric
	}
}

// valid checks that each pursuer moves at most one step onto a free cell and
// that they end up apart.
func (e *LocalEngine) valid(next [2]game.Position) bool {
	if next[0] == next[1] {
		return false
	}
	for i, p := range next {
		if !e.grid.IsFree(p) || game.Manhattan(p, e.pursuers[i]) > 1 {
			return false
		}
	}
	return true
}

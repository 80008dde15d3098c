package pursuer

import (
	"fmt"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(c *Coordinator)

// WithDepth sets the search horizon in full alternations (a pursuer move and
// an evader reply).
func WithDepth(alternations int) Option {
	return func(c *Coordinator) {
		c.depth = alternations
	}
}

// WithVisionRadius sets how far each pursuer senses the evader.
func WithVisionRadius(radius int) Option {
	return func(c *Coordinator) {
		if radius >= 0 {
			c.sensor.Radius = radius
		}
	}
}

func WithSensing(policy game.Policy) Option {
	return func(c *Coordinator) {
		c.sensor.Policy = policy
	}
}

// WithWaypoints replaces the patrol points derived from the grid size.
func WithWaypoints(waypoints ...game.Position) Option {
	return func(c *Coordinator) {
		c.waypoints = append([]game.Position(nil), waypoints...)
	}
}

// WithCenter sets the patrol point used when no waypoint is free.
func WithCenter(center game.Position) Option {
	return func(c *Coordinator) {
		c.center = ptr(center)
	}
}

// WithPatrolCommitment keeps a patrol target until it is reached or blocked
// instead of re-picking the farthest waypoint every turn.
func WithPatrolCommitment() Option {
	return func(c *Coordinator) {
		c.commitment = true
	}
}

func WithCollisionPolicy(policy CollisionPolicy) Option {
	return func(c *Coordinator) {
		c.collision = policy
	}
}

func WithWeights(weights Weights) Option {
	return func(c *Coordinator) {
		c.weights = weights
	}
}

func WithPruning(enabled bool) Option {
	return func(c *Coordinator) {
		c.pruning = enabled
	}
}

// WithBudget bounds each search by wall-clock time, keeping the deepest
// completed horizon.
func WithBudget(budget time.Duration) Option {
	return func(c *Coordinator) {
		c.budget = budget
	}
}

func WithMetrics() Option {
	return func(c *Coordinator) {
		c.metrics = true
	}
}

// Report describes the most recent GetBestMoves call.
type Report struct {
	Modes [2]Mode
	// Searched is false when both pursuers patrolled and no search ran.
	Searched bool
	Value    float64
	Metric   searcher.SearchMetric
}

// Coordinator plans both pursuers' moves jointly. It owns both pursuers'
// memory; callers only see it through GetBestMoves and the accessors.
type Coordinator struct {
	pursuers   [2]*Pursuer
	previous   [2]game.Position
	moved      bool
	sensor     game.Sensor
	waypoints  []game.Position
	center     *game.Position
	commitment bool
	collision  CollisionPolicy
	weights    Weights
	depth      int
	pruning    bool
	budget     time.Duration
	metrics    bool
	searcher   *searcher.Minimax[ply]
	report     Report
}

func New(p1, p2 game.Position, options ...Option) *Coordinator {
	c := &Coordinator{ // Default values
		pursuers: [2]*Pursuer{{ID: 1, Position: p1}, {ID: 2, Position: p2}},
		sensor:   game.Sensor{Radius: meta.PURSUER_VISION, Policy: game.LineOfSight},
		weights:  DefaultWeights,
		depth:    meta.SEARCH_DEPTH,
		pruning:  true,
	}
	for _, option := range options {
		option(c)
	}
	if c.depth <= 0 || 2*c.depth > searcher.MaxDepth {
		panic(fmt.Sprintf("search depth must be between 1 and %d alternations", searcher.MaxDepth/2))
	}

	searchOptions := []searcher.Option{
		searcher.WithDepth(2 * c.depth),
		searcher.WithPruning(c.pruning),
		searcher.WithDuration(c.budget),
	}
	if c.metrics {
		searchOptions = append(searchOptions, searcher.WithMetrics())
	}
	c.searcher = searcher.NewMinimax[ply](searchOptions...)
	return c
}

// Pursuers returns copies of both pursuers' state.
func (c *Coordinator) Pursuers() [2]Pursuer {
	return [2]Pursuer{*c.pursuers[0], *c.pursuers[1]}
}

func (c *Coordinator) LastSearch() Report {
	return c.report
}

// Detects reports whether either pursuer senses the evader at target.
func (c *Coordinator) Detects(grid *game.Grid, pursuers [2]game.Position, target game.Position) bool {
	return c.sensor.Detects(grid, pursuers[0], target) || c.sensor.Detects(grid, pursuers[1], target)
}

// GetBestMoves returns both pursuers' next positions. The snapshot carries the
// evader's true position, or nil when it is unavailable; the coordinator only
// acts on it if one of the pursuers detects it. Both pursuers' memory and
// patrol targets are updated as a side effect. The returned positions are
// always distinct.
func (c *Coordinator) GetBestMoves(snapshot game.Snapshot) (game.Position, game.Position) {
	grid := snapshot.Grid
	if grid == nil {
		panic("snapshot without grid")
	}
	for i, p := range c.pursuers {
		p.Position = snapshot.Pursuers[i]
	}

	view := snapshot
	view.Evader = nil
	view.Visible = false
	if snapshot.Evader != nil && c.Detects(grid, snapshot.Pursuers, *snapshot.Evader) {
		view.Evader = ptr(*snapshot.Evader)
		view.Visible = true
	}
	view.Previous = c.previous

	var targets [2]game.Position
	var modes [2]Mode
	for i, p := range c.pursuers {
		targets[i], modes[i] = c.selectTarget(grid, p, view.Evader)
		if modes[i] != c.report.Modes[i] {
			log.Debug().Msgf("pursuer %d: %s -> %s (target %s)", p.ID, c.report.Modes[i], modes[i], targets[i])
		}
	}
	c.report = Report{Modes: modes}

	var moves [2]game.Direction
	if modes[0] == Patrol && modes[1] == Patrol {
		moves = c.patrol(grid, targets)
	} else {
		moves = c.search(view, targets, modes)
	}

	next := [2]game.Position{view.Pursuers[0].Add(moves[0]), view.Pursuers[1].Add(moves[1])}
	if next[0] == next[1] {
		// Unreachable with the filtered move generation; holding both is always safe.
		log.Warn().Msgf("pursuers planned into the same cell %s, holding", next[0])
		next = view.Pursuers
	}

	c.previous = view.Pursuers
	c.moved = true
	for i, p := range c.pursuers {
		p.Position = next[i]
	}
	return next[0], next[1]
}

// patrol steers both pursuers along their own patrol routes. The second
// pursuer yields to the first one's next cell.
func (c *Coordinator) patrol(grid *game.Grid, targets [2]game.Position) [2]game.Direction {
	p1, p2 := c.pursuers[0].Position, c.pursuers[1].Position
	first := steer(grid, p1, targets[0], p2)
	second := steer(grid, p2, targets[1], p1.Add(first))
	return [2]game.Direction{first, second}
}

func (c *Coordinator) search(view game.Snapshot, targets [2]game.Position, modes [2]Mode) [2]game.Direction {
	root := &jointState{
		grid:      view.Grid,
		pursuers:  view.Pursuers,
		targets:   targets,
		previous:  view.Previous,
		remember:  c.moved,
		adversary: view.Visible,
		root:      true,
		collision: c.collision,
		weights:   &c.weights,
	}
	for i := range c.pursuers {
		root.chasing[i] = modes[i] != Patrol
		if !root.chasing[i] {
			// Patrolling beside a chase: follow the route, keeping clear of the other pursuer.
			step := steer(view.Grid, view.Pursuers[i], targets[i], view.Pursuers[1-i])
			root.fixed[i] = &step
		}
	}

	plies := 1
	if root.adversary {
		plies = 2 * c.depth
	}
	decision, err := c.searcher.SearchDepth(root, plies)
	if err != nil {
		log.Debug().Err(err).Msg("joint search found no move")
		return [2]game.Direction{game.Wait, game.Wait}
	}
	c.report.Searched = true
	c.report.Value = decision.Value
	c.report.Metric = decision.Metric
	return [2]game.Direction{decision.Move.first, decision.Move.second}
}

package pursuer

import (
	"pursuit/game"
	"pursuit/pathfind"
)

// DefaultWaypoints spreads patrol points over a width x height board: the four
// quarter points, the center, and the midpoints between center and each edge
// quarter line.
func DefaultWaypoints(width, height int) []game.Position {
	x1, x2, cx := width/4, 3*width/4, width/2
	y1, y2, cy := height/4, 3*height/4, height/2
	return []game.Position{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x1, Y: y2}, {X: x2, Y: y2},
		{X: cx, Y: cy},
		{X: cx, Y: y1}, {X: cx, Y: y2}, {X: x1, Y: cy}, {X: x2, Y: cy},
	}
}

// selectTarget updates p's memory and returns its target for this turn.
// Detection is shared, so seen carries the evader's position when either
// pursuer confirmed it.
func (c *Coordinator) selectTarget(grid *game.Grid, p *Pursuer, seen *game.Position) (game.Position, Mode) {
	if seen != nil {
		p.LastKnown = ptr(*seen)
		return *seen, Chase
	}
	if p.LastKnown != nil {
		if p.Position != *p.LastKnown {
			return *p.LastKnown, Ghost
		}
		// Arrived and found nothing.
		p.LastKnown = nil
	}
	target := c.patrolPoint(grid, p)
	p.LastPatrol = ptr(target)
	return target, Patrol
}

// patrolPoint picks the farthest free waypoint other than the previous patrol
// target. Without such a waypoint any free one will do, and without any free
// waypoint the pursuer heads for the center. With commitment enabled the
// previous target is kept until it is reached or blocked.
func (c *Coordinator) patrolPoint(grid *game.Grid, p *Pursuer) game.Position {
	if c.commitment && p.LastPatrol != nil && *p.LastPatrol != p.Position && grid.IsFree(*p.LastPatrol) {
		return *p.LastPatrol
	}

	waypoints := c.waypoints
	if waypoints == nil {
		waypoints = DefaultWaypoints(grid.Width(), grid.Height())
	}

	farthest, best := -1, game.Position{}
	for _, w := range waypoints {
		if !grid.IsFree(w) || (p.LastPatrol != nil && w == *p.LastPatrol) {
			continue
		}
		if d := game.Manhattan(p.Position, w); d > farthest {
			farthest, best = d, w
		}
	}
	if farthest >= 0 {
		return best
	}

	for _, w := range waypoints {
		if grid.IsFree(w) {
			return w
		}
	}
	if c.center != nil {
		return *c.center
	}
	return game.Position{X: grid.Width() / 2, Y: grid.Height() / 2}
}

// steer returns the first step from `from` towards target avoiding the
// blocked cells. When A* finds no route it takes any step that shortens the
// Manhattan distance, and otherwise stays.
func steer(grid *game.Grid, from, target game.Position, blocked ...game.Position) game.Direction {
	if from == target {
		return game.Wait
	}
	graph := game.Obstructed{Grid: grid, Occupied: blocked}
	result := pathfind.Search[game.Position](graph, from, target, func(p game.Position) float64 {
		return float64(game.Manhattan(p, target))
	})
	if result.Found && len(result.Path) > 1 {
		return game.DirectionOf(from, result.Path[1])
	}

	current := game.Manhattan(from, target)
	for _, next := range graph.Neighbors(from) {
		if game.Manhattan(next, target) < current {
			return game.DirectionOf(from, next)
		}
	}
	return game.Wait
}

// Package evader plans the evader's route to its goal.
//
// Each turn the evader runs a fresh A* search whose heuristic is deliberately
// not admissible: on top of the Manhattan distance to the goal it adds a
// penalty for recently visited cells, a cumulative heat penalty for cells it
// has entered before and a threat penalty near visible pursuers. The route it
// follows is therefore a safety-biased one, not a shortest path.
package evader

import (
	"fmt"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/pathfind"
	"pursuit/utils"

	"github.com/rs/zerolog/log"
)

const (
	// HistoryPenalty is added for cells in the recent-move history.
	HistoryPenalty = 100
	// ThreatWeight scales (R+1-d) for each visible pursuer within the threat radius R.
	ThreatWeight = 20
)

type Option func(e *Evader)

// WithVisionRadius sets how far the evader senses pursuers.
func WithVisionRadius(radius int) Option {
	return func(e *Evader) {
		if radius >= 0 {
			e.sensor.Radius = radius
		}
	}
}

// WithSensing selects distance-only or line-of-sight sensing of pursuers.
func WithSensing(policy game.Policy) Option {
	return func(e *Evader) {
		e.sensor.Policy = policy
	}
}

// WithHistorySize sets how many recent positions count as oscillation.
func WithHistorySize(k int) Option {
	return func(e *Evader) {
		if k >= 0 {
			e.history = utils.NewWindow[game.Position](k)
		}
	}
}

// WithHeatWeight sets the per-visit revisit penalty.
func WithHeatWeight(weight float64) Option {
	return func(e *Evader) {
		if weight >= 0 {
			e.heatWeight = weight
		}
	}
}

// WithThreatRadius sets the distance within which visible pursuers repel.
func WithThreatRadius(radius int) Option {
	return func(e *Evader) {
		if radius >= 0 {
			e.threatRadius = radius
		}
	}
}

// WithGridSize allocates the heat map up front instead of on the first plan.
func WithGridSize(width, height int) Option {
	return func(e *Evader) {
		e.heat = newHeatMap(width, height)
	}
}

type Evader struct {
	pos          game.Position
	goal         game.Position
	sensor       game.Sensor
	threatRadius int
	heatWeight   float64
	history      *utils.Window[game.Position]
	heat         *heatMap
}

func New(start, goal game.Position, options ...Option) *Evader {
	e := &Evader{ // Default values
		pos:          start,
		goal:         goal,
		sensor:       game.Sensor{Radius: meta.EVADER_VISION, Policy: game.DistanceOnly},
		threatRadius: meta.THREAT_RADIUS,
		heatWeight:   meta.HEAT_WEIGHT,
		history:      utils.NewWindow[game.Position](meta.EVADER_HISTORY),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Evader) Position() game.Position { return e.pos }
func (e *Evader) Goal() game.Position     { return e.goal }
func (e *Evader) Reached() bool           { return e.pos == e.goal }

// History returns the recent positions, oldest first.
func (e *Evader) History() []game.Position {
	return e.history.Items()
}

// HeatAt returns how many times the evader has entered p.
func (e *Evader) HeatAt(p game.Position) int {
	if e.heat == nil {
		return 0
	}
	return e.heat.at(p)
}

// Sees filters pursuers down to those the evader senses from its position.
func (e *Evader) Sees(grid *game.Grid, pursuers []game.Position) []game.Position {
	return e.sensor.Filter(grid, e.pos, pursuers)
}

// Route searches a path to the goal from the current position without moving.
// Visible pursuers are impassable for this search only.
func (e *Evader) Route(grid *game.Grid, pursuers []game.Position) pathfind.Result[game.Position] {
	visible := e.Sees(grid, pursuers)
	graph := game.Obstructed{Grid: grid, Occupied: visible}
	return pathfind.Search[game.Position](graph, e.pos, e.goal, e.heuristic(visible))
}

// PlanAndMove takes the first step of a fresh route and records it in the
// history and heat map. It returns Wait, without moving, if the goal cannot be
// reached around the currently visible pursuers.
func (e *Evader) PlanAndMove(grid *game.Grid, pursuers []game.Position) game.Direction {
	e.ensureHeat(grid)

	result := e.Route(grid, pursuers)
	if !result.Found || len(result.Path) < 2 {
		log.Debug().Msgf("evader at %s has no route to %s (expanded %d)", e.pos, e.goal, result.ExpandedNodes)
		return game.Wait
	}

	next := result.Path[1]
	direction := game.DirectionOf(e.pos, next)
	e.pos = next
	e.history.Push(next)
	e.heat.visit(next)
	return direction
}

func (e *Evader) heuristic(visible []game.Position) pathfind.Heuristic[game.Position] {
	return func(p game.Position) float64 {
		h := float64(game.Manhattan(p, e.goal))

		if e.history.Contains(p) {
			h += HistoryPenalty
		}
		h += float64(e.heat.at(p)) * e.heatWeight

		for _, pursuer := range visible {
			if d := game.Manhattan(p, pursuer); d <= e.threatRadius {
				h += float64((e.threatRadius+1-d)*ThreatWeight)
			}
		}
		return h
	}
}

func (e *Evader) ensureHeat(grid *game.Grid) {
	if e.heat == nil {
		e.heat = newHeatMap(grid.Width(), grid.Height())
		return
	}
	if e.heat.width != grid.Width() || e.heat.height != grid.Height() {
		panic(fmt.Sprintf("heat map is %dx%d but grid is %dx%d", e.heat.width, e.heat.height, grid.Width(), grid.Height()))
	}
}

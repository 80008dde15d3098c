package pursuer

import (
	"pursuit/game"

	"golang.org/x/exp/rand"
)

// RandomCoordinator moves each pursuer to a uniformly drawn free cell. It is
// seeded so that games are reproducible.
type RandomCoordinator struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *RandomCoordinator {
	return &RandomCoordinator{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomCoordinator) GetBestMoves(snapshot game.Snapshot) (game.Position, game.Position) {
	p1, p2 := snapshot.Pursuers[0], snapshot.Pursuers[1]
	first := r.pick(snapshot.Grid, p1, p2)
	second := r.pick(snapshot.Grid, p2, first)
	return first, second
}

func (r *RandomCoordinator) pick(grid *game.Grid, from, other game.Position) game.Position {
	options := append([]game.Position{from}, grid.Neighbors(from, other)...)
	return options[r.rng.Intn(len(options))]
}

// GreedyCoordinator steps each pursuer to the neighbor closest to the evader
// whenever one of them detects it, and otherwise holds position.
type GreedyCoordinator struct {
	sensor game.Sensor
}

func NewGreedy(sensor game.Sensor) *GreedyCoordinator {
	return &GreedyCoordinator{sensor: sensor}
}

func (g *GreedyCoordinator) GetBestMoves(snapshot game.Snapshot) (game.Position, game.Position) {
	grid := snapshot.Grid
	p1, p2 := snapshot.Pursuers[0], snapshot.Pursuers[1]
	if snapshot.Evader == nil {
		return p1, p2
	}
	evader := *snapshot.Evader
	if !g.sensor.Detects(grid, p1, evader) && !g.sensor.Detects(grid, p2, evader) {
		return p1, p2
	}
	first := closest(grid, p1, evader, p2)
	second := closest(grid, p2, evader, first)
	return first, second
}

// closest keeps from unless a free neighbor is strictly nearer to target.
func closest(grid *game.Grid, from, target, other game.Position) game.Position {
	best, distance := from, game.Manhattan(from, target)
	for _, next := range grid.Neighbors(from, other) {
		if d := game.Manhattan(next, target); d < distance {
			best, distance = next, d
		}
	}
	return best
}

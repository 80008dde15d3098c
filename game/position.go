package game

import (
	"fmt"
	"pursuit/utils"
)

// Position is a cell coordinate. x grows east, y grows south.
type Position struct {
	X int
	Y int
}

func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns |dx|+|dy| between two positions.
func Manhattan(a, b Position) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}

// Direction is a single-step move token. Wait doubles as a pursuer's STAY action.
type Direction int

const (
	Wait Direction = iota
	North
	South
	East
	West
)

// Directions are the four movement directions in neighbor generation order.
var Directions = []Direction{North, South, East, West}

// Actions are the candidate pursuer actions, movement first then staying put.
var Actions = []Direction{North, South, East, West, Wait}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	}
	return "WAIT"
}

// DirectionOf translates a single-step delta into its token. Any other delta,
// including (0,0), is Wait.
func DirectionOf(from, to Position) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	for _, d := range Directions {
		if ddx, ddy := d.Delta(); ddx == dx && ddy == dy {
			return d
		}
	}
	return Wait
}

// Captured reports whether any pursuer is within Manhattan distance 1 of the evader.
func Captured(evader Position, pursuers ...Position) bool {
	for _, p := range pursuers {
		if Manhattan(evader, p) <= 1 {
			return true
		}
	}
	return false
}
